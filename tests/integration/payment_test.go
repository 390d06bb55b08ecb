package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/shopledger/internal/adapter/http/dto"
	"github.com/iho/shopledger/internal/domain"
)

func TestRecordPayment(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	t.Run("cash payment credits the customer", func(t *testing.T) {
		env.DB.TruncateAll(ctx)

		customer := env.DB.CreateTestPartyWithBalance(ctx, domain.PartyCustomer, "Asha Traders", decimal.NewFromInt(5000))

		req := dto.RecordPaymentRequest{
			PartyID: customer.ID,
			Amount:  decimal.NewFromInt(2000),
			Date:    time.Now().UTC(),
			Method:  string(domain.MethodCash),
		}
		body, _ := json.Marshal(req)

		r := httptest.NewRequest(http.MethodPost, "/api/v1/payments", bytes.NewReader(body))
		r.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		env.Router.ServeHTTP(w, r)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected status %d, got %d: %s", http.StatusCreated, w.Code, w.Body.String())
		}

		if balance := env.DB.PartyBalance(ctx, customer.ID); !balance.Equal(decimal.NewFromInt(3000)) {
			t.Fatalf("expected party balance 3000, got %s", balance)
		}
	})

	t.Run("online payment credits the bank account", func(t *testing.T) {
		env.DB.TruncateAll(ctx)

		customer := env.DB.CreateTestPartyWithBalance(ctx, domain.PartyCustomer, "Asha Traders", decimal.NewFromInt(5000))
		account := env.DB.CreateTestBankAccount(ctx, "Current Account", decimal.NewFromInt(10000))

		req := dto.RecordPaymentRequest{
			PartyID:       customer.ID,
			Amount:        decimal.NewFromInt(2000),
			Date:          time.Now().UTC(),
			Method:        string(domain.MethodOnline),
			BankAccountID: &account.ID,
		}
		body, _ := json.Marshal(req)

		r := httptest.NewRequest(http.MethodPost, "/api/v1/payments", bytes.NewReader(body))
		r.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		env.Router.ServeHTTP(w, r)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected status %d, got %d: %s", http.StatusCreated, w.Code, w.Body.String())
		}

		if balance := env.DB.AccountBalance(ctx, account.ID); !balance.Equal(decimal.NewFromInt(12000)) {
			t.Fatalf("expected account balance 12000, got %s", balance)
		}
	})

	t.Run("online payment without a bank reference is rejected", func(t *testing.T) {
		env.DB.TruncateAll(ctx)

		customer := env.DB.CreateTestParty(ctx, domain.PartyCustomer, "Asha Traders")

		req := dto.RecordPaymentRequest{
			PartyID: customer.ID,
			Amount:  decimal.NewFromInt(2000),
			Date:    time.Now().UTC(),
			Method:  string(domain.MethodOnline),
		}
		body, _ := json.Marshal(req)

		r := httptest.NewRequest(http.MethodPost, "/api/v1/payments", bytes.NewReader(body))
		r.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		env.Router.ServeHTTP(w, r)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected status %d, got %d: %s", http.StatusBadRequest, w.Code, w.Body.String())
		}
	})

	t.Run("dealer payment debits the bank account", func(t *testing.T) {
		env.DB.TruncateAll(ctx)

		dealer := env.DB.CreateTestPartyWithBalance(ctx, domain.PartyDealer, "Dealer Supply Co", decimal.NewFromInt(-5000))
		account := env.DB.CreateTestBankAccount(ctx, "Current Account", decimal.NewFromInt(10000))

		req := dto.RecordPaymentRequest{
			PartyID:       dealer.ID,
			Amount:        decimal.NewFromInt(3000),
			Date:          time.Now().UTC(),
			Method:        string(domain.MethodOnline),
			BankAccountID: &account.ID,
		}
		body, _ := json.Marshal(req)

		r := httptest.NewRequest(http.MethodPost, "/api/v1/payments", bytes.NewReader(body))
		r.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		env.Router.ServeHTTP(w, r)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected status %d, got %d: %s", http.StatusCreated, w.Code, w.Body.String())
		}

		var resp dto.EntryResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to parse response: %v", err)
		}
		if resp.Kind != string(domain.EntryDealerPayment) {
			t.Fatalf("expected dealer_payment entry, got %s", resp.Kind)
		}

		if balance := env.DB.AccountBalance(ctx, account.ID); !balance.Equal(decimal.NewFromInt(7000)) {
			t.Fatalf("expected account balance 7000, got %s", balance)
		}
	})

	t.Run("edit payment applies the difference", func(t *testing.T) {
		env.DB.TruncateAll(ctx)

		customer := env.DB.CreateTestPartyWithBalance(ctx, domain.PartyCustomer, "Asha Traders", decimal.NewFromInt(5000))

		recordReq := dto.RecordPaymentRequest{
			PartyID: customer.ID,
			Amount:  decimal.NewFromInt(2000),
			Date:    time.Now().UTC(),
			Method:  string(domain.MethodCash),
		}
		body, _ := json.Marshal(recordReq)

		r := httptest.NewRequest(http.MethodPost, "/api/v1/payments", bytes.NewReader(body))
		r.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		env.Router.ServeHTTP(w, r)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected status %d, got %d: %s", http.StatusCreated, w.Code, w.Body.String())
		}

		var recorded dto.EntryResponse
		if err := json.Unmarshal(w.Body.Bytes(), &recorded); err != nil {
			t.Fatalf("failed to parse response: %v", err)
		}

		editReq := dto.EditPaymentRequest{
			Amount: decimal.NewFromInt(3500),
			Date:   time.Now().UTC(),
			Method: string(domain.MethodCash),
		}
		body, _ = json.Marshal(editReq)

		r = httptest.NewRequest(http.MethodPut, "/api/v1/payments/"+recorded.ID, bytes.NewReader(body))
		r.Header.Set("Content-Type", "application/json")
		w = httptest.NewRecorder()
		env.Router.ServeHTTP(w, r)

		if w.Code != http.StatusOK {
			t.Fatalf("expected status %d, got %d: %s", http.StatusOK, w.Code, w.Body.String())
		}

		if balance := env.DB.PartyBalance(ctx, customer.ID); !balance.Equal(decimal.NewFromInt(1500)) {
			t.Fatalf("expected party balance 1500, got %s", balance)
		}
	})
}

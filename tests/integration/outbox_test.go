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

func TestOutboxEvents(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	t.Run("sale writes an outbox event in the same transaction", func(t *testing.T) {
		env.DB.TruncateAll(ctx)

		customer := env.DB.CreateTestParty(ctx, domain.PartyCustomer, "Asha Traders")
		battery := env.DB.CreateTestStockItem(ctx, domain.StockBattery, "Exide 150Ah", decimal.NewFromInt(5000), 10)

		req := dto.RecordSaleRequest{
			PartyID: customer.ID,
			Date:    time.Now().UTC(),
			Items: []dto.SaleLine{
				{StockItemID: battery.ID, Quantity: 1, UnitPrice: decimal.NewFromInt(5000)},
			},
			Method: string(domain.MethodCash),
		}
		body, _ := json.Marshal(req)

		r := httptest.NewRequest(http.MethodPost, "/api/v1/sales", bytes.NewReader(body))
		r.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		env.Router.ServeHTTP(w, r)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected status %d, got %d: %s", http.StatusCreated, w.Code, w.Body.String())
		}

		events, err := env.OutboxRepo.GetUnpublished(ctx, 10)
		if err != nil {
			t.Fatalf("failed to fetch unpublished events: %v", err)
		}

		if len(events) != 1 {
			t.Fatalf("expected 1 unpublished event, got %d", len(events))
		}
		if events[0].EventType != domain.EventTypeSaleRecorded {
			t.Fatalf("expected %s event, got %s", domain.EventTypeSaleRecorded, events[0].EventType)
		}
	})

	t.Run("rejected sale leaves no outbox event", func(t *testing.T) {
		env.DB.TruncateAll(ctx)

		customer := env.DB.CreateTestParty(ctx, domain.PartyCustomer, "Asha Traders")
		battery := env.DB.CreateTestStockItem(ctx, domain.StockBattery, "Exide 150Ah", decimal.NewFromInt(5000), 1)

		req := dto.RecordSaleRequest{
			PartyID: customer.ID,
			Date:    time.Now().UTC(),
			Items: []dto.SaleLine{
				{StockItemID: battery.ID, Quantity: 5, UnitPrice: decimal.NewFromInt(5000)},
			},
			Method: string(domain.MethodCash),
		}
		body, _ := json.Marshal(req)

		r := httptest.NewRequest(http.MethodPost, "/api/v1/sales", bytes.NewReader(body))
		r.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		env.Router.ServeHTTP(w, r)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected status %d, got %d: %s", http.StatusUnprocessableEntity, w.Code, w.Body.String())
		}

		events, err := env.OutboxRepo.GetUnpublished(ctx, 10)
		if err != nil {
			t.Fatalf("failed to fetch unpublished events: %v", err)
		}
		if len(events) != 0 {
			t.Fatalf("expected no unpublished events, got %d", len(events))
		}
	})

	t.Run("mark published removes the event from the unpublished set", func(t *testing.T) {
		env.DB.TruncateAll(ctx)

		customer := env.DB.CreateTestParty(ctx, domain.PartyCustomer, "Asha Traders")

		req := dto.RecordPaymentRequest{
			PartyID: customer.ID,
			Amount:  decimal.NewFromInt(100),
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

		events, err := env.OutboxRepo.GetUnpublished(ctx, 10)
		if err != nil {
			t.Fatalf("failed to fetch unpublished events: %v", err)
		}
		if len(events) != 1 {
			t.Fatalf("expected 1 unpublished event, got %d", len(events))
		}

		if err := env.OutboxRepo.MarkPublished(ctx, events[0].ID, time.Now().UTC()); err != nil {
			t.Fatalf("failed to mark event published: %v", err)
		}

		events, err = env.OutboxRepo.GetUnpublished(ctx, 10)
		if err != nil {
			t.Fatalf("failed to fetch unpublished events: %v", err)
		}
		if len(events) != 0 {
			t.Fatalf("expected no unpublished events after publishing, got %d", len(events))
		}
	})
}

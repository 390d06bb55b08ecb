package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/shopledger/internal/domain"
	"github.com/iho/shopledger/internal/usecase"
)

func seedCustomer(f *fixture, id string, balance int64) *domain.Party {
	party := &domain.Party{
		ID:      id,
		Kind:    domain.PartyCustomer,
		Name:    "Customer " + id,
		Balance: decimal.NewFromInt(balance),
		Status:  domain.PartyActive,
	}
	f.parties.Seed(party)
	return party
}

func seedDealer(f *fixture, id string, balance int64) *domain.Party {
	party := &domain.Party{
		ID:      id,
		Kind:    domain.PartyDealer,
		Name:    "Dealer " + id,
		Balance: decimal.NewFromInt(balance),
		Status:  domain.PartyActive,
	}
	f.parties.Seed(party)
	return party
}

func seedAccount(f *fixture, id string, balance int64) *domain.BankAccount {
	account := &domain.BankAccount{
		ID:      id,
		Title:   "Account " + id,
		Balance: decimal.NewFromInt(balance),
		Status:  domain.AccountActive,
	}
	f.banks.Seed(account)
	return account
}

func TestPaymentUseCase_RecordPayment(t *testing.T) {
	day := time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC)
	bankID := "bank-1"

	tests := []struct {
		name        string
		setup       func(f *fixture)
		input       usecase.RecordPaymentInput
		errorType   error
		wantKind    domain.EntryKind
		wantBalance int64
		wantBank    int64
	}{
		{
			name:  "customer cash payment reduces what the customer owes",
			setup: func(f *fixture) { seedCustomer(f, "cust-1", 5000) },
			input: usecase.RecordPaymentInput{
				PartyID: "cust-1",
				Amount:  decimal.NewFromInt(1500),
				Date:    day,
				Method:  domain.MethodCash,
			},
			wantKind:    domain.EntryPayment,
			wantBalance: 3500,
		},
		{
			name: "customer online payment credits the bank account",
			setup: func(f *fixture) {
				seedCustomer(f, "cust-1", 5000)
				seedAccount(f, bankID, 10000)
			},
			input: usecase.RecordPaymentInput{
				PartyID:       "cust-1",
				Amount:        decimal.NewFromInt(2000),
				Date:          day,
				Method:        domain.MethodOnline,
				BankAccountID: &bankID,
			},
			wantKind:    domain.EntryPayment,
			wantBalance: 3000,
			wantBank:    12000,
		},
		{
			name: "dealer online payment debits the bank account",
			setup: func(f *fixture) {
				seedDealer(f, "deal-1", 5000)
				seedAccount(f, bankID, 10000)
			},
			input: usecase.RecordPaymentInput{
				PartyID:       "deal-1",
				Amount:        decimal.NewFromInt(4000),
				Date:          day,
				Method:        domain.MethodOnline,
				BankAccountID: &bankID,
			},
			wantKind:    domain.EntryDealerPayment,
			wantBalance: 1000,
			wantBank:    6000,
		},
		{
			name: "dealer payment exceeding the bank balance is rejected",
			setup: func(f *fixture) {
				seedDealer(f, "deal-1", 50000)
				seedAccount(f, bankID, 3000)
			},
			input: usecase.RecordPaymentInput{
				PartyID:       "deal-1",
				Amount:        decimal.NewFromInt(4000),
				Date:          day,
				Method:        domain.MethodOnline,
				BankAccountID: &bankID,
			},
			errorType: domain.ErrInsufficientFunds,
		},
		{
			name:  "online payment without a bank account is rejected",
			setup: func(f *fixture) { seedCustomer(f, "cust-1", 5000) },
			input: usecase.RecordPaymentInput{
				PartyID: "cust-1",
				Amount:  decimal.NewFromInt(100),
				Date:    day,
				Method:  domain.MethodOnline,
			},
			errorType: domain.ErrMissingBankRef,
		},
		{
			name: "archived party is rejected",
			setup: func(f *fixture) {
				party := seedCustomer(f, "cust-1", 0)
				party.Status = domain.PartyArchived
			},
			input: usecase.RecordPaymentInput{
				PartyID: "cust-1",
				Amount:  decimal.NewFromInt(100),
				Date:    day,
				Method:  domain.MethodCash,
			},
			errorType: domain.ErrPartyArchived,
		},
		{
			name:  "zero amount is rejected",
			setup: func(f *fixture) { seedCustomer(f, "cust-1", 0) },
			input: usecase.RecordPaymentInput{
				PartyID: "cust-1",
				Amount:  decimal.Zero,
				Date:    day,
				Method:  domain.MethodCash,
			},
			errorType: domain.ErrInvalidAmount,
		},
		{
			name:  "unknown party is rejected",
			setup: func(f *fixture) {},
			input: usecase.RecordPaymentInput{
				PartyID: "nope",
				Amount:  decimal.NewFromInt(100),
				Date:    day,
				Method:  domain.MethodCash,
			},
			errorType: domain.ErrPartyNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			tt.setup(f)

			uc := usecase.NewPaymentUseCase(f.executor, f.idGen, f.cache)
			entry, err := uc.RecordPayment(context.Background(), tt.input)

			if tt.errorType != nil {
				if !errors.Is(err, tt.errorType) {
					t.Fatalf("expected %v, got %v", tt.errorType, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if entry.Kind != tt.wantKind {
				t.Errorf("expected kind %s, got %s", tt.wantKind, entry.Kind)
			}

			party, _ := f.parties.GetByID(context.Background(), tt.input.PartyID)
			if !party.Balance.Equal(decimal.NewFromInt(tt.wantBalance)) {
				t.Errorf("expected party balance %d, got %s", tt.wantBalance, party.Balance)
			}

			if tt.input.Method == domain.MethodOnline {
				account, _ := f.banks.GetAccountByID(context.Background(), bankID)
				if !account.Balance.Equal(decimal.NewFromInt(tt.wantBank)) {
					t.Errorf("expected bank balance %d, got %s", tt.wantBank, account.Balance)
				}
				txns := f.banks.Transactions(bankID)
				if len(txns) != 1 {
					t.Fatalf("expected 1 bank transaction, got %d", len(txns))
				}
				if !txns[0].BalanceAfter.Equal(account.Balance) {
					t.Errorf("transaction BalanceAfter %s does not match balance %s", txns[0].BalanceAfter, account.Balance)
				}
			}

			events := f.outbox.Events()
			if len(events) != 1 || events[0].EventType != domain.EventTypePaymentRecorded {
				t.Errorf("expected one payment.recorded event, got %v", events)
			}
		})
	}
}

func TestPaymentUseCase_RecordPayment_IdempotentReplay(t *testing.T) {
	f := newFixture()
	seedCustomer(f, "cust-1", 5000)

	uc := usecase.NewPaymentUseCase(f.executor, f.idGen, f.cache)
	input := usecase.RecordPaymentInput{
		PartyID:        "cust-1",
		Amount:         decimal.NewFromInt(1000),
		Date:           time.Now(),
		Method:         domain.MethodCash,
		IdempotencyKey: "key-1",
	}

	first, err := uc.RecordPayment(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	second, err := uc.RecordPayment(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error on replay: %v", err)
	}

	if second.ID != first.ID {
		t.Errorf("replay returned a different entry: %s vs %s", second.ID, first.ID)
	}

	party, _ := f.parties.GetByID(context.Background(), "cust-1")
	if !party.Balance.Equal(decimal.NewFromInt(4000)) {
		t.Errorf("replay moved the balance: %s", party.Balance)
	}
}

func TestPaymentUseCase_EditPayment(t *testing.T) {
	day := time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC)
	bankA := "bank-a"
	bankB := "bank-b"

	t.Run("cash amount change moves the balance by the difference", func(t *testing.T) {
		f := newFixture()
		party := seedCustomer(f, "cust-1", 5000)
		party.Balance = decimal.NewFromInt(4000) // after a 1000 payment
		f.entries.Seed(&domain.LedgerEntry{
			ID:      "e-1",
			PartyID: "cust-1",
			Kind:    domain.EntryPayment,
			Amount:  decimal.NewFromInt(1000),
			Method:  domain.MethodCash,
		})

		uc := usecase.NewPaymentUseCase(f.executor, f.idGen, f.cache)
		_, err := uc.EditPayment(context.Background(), "e-1", usecase.EditPaymentInput{
			Amount: decimal.NewFromInt(1500),
			Date:   day,
			Method: domain.MethodCash,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got, _ := f.parties.GetByID(context.Background(), "cust-1")
		if !got.Balance.Equal(decimal.NewFromInt(3500)) {
			t.Errorf("expected balance 3500, got %s", got.Balance)
		}
	})

	t.Run("same account gets a single net transaction", func(t *testing.T) {
		f := newFixture()
		seedCustomer(f, "cust-1", 4000)
		seedAccount(f, bankA, 11000) // includes the original 1000
		f.entries.Seed(&domain.LedgerEntry{
			ID:            "e-1",
			PartyID:       "cust-1",
			Kind:          domain.EntryPayment,
			Amount:        decimal.NewFromInt(1000),
			Method:        domain.MethodOnline,
			BankAccountID: &bankA,
		})

		uc := usecase.NewPaymentUseCase(f.executor, f.idGen, f.cache)
		_, err := uc.EditPayment(context.Background(), "e-1", usecase.EditPaymentInput{
			Amount:        decimal.NewFromInt(1600),
			Date:          day,
			Method:        domain.MethodOnline,
			BankAccountID: &bankA,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		account, _ := f.banks.GetAccountByID(context.Background(), bankA)
		if !account.Balance.Equal(decimal.NewFromInt(11600)) {
			t.Errorf("expected bank balance 11600, got %s", account.Balance)
		}
		if txns := f.banks.Transactions(bankA); len(txns) != 1 {
			t.Errorf("expected a single net transaction, got %d", len(txns))
		}
	})

	t.Run("switching accounts reverses the old and charges the new", func(t *testing.T) {
		f := newFixture()
		seedCustomer(f, "cust-1", 4000)
		seedAccount(f, bankA, 11000)
		seedAccount(f, bankB, 500)
		f.entries.Seed(&domain.LedgerEntry{
			ID:            "e-1",
			PartyID:       "cust-1",
			Kind:          domain.EntryPayment,
			Amount:        decimal.NewFromInt(1000),
			Method:        domain.MethodOnline,
			BankAccountID: &bankA,
		})

		uc := usecase.NewPaymentUseCase(f.executor, f.idGen, f.cache)
		_, err := uc.EditPayment(context.Background(), "e-1", usecase.EditPaymentInput{
			Amount:        decimal.NewFromInt(1000),
			Date:          day,
			Method:        domain.MethodOnline,
			BankAccountID: &bankB,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		a, _ := f.banks.GetAccountByID(context.Background(), bankA)
		b, _ := f.banks.GetAccountByID(context.Background(), bankB)
		if !a.Balance.Equal(decimal.NewFromInt(10000)) {
			t.Errorf("expected old account back at 10000, got %s", a.Balance)
		}
		if !b.Balance.Equal(decimal.NewFromInt(1500)) {
			t.Errorf("expected new account at 1500, got %s", b.Balance)
		}
	})

	t.Run("editing a sale entry is rejected", func(t *testing.T) {
		f := newFixture()
		seedCustomer(f, "cust-1", 4000)
		f.entries.Seed(&domain.LedgerEntry{
			ID:      "e-1",
			PartyID: "cust-1",
			Kind:    domain.EntrySale,
			Amount:  decimal.NewFromInt(1000),
			Method:  domain.MethodCash,
		})

		uc := usecase.NewPaymentUseCase(f.executor, f.idGen, f.cache)
		_, err := uc.EditPayment(context.Background(), "e-1", usecase.EditPaymentInput{
			Amount: decimal.NewFromInt(500),
			Date:   day,
			Method: domain.MethodCash,
		})
		if !errors.Is(err, domain.ErrInvalidEntryKind) {
			t.Fatalf("expected ErrInvalidEntryKind, got %v", err)
		}
	})
}

package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/iho/shopledger/internal/domain"
	"github.com/iho/shopledger/internal/usecase"
)

func TestPartyUseCase_CreateParty(t *testing.T) {
	tests := []struct {
		name      string
		input     usecase.CreatePartyInput
		errorType error
	}{
		{
			name:  "valid customer",
			input: usecase.CreatePartyInput{Kind: domain.PartyCustomer, Name: "Ravi Kumar", Phone: "+91 98765 43210"},
		},
		{
			name:  "valid dealer without phone",
			input: usecase.CreatePartyInput{Kind: domain.PartyDealer, Name: "Exide Distributors"},
		},
		{
			name:      "empty name",
			input:     usecase.CreatePartyInput{Kind: domain.PartyCustomer, Name: "   "},
			errorType: domain.ErrInvalidName,
		},
		{
			name:      "bad phone",
			input:     usecase.CreatePartyInput{Kind: domain.PartyCustomer, Name: "Ravi", Phone: "not-a-phone"},
			errorType: domain.ErrInvalidPhone,
		},
		{
			name:      "bad kind",
			input:     usecase.CreatePartyInput{Kind: "vendor", Name: "Ravi"},
			errorType: domain.ErrInvalidPartyKind,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			uc := usecase.NewPartyUseCase(f.executor, f.parties, f.idGen)

			party, err := uc.CreateParty(context.Background(), tt.input)

			if tt.errorType != nil {
				if !errors.Is(err, tt.errorType) {
					t.Fatalf("expected %v, got %v", tt.errorType, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if !party.Balance.IsZero() {
				t.Errorf("new party should start at zero, got %s", party.Balance)
			}
			if party.Status != domain.PartyActive {
				t.Errorf("new party should be active, got %s", party.Status)
			}

			stored, err := f.parties.GetByID(context.Background(), party.ID)
			if err != nil {
				t.Fatalf("party not persisted: %v", err)
			}
			if stored.Name != tt.input.Name {
				t.Errorf("expected name %q, got %q", tt.input.Name, stored.Name)
			}

			events := f.outbox.Events()
			if len(events) != 1 || events[0].EventType != domain.EventTypePartyCreated {
				t.Errorf("expected one party.created event, got %v", events)
			}
		})
	}
}

func TestPartyUseCase_ArchiveParty(t *testing.T) {
	t.Run("zero balance archives", func(t *testing.T) {
		f := newFixture()
		seedCustomer(f, "cust-1", 0)

		uc := usecase.NewPartyUseCase(f.executor, f.parties, f.idGen)
		if err := uc.ArchiveParty(context.Background(), "cust-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		party, _ := f.parties.GetByID(context.Background(), "cust-1")
		if party.Status != domain.PartyArchived {
			t.Errorf("expected archived, got %s", party.Status)
		}
	})

	t.Run("outstanding balance blocks archival", func(t *testing.T) {
		f := newFixture()
		seedCustomer(f, "cust-1", 500)

		uc := usecase.NewPartyUseCase(f.executor, f.parties, f.idGen)
		err := uc.ArchiveParty(context.Background(), "cust-1")
		if !errors.Is(err, domain.ErrBalanceNotZero) {
			t.Fatalf("expected ErrBalanceNotZero, got %v", err)
		}
	})

	t.Run("archiving twice is a no-op", func(t *testing.T) {
		f := newFixture()
		party := seedCustomer(f, "cust-1", 0)
		party.Status = domain.PartyArchived

		uc := usecase.NewPartyUseCase(f.executor, f.parties, f.idGen)
		if err := uc.ArchiveParty(context.Background(), "cust-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestPartyUseCase_UpdateParty(t *testing.T) {
	f := newFixture()
	seedCustomer(f, "cust-1", 1200)

	uc := usecase.NewPartyUseCase(f.executor, f.parties, f.idGen)
	updated, err := uc.UpdateParty(context.Background(), "cust-1", usecase.UpdatePartyInput{
		Name:    "Renamed",
		Phone:   "040-1234567",
		Address: "New Street 5",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if updated.Name != "Renamed" {
		t.Errorf("expected renamed party, got %q", updated.Name)
	}
	if !updated.Balance.Equal(decimal.NewFromInt(1200)) {
		t.Errorf("detail update touched the balance: %s", updated.Balance)
	}
}

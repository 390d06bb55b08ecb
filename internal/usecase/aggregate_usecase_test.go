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

func seedScrap(f *fixture, qty, value int64) *domain.AggregateStock {
	agg := &domain.AggregateStock{
		Resource: domain.ResourceScrap,
		Quantity: decimal.NewFromInt(qty),
		Value:    decimal.NewFromInt(value),
	}
	f.aggregates.Seed(agg)
	return agg
}

func TestAggregateUseCase_PurchaseAggregate(t *testing.T) {
	day := time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC)
	bankID := "bank-1"

	t.Run("cash purchase adds quantity and value", func(t *testing.T) {
		f := newFixture()
		seedScrap(f, 100, 8000)

		uc := usecase.NewAggregateUseCase(f.executor, f.aggregates, f.idGen)
		movement, err := uc.PurchaseAggregate(context.Background(), usecase.PurchaseAggregateInput{
			Resource: domain.ResourceScrap,
			Quantity: decimal.NewFromInt(25),
			Value:    decimal.NewFromInt(2000),
			Method:   domain.MethodCash,
			Date:     day,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if movement.Direction != domain.MovementPurchase {
			t.Errorf("expected purchase direction, got %s", movement.Direction)
		}

		agg, _ := f.aggregates.Get(context.Background(), domain.ResourceScrap)
		if !agg.Quantity.Equal(decimal.NewFromInt(125)) || !agg.Value.Equal(decimal.NewFromInt(10000)) {
			t.Errorf("unexpected totals: qty %s value %s", agg.Quantity, agg.Value)
		}
	})

	t.Run("online purchase debits the bank account", func(t *testing.T) {
		f := newFixture()
		seedScrap(f, 0, 0)
		seedAccount(f, bankID, 5000)

		uc := usecase.NewAggregateUseCase(f.executor, f.aggregates, f.idGen)
		_, err := uc.PurchaseAggregate(context.Background(), usecase.PurchaseAggregateInput{
			Resource:      domain.ResourceScrap,
			Quantity:      decimal.NewFromInt(10),
			Value:         decimal.NewFromInt(2000),
			Method:        domain.MethodOnline,
			BankAccountID: &bankID,
			Date:          day,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		account, _ := f.banks.GetAccountByID(context.Background(), bankID)
		if !account.Balance.Equal(decimal.NewFromInt(3000)) {
			t.Errorf("expected bank balance 3000, got %s", account.Balance)
		}
	})

	t.Run("online purchase without a bank account is rejected", func(t *testing.T) {
		f := newFixture()
		seedScrap(f, 0, 0)

		uc := usecase.NewAggregateUseCase(f.executor, f.aggregates, f.idGen)
		_, err := uc.PurchaseAggregate(context.Background(), usecase.PurchaseAggregateInput{
			Resource: domain.ResourceScrap,
			Quantity: decimal.NewFromInt(10),
			Value:    decimal.NewFromInt(2000),
			Method:   domain.MethodOnline,
			Date:     day,
		})
		if !errors.Is(err, domain.ErrMissingBankRef) {
			t.Fatalf("expected ErrMissingBankRef, got %v", err)
		}
	})
}

func TestAggregateUseCase_ConsumeAggregate(t *testing.T) {
	day := time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC)

	t.Run("consumption subtracts quantity and value", func(t *testing.T) {
		f := newFixture()
		seedScrap(f, 100, 8000)

		uc := usecase.NewAggregateUseCase(f.executor, f.aggregates, f.idGen)
		movement, err := uc.ConsumeAggregate(context.Background(), usecase.ConsumeAggregateInput{
			Resource: domain.ResourceScrap,
			Quantity: decimal.NewFromInt(40),
			Value:    decimal.NewFromInt(3200),
			Date:     day,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if movement.Direction != domain.MovementConsumption {
			t.Errorf("expected consumption direction, got %s", movement.Direction)
		}

		agg, _ := f.aggregates.Get(context.Background(), domain.ResourceScrap)
		if !agg.Quantity.Equal(decimal.NewFromInt(60)) || !agg.Value.Equal(decimal.NewFromInt(4800)) {
			t.Errorf("unexpected totals: qty %s value %s", agg.Quantity, agg.Value)
		}
	})

	t.Run("consuming more than held is rejected", func(t *testing.T) {
		f := newFixture()
		seedScrap(f, 10, 800)

		uc := usecase.NewAggregateUseCase(f.executor, f.aggregates, f.idGen)
		_, err := uc.ConsumeAggregate(context.Background(), usecase.ConsumeAggregateInput{
			Resource: domain.ResourceScrap,
			Quantity: decimal.NewFromInt(11),
			Value:    decimal.NewFromInt(900),
			Date:     day,
		})
		if !errors.Is(err, domain.ErrInsufficientScraps) {
			t.Fatalf("expected ErrInsufficientScraps, got %v", err)
		}
	})
}

package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/shopledger/internal/domain"
	"github.com/iho/shopledger/internal/usecase"
)

func TestReconciliationUseCase_ReconcileParty(t *testing.T) {
	f := newFixture()
	seedCustomer(f, "cust-1", 1200)
	f.entries.Seed(&domain.LedgerEntry{
		ID: "e-1", PartyID: "cust-1", Kind: domain.EntrySale,
		EntryDate: time.Now(), Amount: decimal.NewFromInt(2000), Method: domain.MethodCash,
	})
	f.entries.Seed(&domain.LedgerEntry{
		ID: "e-2", PartyID: "cust-1", Kind: domain.EntryPayment,
		EntryDate: time.Now(), Amount: decimal.NewFromInt(800), Method: domain.MethodCash,
	})

	uc := usecase.NewReconciliationUseCase(f.parties, f.entries, f.banks, f.aggregates)

	result, err := uc.ReconcileParty(context.Background(), "cust-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.IsReconciled {
		t.Errorf("consistent party reported broken: recorded %s calculated %s", result.RecordedBalance, result.CalculatedBalance)
	}
}

func TestReconciliationUseCase_ReconcileAccount(t *testing.T) {
	f := newFixture()
	account := seedAccount(f, "bank-1", 7000)
	ctx := context.Background()
	f.banks.CreateTransaction(ctx, nil, &domain.BankTransaction{
		ID: "t-1", AccountID: "bank-1", Direction: domain.TxnCredit, Amount: decimal.NewFromInt(10000),
	})
	f.banks.CreateTransaction(ctx, nil, &domain.BankTransaction{
		ID: "t-2", AccountID: "bank-1", Direction: domain.TxnDebit, Amount: decimal.NewFromInt(3000),
	})

	uc := usecase.NewReconciliationUseCase(f.parties, f.entries, f.banks, f.aggregates)

	result, err := uc.ReconcileAccount(ctx, "bank-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.IsReconciled {
		t.Errorf("consistent account reported broken: %s vs %s", result.RecordedBalance, result.CalculatedBalance)
	}

	// A balance mutated outside the transaction path must be caught.
	account.Balance = decimal.NewFromInt(9999)
	result, err = uc.ReconcileAccount(ctx, "bank-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IsReconciled {
		t.Error("drifted account balance not detected")
	}
	if !result.Difference.Equal(decimal.NewFromInt(2999)) {
		t.Errorf("expected difference 2999, got %s", result.Difference)
	}
}

func TestReconciliationUseCase_GenerateReport(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	seedCustomer(f, "cust-1", 1000)
	f.entries.Seed(&domain.LedgerEntry{
		ID: "e-1", PartyID: "cust-1", Kind: domain.EntrySale,
		EntryDate: time.Now(), Amount: decimal.NewFromInt(1000), Method: domain.MethodCash,
	})

	// Dealer whose snapshot drifted from its entries.
	seedDealer(f, "deal-1", 500)

	seedAccount(f, "bank-1", 0)
	seedScrap(f, 0, 0)
	f.aggregates.Seed(&domain.AggregateStock{Resource: domain.ResourceAcid})

	uc := usecase.NewReconciliationUseCase(f.parties, f.entries, f.banks, f.aggregates)

	report, err := uc.GenerateReport(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Two parties, one account, two aggregates.
	if report.TotalChecked != 5 {
		t.Errorf("expected 5 checks, got %d", report.TotalChecked)
	}
	if len(report.Discrepancies) != 1 {
		t.Fatalf("expected 1 discrepancy, got %d", len(report.Discrepancies))
	}
	if report.Discrepancies[0].ID != "deal-1" {
		t.Errorf("expected deal-1 flagged, got %s", report.Discrepancies[0].ID)
	}
}

package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/shopledger/internal/domain"
	"github.com/iho/shopledger/internal/usecase"
)

func TestLedgerUseCase_GetStatement(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2025, 11, d, 0, 0, 0, 0, time.UTC)
	}

	f := newFixture()
	seedCustomer(f, "cust-1", 1200) // 2000 sale - 800 payment
	f.entries.Seed(&domain.LedgerEntry{
		ID: "e-1", PartyID: "cust-1", Kind: domain.EntrySale,
		EntryDate: day(1), Amount: decimal.NewFromInt(2000), Method: domain.MethodCash,
	})
	f.entries.Seed(&domain.LedgerEntry{
		ID: "e-2", PartyID: "cust-1", Kind: domain.EntryPayment,
		EntryDate: day(2), Amount: decimal.NewFromInt(800), Method: domain.MethodCash,
	})

	uc := usecase.NewLedgerUseCase(f.parties, f.entries, f.cache)
	stmt, err := uc.GetStatement(context.Background(), "cust-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(stmt.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(stmt.Rows))
	}

	// Most recent first; its running balance must equal the snapshot.
	if stmt.Rows[0].EntryID != "e-2" {
		t.Errorf("expected newest entry first, got %s", stmt.Rows[0].EntryID)
	}
	if !stmt.Rows[0].Balance.Equal(decimal.NewFromInt(1200)) {
		t.Errorf("latest row balance %s does not reproduce snapshot 1200", stmt.Rows[0].Balance)
	}
	if !stmt.Rows[1].Balance.Equal(decimal.NewFromInt(2000)) {
		t.Errorf("expected balance 2000 after the sale, got %s", stmt.Rows[1].Balance)
	}

	if !stmt.TotalDebits.Equal(decimal.NewFromInt(2000)) || !stmt.TotalCredits.Equal(decimal.NewFromInt(800)) {
		t.Errorf("unexpected totals: debits %s credits %s", stmt.TotalDebits, stmt.TotalCredits)
	}
}

func TestLedgerUseCase_GetStatement_CacheHit(t *testing.T) {
	f := newFixture()
	seedCustomer(f, "cust-1", 1000)
	f.entries.Seed(&domain.LedgerEntry{
		ID: "e-1", PartyID: "cust-1", Kind: domain.EntrySale,
		EntryDate: time.Now(), Amount: decimal.NewFromInt(1000), Method: domain.MethodCash,
	})

	uc := usecase.NewLedgerUseCase(f.parties, f.entries, f.cache)

	if _, err := uc.GetStatement(context.Background(), "cust-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Second call must not hit the repositories.
	f.entries.ListByPartyFunc = func(ctx context.Context, partyID string) ([]*domain.LedgerEntry, error) {
		t.Error("cache miss on second call")
		return nil, nil
	}

	stmt, err := uc.GetStatement(context.Background(), "cust-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stmt.Rows) != 1 {
		t.Errorf("cached statement lost rows: %d", len(stmt.Rows))
	}
}

func TestLedgerUseCase_VerifyStatement(t *testing.T) {
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

	uc := usecase.NewLedgerUseCase(f.parties, f.entries, f.cache)

	ok, replayed, err := uc.VerifyStatement(context.Background(), "cust-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Errorf("consistent ledger reported as broken, replayed %s", replayed)
	}

	// Corrupt the snapshot and verify the check trips.
	party, _ := f.parties.GetByID(context.Background(), "cust-1")
	party.Balance = decimal.NewFromInt(9999)

	ok, replayed, err = uc.VerifyStatement(context.Background(), "cust-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("corrupted snapshot not detected")
	}
	if !replayed.Equal(decimal.NewFromInt(1200)) {
		t.Errorf("expected replayed balance 1200, got %s", replayed)
	}
}

package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func day(n int) time.Time {
	return time.Date(2026, 3, n, 0, 0, 0, 0, time.UTC)
}

func TestRecomputeStatement(t *testing.T) {
	// Sale 1000 on day 1, payment 400 on day 2, sale 200 on day 3.
	// Consistent snapshot: 1000 - 400 + 200 = 800.
	entries := []*LedgerEntry{
		{ID: "e3", Kind: EntrySale, EntryDate: day(3), Amount: decimal.NewFromInt(200)},
		{ID: "e1", Kind: EntrySale, EntryDate: day(1), Amount: decimal.NewFromInt(1000)},
		{ID: "e2", Kind: EntryPayment, EntryDate: day(2), Amount: decimal.NewFromInt(400)},
	}

	rows := RecomputeStatement(decimal.NewFromInt(800), entries)

	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}

	// Most recent first.
	if rows[0].EntryID != "e3" || rows[1].EntryID != "e2" || rows[2].EntryID != "e1" {
		t.Errorf("unexpected row order: %s %s %s", rows[0].EntryID, rows[1].EntryID, rows[2].EntryID)
	}

	// Earliest entry's balance equals its own delta applied to the derived
	// starting balance (here starting balance is zero).
	if !rows[2].Balance.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("earliest row balance = %s, want 1000", rows[2].Balance)
	}

	if !rows[1].Balance.Equal(decimal.NewFromInt(600)) {
		t.Errorf("middle row balance = %s, want 600", rows[1].Balance)
	}

	// Final (most recent) row reproduces the snapshot.
	if !rows[0].Balance.Equal(decimal.NewFromInt(800)) {
		t.Errorf("last row balance = %s, want snapshot 800", rows[0].Balance)
	}
}

func TestRecomputeStatement_NonZeroStart(t *testing.T) {
	// Snapshot 500 with a single payment of 300 implies a starting balance
	// of 800 before the entry.
	entries := []*LedgerEntry{
		{ID: "e1", Kind: EntryPayment, EntryDate: day(1), Amount: decimal.NewFromInt(300)},
	}

	rows := RecomputeStatement(decimal.NewFromInt(500), entries)

	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}

	if !rows[0].Balance.Equal(decimal.NewFromInt(500)) {
		t.Errorf("row balance = %s, want 500", rows[0].Balance)
	}

	if !rows[0].Credit.Equal(decimal.NewFromInt(300)) {
		t.Errorf("row credit = %s, want 300", rows[0].Credit)
	}
}

func TestRecomputeStatement_Empty(t *testing.T) {
	rows := RecomputeStatement(decimal.NewFromInt(42), nil)
	if len(rows) != 0 {
		t.Errorf("expected no rows, got %d", len(rows))
	}
}

func TestRecomputeStatement_SameDayTiebreak(t *testing.T) {
	entries := []*LedgerEntry{
		{ID: "b", Kind: EntrySale, EntryDate: day(1), Amount: decimal.NewFromInt(50)},
		{ID: "a", Kind: EntrySale, EntryDate: day(1), Amount: decimal.NewFromInt(100)},
	}

	rows := RecomputeStatement(decimal.NewFromInt(150), entries)

	if rows[1].EntryID != "a" {
		t.Errorf("expected id tiebreak to order a first, got %s", rows[1].EntryID)
	}

	if !rows[0].Balance.Equal(decimal.NewFromInt(150)) {
		t.Errorf("final balance = %s, want 150", rows[0].Balance)
	}
}

func TestReplayBalance(t *testing.T) {
	entries := []*LedgerEntry{
		{Kind: EntrySale, Amount: decimal.NewFromInt(1000)},
		{Kind: EntryPayment, Amount: decimal.NewFromInt(400)},
		{Kind: EntryPurchase, Amount: decimal.NewFromInt(250)},
		{Kind: EntryDealerPayment, Amount: decimal.NewFromInt(100)},
	}

	got := ReplayBalance(entries)
	want := decimal.NewFromInt(750)

	if !got.Equal(want) {
		t.Errorf("ReplayBalance = %s, want %s", got, want)
	}
}

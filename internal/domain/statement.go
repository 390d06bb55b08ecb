package domain

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// StatementRow is one displayable ledger line with the party's running
// balance immediately after the entry.
type StatementRow struct {
	EntryID   string
	Date      time.Time
	Kind      EntryKind
	Reference string
	Debit     decimal.Decimal
	Credit    decimal.Decimal
	Balance   decimal.Decimal
}

// RecomputeStatement derives per-row running balances from the party's
// current balance snapshot and the full set of its entries, in any order.
//
// The balance before the earliest entry is obtained by un-replaying every
// entry from the snapshot: starting = current - totalDebits + totalCredits.
// Walking forward from there reproduces the snapshot on the last row if and
// only if the snapshot and the entry set are mutually consistent.
//
// Rows are returned most-recent-first for display.
func RecomputeStatement(currentBalance decimal.Decimal, entries []*LedgerEntry) []StatementRow {
	ordered := make([]*LedgerEntry, len(entries))
	copy(ordered, entries)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].EntryDate.Equal(ordered[j].EntryDate) {
			return ordered[i].ID < ordered[j].ID
		}
		return ordered[i].EntryDate.Before(ordered[j].EntryDate)
	})

	totalDebits := decimal.Zero
	totalCredits := decimal.Zero
	for _, e := range ordered {
		if e.IsDebit() {
			totalDebits = totalDebits.Add(e.Amount)
		} else {
			totalCredits = totalCredits.Add(e.Amount)
		}
	}

	running := currentBalance.Sub(totalDebits).Add(totalCredits)

	rows := make([]StatementRow, 0, len(ordered))
	for _, e := range ordered {
		row := StatementRow{
			EntryID:   e.ID,
			Date:      e.EntryDate,
			Kind:      e.Kind,
			Reference: e.Reference,
			Debit:     decimal.Zero,
			Credit:    decimal.Zero,
		}

		if e.IsDebit() {
			row.Debit = e.Amount
			running = running.Add(e.Amount)
		} else {
			row.Credit = e.Amount
			running = running.Sub(e.Amount)
		}

		row.Balance = running
		rows = append(rows, row)
	}

	for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
		rows[i], rows[j] = rows[j], rows[i]
	}

	return rows
}

// ReplayBalance computes a party balance purely from its entries, for
// verification against the stored snapshot.
func ReplayBalance(entries []*LedgerEntry) decimal.Decimal {
	balance := decimal.Zero
	for _, e := range entries {
		balance = balance.Add(e.SignedAmount())
	}
	return balance
}

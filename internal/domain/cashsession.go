package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cash denominations counted when opening and closing the drawer.
var Denominations = []int64{5000, 1000, 500, 100, 50, 20, 10, 5, 2, 1}

// DenominationCount maps a note/coin value to how many were counted.
type DenominationCount map[int64]int64

// Total returns the cash value of the count.
func (d DenominationCount) Total() decimal.Decimal {
	total := decimal.Zero
	for value, count := range d {
		total = total.Add(decimal.NewFromInt(value).Mul(decimal.NewFromInt(count)))
	}
	return total
}

// CashSessionPhase is the drawer lifecycle. Sessions are never persisted.
type CashSessionPhase string

const (
	SessionNotStarted CashSessionPhase = "not_started"
	SessionCounting   CashSessionPhase = "counting"
	SessionClosed     CashSessionPhase = "closed"
)

// DayCashTotals aggregates the cash-moving activity of one day. CashReceived,
// CashToDealers and CashForScrap are derived from the ledger; CashExpenses
// and BankDeposits come from screens outside the data model and are entered
// with the counts.
type DayCashTotals struct {
	CashReceived  decimal.Decimal
	CashToDealers decimal.Decimal
	CashForScrap  decimal.Decimal
	CashExpenses  decimal.Decimal
	BankDeposits  decimal.Decimal
}

// ExpectedClosing computes the drawer balance the day's ledger implies.
func (t DayCashTotals) ExpectedClosing(opening decimal.Decimal) decimal.Decimal {
	return opening.
		Add(t.CashReceived).
		Sub(t.CashToDealers).
		Sub(t.CashForScrap).
		Sub(t.CashExpenses).
		Sub(t.BankDeposits)
}

// CashReconciliation compares the counted drawer against the expected value.
type CashReconciliation struct {
	Date       time.Time
	Phase      CashSessionPhase
	Opening    decimal.Decimal
	Expected   decimal.Decimal
	Counted    decimal.Decimal
	Difference decimal.Decimal
	Totals     DayCashTotals
}

// ReconcileCash derives the expected closing balance from the opening count
// and the day's totals, and the signed difference against the closing count.
// A positive difference means surplus cash in the drawer.
func ReconcileCash(date time.Time, opening, closing DenominationCount, totals DayCashTotals) CashReconciliation {
	openingTotal := opening.Total()
	countedTotal := closing.Total()
	expected := totals.ExpectedClosing(openingTotal)

	return CashReconciliation{
		Date:       date,
		Phase:      SessionClosed,
		Opening:    openingTotal,
		Expected:   expected,
		Counted:    countedTotal,
		Difference: countedTotal.Sub(expected),
		Totals:     totals,
	}
}

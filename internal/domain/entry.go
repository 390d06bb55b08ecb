package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryKind identifies what a ledger entry records. The debit/credit polarity
// against the party is implied by the kind.
type EntryKind string

const (
	EntrySale          EntryKind = "sale"
	EntryPurchase      EntryKind = "purchase"
	EntryPayment       EntryKind = "payment"
	EntryDealerPayment EntryKind = "dealer_payment"
)

// PaymentMethod records how money moved for an entry.
type PaymentMethod string

const (
	MethodCash   PaymentMethod = "cash"
	MethodOnline PaymentMethod = "online"
)

// LedgerEntry is a single debit or credit against a party.
type LedgerEntry struct {
	ID             string
	PartyID        string
	Kind           EntryKind
	EntryDate      time.Time
	Amount         decimal.Decimal
	Method         PaymentMethod
	BankAccountID  *string
	Reference      string
	IdempotencyKey string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsDebit reports whether the entry debits the party (increases what the
// party owes under the party's sign convention).
func (e *LedgerEntry) IsDebit() bool {
	return e.Kind == EntrySale || e.Kind == EntryPurchase
}

// SignedAmount returns the entry amount signed by polarity: debits positive,
// credits negative.
func (e *LedgerEntry) SignedAmount() decimal.Decimal {
	if e.IsDebit() {
		return e.Amount
	}
	return e.Amount.Neg()
}

// Validate checks the entry fields that do not depend on other documents.
func (e *LedgerEntry) Validate() error {
	switch e.Kind {
	case EntrySale, EntryPurchase, EntryPayment, EntryDealerPayment:
	default:
		return ErrInvalidEntryKind
	}

	if e.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	if e.Method == MethodOnline && e.BankAccountID == nil {
		return ErrMissingBankRef
	}

	return nil
}

package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountStatus is the bank-account tombstone.
type AccountStatus string

const (
	AccountActive   AccountStatus = "active"
	AccountArchived AccountStatus = "archived"
)

// BankAccount holds a shop bank or mobile-wallet balance. Its balance must
// equal the signed sum of its BankTransactions at all times; every balance
// mutation writes a BankTransaction in the same atomic unit.
type BankAccount struct {
	ID            string
	Title         string
	BankName      string
	AccountNumber string
	Balance       decimal.Decimal
	Status        AccountStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ValidateDebit checks if the account can be debited by amount.
func (a *BankAccount) ValidateDebit(amount decimal.Decimal) error {
	if a.Balance.Sub(amount).IsNegative() {
		return ErrInsufficientFunds
	}
	return nil
}

// ApplyDebit returns the balance after a debit.
func (a *BankAccount) ApplyDebit(amount decimal.Decimal) decimal.Decimal {
	return a.Balance.Sub(amount)
}

// ApplyCredit returns the balance after a credit.
func (a *BankAccount) ApplyCredit(amount decimal.Decimal) decimal.Decimal {
	return a.Balance.Add(amount)
}

// CanArchive reports whether the account can be archived.
func (a *BankAccount) CanArchive() error {
	if !a.Balance.IsZero() {
		return ErrBalanceNotZero
	}
	return nil
}

// TxnDirection is the polarity of a bank transaction.
type TxnDirection string

const (
	TxnCredit TxnDirection = "credit"
	TxnDebit  TxnDirection = "debit"
)

// BankTransaction is one movement on a bank account, with the denormalized
// running balance at write time.
type BankTransaction struct {
	ID            string
	AccountID     string
	TxnDate       time.Time
	Description   string
	Direction     TxnDirection
	Amount        decimal.Decimal
	BalanceAfter  decimal.Decimal
	LedgerEntryID *string
	CreatedAt     time.Time
}

// SignedAmount returns the transaction amount signed by direction: credits
// positive, debits negative.
func (t *BankTransaction) SignedAmount() decimal.Decimal {
	if t.Direction == TxnCredit {
		return t.Amount
	}
	return t.Amount.Neg()
}

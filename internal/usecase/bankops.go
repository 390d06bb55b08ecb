package usecase

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/shopledger/internal/domain"
)

// stageBankDelta applies a signed delta to a bank account inside a plan and
// appends the matching BankTransaction row carrying the denormalized running
// balance. A delta that would take the account negative aborts with
// ErrInsufficientFunds before anything is staged.
func stageBankDelta(
	plan *Plan,
	idGen IDGenerator,
	account *domain.BankAccount,
	delta decimal.Decimal,
	date time.Time,
	description string,
	ledgerEntryID *string,
	now time.Time,
) error {
	if delta.IsZero() {
		return nil
	}

	newBalance := account.Balance.Add(delta)
	if newBalance.IsNegative() {
		return domain.ErrInsufficientFunds
	}

	direction := domain.TxnCredit
	amount := delta
	if delta.IsNegative() {
		direction = domain.TxnDebit
		amount = delta.Neg()
	}

	account.UpdatedAt = now
	plan.SetBankBalance(account, newBalance)
	plan.AppendBankTransaction(&domain.BankTransaction{
		ID:            idGen.Generate(),
		AccountID:     account.ID,
		TxnDate:       date,
		Description:   description,
		Direction:     direction,
		Amount:        amount,
		BalanceAfter:  newBalance,
		LedgerEntryID: ledgerEntryID,
		CreatedAt:     now,
	})

	// Keep the in-memory copy consistent for any later delta in the same
	// plan.
	account.Balance = newBalance

	return nil
}

package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/shopledger/internal/domain"
)

// CashSessionUseCase reconciles the physical cash drawer against the day's
// ledger. Sessions are ephemeral: the caller supplies both counts and the
// result is computed, returned, and not persisted.
type CashSessionUseCase struct {
	entryRepo EntryRepository
	aggRepo   AggregateRepository
}

// NewCashSessionUseCase creates a new CashSessionUseCase.
func NewCashSessionUseCase(entryRepo EntryRepository, aggRepo AggregateRepository) *CashSessionUseCase {
	return &CashSessionUseCase{
		entryRepo: entryRepo,
		aggRepo:   aggRepo,
	}
}

// ReconcileInput represents input for closing a cash session.
type ReconcileInput struct {
	Date         time.Time
	Opening      domain.DenominationCount
	Closing      domain.DenominationCount
	CashExpenses decimal.Decimal
	BankDeposits decimal.Decimal
}

// Reconcile derives the day's cash-moving totals from the ledger, combines
// them with the expense and deposit figures entered at the counter, and
// compares the expected drawer against the closing count.
func (uc *CashSessionUseCase) Reconcile(ctx context.Context, input ReconcileInput) (*domain.CashReconciliation, error) {
	if input.CashExpenses.IsNegative() || input.BankDeposits.IsNegative() {
		return nil, domain.ErrInvalidAmount
	}

	totals, err := uc.DayTotals(ctx, input.Date)
	if err != nil {
		return nil, err
	}

	totals.CashExpenses = input.CashExpenses
	totals.BankDeposits = input.BankDeposits

	result := domain.ReconcileCash(input.Date, input.Opening, input.Closing, totals)
	return &result, nil
}

// DayTotals derives the ledger-sourced cash totals for one day: cash received
// from customers, cash paid to dealers, and cash paid for bulk purchases.
func (uc *CashSessionUseCase) DayTotals(ctx context.Context, day time.Time) (domain.DayCashTotals, error) {
	cashReceived, cashToDealers, err := uc.entryRepo.DayCashTotals(ctx, day)
	if err != nil {
		return domain.DayCashTotals{}, err
	}

	cashForScrap, err := uc.aggRepo.DayCashForScrap(ctx, day)
	if err != nil {
		return domain.DayCashTotals{}, err
	}

	return domain.DayCashTotals{
		CashReceived:  cashReceived,
		CashToDealers: cashToDealers,
		CashForScrap:  cashForScrap,
		CashExpenses:  decimal.Zero,
		BankDeposits:  decimal.Zero,
	}, nil
}

package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/shopledger/internal/domain"
)

// reconcileScanLimit bounds full-table reconciliation scans.
const reconcileScanLimit = 10000

// ReconciliationUseCase verifies that every stored balance snapshot still
// equals the replay of the records that caused it. A discrepancy means a past
// write bypassed the transaction path or a record was mutated in place.
type ReconciliationUseCase struct {
	partyRepo PartyRepository
	entryRepo EntryRepository
	bankRepo  BankRepository
	aggRepo   AggregateRepository
}

// NewReconciliationUseCase creates a new ReconciliationUseCase.
func NewReconciliationUseCase(
	partyRepo PartyRepository,
	entryRepo EntryRepository,
	bankRepo BankRepository,
	aggRepo AggregateRepository,
) *ReconciliationUseCase {
	return &ReconciliationUseCase{
		partyRepo: partyRepo,
		entryRepo: entryRepo,
		bankRepo:  bankRepo,
		aggRepo:   aggRepo,
	}
}

// ReconciliationResult is the verdict for one balance-carrying record.
type ReconciliationResult struct {
	Subject           string
	ID                string
	RecordedBalance   decimal.Decimal
	CalculatedBalance decimal.Decimal
	Difference        decimal.Decimal
	IsReconciled      bool
	CheckedAt         time.Time
}

// ReconcileParty replays a party's entries and compares with the snapshot.
func (uc *ReconciliationUseCase) ReconcileParty(ctx context.Context, partyID string) (*ReconciliationResult, error) {
	party, err := uc.partyRepo.GetByID(ctx, partyID)
	if err != nil {
		return nil, err
	}

	entries, err := uc.entryRepo.ListByParty(ctx, partyID)
	if err != nil {
		return nil, err
	}

	replayed := domain.ReplayBalance(entries)
	return newResult("party", party.ID, party.Balance, replayed), nil
}

// ReconcileAccount sums a bank account's transactions and compares with the
// snapshot.
func (uc *ReconciliationUseCase) ReconcileAccount(ctx context.Context, accountID string) (*ReconciliationResult, error) {
	account, err := uc.bankRepo.GetAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	calculated, err := uc.bankRepo.SumTransactions(ctx, accountID)
	if err != nil {
		return nil, err
	}

	return newResult("bank_account", account.ID, account.Balance, calculated), nil
}

// ReconcileAggregate replays a resource's movements and compares with the
// singleton's quantity.
func (uc *ReconciliationUseCase) ReconcileAggregate(ctx context.Context, resource domain.AggregateResource) (*ReconciliationResult, error) {
	agg, err := uc.aggRepo.Get(ctx, resource)
	if err != nil {
		return nil, err
	}

	quantity, _, err := uc.aggRepo.SumMovements(ctx, resource)
	if err != nil {
		return nil, err
	}

	return newResult("aggregate_stock", string(agg.Resource), agg.Quantity, quantity), nil
}

// ReconciliationReport is the full-system verdict.
type ReconciliationReport struct {
	TotalChecked  int
	Reconciled    int
	Discrepancies []*ReconciliationResult
	CheckedAt     time.Time
}

// GenerateReport reconciles every party, bank account, and aggregate resource
// in the system.
func (uc *ReconciliationUseCase) GenerateReport(ctx context.Context) (*ReconciliationReport, error) {
	report := &ReconciliationReport{
		Discrepancies: make([]*ReconciliationResult, 0),
		CheckedAt:     time.Now().UTC(),
	}

	for _, kind := range []domain.PartyKind{domain.PartyCustomer, domain.PartyDealer} {
		parties, err := uc.partyRepo.List(ctx, kind, reconcileScanLimit, 0)
		if err != nil {
			return nil, err
		}

		for _, party := range parties {
			result, err := uc.ReconcileParty(ctx, party.ID)
			if err != nil {
				return nil, fmt.Errorf("failed to reconcile party %s: %w", party.ID, err)
			}
			report.add(result)
		}
	}

	accounts, err := uc.bankRepo.ListAccounts(ctx, reconcileScanLimit, 0)
	if err != nil {
		return nil, err
	}

	for _, account := range accounts {
		result, err := uc.ReconcileAccount(ctx, account.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to reconcile account %s: %w", account.ID, err)
		}
		report.add(result)
	}

	for _, resource := range []domain.AggregateResource{domain.ResourceScrap, domain.ResourceAcid} {
		result, err := uc.ReconcileAggregate(ctx, resource)
		if err != nil {
			return nil, fmt.Errorf("failed to reconcile aggregate %s: %w", resource, err)
		}
		report.add(result)
	}

	return report, nil
}

func (r *ReconciliationReport) add(result *ReconciliationResult) {
	r.TotalChecked++
	if result.IsReconciled {
		r.Reconciled++
	} else {
		r.Discrepancies = append(r.Discrepancies, result)
	}
}

func newResult(subject, id string, recorded, calculated decimal.Decimal) *ReconciliationResult {
	return &ReconciliationResult{
		Subject:           subject,
		ID:                id,
		RecordedBalance:   recorded,
		CalculatedBalance: calculated,
		Difference:        recorded.Sub(calculated),
		IsReconciled:      recorded.Equal(calculated),
		CheckedAt:         time.Now().UTC(),
	}
}

package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/shopledger/internal/domain"
)

// Statement is a party's full ledger view: every entry with running balances,
// plus the period totals.
type Statement struct {
	PartyID      string               `json:"party_id"`
	PartyName    string               `json:"party_name"`
	Balance      decimal.Decimal      `json:"balance"`
	TotalDebits  decimal.Decimal      `json:"total_debits"`
	TotalCredits decimal.Decimal      `json:"total_credits"`
	Rows         []domain.StatementRow `json:"rows"`
	GeneratedAt  time.Time            `json:"generated_at"`
}

// LedgerUseCase produces party statements. Running balances are recomputed
// from the entry set on every build rather than stored, so a statement can
// never disagree with its own rows.
type LedgerUseCase struct {
	partyRepo PartyRepository
	entryRepo EntryRepository
	cache     Cache
}

// NewLedgerUseCase creates a new LedgerUseCase.
func NewLedgerUseCase(partyRepo PartyRepository, entryRepo EntryRepository, cache Cache) *LedgerUseCase {
	return &LedgerUseCase{
		partyRepo: partyRepo,
		entryRepo: entryRepo,
		cache:     cache,
	}
}

// GetStatement builds the statement for a party, serving from cache when the
// cached copy is still fresh. Every write against the party invalidates the
// cache, so a hit is never stale.
func (uc *LedgerUseCase) GetStatement(ctx context.Context, partyID string) (*Statement, error) {
	key := statementCacheKey(partyID)

	if cached, err := uc.cache.Get(ctx, key); err == nil && cached != nil {
		var stmt Statement
		if err := json.Unmarshal(cached, &stmt); err == nil {
			return &stmt, nil
		}
		// Unreadable cache entries are dropped and rebuilt.
		uc.cache.Delete(ctx, key)
	}

	party, err := uc.partyRepo.GetByID(ctx, partyID)
	if err != nil {
		return nil, err
	}

	entries, err := uc.entryRepo.ListByParty(ctx, partyID)
	if err != nil {
		return nil, err
	}

	totalDebits := decimal.Zero
	totalCredits := decimal.Zero
	for _, e := range entries {
		if e.IsDebit() {
			totalDebits = totalDebits.Add(e.Amount)
		} else {
			totalCredits = totalCredits.Add(e.Amount)
		}
	}

	stmt := &Statement{
		PartyID:      party.ID,
		PartyName:    party.Name,
		Balance:      party.Balance,
		TotalDebits:  totalDebits,
		TotalCredits: totalCredits,
		Rows:         domain.RecomputeStatement(party.Balance, entries),
		GeneratedAt:  time.Now().UTC(),
	}

	// Cache is best effort; a failed Set only costs the next reader a rebuild.
	if data, err := json.Marshal(stmt); err == nil {
		_ = uc.cache.Set(ctx, key, data, statementCacheTTL)
	}

	return stmt, nil
}

// VerifyStatement replays the party's entries and compares the result with
// the stored balance snapshot. A mismatch means a past write bypassed the
// transaction path.
func (uc *LedgerUseCase) VerifyStatement(ctx context.Context, partyID string) (bool, decimal.Decimal, error) {
	party, err := uc.partyRepo.GetByID(ctx, partyID)
	if err != nil {
		return false, decimal.Zero, err
	}

	entries, err := uc.entryRepo.ListByParty(ctx, partyID)
	if err != nil {
		return false, decimal.Zero, err
	}

	replayed := domain.ReplayBalance(entries)
	return replayed.Equal(party.Balance), replayed, nil
}

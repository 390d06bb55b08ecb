package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/iho/shopledger/internal/domain"
)

// EntryUseCase reads and deletes ledger entries. Deletion is a full reversal:
// the party balance, any bank effect, and any stock counts the entry moved
// are restored before the row and its lines are removed.
type EntryUseCase struct {
	executor  *Executor
	entryRepo EntryRepository
	idGen     IDGenerator
	cache     Cache
}

// NewEntryUseCase creates a new EntryUseCase.
func NewEntryUseCase(executor *Executor, entryRepo EntryRepository, idGen IDGenerator, cache Cache) *EntryUseCase {
	return &EntryUseCase{
		executor:  executor,
		entryRepo: entryRepo,
		idGen:     idGen,
		cache:     cache,
	}
}

// GetEntry fetches an entry by ID.
func (uc *EntryUseCase) GetEntry(ctx context.Context, id string) (*domain.LedgerEntry, error) {
	return uc.entryRepo.GetByID(ctx, id)
}

// DeleteEntry removes an entry and reverses every effect it had, as one
// atomic unit.
func (uc *EntryUseCase) DeleteEntry(ctx context.Context, entryID string) error {
	var partyID string

	err := uc.executor.Run(ctx, "delete entry", func(ctx context.Context, r *Reads) (*Plan, error) {
		entry, err := r.Entry(ctx, entryID)
		if err != nil {
			return nil, err
		}

		party, err := r.Party(ctx, entry.PartyID)
		if err != nil {
			return nil, err
		}
		partyID = party.ID

		now := time.Now().UTC()
		plan := NewPlan()

		party.UpdatedAt = now
		plan.SetPartyBalance(party, party.Balance.Sub(entry.SignedAmount()))

		if entry.Method == domain.MethodOnline && entry.BankAccountID != nil {
			account, err := r.BankAccount(ctx, *entry.BankAccountID)
			if err != nil {
				return nil, err
			}

			// Reverse the original bank effect: customer payments
			// credited the account, dealer payments debited it.
			reversal := entry.Amount.Neg()
			if entry.Kind == domain.EntryDealerPayment {
				reversal = entry.Amount
			}

			if err := stageBankDelta(plan, uc.idGen, account, reversal, now, "entry deleted, effect reversed", &entry.ID, now); err != nil {
				return nil, err
			}
		}

		items, err := r.EntryItems(ctx, entry.ID)
		if err != nil {
			return nil, err
		}

		if len(items) > 0 {
			if err := uc.restoreStock(ctx, r, plan, entry, items, now); err != nil {
				return nil, err
			}
			plan.DeleteItems(entry.ID)
		}

		plan.DeleteEntry(entry.ID)

		plan.AddEvent(&domain.OutboxEvent{
			ID:            uc.idGen.Generate(),
			AggregateID:   entry.ID,
			AggregateType: domain.AggregateTypeEntry,
			EventType:     domain.EventTypeEntryDeleted,
			Payload: map[string]any{
				"entry_id": entry.ID,
				"party_id": entry.PartyID,
				"kind":     string(entry.Kind),
				"amount":   entry.Amount.String(),
			},
			CreatedAt: now,
		})

		return plan, nil
	})
	if err != nil {
		return err
	}

	uc.cache.Delete(ctx, statementCacheKey(partyID))

	return nil
}

// restoreStock puts back the counts a sale deducted, or takes back the counts
// a purchase added. Taking back fails when the goods were already sold on.
func (uc *EntryUseCase) restoreStock(ctx context.Context, r *Reads, plan *Plan, entry *domain.LedgerEntry, items []*domain.EntryItem, now time.Time) error {
	quantities := make(map[string]int64, len(items))
	for _, item := range items {
		quantities[item.StockItemID] += item.Quantity
	}

	ids := make([]string, 0, len(quantities))
	for id := range quantities {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	stockItems, err := r.StockItems(ctx, ids)
	if err != nil {
		return err
	}

	byID := make(map[string]*domain.StockItem, len(stockItems))
	for _, item := range stockItems {
		byID[item.ID] = item
	}

	for _, id := range ids {
		item, ok := byID[id]
		if !ok {
			return domain.ErrStockItemNotFound
		}

		delta := quantities[id]
		if entry.Kind == domain.EntryPurchase {
			if err := item.ValidateDeduction(delta); err != nil {
				return err
			}
			delta = -delta
		}

		item.UpdatedAt = now
		plan.SetStockCount(item, item.Stock+delta)
	}

	return nil
}

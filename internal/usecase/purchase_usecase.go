package usecase

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/shopledger/internal/domain"
)

// PurchaseUseCase records stock purchases from dealers. The mirror image of a
// sale: stock counts go up, the dealer is debited by the invoice total, and
// money paid up front becomes a separate dealer payment entry.
type PurchaseUseCase struct {
	executor *Executor
	idGen    IDGenerator
	cache    Cache
}

// NewPurchaseUseCase creates a new PurchaseUseCase.
func NewPurchaseUseCase(executor *Executor, idGen IDGenerator, cache Cache) *PurchaseUseCase {
	return &PurchaseUseCase{
		executor: executor,
		idGen:    idGen,
		cache:    cache,
	}
}

// PurchaseLineInput is one stock line of a purchase.
type PurchaseLineInput struct {
	StockItemID string
	Quantity    int64
	UnitCost    decimal.Decimal
}

// RecordPurchaseInput represents input for recording a purchase.
type RecordPurchaseInput struct {
	PartyID        string
	Date           time.Time
	Items          []PurchaseLineInput
	PaidAmount     decimal.Decimal
	Method         domain.PaymentMethod
	BankAccountID  *string
	Reference      string
	IdempotencyKey string
}

// RecordPurchaseOutput is the result of a recorded purchase.
type RecordPurchaseOutput struct {
	Entry        *domain.LedgerEntry
	PaymentEntry *domain.LedgerEntry
	Total        decimal.Decimal
}

// RecordPurchase records a purchase from a dealer as one atomic unit.
func (uc *PurchaseUseCase) RecordPurchase(ctx context.Context, input RecordPurchaseInput) (*RecordPurchaseOutput, error) {
	if len(input.Items) == 0 {
		return nil, domain.ErrInvalidQty
	}

	quantities := make(map[string]int64, len(input.Items))
	for _, line := range input.Items {
		if err := domain.ValidateQuantity(line.Quantity); err != nil {
			return nil, err
		}
		if line.UnitCost.IsNegative() {
			return nil, domain.ErrInvalidAmount
		}
		quantities[line.StockItemID] += line.Quantity
	}

	if input.PaidAmount.IsNegative() {
		return nil, domain.ErrInvalidAmount
	}

	itemIDs := make([]string, 0, len(quantities))
	for id := range quantities {
		itemIDs = append(itemIDs, id)
	}
	sort.Strings(itemIDs)

	var result *RecordPurchaseOutput

	err := uc.executor.Run(ctx, "record purchase", func(ctx context.Context, r *Reads) (*Plan, error) {
		if input.IdempotencyKey != "" {
			existing, err := r.EntryByIdempotencyKey(ctx, input.IdempotencyKey)
			if err == nil {
				result = &RecordPurchaseOutput{Entry: existing, Total: existing.Amount}
				return NewPlan(), nil
			}
			if !errors.Is(err, domain.ErrEntryNotFound) {
				return nil, err
			}
		}

		party, err := r.Party(ctx, input.PartyID)
		if err != nil {
			return nil, err
		}

		if party.Kind != domain.PartyDealer {
			return nil, domain.ErrInvalidPartyKind
		}
		if party.Status == domain.PartyArchived {
			return nil, domain.ErrPartyArchived
		}

		stockItems, err := r.StockItems(ctx, itemIDs)
		if err != nil {
			return nil, err
		}

		byID := make(map[string]*domain.StockItem, len(stockItems))
		for _, item := range stockItems {
			byID[item.ID] = item
		}

		total := decimal.Zero
		for _, line := range input.Items {
			total = total.Add(line.UnitCost.Mul(decimal.NewFromInt(line.Quantity)))
		}

		if err := domain.ValidateAmount(total); err != nil {
			return nil, err
		}
		if input.PaidAmount.GreaterThan(total) {
			return nil, domain.ErrInvalidAmount
		}

		now := time.Now().UTC()
		plan := NewPlan()

		purchase := &domain.LedgerEntry{
			ID:             uc.idGen.Generate(),
			PartyID:        party.ID,
			Kind:           domain.EntryPurchase,
			EntryDate:      input.Date,
			Amount:         total,
			Method:         domain.MethodCash,
			Reference:      input.Reference,
			IdempotencyKey: input.IdempotencyKey,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		plan.CreateEntry(purchase)

		items := make([]*domain.EntryItem, 0, len(input.Items))
		for _, line := range input.Items {
			items = append(items, &domain.EntryItem{
				ID:          uc.idGen.Generate(),
				EntryID:     purchase.ID,
				StockItemID: line.StockItemID,
				Quantity:    line.Quantity,
				UnitPrice:   line.UnitCost,
			})
		}
		plan.CreateItems(items)

		for _, id := range itemIDs {
			item, ok := byID[id]
			if !ok {
				return nil, domain.ErrStockItemNotFound
			}
			item.UpdatedAt = now
			plan.SetStockCount(item, item.Stock+quantities[id])
		}

		newBalance := party.Balance.Add(total)
		out := &RecordPurchaseOutput{Entry: purchase, Total: total}

		if input.PaidAmount.IsPositive() {
			payment := &domain.LedgerEntry{
				ID:            uc.idGen.Generate(),
				PartyID:       party.ID,
				Kind:          domain.EntryDealerPayment,
				EntryDate:     input.Date,
				Amount:        input.PaidAmount,
				Method:        input.Method,
				BankAccountID: input.BankAccountID,
				Reference:     input.Reference,
				CreatedAt:     now,
				UpdatedAt:     now,
			}
			if err := payment.Validate(); err != nil {
				return nil, err
			}
			plan.CreateEntry(payment)

			newBalance = newBalance.Sub(input.PaidAmount)
			out.PaymentEntry = payment

			if input.Method == domain.MethodOnline {
				account, err := r.BankAccount(ctx, *input.BankAccountID)
				if err != nil {
					return nil, err
				}
				if err := stageBankDelta(plan, uc.idGen, account, input.PaidAmount.Neg(), input.Date, "payment to dealer", &payment.ID, now); err != nil {
					return nil, err
				}
			}
		}

		party.UpdatedAt = now
		plan.SetPartyBalance(party, newBalance)

		plan.AddEvent(&domain.OutboxEvent{
			ID:            uc.idGen.Generate(),
			AggregateID:   purchase.ID,
			AggregateType: domain.AggregateTypeEntry,
			EventType:     domain.EventTypePurchaseRecorded,
			Payload: map[string]any{
				"entry_id":   purchase.ID,
				"party_id":   party.ID,
				"total":      total.String(),
				"paid":       input.PaidAmount.String(),
				"item_count": len(items),
			},
			CreatedAt: now,
		})

		result = out
		return plan, nil
	})
	if err != nil {
		return nil, err
	}

	uc.cache.Delete(ctx, statementCacheKey(input.PartyID))

	return result, nil
}

package usecase

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/shopledger/internal/domain"
)

// SaleUseCase records sales to customers. A sale is one atomic unit that
// writes the sale entry with its stock lines, deducts stock, debits the
// customer, and, when cash changes hands immediately, writes a separate
// payment entry so the ledger stays replayable line by line.
type SaleUseCase struct {
	executor *Executor
	idGen    IDGenerator
	cache    Cache
}

// NewSaleUseCase creates a new SaleUseCase.
func NewSaleUseCase(executor *Executor, idGen IDGenerator, cache Cache) *SaleUseCase {
	return &SaleUseCase{
		executor: executor,
		idGen:    idGen,
		cache:    cache,
	}
}

// SaleLineInput is one stock line of a sale.
type SaleLineInput struct {
	StockItemID string
	Quantity    int64
	UnitPrice   decimal.Decimal
}

// RecordSaleInput represents input for recording a sale.
type RecordSaleInput struct {
	PartyID        string
	Date           time.Time
	Items          []SaleLineInput
	PaidAmount     decimal.Decimal
	Method         domain.PaymentMethod
	BankAccountID  *string
	Reference      string
	IdempotencyKey string
}

// RecordSaleOutput is the result of a recorded sale.
type RecordSaleOutput struct {
	Entry        *domain.LedgerEntry
	PaymentEntry *domain.LedgerEntry
	Total        decimal.Decimal
}

// RecordSale records a sale to a customer as one atomic unit.
func (uc *SaleUseCase) RecordSale(ctx context.Context, input RecordSaleInput) (*RecordSaleOutput, error) {
	if len(input.Items) == 0 {
		return nil, domain.ErrInvalidQty
	}

	quantities := make(map[string]int64, len(input.Items))
	for _, line := range input.Items {
		if err := domain.ValidateQuantity(line.Quantity); err != nil {
			return nil, err
		}
		if line.UnitPrice.IsNegative() {
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

	var result *RecordSaleOutput

	err := uc.executor.Run(ctx, "record sale", func(ctx context.Context, r *Reads) (*Plan, error) {
		if input.IdempotencyKey != "" {
			existing, err := r.EntryByIdempotencyKey(ctx, input.IdempotencyKey)
			if err == nil {
				result = &RecordSaleOutput{Entry: existing, Total: existing.Amount}
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

		if party.Kind != domain.PartyCustomer {
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
			total = total.Add(line.UnitPrice.Mul(decimal.NewFromInt(line.Quantity)))
		}

		if err := domain.ValidateAmount(total); err != nil {
			return nil, err
		}
		if input.PaidAmount.GreaterThan(total) {
			return nil, domain.ErrInvalidAmount
		}

		now := time.Now().UTC()
		plan := NewPlan()

		sale := &domain.LedgerEntry{
			ID:             uc.idGen.Generate(),
			PartyID:        party.ID,
			Kind:           domain.EntrySale,
			EntryDate:      input.Date,
			Amount:         total,
			Method:         domain.MethodCash,
			Reference:      input.Reference,
			IdempotencyKey: input.IdempotencyKey,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		plan.CreateEntry(sale)

		items := make([]*domain.EntryItem, 0, len(input.Items))
		for _, line := range input.Items {
			items = append(items, &domain.EntryItem{
				ID:          uc.idGen.Generate(),
				EntryID:     sale.ID,
				StockItemID: line.StockItemID,
				Quantity:    line.Quantity,
				UnitPrice:   line.UnitPrice,
			})
		}
		plan.CreateItems(items)

		for _, id := range itemIDs {
			item, ok := byID[id]
			if !ok {
				return nil, domain.ErrStockItemNotFound
			}
			if err := item.ValidateDeduction(quantities[id]); err != nil {
				return nil, err
			}
			item.UpdatedAt = now
			plan.SetStockCount(item, item.Stock-quantities[id])
		}

		newBalance := party.Balance.Add(total)
		out := &RecordSaleOutput{Entry: sale, Total: total}

		if input.PaidAmount.IsPositive() {
			payment := &domain.LedgerEntry{
				ID:            uc.idGen.Generate(),
				PartyID:       party.ID,
				Kind:          domain.EntryPayment,
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
				if err := stageBankDelta(plan, uc.idGen, account, input.PaidAmount, input.Date, "sale payment received", &payment.ID, now); err != nil {
					return nil, err
				}
			}
		}

		party.UpdatedAt = now
		plan.SetPartyBalance(party, newBalance)

		plan.AddEvent(&domain.OutboxEvent{
			ID:            uc.idGen.Generate(),
			AggregateID:   sale.ID,
			AggregateType: domain.AggregateTypeEntry,
			EventType:     domain.EventTypeSaleRecorded,
			Payload: map[string]any{
				"entry_id":   sale.ID,
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

package usecase

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/shopledger/internal/domain"
)

// PaymentUseCase records, edits and reverses party payments. A customer
// payment credits the customer and, when online, credits the receiving bank
// account; a dealer payment credits the dealer and debits the paying bank
// account.
type PaymentUseCase struct {
	executor *Executor
	idGen    IDGenerator
	cache    Cache
}

// NewPaymentUseCase creates a new PaymentUseCase.
func NewPaymentUseCase(executor *Executor, idGen IDGenerator, cache Cache) *PaymentUseCase {
	return &PaymentUseCase{
		executor: executor,
		idGen:    idGen,
		cache:    cache,
	}
}

// RecordPaymentInput represents input for recording a payment.
type RecordPaymentInput struct {
	PartyID        string
	Amount         decimal.Decimal
	Date           time.Time
	Method         domain.PaymentMethod
	BankAccountID  *string
	Reference      string
	IdempotencyKey string
}

// RecordPayment records a payment against a party as one atomic unit.
func (uc *PaymentUseCase) RecordPayment(ctx context.Context, input RecordPaymentInput) (*domain.LedgerEntry, error) {
	if err := domain.ValidateAmount(input.Amount); err != nil {
		return nil, err
	}

	var result *domain.LedgerEntry

	err := uc.executor.Run(ctx, "record payment", func(ctx context.Context, r *Reads) (*Plan, error) {
		if input.IdempotencyKey != "" {
			existing, err := r.EntryByIdempotencyKey(ctx, input.IdempotencyKey)
			if err == nil {
				result = existing
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

		if party.Status == domain.PartyArchived {
			return nil, domain.ErrPartyArchived
		}

		kind := domain.EntryPayment
		bankDelta := input.Amount
		if party.Kind == domain.PartyDealer {
			kind = domain.EntryDealerPayment
			bankDelta = input.Amount.Neg()
		}

		var account *domain.BankAccount
		if input.Method == domain.MethodOnline {
			if input.BankAccountID == nil {
				return nil, domain.ErrMissingBankRef
			}

			account, err = r.BankAccount(ctx, *input.BankAccountID)
			if err != nil {
				return nil, err
			}
		}

		now := time.Now().UTC()

		entry := &domain.LedgerEntry{
			ID:             uc.idGen.Generate(),
			PartyID:        party.ID,
			Kind:           kind,
			EntryDate:      input.Date,
			Amount:         input.Amount,
			Method:         input.Method,
			BankAccountID:  input.BankAccountID,
			Reference:      input.Reference,
			IdempotencyKey: input.IdempotencyKey,
			CreatedAt:      now,
			UpdatedAt:      now,
		}

		if err := entry.Validate(); err != nil {
			return nil, err
		}

		plan := NewPlan()
		plan.CreateEntry(entry)

		party.UpdatedAt = now
		plan.SetPartyBalance(party, party.ApplyCredit(input.Amount))

		if account != nil {
			desc := "payment received"
			if kind == domain.EntryDealerPayment {
				desc = "payment to dealer"
			}

			if err := stageBankDelta(plan, uc.idGen, account, bankDelta, input.Date, desc, &entry.ID, now); err != nil {
				return nil, err
			}
		}

		plan.AddEvent(uc.paymentEvent(domain.EventTypePaymentRecorded, entry, now))

		result = entry
		return plan, nil
	})
	if err != nil {
		return nil, err
	}

	uc.cache.Delete(ctx, statementCacheKey(input.PartyID))

	return result, nil
}

// EditPaymentInput represents input for editing an existing payment.
type EditPaymentInput struct {
	Amount        decimal.Decimal
	Date          time.Time
	Method        domain.PaymentMethod
	BankAccountID *string
	Reference     string
}

// EditPayment applies the difference between the stored payment and the new
// values: the party moves by oldAmount-newAmount, the old bank account is
// restored by the full old amount and the new one charged by the full new
// amount when the account changed, or by the net difference when it did not.
func (uc *PaymentUseCase) EditPayment(ctx context.Context, entryID string, input EditPaymentInput) (*domain.LedgerEntry, error) {
	if err := domain.ValidateAmount(input.Amount); err != nil {
		return nil, err
	}

	var result *domain.LedgerEntry
	var partyID string

	err := uc.executor.Run(ctx, "edit payment", func(ctx context.Context, r *Reads) (*Plan, error) {
		entry, err := r.Entry(ctx, entryID)
		if err != nil {
			return nil, err
		}

		if entry.Kind != domain.EntryPayment && entry.Kind != domain.EntryDealerPayment {
			return nil, domain.ErrInvalidEntryKind
		}

		party, err := r.Party(ctx, entry.PartyID)
		if err != nil {
			return nil, err
		}
		partyID = party.ID

		accounts, err := uc.lockAccounts(ctx, r, entry, input)
		if err != nil {
			return nil, err
		}

		now := time.Now().UTC()
		plan := NewPlan()

		// Payments credit the party, so the balance moves by old-new.
		party.UpdatedAt = now
		plan.SetPartyBalance(party, party.Balance.Add(entry.Amount).Sub(input.Amount))

		// Bank effect sign: customer payments credit the bank, dealer
		// payments debit it.
		sign := decimal.NewFromInt(1)
		if entry.Kind == domain.EntryDealerPayment {
			sign = decimal.NewFromInt(-1)
		}

		oldOnline := entry.Method == domain.MethodOnline && entry.BankAccountID != nil
		newOnline := input.Method == domain.MethodOnline
		if newOnline && input.BankAccountID == nil {
			return nil, domain.ErrMissingBankRef
		}

		sameAccount := oldOnline && newOnline && *entry.BankAccountID == *input.BankAccountID

		switch {
		case sameAccount:
			net := input.Amount.Sub(entry.Amount).Mul(sign)
			if err := stageBankDelta(plan, uc.idGen, accounts[*entry.BankAccountID], net, input.Date, "payment edited", &entry.ID, now); err != nil {
				return nil, err
			}
		default:
			if oldOnline {
				reverse := entry.Amount.Mul(sign).Neg()
				if err := stageBankDelta(plan, uc.idGen, accounts[*entry.BankAccountID], reverse, input.Date, "payment edited, effect reversed", &entry.ID, now); err != nil {
					return nil, err
				}
			}

			if newOnline {
				apply := input.Amount.Mul(sign)
				if err := stageBankDelta(plan, uc.idGen, accounts[*input.BankAccountID], apply, input.Date, "payment edited", &entry.ID, now); err != nil {
					return nil, err
				}
			}
		}

		entry.Amount = input.Amount
		entry.EntryDate = input.Date
		entry.Method = input.Method
		entry.BankAccountID = input.BankAccountID
		entry.Reference = input.Reference
		entry.UpdatedAt = now
		plan.UpdateEntry(entry)

		plan.AddEvent(uc.paymentEvent(domain.EventTypePaymentEdited, entry, now))

		result = entry
		return plan, nil
	})
	if err != nil {
		return nil, err
	}

	uc.cache.Delete(ctx, statementCacheKey(partyID))

	return result, nil
}

// lockAccounts locks every bank account the edit touches, in sorted ID order.
func (uc *PaymentUseCase) lockAccounts(ctx context.Context, r *Reads, entry *domain.LedgerEntry, input EditPaymentInput) (map[string]*domain.BankAccount, error) {
	seen := make(map[string]bool)

	var ids []string
	if entry.Method == domain.MethodOnline && entry.BankAccountID != nil {
		seen[*entry.BankAccountID] = true
		ids = append(ids, *entry.BankAccountID)
	}

	if input.Method == domain.MethodOnline && input.BankAccountID != nil && !seen[*input.BankAccountID] {
		ids = append(ids, *input.BankAccountID)
	}

	sort.Strings(ids)

	accounts := make(map[string]*domain.BankAccount, len(ids))
	for _, id := range ids {
		account, err := r.BankAccount(ctx, id)
		if err != nil {
			return nil, err
		}
		accounts[id] = account
	}

	return accounts, nil
}

func (uc *PaymentUseCase) paymentEvent(eventType string, entry *domain.LedgerEntry, now time.Time) *domain.OutboxEvent {
	payload := map[string]any{
		"entry_id": entry.ID,
		"party_id": entry.PartyID,
		"kind":     string(entry.Kind),
		"amount":   entry.Amount.String(),
		"method":   string(entry.Method),
	}
	if entry.BankAccountID != nil {
		payload["bank_account_id"] = *entry.BankAccountID
	}

	return &domain.OutboxEvent{
		ID:            uc.idGen.Generate(),
		AggregateID:   entry.ID,
		AggregateType: domain.AggregateTypeEntry,
		EventType:     eventType,
		Payload:       payload,
		CreatedAt:     now,
	}
}

package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/shopledger/internal/domain"
)

// PartyUseCase manages customers and dealers.
type PartyUseCase struct {
	executor  *Executor
	partyRepo PartyRepository
	idGen     IDGenerator
}

// NewPartyUseCase creates a new PartyUseCase.
func NewPartyUseCase(executor *Executor, partyRepo PartyRepository, idGen IDGenerator) *PartyUseCase {
	return &PartyUseCase{
		executor:  executor,
		partyRepo: partyRepo,
		idGen:     idGen,
	}
}

// CreatePartyInput represents input for creating a party.
type CreatePartyInput struct {
	Kind    domain.PartyKind
	Name    string
	Phone   string
	Address string
}

// CreateParty registers a new customer or dealer with a zero balance.
func (uc *PartyUseCase) CreateParty(ctx context.Context, input CreatePartyInput) (*domain.Party, error) {
	if err := domain.ValidatePartyKind(input.Kind); err != nil {
		return nil, err
	}
	if err := domain.ValidateName(input.Name); err != nil {
		return nil, err
	}
	if err := domain.ValidatePhone(input.Phone); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	party := &domain.Party{
		ID:        uc.idGen.Generate(),
		Kind:      input.Kind,
		Name:      input.Name,
		Phone:     input.Phone,
		Address:   input.Address,
		Balance:   decimal.Zero,
		Status:    domain.PartyActive,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := uc.executor.Run(ctx, "create party", func(ctx context.Context, r *Reads) (*Plan, error) {
		plan := NewPlan()
		plan.CreateParty(party)
		plan.AddEvent(&domain.OutboxEvent{
			ID:            uc.idGen.Generate(),
			AggregateID:   party.ID,
			AggregateType: domain.AggregateTypeParty,
			EventType:     domain.EventTypePartyCreated,
			Payload: map[string]any{
				"party_id": party.ID,
				"kind":     string(party.Kind),
				"name":     party.Name,
			},
			CreatedAt: now,
		})
		return plan, nil
	})
	if err != nil {
		return nil, err
	}

	return party, nil
}

// GetParty fetches a party by ID.
func (uc *PartyUseCase) GetParty(ctx context.Context, id string) (*domain.Party, error) {
	return uc.partyRepo.GetByID(ctx, id)
}

// ListParties lists parties of one kind.
func (uc *PartyUseCase) ListParties(ctx context.Context, kind domain.PartyKind, limit, offset int) ([]*domain.Party, error) {
	if err := domain.ValidatePartyKind(kind); err != nil {
		return nil, err
	}

	limit, offset = domain.ValidatePagination(limit, offset)
	return uc.partyRepo.List(ctx, kind, limit, offset)
}

// UpdatePartyInput represents input for updating party details.
type UpdatePartyInput struct {
	Name    string
	Phone   string
	Address string
}

// UpdateParty updates the contact details of a party. Balances are never
// touched here; only ledger transactions move balances.
func (uc *PartyUseCase) UpdateParty(ctx context.Context, id string, input UpdatePartyInput) (*domain.Party, error) {
	if err := domain.ValidateName(input.Name); err != nil {
		return nil, err
	}
	if err := domain.ValidatePhone(input.Phone); err != nil {
		return nil, err
	}

	party, err := uc.partyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	party.Name = input.Name
	party.Phone = input.Phone
	party.Address = input.Address
	party.UpdatedAt = time.Now().UTC()

	if err := uc.partyRepo.UpdateDetails(ctx, party); err != nil {
		return nil, err
	}

	return party, nil
}

// ArchiveParty tombstones a party. The balance is checked under the row lock
// so a concurrent transaction cannot slip in between check and archive.
func (uc *PartyUseCase) ArchiveParty(ctx context.Context, id string) error {
	return uc.executor.Run(ctx, "archive party", func(ctx context.Context, r *Reads) (*Plan, error) {
		party, err := r.Party(ctx, id)
		if err != nil {
			return nil, err
		}

		if party.Status == domain.PartyArchived {
			return NewPlan(), nil
		}

		if err := party.CanArchive(); err != nil {
			return nil, err
		}

		party.UpdatedAt = time.Now().UTC()
		plan := NewPlan()
		plan.SetPartyStatus(party, domain.PartyArchived)
		return plan, nil
	})
}

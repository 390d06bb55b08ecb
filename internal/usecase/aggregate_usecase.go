package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/shopledger/internal/domain"
)

// AggregateUseCase manages the bulk resources (scrap batteries, acid) that
// are tracked by total quantity and value rather than per unit. Each mutation
// writes a movement row in the same atomic unit, so the singleton totals stay
// reconstructible by replay.
type AggregateUseCase struct {
	executor *Executor
	aggRepo  AggregateRepository
	idGen    IDGenerator
}

// NewAggregateUseCase creates a new AggregateUseCase.
func NewAggregateUseCase(executor *Executor, aggRepo AggregateRepository, idGen IDGenerator) *AggregateUseCase {
	return &AggregateUseCase{
		executor: executor,
		aggRepo:  aggRepo,
		idGen:    idGen,
	}
}

// GetAggregate fetches the current totals of one resource.
func (uc *AggregateUseCase) GetAggregate(ctx context.Context, resource domain.AggregateResource) (*domain.AggregateStock, error) {
	return uc.aggRepo.Get(ctx, resource)
}

// ListMovements lists the movement history of one resource, newest first.
func (uc *AggregateUseCase) ListMovements(ctx context.Context, resource domain.AggregateResource, limit, offset int) ([]*domain.AggregateMovement, error) {
	limit, offset = domain.ValidatePagination(limit, offset)
	return uc.aggRepo.ListMovements(ctx, resource, limit, offset)
}

// PurchaseAggregateInput represents input for buying bulk resource over the
// counter.
type PurchaseAggregateInput struct {
	Resource      domain.AggregateResource
	Quantity      decimal.Decimal
	Value         decimal.Decimal
	Method        domain.PaymentMethod
	BankAccountID *string
	Date          time.Time
}

// PurchaseAggregate adds quantity and value to a resource. These are walk-in
// purchases paid on the spot, so no party is involved; an online payment
// debits the paying bank account directly.
func (uc *AggregateUseCase) PurchaseAggregate(ctx context.Context, input PurchaseAggregateInput) (*domain.AggregateMovement, error) {
	if input.Quantity.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidQty
	}
	if err := domain.ValidateAmount(input.Value); err != nil {
		return nil, err
	}
	if input.Method == domain.MethodOnline && input.BankAccountID == nil {
		return nil, domain.ErrMissingBankRef
	}

	var result *domain.AggregateMovement

	err := uc.executor.Run(ctx, "purchase aggregate", func(ctx context.Context, r *Reads) (*Plan, error) {
		agg, err := r.Aggregate(ctx, input.Resource)
		if err != nil {
			return nil, err
		}

		now := time.Now().UTC()
		plan := NewPlan()

		movement := &domain.AggregateMovement{
			ID:            uc.idGen.Generate(),
			Resource:      input.Resource,
			Direction:     domain.MovementPurchase,
			Quantity:      input.Quantity,
			Value:         input.Value,
			Method:        input.Method,
			BankAccountID: input.BankAccountID,
			MovedAt:       input.Date,
			CreatedAt:     now,
		}
		plan.CreateMovement(movement)

		agg.UpdatedAt = now
		plan.SetAggregate(agg, agg.Quantity.Add(input.Quantity), agg.Value.Add(input.Value))

		if input.Method == domain.MethodOnline {
			account, err := r.BankAccount(ctx, *input.BankAccountID)
			if err != nil {
				return nil, err
			}
			if err := stageBankDelta(plan, uc.idGen, account, input.Value.Neg(), input.Date, "bulk purchase: "+string(input.Resource), nil, now); err != nil {
				return nil, err
			}
		}

		result = movement
		return plan, nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// ConsumeAggregateInput represents input for consuming or selling off bulk
// resource.
type ConsumeAggregateInput struct {
	Resource domain.AggregateResource
	Quantity decimal.Decimal
	Value    decimal.Decimal
	Date     time.Time
}

// ConsumeAggregate removes quantity and value from a resource, refusing to
// take the totals negative.
func (uc *AggregateUseCase) ConsumeAggregate(ctx context.Context, input ConsumeAggregateInput) (*domain.AggregateMovement, error) {
	if input.Quantity.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidQty
	}
	if input.Value.IsNegative() {
		return nil, domain.ErrInvalidAmount
	}

	var result *domain.AggregateMovement

	err := uc.executor.Run(ctx, "consume aggregate", func(ctx context.Context, r *Reads) (*Plan, error) {
		agg, err := r.Aggregate(ctx, input.Resource)
		if err != nil {
			return nil, err
		}

		if err := agg.ValidateConsumption(input.Quantity); err != nil {
			return nil, err
		}

		now := time.Now().UTC()
		plan := NewPlan()

		movement := &domain.AggregateMovement{
			ID:        uc.idGen.Generate(),
			Resource:  input.Resource,
			Direction: domain.MovementConsumption,
			Quantity:  input.Quantity,
			Value:     input.Value,
			Method:    domain.MethodCash,
			MovedAt:   input.Date,
			CreatedAt: now,
		}
		plan.CreateMovement(movement)

		agg.UpdatedAt = now
		plan.SetAggregate(agg, agg.Quantity.Sub(input.Quantity), agg.Value.Sub(input.Value))

		result = movement
		return plan, nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/shopledger/internal/domain"
)

// StockUseCase manages the stock item catalog. Counts are deliberately not
// editable here; only sale and purchase transactions move them.
type StockUseCase struct {
	stockRepo StockRepository
	idGen     IDGenerator
}

// NewStockUseCase creates a new StockUseCase.
func NewStockUseCase(stockRepo StockRepository, idGen IDGenerator) *StockUseCase {
	return &StockUseCase{
		stockRepo: stockRepo,
		idGen:     idGen,
	}
}

// CreateStockItemInput represents input for creating a stock item.
type CreateStockItemInput struct {
	Kind      domain.StockItemKind
	Name      string
	CostPrice decimal.Decimal
	SalePrice decimal.Decimal
}

// CreateStockItem adds a catalog item with zero stock.
func (uc *StockUseCase) CreateStockItem(ctx context.Context, input CreateStockItemInput) (*domain.StockItem, error) {
	if input.Kind != domain.StockProduct && input.Kind != domain.StockBattery {
		return nil, domain.ErrInvalidStockKind
	}
	if err := domain.ValidateName(input.Name); err != nil {
		return nil, err
	}
	if input.CostPrice.IsNegative() || input.SalePrice.IsNegative() {
		return nil, domain.ErrInvalidAmount
	}

	now := time.Now().UTC()
	item := &domain.StockItem{
		ID:        uc.idGen.Generate(),
		Kind:      input.Kind,
		Name:      input.Name,
		CostPrice: input.CostPrice,
		SalePrice: input.SalePrice,
		Stock:     0,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.stockRepo.Create(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

// GetStockItem fetches a stock item by ID.
func (uc *StockUseCase) GetStockItem(ctx context.Context, id string) (*domain.StockItem, error) {
	return uc.stockRepo.GetByID(ctx, id)
}

// ListStockItems lists catalog items of one kind.
func (uc *StockUseCase) ListStockItems(ctx context.Context, kind domain.StockItemKind, limit, offset int) ([]*domain.StockItem, error) {
	limit, offset = domain.ValidatePagination(limit, offset)
	return uc.stockRepo.List(ctx, kind, limit, offset)
}

// UpdateStockItemInput represents input for updating a stock item.
type UpdateStockItemInput struct {
	Name      string
	CostPrice decimal.Decimal
	SalePrice decimal.Decimal
}

// UpdateStockItem updates catalog details. The count field is untouched.
func (uc *StockUseCase) UpdateStockItem(ctx context.Context, id string, input UpdateStockItemInput) (*domain.StockItem, error) {
	if err := domain.ValidateName(input.Name); err != nil {
		return nil, err
	}
	if input.CostPrice.IsNegative() || input.SalePrice.IsNegative() {
		return nil, domain.ErrInvalidAmount
	}

	item, err := uc.stockRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	item.Name = input.Name
	item.CostPrice = input.CostPrice
	item.SalePrice = input.SalePrice
	item.UpdatedAt = time.Now().UTC()

	if err := uc.stockRepo.UpdateDetails(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

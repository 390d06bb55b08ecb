package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockItemKind distinguishes shelf products from batteries.
type StockItemKind string

const (
	StockProduct StockItemKind = "product"
	StockBattery StockItemKind = "battery"
)

// StockItem is a countable item. Its stock count is mutated only by sale and
// purchase transactions so the count never drifts from its causing records.
type StockItem struct {
	ID        string
	Kind      StockItemKind
	Name      string
	CostPrice decimal.Decimal
	SalePrice decimal.Decimal
	Stock     int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidateDeduction checks if qty units can be taken from stock.
func (s *StockItem) ValidateDeduction(qty int64) error {
	if s.Stock < qty {
		return ErrInsufficientStock
	}
	return nil
}

// EntryItem is one stock line of a sale or purchase entry. Persisting lines
// makes deletion reversible for stock counts.
type EntryItem struct {
	ID          string
	EntryID     string
	StockItemID string
	Quantity    int64
	UnitPrice   decimal.Decimal
}

// AggregateResource names a bulk resource tracked as a singleton row.
type AggregateResource string

const (
	ResourceScrap AggregateResource = "scrap"
	ResourceAcid  AggregateResource = "acid"
)

// AggregateStock tracks cumulative quantity and value for a bulk resource.
// One row per resource, created at bootstrap.
type AggregateStock struct {
	Resource  AggregateResource
	Quantity  decimal.Decimal
	Value     decimal.Decimal
	UpdatedAt time.Time
}

// ValidateConsumption checks if qty can be consumed.
func (a *AggregateStock) ValidateConsumption(qty decimal.Decimal) error {
	if a.Quantity.Sub(qty).IsNegative() {
		return ErrInsufficientScraps
	}
	return nil
}

// MovementDirection is the polarity of an aggregate stock movement.
type MovementDirection string

const (
	MovementPurchase    MovementDirection = "purchase"
	MovementConsumption MovementDirection = "consumption"
)

// AggregateMovement records one mutation of an aggregate stock row, so the
// singleton's quantity and value stay reconstructible by replay.
type AggregateMovement struct {
	ID            string
	Resource      AggregateResource
	Direction     MovementDirection
	Quantity      decimal.Decimal
	Value         decimal.Decimal
	Method        PaymentMethod
	BankAccountID *string
	MovedAt       time.Time
	CreatedAt     time.Time
}

// SignedQuantity returns the movement quantity signed by direction.
func (m *AggregateMovement) SignedQuantity() decimal.Decimal {
	if m.Direction == MovementPurchase {
		return m.Quantity
	}
	return m.Quantity.Neg()
}

// SignedValue returns the movement value signed by direction.
func (m *AggregateMovement) SignedValue() decimal.Decimal {
	if m.Direction == MovementPurchase {
		return m.Value
	}
	return m.Value.Neg()
}

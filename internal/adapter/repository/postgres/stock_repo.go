package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/shopledger/internal/domain"
	"github.com/iho/shopledger/internal/usecase"
)

// StockRepository implements usecase.StockRepository.
type StockRepository struct {
	pool *pgxpool.Pool
}

// NewStockRepository creates a new StockRepository.
func NewStockRepository(pool *pgxpool.Pool) *StockRepository {
	return &StockRepository{pool: pool}
}

const stockColumns = `id, kind, name, cost_price, sale_price, stock,
	created_at, updated_at`

// Create inserts a new stock item.
func (r *StockRepository) Create(ctx context.Context, item *domain.StockItem) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO stock_items (`+stockColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		item.ID, item.Kind, item.Name,
		decimalToNumeric(item.CostPrice), decimalToNumeric(item.SalePrice),
		item.Stock, timeToPgTimestamptz(item.CreatedAt), timeToPgTimestamptz(item.UpdatedAt),
	)

	return err
}

// GetByID retrieves a stock item by ID.
func (r *StockRepository) GetByID(ctx context.Context, id string) (*domain.StockItem, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+stockColumns+` FROM stock_items WHERE id = $1`, id)

	return scanStockItem(row)
}

// GetByIDForUpdate retrieves a stock item by ID with a FOR UPDATE lock.
func (r *StockRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.StockItem, error) {
	row := txQuerier(tx).QueryRow(ctx,
		`SELECT `+stockColumns+` FROM stock_items WHERE id = $1 FOR UPDATE`, id)

	return scanStockItem(row)
}

// GetByIDsForUpdate retrieves multiple stock items with FOR UPDATE locks,
// ordered by ID so concurrent callers lock in the same order.
func (r *StockRepository) GetByIDsForUpdate(ctx context.Context, tx usecase.Transaction, ids []string) ([]*domain.StockItem, error) {
	rows, err := txQuerier(tx).Query(ctx,
		`SELECT `+stockColumns+` FROM stock_items
		 WHERE id = ANY($1)
		 ORDER BY id
		 FOR UPDATE`,
		ids,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]*domain.StockItem, 0, len(ids))
	for rows.Next() {
		item, err := scanStockItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(items) != len(ids) {
		return nil, domain.ErrStockItemNotFound
	}

	return items, nil
}

// UpdateCount sets the stock level of an item within a transaction.
func (r *StockRepository) UpdateCount(ctx context.Context, tx usecase.Transaction, id string, stock int64, updatedAt time.Time) error {
	tag, err := txQuerier(tx).Exec(ctx,
		`UPDATE stock_items SET stock = $2, updated_at = $3 WHERE id = $1`,
		id, stock, timeToPgTimestamptz(updatedAt),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrStockItemNotFound
	}

	return nil
}

// UpdateDetails updates the name and prices of a stock item. The stock level
// is only changed through ledger operations.
func (r *StockRepository) UpdateDetails(ctx context.Context, item *domain.StockItem) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE stock_items
		 SET name = $2, cost_price = $3, sale_price = $4, updated_at = $5
		 WHERE id = $1`,
		item.ID, item.Name, decimalToNumeric(item.CostPrice),
		decimalToNumeric(item.SalePrice), timeToPgTimestamptz(item.UpdatedAt),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrStockItemNotFound
	}

	return nil
}

// List retrieves stock items of a kind ordered by name.
func (r *StockRepository) List(ctx context.Context, kind domain.StockItemKind, limit, offset int) ([]*domain.StockItem, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+stockColumns+` FROM stock_items
		 WHERE kind = $1
		 ORDER BY name, id
		 LIMIT $2 OFFSET $3`,
		kind, int32(limit), int32(offset),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]*domain.StockItem, 0, limit)
	for rows.Next() {
		item, err := scanStockItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

func scanStockItem(row pgx.Row) (*domain.StockItem, error) {
	var (
		s                    domain.StockItem
		costPrice, salePrice pgtype.Numeric
		createdAt, updatedAt pgtype.Timestamptz
	)

	err := row.Scan(&s.ID, &s.Kind, &s.Name, &costPrice, &salePrice,
		&s.Stock, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrStockItemNotFound
		}

		return nil, err
	}

	s.CostPrice = numericToDecimal(costPrice)
	s.SalePrice = numericToDecimal(salePrice)
	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return &s, nil
}

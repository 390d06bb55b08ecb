package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/iho/shopledger/internal/domain"
	"github.com/iho/shopledger/internal/usecase"
)

// AggregateRepository implements usecase.AggregateRepository.
type AggregateRepository struct {
	pool *pgxpool.Pool
}

// NewAggregateRepository creates a new AggregateRepository.
func NewAggregateRepository(pool *pgxpool.Pool) *AggregateRepository {
	return &AggregateRepository{pool: pool}
}

const movementColumns = `id, resource, direction, quantity, value, method,
	bank_account_id, moved_at, created_at`

// Get retrieves the aggregate stock row for a resource.
func (r *AggregateRepository) Get(ctx context.Context, resource domain.AggregateResource) (*domain.AggregateStock, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT resource, quantity, value, updated_at
		 FROM aggregate_stocks WHERE resource = $1`,
		resource,
	)

	return scanAggregate(row)
}

// GetForUpdate retrieves the aggregate stock row with a FOR UPDATE lock.
func (r *AggregateRepository) GetForUpdate(ctx context.Context, tx usecase.Transaction, resource domain.AggregateResource) (*domain.AggregateStock, error) {
	row := txQuerier(tx).QueryRow(ctx,
		`SELECT resource, quantity, value, updated_at
		 FROM aggregate_stocks WHERE resource = $1 FOR UPDATE`,
		resource,
	)

	return scanAggregate(row)
}

// Update sets the quantity and value of an aggregate within a transaction.
func (r *AggregateRepository) Update(ctx context.Context, tx usecase.Transaction, resource domain.AggregateResource, quantity, value decimal.Decimal, updatedAt time.Time) error {
	tag, err := txQuerier(tx).Exec(ctx,
		`UPDATE aggregate_stocks SET quantity = $2, value = $3, updated_at = $4
		 WHERE resource = $1`,
		resource, decimalToNumeric(quantity), decimalToNumeric(value),
		timeToPgTimestamptz(updatedAt),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAggregateNotFound
	}

	return nil
}

// CreateMovement inserts an aggregate movement within a transaction.
func (r *AggregateRepository) CreateMovement(ctx context.Context, tx usecase.Transaction, movement *domain.AggregateMovement) error {
	_, err := txQuerier(tx).Exec(ctx,
		`INSERT INTO aggregate_movements (`+movementColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		movement.ID, movement.Resource, movement.Direction,
		decimalToNumeric(movement.Quantity), decimalToNumeric(movement.Value),
		movement.Method, textOrNil(movement.BankAccountID),
		timeToPgTimestamptz(movement.MovedAt), timeToPgTimestamptz(movement.CreatedAt),
	)

	return err
}

// ListMovements retrieves movements of a resource, most recent first.
func (r *AggregateRepository) ListMovements(ctx context.Context, resource domain.AggregateResource, limit, offset int) ([]*domain.AggregateMovement, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+movementColumns+` FROM aggregate_movements
		 WHERE resource = $1
		 ORDER BY moved_at DESC, created_at DESC, id DESC
		 LIMIT $2 OFFSET $3`,
		resource, int32(limit), int32(offset),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	movements := make([]*domain.AggregateMovement, 0, limit)
	for rows.Next() {
		var (
			m                  domain.AggregateMovement
			quantity, value    pgtype.Numeric
			movedAt, createdAt pgtype.Timestamptz
		)
		if err := rows.Scan(&m.ID, &m.Resource, &m.Direction, &quantity, &value,
			&m.Method, &m.BankAccountID, &movedAt, &createdAt); err != nil {
			return nil, err
		}
		m.Quantity = numericToDecimal(quantity)
		m.Value = numericToDecimal(value)
		m.MovedAt = movedAt.Time
		m.CreatedAt = createdAt.Time
		movements = append(movements, &m)
	}

	return movements, rows.Err()
}

// SumMovements returns the signed quantity and value sums across all
// movements of a resource.
func (r *AggregateRepository) SumMovements(ctx context.Context, resource domain.AggregateResource) (decimal.Decimal, decimal.Decimal, error) {
	var quantity, value pgtype.Numeric

	err := r.pool.QueryRow(ctx,
		`SELECT
		     COALESCE(SUM(CASE WHEN direction = 'purchase' THEN quantity ELSE -quantity END), 0),
		     COALESCE(SUM(CASE WHEN direction = 'purchase' THEN value ELSE -value END), 0)
		 FROM aggregate_movements
		 WHERE resource = $1`,
		resource,
	).Scan(&quantity, &value)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}

	return numericToDecimal(quantity), numericToDecimal(value), nil
}

// DayCashForScrap sums the cash paid for aggregate purchases on a calendar
// day.
func (r *AggregateRepository) DayCashForScrap(ctx context.Context, day time.Time) (decimal.Decimal, error) {
	var total pgtype.Numeric

	err := r.pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(value), 0)
		 FROM aggregate_movements
		 WHERE direction = 'purchase' AND method = 'cash' AND moved_at::date = $1::date`,
		timeToPgTimestamptz(day),
	).Scan(&total)
	if err != nil {
		return decimal.Zero, err
	}

	return numericToDecimal(total), nil
}

func scanAggregate(row pgx.Row) (*domain.AggregateStock, error) {
	var (
		a               domain.AggregateStock
		quantity, value pgtype.Numeric
		updatedAt       pgtype.Timestamptz
	)

	err := row.Scan(&a.Resource, &quantity, &value, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAggregateNotFound
		}

		return nil, err
	}

	a.Quantity = numericToDecimal(quantity)
	a.Value = numericToDecimal(value)
	a.UpdatedAt = updatedAt.Time

	return &a, nil
}

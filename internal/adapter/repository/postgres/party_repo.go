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

// PartyRepository implements usecase.PartyRepository.
type PartyRepository struct {
	pool *pgxpool.Pool
}

// NewPartyRepository creates a new PartyRepository.
func NewPartyRepository(pool *pgxpool.Pool) *PartyRepository {
	return &PartyRepository{pool: pool}
}

const partyColumns = `id, kind, name, phone, address, balance, status, created_at, updated_at`

// CreateTx inserts a new party within a transaction.
func (r *PartyRepository) CreateTx(ctx context.Context, tx usecase.Transaction, party *domain.Party) error {
	_, err := txQuerier(tx).Exec(ctx,
		`INSERT INTO parties (`+partyColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		party.ID, party.Kind, party.Name, party.Phone, party.Address,
		decimalToNumeric(party.Balance), party.Status,
		timeToPgTimestamptz(party.CreatedAt), timeToPgTimestamptz(party.UpdatedAt),
	)

	return err
}

// GetByID retrieves a party by ID.
func (r *PartyRepository) GetByID(ctx context.Context, id string) (*domain.Party, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+partyColumns+` FROM parties WHERE id = $1`, id)

	return scanParty(row)
}

// GetByIDForUpdate retrieves a party by ID with a FOR UPDATE lock.
func (r *PartyRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.Party, error) {
	row := txQuerier(tx).QueryRow(ctx,
		`SELECT `+partyColumns+` FROM parties WHERE id = $1 FOR UPDATE`, id)

	return scanParty(row)
}

// UpdateBalance sets the party balance within a transaction.
func (r *PartyRepository) UpdateBalance(ctx context.Context, tx usecase.Transaction, id string, balance decimal.Decimal, updatedAt time.Time) error {
	tag, err := txQuerier(tx).Exec(ctx,
		`UPDATE parties SET balance = $2, updated_at = $3 WHERE id = $1`,
		id, decimalToNumeric(balance), timeToPgTimestamptz(updatedAt),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPartyNotFound
	}

	return nil
}

// UpdateDetails updates the contact fields of a party.
func (r *PartyRepository) UpdateDetails(ctx context.Context, party *domain.Party) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE parties SET name = $2, phone = $3, address = $4, updated_at = $5
		 WHERE id = $1`,
		party.ID, party.Name, party.Phone, party.Address,
		timeToPgTimestamptz(party.UpdatedAt),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPartyNotFound
	}

	return nil
}

// UpdateStatus sets the party status within a transaction.
func (r *PartyRepository) UpdateStatus(ctx context.Context, tx usecase.Transaction, id string, status domain.PartyStatus, updatedAt time.Time) error {
	tag, err := txQuerier(tx).Exec(ctx,
		`UPDATE parties SET status = $2, updated_at = $3 WHERE id = $1`,
		id, status, timeToPgTimestamptz(updatedAt),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPartyNotFound
	}

	return nil
}

// List retrieves parties of a kind ordered by name.
func (r *PartyRepository) List(ctx context.Context, kind domain.PartyKind, limit, offset int) ([]*domain.Party, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+partyColumns+` FROM parties
		 WHERE kind = $1
		 ORDER BY name, id
		 LIMIT $2 OFFSET $3`,
		kind, int32(limit), int32(offset),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	parties := make([]*domain.Party, 0, limit)
	for rows.Next() {
		party, err := scanParty(rows)
		if err != nil {
			return nil, err
		}
		parties = append(parties, party)
	}

	return parties, rows.Err()
}

func scanParty(row pgx.Row) (*domain.Party, error) {
	var (
		p                    domain.Party
		balance              pgtype.Numeric
		createdAt, updatedAt pgtype.Timestamptz
	)

	err := row.Scan(&p.ID, &p.Kind, &p.Name, &p.Phone, &p.Address,
		&balance, &p.Status, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPartyNotFound
		}

		return nil, err
	}

	p.Balance = numericToDecimal(balance)
	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time

	return &p, nil
}

package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/iho/shopledger/internal/domain"
	"github.com/iho/shopledger/internal/usecase"
)

const pgUniqueViolation = "23505"

// EntryRepository implements usecase.EntryRepository.
type EntryRepository struct {
	pool *pgxpool.Pool
}

// NewEntryRepository creates a new EntryRepository.
func NewEntryRepository(pool *pgxpool.Pool) *EntryRepository {
	return &EntryRepository{pool: pool}
}

const entryColumns = `id, party_id, kind, entry_date, amount, method,
	bank_account_id, reference, idempotency_key, created_at, updated_at`

// Create inserts a new ledger entry within a transaction.
func (r *EntryRepository) Create(ctx context.Context, tx usecase.Transaction, entry *domain.LedgerEntry) error {
	_, err := txQuerier(tx).Exec(ctx,
		`INSERT INTO ledger_entries (`+entryColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		entry.ID, entry.PartyID, entry.Kind, timeToPgTimestamptz(entry.EntryDate),
		decimalToNumeric(entry.Amount), entry.Method, textOrNil(entry.BankAccountID),
		entry.Reference, entry.IdempotencyKey,
		timeToPgTimestamptz(entry.CreatedAt), timeToPgTimestamptz(entry.UpdatedAt),
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return domain.ErrDuplicateEntry
		}

		return err
	}

	return nil
}

// Update rewrites the mutable fields of a ledger entry within a transaction.
func (r *EntryRepository) Update(ctx context.Context, tx usecase.Transaction, entry *domain.LedgerEntry) error {
	tag, err := txQuerier(tx).Exec(ctx,
		`UPDATE ledger_entries
		 SET entry_date = $2, amount = $3, method = $4, bank_account_id = $5,
		     reference = $6, updated_at = $7
		 WHERE id = $1`,
		entry.ID, timeToPgTimestamptz(entry.EntryDate), decimalToNumeric(entry.Amount),
		entry.Method, textOrNil(entry.BankAccountID), entry.Reference,
		timeToPgTimestamptz(entry.UpdatedAt),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrEntryNotFound
	}

	return nil
}

// Delete removes a ledger entry within a transaction.
func (r *EntryRepository) Delete(ctx context.Context, tx usecase.Transaction, id string) error {
	tag, err := txQuerier(tx).Exec(ctx,
		`DELETE FROM ledger_entries WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrEntryNotFound
	}

	return nil
}

// GetByID retrieves a ledger entry by ID.
func (r *EntryRepository) GetByID(ctx context.Context, id string) (*domain.LedgerEntry, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+entryColumns+` FROM ledger_entries WHERE id = $1`, id)

	return scanEntry(row)
}

// GetByIDForUpdate retrieves a ledger entry by ID with a FOR UPDATE lock.
func (r *EntryRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.LedgerEntry, error) {
	row := txQuerier(tx).QueryRow(ctx,
		`SELECT `+entryColumns+` FROM ledger_entries WHERE id = $1 FOR UPDATE`, id)

	return scanEntry(row)
}

// GetByIdempotencyKey retrieves the entry recorded under an idempotency key.
func (r *EntryRepository) GetByIdempotencyKey(ctx context.Context, tx usecase.Transaction, key string) (*domain.LedgerEntry, error) {
	row := txQuerier(tx).QueryRow(ctx,
		`SELECT `+entryColumns+` FROM ledger_entries WHERE idempotency_key = $1`, key)

	return scanEntry(row)
}

// ListByParty retrieves all entries for a party, most recent first.
func (r *EntryRepository) ListByParty(ctx context.Context, partyID string) ([]*domain.LedgerEntry, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+entryColumns+` FROM ledger_entries
		 WHERE party_id = $1
		 ORDER BY entry_date DESC, created_at DESC, id DESC`,
		partyID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]*domain.LedgerEntry, 0)
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

// CreateItems inserts the stock lines of an entry within a transaction.
func (r *EntryRepository) CreateItems(ctx context.Context, tx usecase.Transaction, items []*domain.EntryItem) error {
	q := txQuerier(tx)
	for _, item := range items {
		_, err := q.Exec(ctx,
			`INSERT INTO entry_items (id, entry_id, stock_item_id, quantity, unit_price)
			 VALUES ($1, $2, $3, $4, $5)`,
			item.ID, item.EntryID, item.StockItemID, item.Quantity,
			decimalToNumeric(item.UnitPrice),
		)
		if err != nil {
			return err
		}
	}

	return nil
}

// GetItems retrieves the stock lines of an entry within a transaction.
func (r *EntryRepository) GetItems(ctx context.Context, tx usecase.Transaction, entryID string) ([]*domain.EntryItem, error) {
	rows, err := txQuerier(tx).Query(ctx,
		`SELECT id, entry_id, stock_item_id, quantity, unit_price
		 FROM entry_items
		 WHERE entry_id = $1
		 ORDER BY id`,
		entryID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]*domain.EntryItem, 0)
	for rows.Next() {
		var (
			item      domain.EntryItem
			unitPrice pgtype.Numeric
		)
		if err := rows.Scan(&item.ID, &item.EntryID, &item.StockItemID,
			&item.Quantity, &unitPrice); err != nil {
			return nil, err
		}
		item.UnitPrice = numericToDecimal(unitPrice)
		items = append(items, &item)
	}

	return items, rows.Err()
}

// DeleteItems removes all stock lines of an entry within a transaction.
func (r *EntryRepository) DeleteItems(ctx context.Context, tx usecase.Transaction, entryID string) error {
	_, err := txQuerier(tx).Exec(ctx,
		`DELETE FROM entry_items WHERE entry_id = $1`, entryID)

	return err
}

// DayCashTotals sums the cash payments received and cash paid to dealers on
// a calendar day.
func (r *EntryRepository) DayCashTotals(ctx context.Context, day time.Time) (decimal.Decimal, decimal.Decimal, error) {
	var received, toDealers pgtype.Numeric

	err := r.pool.QueryRow(ctx,
		`SELECT
		     COALESCE(SUM(amount) FILTER (WHERE kind = 'payment'), 0),
		     COALESCE(SUM(amount) FILTER (WHERE kind = 'dealer_payment'), 0)
		 FROM ledger_entries
		 WHERE method = 'cash' AND entry_date::date = $1::date`,
		timeToPgTimestamptz(day),
	).Scan(&received, &toDealers)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}

	return numericToDecimal(received), numericToDecimal(toDealers), nil
}

func scanEntry(row pgx.Row) (*domain.LedgerEntry, error) {
	var (
		e                    domain.LedgerEntry
		amount               pgtype.Numeric
		entryDate            pgtype.Timestamptz
		createdAt, updatedAt pgtype.Timestamptz
	)

	err := row.Scan(&e.ID, &e.PartyID, &e.Kind, &entryDate, &amount, &e.Method,
		&e.BankAccountID, &e.Reference, &e.IdempotencyKey, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrEntryNotFound
		}

		return nil, err
	}

	e.EntryDate = entryDate.Time
	e.Amount = numericToDecimal(amount)
	e.CreatedAt = createdAt.Time
	e.UpdatedAt = updatedAt.Time

	return &e, nil
}

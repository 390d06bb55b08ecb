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

// BankRepository implements usecase.BankRepository.
type BankRepository struct {
	pool *pgxpool.Pool
}

// NewBankRepository creates a new BankRepository.
func NewBankRepository(pool *pgxpool.Pool) *BankRepository {
	return &BankRepository{pool: pool}
}

const accountColumns = `id, title, bank_name, account_number, balance, status,
	created_at, updated_at`

const bankTxnColumns = `id, account_id, txn_date, description, direction,
	amount, balance_after, ledger_entry_id, created_at`

// CreateAccountTx inserts a new bank account within a transaction.
func (r *BankRepository) CreateAccountTx(ctx context.Context, tx usecase.Transaction, account *domain.BankAccount) error {
	_, err := txQuerier(tx).Exec(ctx,
		`INSERT INTO bank_accounts (`+accountColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		account.ID, account.Title, account.BankName, account.AccountNumber,
		decimalToNumeric(account.Balance), account.Status,
		timeToPgTimestamptz(account.CreatedAt), timeToPgTimestamptz(account.UpdatedAt),
	)

	return err
}

// GetAccountByID retrieves a bank account by ID.
func (r *BankRepository) GetAccountByID(ctx context.Context, id string) (*domain.BankAccount, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+accountColumns+` FROM bank_accounts WHERE id = $1`, id)

	return scanBankAccount(row)
}

// GetAccountByIDForUpdate retrieves a bank account with a FOR UPDATE lock.
func (r *BankRepository) GetAccountByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.BankAccount, error) {
	row := txQuerier(tx).QueryRow(ctx,
		`SELECT `+accountColumns+` FROM bank_accounts WHERE id = $1 FOR UPDATE`, id)

	return scanBankAccount(row)
}

// UpdateBalance sets the account balance within a transaction.
func (r *BankRepository) UpdateBalance(ctx context.Context, tx usecase.Transaction, id string, balance decimal.Decimal, updatedAt time.Time) error {
	tag, err := txQuerier(tx).Exec(ctx,
		`UPDATE bank_accounts SET balance = $2, updated_at = $3 WHERE id = $1`,
		id, decimalToNumeric(balance), timeToPgTimestamptz(updatedAt),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAccountNotFound
	}

	return nil
}

// UpdateStatus sets the account status within a transaction.
func (r *BankRepository) UpdateStatus(ctx context.Context, tx usecase.Transaction, id string, status domain.AccountStatus, updatedAt time.Time) error {
	tag, err := txQuerier(tx).Exec(ctx,
		`UPDATE bank_accounts SET status = $2, updated_at = $3 WHERE id = $1`,
		id, status, timeToPgTimestamptz(updatedAt),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAccountNotFound
	}

	return nil
}

// ListAccounts retrieves bank accounts ordered by title.
func (r *BankRepository) ListAccounts(ctx context.Context, limit, offset int) ([]*domain.BankAccount, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+accountColumns+` FROM bank_accounts
		 ORDER BY title, id
		 LIMIT $1 OFFSET $2`,
		int32(limit), int32(offset),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	accounts := make([]*domain.BankAccount, 0, limit)
	for rows.Next() {
		account, err := scanBankAccount(rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}

	return accounts, rows.Err()
}

// CreateTransaction appends a bank transaction within a transaction.
func (r *BankRepository) CreateTransaction(ctx context.Context, tx usecase.Transaction, txn *domain.BankTransaction) error {
	_, err := txQuerier(tx).Exec(ctx,
		`INSERT INTO bank_transactions (`+bankTxnColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		txn.ID, txn.AccountID, timeToPgTimestamptz(txn.TxnDate), txn.Description,
		txn.Direction, decimalToNumeric(txn.Amount), decimalToNumeric(txn.BalanceAfter),
		textOrNil(txn.LedgerEntryID), timeToPgTimestamptz(txn.CreatedAt),
	)

	return err
}

// ListTransactions retrieves the transactions of an account, most recent
// first.
func (r *BankRepository) ListTransactions(ctx context.Context, accountID string, limit, offset int) ([]*domain.BankTransaction, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+bankTxnColumns+` FROM bank_transactions
		 WHERE account_id = $1
		 ORDER BY txn_date DESC, created_at DESC, id DESC
		 LIMIT $2 OFFSET $3`,
		accountID, int32(limit), int32(offset),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	txns := make([]*domain.BankTransaction, 0, limit)
	for rows.Next() {
		txn, err := scanBankTransaction(rows)
		if err != nil {
			return nil, err
		}
		txns = append(txns, txn)
	}

	return txns, rows.Err()
}

// SumTransactions returns the signed sum of all transactions of an account.
func (r *BankRepository) SumTransactions(ctx context.Context, accountID string) (decimal.Decimal, error) {
	var sum pgtype.Numeric

	err := r.pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(CASE WHEN direction = 'credit' THEN amount ELSE -amount END), 0)
		 FROM bank_transactions
		 WHERE account_id = $1`,
		accountID,
	).Scan(&sum)
	if err != nil {
		return decimal.Zero, err
	}

	return numericToDecimal(sum), nil
}

func scanBankAccount(row pgx.Row) (*domain.BankAccount, error) {
	var (
		a                    domain.BankAccount
		balance              pgtype.Numeric
		createdAt, updatedAt pgtype.Timestamptz
	)

	err := row.Scan(&a.ID, &a.Title, &a.BankName, &a.AccountNumber,
		&balance, &a.Status, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}

		return nil, err
	}

	a.Balance = numericToDecimal(balance)
	a.CreatedAt = createdAt.Time
	a.UpdatedAt = updatedAt.Time

	return &a, nil
}

func scanBankTransaction(row pgx.Row) (*domain.BankTransaction, error) {
	var (
		t                    domain.BankTransaction
		amount, balanceAfter pgtype.Numeric
		txnDate, createdAt   pgtype.Timestamptz
	)

	err := row.Scan(&t.ID, &t.AccountID, &txnDate, &t.Description, &t.Direction,
		&amount, &balanceAfter, &t.LedgerEntryID, &createdAt)
	if err != nil {
		return nil, err
	}

	t.TxnDate = txnDate.Time
	t.Amount = numericToDecimal(amount)
	t.BalanceAfter = numericToDecimal(balanceAfter)
	t.CreatedAt = createdAt.Time

	return &t, nil
}

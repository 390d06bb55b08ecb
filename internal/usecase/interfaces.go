package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/shopledger/internal/domain"
)

// PartyRepository defines data access for customers and dealers.
type PartyRepository interface {
	CreateTx(ctx context.Context, tx Transaction, party *domain.Party) error
	GetByID(ctx context.Context, id string) (*domain.Party, error)
	GetByIDForUpdate(ctx context.Context, tx Transaction, id string) (*domain.Party, error)
	UpdateBalance(ctx context.Context, tx Transaction, id string, balance decimal.Decimal, updatedAt time.Time) error
	UpdateDetails(ctx context.Context, party *domain.Party) error
	UpdateStatus(ctx context.Context, tx Transaction, id string, status domain.PartyStatus, updatedAt time.Time) error
	List(ctx context.Context, kind domain.PartyKind, limit, offset int) ([]*domain.Party, error)
}

// EntryRepository defines data access for ledger entries and their stock
// lines.
type EntryRepository interface {
	Create(ctx context.Context, tx Transaction, entry *domain.LedgerEntry) error
	Update(ctx context.Context, tx Transaction, entry *domain.LedgerEntry) error
	Delete(ctx context.Context, tx Transaction, id string) error
	GetByID(ctx context.Context, id string) (*domain.LedgerEntry, error)
	GetByIDForUpdate(ctx context.Context, tx Transaction, id string) (*domain.LedgerEntry, error)
	GetByIdempotencyKey(ctx context.Context, tx Transaction, key string) (*domain.LedgerEntry, error)
	ListByParty(ctx context.Context, partyID string) ([]*domain.LedgerEntry, error)
	CreateItems(ctx context.Context, tx Transaction, items []*domain.EntryItem) error
	GetItems(ctx context.Context, tx Transaction, entryID string) ([]*domain.EntryItem, error)
	DeleteItems(ctx context.Context, tx Transaction, entryID string) error
	DayCashTotals(ctx context.Context, day time.Time) (cashReceived, cashToDealers decimal.Decimal, err error)
}

// BankRepository defines data access for bank accounts and their
// transactions.
type BankRepository interface {
	CreateAccountTx(ctx context.Context, tx Transaction, account *domain.BankAccount) error
	GetAccountByID(ctx context.Context, id string) (*domain.BankAccount, error)
	GetAccountByIDForUpdate(ctx context.Context, tx Transaction, id string) (*domain.BankAccount, error)
	UpdateBalance(ctx context.Context, tx Transaction, id string, balance decimal.Decimal, updatedAt time.Time) error
	UpdateStatus(ctx context.Context, tx Transaction, id string, status domain.AccountStatus, updatedAt time.Time) error
	ListAccounts(ctx context.Context, limit, offset int) ([]*domain.BankAccount, error)
	CreateTransaction(ctx context.Context, tx Transaction, txn *domain.BankTransaction) error
	ListTransactions(ctx context.Context, accountID string, limit, offset int) ([]*domain.BankTransaction, error)
	SumTransactions(ctx context.Context, accountID string) (decimal.Decimal, error)
}

// StockRepository defines data access for stock items.
type StockRepository interface {
	Create(ctx context.Context, item *domain.StockItem) error
	GetByID(ctx context.Context, id string) (*domain.StockItem, error)
	GetByIDForUpdate(ctx context.Context, tx Transaction, id string) (*domain.StockItem, error)
	GetByIDsForUpdate(ctx context.Context, tx Transaction, ids []string) ([]*domain.StockItem, error)
	UpdateCount(ctx context.Context, tx Transaction, id string, stock int64, updatedAt time.Time) error
	UpdateDetails(ctx context.Context, item *domain.StockItem) error
	List(ctx context.Context, kind domain.StockItemKind, limit, offset int) ([]*domain.StockItem, error)
}

// AggregateRepository defines data access for aggregate stock singletons and
// their movements.
type AggregateRepository interface {
	Get(ctx context.Context, resource domain.AggregateResource) (*domain.AggregateStock, error)
	GetForUpdate(ctx context.Context, tx Transaction, resource domain.AggregateResource) (*domain.AggregateStock, error)
	Update(ctx context.Context, tx Transaction, resource domain.AggregateResource, quantity, value decimal.Decimal, updatedAt time.Time) error
	CreateMovement(ctx context.Context, tx Transaction, movement *domain.AggregateMovement) error
	ListMovements(ctx context.Context, resource domain.AggregateResource, limit, offset int) ([]*domain.AggregateMovement, error)
	SumMovements(ctx context.Context, resource domain.AggregateResource) (quantity, value decimal.Decimal, err error)
	DayCashForScrap(ctx context.Context, day time.Time) (decimal.Decimal, error)
}

// OutboxRepository defines data access for outbox events.
type OutboxRepository interface {
	Create(ctx context.Context, tx Transaction, event *domain.OutboxEvent) error
	GetUnpublished(ctx context.Context, limit int) ([]*domain.OutboxEvent, error)
	MarkPublished(ctx context.Context, id string, publishedAt time.Time) error
	DeletePublished(ctx context.Context, before time.Time) error
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// Retrier re-runs an operation on retryable storage conflicts.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Cache defines caching operations.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}

package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/shopledger/internal/domain"
	"github.com/iho/shopledger/internal/infrastructure/metrics"
)

// TransactionFailedError wraps any failure from the write phase or commit of
// an atomic unit. Guard and not-found errors from the read phase surface
// unwrapped.
type TransactionFailedError struct {
	Op  string
	Err error
}

func (e *TransactionFailedError) Error() string {
	return fmt.Sprintf("transaction %q failed: %v", e.Op, e.Err)
}

func (e *TransactionFailedError) Unwrap() error {
	return e.Err
}

type repoSet struct {
	parties    PartyRepository
	entries    EntryRepository
	banks      BankRepository
	stock      StockRepository
	aggregates AggregateRepository
	outbox     OutboxRepository
}

// Reads is the read phase of an atomic unit: every fetch takes a row lock
// inside the open transaction. A transaction body receives a Reads, performs
// all its reads, and returns a Plan computed purely from the values read.
// The Plan can only stage writes, so write-producing code has no handle that
// can read. This mirrors the reads-before-writes discipline the executor's
// callers must keep for the ledger to stay replayable.
type Reads struct {
	tx    Transaction
	repos *repoSet
}

// Party fetches and locks a party.
func (r *Reads) Party(ctx context.Context, id string) (*domain.Party, error) {
	return r.repos.parties.GetByIDForUpdate(ctx, r.tx, id)
}

// BankAccount fetches and locks a bank account.
func (r *Reads) BankAccount(ctx context.Context, id string) (*domain.BankAccount, error) {
	return r.repos.banks.GetAccountByIDForUpdate(ctx, r.tx, id)
}

// Entry fetches and locks a ledger entry.
func (r *Reads) Entry(ctx context.Context, id string) (*domain.LedgerEntry, error) {
	return r.repos.entries.GetByIDForUpdate(ctx, r.tx, id)
}

// EntryByIdempotencyKey fetches an existing entry carrying the key, or
// domain.ErrEntryNotFound when there is none.
func (r *Reads) EntryByIdempotencyKey(ctx context.Context, key string) (*domain.LedgerEntry, error) {
	return r.repos.entries.GetByIdempotencyKey(ctx, r.tx, key)
}

// EntryItems fetches the stock lines of an entry.
func (r *Reads) EntryItems(ctx context.Context, entryID string) ([]*domain.EntryItem, error) {
	return r.repos.entries.GetItems(ctx, r.tx, entryID)
}

// StockItem fetches and locks a stock item.
func (r *Reads) StockItem(ctx context.Context, id string) (*domain.StockItem, error) {
	return r.repos.stock.GetByIDForUpdate(ctx, r.tx, id)
}

// StockItems fetches and locks multiple stock items. IDs must already be
// sorted by the caller (deadlock prevention).
func (r *Reads) StockItems(ctx context.Context, ids []string) ([]*domain.StockItem, error) {
	return r.repos.stock.GetByIDsForUpdate(ctx, r.tx, ids)
}

// Aggregate fetches and locks an aggregate stock row.
func (r *Reads) Aggregate(ctx context.Context, resource domain.AggregateResource) (*domain.AggregateStock, error) {
	return r.repos.aggregates.GetForUpdate(ctx, r.tx, resource)
}

type writeFn func(ctx context.Context, tx Transaction, repos *repoSet) error

// Plan is the write phase of an atomic unit: a fixed set of writes computed
// from the read phase, applied in staging order after the body returns.
type Plan struct {
	writes []writeFn
}

// NewPlan creates an empty Plan.
func NewPlan() *Plan {
	return &Plan{}
}

// CreateParty stages a party creation.
func (p *Plan) CreateParty(party *domain.Party) {
	p.writes = append(p.writes, func(ctx context.Context, tx Transaction, repos *repoSet) error {
		return repos.parties.CreateTx(ctx, tx, party)
	})
}

// SetPartyBalance stages a party balance update.
func (p *Plan) SetPartyBalance(party *domain.Party, balance decimal.Decimal) {
	p.writes = append(p.writes, func(ctx context.Context, tx Transaction, repos *repoSet) error {
		return repos.parties.UpdateBalance(ctx, tx, party.ID, balance, party.UpdatedAt)
	})
}

// SetPartyStatus stages a party status change.
func (p *Plan) SetPartyStatus(party *domain.Party, status domain.PartyStatus) {
	p.writes = append(p.writes, func(ctx context.Context, tx Transaction, repos *repoSet) error {
		return repos.parties.UpdateStatus(ctx, tx, party.ID, status, party.UpdatedAt)
	})
}

// CreateEntry stages a ledger entry creation.
func (p *Plan) CreateEntry(entry *domain.LedgerEntry) {
	p.writes = append(p.writes, func(ctx context.Context, tx Transaction, repos *repoSet) error {
		return repos.entries.Create(ctx, tx, entry)
	})
}

// UpdateEntry stages a ledger entry update.
func (p *Plan) UpdateEntry(entry *domain.LedgerEntry) {
	p.writes = append(p.writes, func(ctx context.Context, tx Transaction, repos *repoSet) error {
		return repos.entries.Update(ctx, tx, entry)
	})
}

// DeleteEntry stages a ledger entry deletion.
func (p *Plan) DeleteEntry(id string) {
	p.writes = append(p.writes, func(ctx context.Context, tx Transaction, repos *repoSet) error {
		return repos.entries.Delete(ctx, tx, id)
	})
}

// CreateItems stages entry stock lines.
func (p *Plan) CreateItems(items []*domain.EntryItem) {
	p.writes = append(p.writes, func(ctx context.Context, tx Transaction, repos *repoSet) error {
		return repos.entries.CreateItems(ctx, tx, items)
	})
}

// DeleteItems stages deletion of an entry's stock lines.
func (p *Plan) DeleteItems(entryID string) {
	p.writes = append(p.writes, func(ctx context.Context, tx Transaction, repos *repoSet) error {
		return repos.entries.DeleteItems(ctx, tx, entryID)
	})
}

// CreateBankAccount stages a bank account creation.
func (p *Plan) CreateBankAccount(account *domain.BankAccount) {
	p.writes = append(p.writes, func(ctx context.Context, tx Transaction, repos *repoSet) error {
		return repos.banks.CreateAccountTx(ctx, tx, account)
	})
}

// SetBankBalance stages a bank account balance update.
func (p *Plan) SetBankBalance(account *domain.BankAccount, balance decimal.Decimal) {
	p.writes = append(p.writes, func(ctx context.Context, tx Transaction, repos *repoSet) error {
		return repos.banks.UpdateBalance(ctx, tx, account.ID, balance, account.UpdatedAt)
	})
}

// SetAccountStatus stages a bank account status change.
func (p *Plan) SetAccountStatus(account *domain.BankAccount, status domain.AccountStatus) {
	p.writes = append(p.writes, func(ctx context.Context, tx Transaction, repos *repoSet) error {
		return repos.banks.UpdateStatus(ctx, tx, account.ID, status, account.UpdatedAt)
	})
}

// AppendBankTransaction stages a bank transaction row.
func (p *Plan) AppendBankTransaction(txn *domain.BankTransaction) {
	p.writes = append(p.writes, func(ctx context.Context, tx Transaction, repos *repoSet) error {
		return repos.banks.CreateTransaction(ctx, tx, txn)
	})
}

// SetStockCount stages a stock count update.
func (p *Plan) SetStockCount(item *domain.StockItem, stock int64) {
	p.writes = append(p.writes, func(ctx context.Context, tx Transaction, repos *repoSet) error {
		return repos.stock.UpdateCount(ctx, tx, item.ID, stock, item.UpdatedAt)
	})
}

// SetAggregate stages an aggregate stock update.
func (p *Plan) SetAggregate(agg *domain.AggregateStock, quantity, value decimal.Decimal) {
	p.writes = append(p.writes, func(ctx context.Context, tx Transaction, repos *repoSet) error {
		return repos.aggregates.Update(ctx, tx, agg.Resource, quantity, value, agg.UpdatedAt)
	})
}

// CreateMovement stages an aggregate movement row.
func (p *Plan) CreateMovement(movement *domain.AggregateMovement) {
	p.writes = append(p.writes, func(ctx context.Context, tx Transaction, repos *repoSet) error {
		return repos.aggregates.CreateMovement(ctx, tx, movement)
	})
}

// AddEvent stages an outbox event.
func (p *Plan) AddEvent(event *domain.OutboxEvent) {
	p.writes = append(p.writes, func(ctx context.Context, tx Transaction, repos *repoSet) error {
		return repos.outbox.Create(ctx, tx, event)
	})
}

// Empty reports whether the plan stages no writes.
func (p *Plan) Empty() bool {
	return len(p.writes) == 0
}

// Executor runs transaction bodies as all-or-nothing units. Reads happen
// first through Reads, the returned Plan is applied write by write, and the
// whole unit commits or nothing is observed. Serialization conflicts retry
// the whole body, so bodies must be pure functions of what they read.
type Executor struct {
	txManager TransactionManager
	retrier   Retrier
	repos     repoSet
	metrics   *metrics.Metrics
}

// NewExecutor creates a new Executor.
func NewExecutor(
	txManager TransactionManager,
	retrier Retrier,
	parties PartyRepository,
	entries EntryRepository,
	banks BankRepository,
	stock StockRepository,
	aggregates AggregateRepository,
	outbox OutboxRepository,
) *Executor {
	return &Executor{
		txManager: txManager,
		retrier:   retrier,
		repos: repoSet{
			parties:    parties,
			entries:    entries,
			banks:      banks,
			stock:      stock,
			aggregates: aggregates,
			outbox:     outbox,
		},
	}
}

// WithMetrics attaches Prometheus metrics to the executor. A nil receiver
// field disables instrumentation, so tests can skip it.
func (e *Executor) WithMetrics(m *metrics.Metrics) *Executor {
	e.metrics = m
	return e
}

// Run executes one atomic unit. Errors returned by the body abort before any
// write and surface as-is; write-phase and commit failures are wrapped in
// TransactionFailedError.
func (e *Executor) Run(ctx context.Context, op string, body func(ctx context.Context, r *Reads) (*Plan, error)) error {
	start := time.Now()

	run := func() error {
		tx, err := e.txManager.Begin(ctx)
		if err != nil {
			return &TransactionFailedError{Op: op, Err: err}
		}
		defer tx.Rollback(ctx)

		plan, err := body(ctx, &Reads{tx: tx, repos: &e.repos})
		if err != nil {
			return err
		}

		// An empty plan is a no-op (idempotent replay); nothing to commit.
		if plan == nil || plan.Empty() {
			return nil
		}

		for _, write := range plan.writes {
			if err := write(ctx, tx, &e.repos); err != nil {
				return &TransactionFailedError{Op: op, Err: err}
			}
		}

		if err := tx.Commit(ctx); err != nil {
			return &TransactionFailedError{Op: op, Err: err}
		}

		return nil
	}

	err := e.retrier.Retry(ctx, run)

	if e.metrics != nil {
		status := "success"
		if err != nil {
			status = "failure"
		}
		e.metrics.LedgerTransactions.WithLabelValues(op, status).Inc()
		e.metrics.LedgerTxDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	}

	return err
}

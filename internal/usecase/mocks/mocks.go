package mocks

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/shopledger/internal/domain"
	"github.com/iho/shopledger/internal/usecase"
)

// MockPartyRepository is a mock implementation of PartyRepository.
type MockPartyRepository struct {
	mu      sync.RWMutex
	parties map[string]*domain.Party

	CreateTxFunc         func(ctx context.Context, tx usecase.Transaction, party *domain.Party) error
	GetByIDFunc          func(ctx context.Context, id string) (*domain.Party, error)
	GetByIDForUpdateFunc func(ctx context.Context, tx usecase.Transaction, id string) (*domain.Party, error)
	UpdateBalanceFunc    func(ctx context.Context, tx usecase.Transaction, id string, balance decimal.Decimal, updatedAt time.Time) error
	UpdateDetailsFunc    func(ctx context.Context, party *domain.Party) error
	UpdateStatusFunc     func(ctx context.Context, tx usecase.Transaction, id string, status domain.PartyStatus, updatedAt time.Time) error
	ListFunc             func(ctx context.Context, kind domain.PartyKind, limit, offset int) ([]*domain.Party, error)
}

func NewMockPartyRepository() *MockPartyRepository {
	return &MockPartyRepository{
		parties: make(map[string]*domain.Party),
	}
}

// Seed puts a party into the backing store directly.
func (m *MockPartyRepository) Seed(party *domain.Party) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.parties[party.ID] = party
}

func (m *MockPartyRepository) CreateTx(ctx context.Context, tx usecase.Transaction, party *domain.Party) error {
	if m.CreateTxFunc != nil {
		return m.CreateTxFunc(ctx, tx, party)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.parties[party.ID] = party
	return nil
}

func (m *MockPartyRepository) GetByID(ctx context.Context, id string) (*domain.Party, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if p, ok := m.parties[id]; ok {
		return p, nil
	}
	return nil, domain.ErrPartyNotFound
}

func (m *MockPartyRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.Party, error) {
	if m.GetByIDForUpdateFunc != nil {
		return m.GetByIDForUpdateFunc(ctx, tx, id)
	}
	return m.GetByID(ctx, id)
}

func (m *MockPartyRepository) UpdateBalance(ctx context.Context, tx usecase.Transaction, id string, balance decimal.Decimal, updatedAt time.Time) error {
	if m.UpdateBalanceFunc != nil {
		return m.UpdateBalanceFunc(ctx, tx, id, balance, updatedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if p, ok := m.parties[id]; ok {
		p.Balance = balance
		p.UpdatedAt = updatedAt
	}
	return nil
}

func (m *MockPartyRepository) UpdateDetails(ctx context.Context, party *domain.Party) error {
	if m.UpdateDetailsFunc != nil {
		return m.UpdateDetailsFunc(ctx, party)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.parties[party.ID] = party
	return nil
}

func (m *MockPartyRepository) UpdateStatus(ctx context.Context, tx usecase.Transaction, id string, status domain.PartyStatus, updatedAt time.Time) error {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, tx, id, status, updatedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if p, ok := m.parties[id]; ok {
		p.Status = status
		p.UpdatedAt = updatedAt
	}
	return nil
}

func (m *MockPartyRepository) List(ctx context.Context, kind domain.PartyKind, limit, offset int) ([]*domain.Party, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, kind, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var parties []*domain.Party
	for _, p := range m.parties {
		if p.Kind == kind {
			parties = append(parties, p)
		}
	}
	return parties, nil
}

// MockEntryRepository is a mock implementation of EntryRepository.
type MockEntryRepository struct {
	mu      sync.RWMutex
	entries map[string]*domain.LedgerEntry
	items   map[string][]*domain.EntryItem

	CreateFunc              func(ctx context.Context, tx usecase.Transaction, entry *domain.LedgerEntry) error
	UpdateFunc              func(ctx context.Context, tx usecase.Transaction, entry *domain.LedgerEntry) error
	DeleteFunc              func(ctx context.Context, tx usecase.Transaction, id string) error
	GetByIDFunc             func(ctx context.Context, id string) (*domain.LedgerEntry, error)
	GetByIDForUpdateFunc    func(ctx context.Context, tx usecase.Transaction, id string) (*domain.LedgerEntry, error)
	GetByIdempotencyKeyFunc func(ctx context.Context, tx usecase.Transaction, key string) (*domain.LedgerEntry, error)
	ListByPartyFunc         func(ctx context.Context, partyID string) ([]*domain.LedgerEntry, error)
	CreateItemsFunc         func(ctx context.Context, tx usecase.Transaction, items []*domain.EntryItem) error
	GetItemsFunc            func(ctx context.Context, tx usecase.Transaction, entryID string) ([]*domain.EntryItem, error)
	DeleteItemsFunc         func(ctx context.Context, tx usecase.Transaction, entryID string) error
	DayCashTotalsFunc       func(ctx context.Context, day time.Time) (decimal.Decimal, decimal.Decimal, error)
}

func NewMockEntryRepository() *MockEntryRepository {
	return &MockEntryRepository{
		entries: make(map[string]*domain.LedgerEntry),
		items:   make(map[string][]*domain.EntryItem),
	}
}

// Seed puts an entry into the backing store directly.
func (m *MockEntryRepository) Seed(entry *domain.LedgerEntry) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[entry.ID] = entry
}

func (m *MockEntryRepository) Create(ctx context.Context, tx usecase.Transaction, entry *domain.LedgerEntry) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, entry)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[entry.ID] = entry
	return nil
}

func (m *MockEntryRepository) Update(ctx context.Context, tx usecase.Transaction, entry *domain.LedgerEntry) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, tx, entry)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[entry.ID] = entry
	return nil
}

func (m *MockEntryRepository) Delete(ctx context.Context, tx usecase.Transaction, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, tx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, id)
	return nil
}

func (m *MockEntryRepository) GetByID(ctx context.Context, id string) (*domain.LedgerEntry, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if e, ok := m.entries[id]; ok {
		return e, nil
	}
	return nil, domain.ErrEntryNotFound
}

func (m *MockEntryRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.LedgerEntry, error) {
	if m.GetByIDForUpdateFunc != nil {
		return m.GetByIDForUpdateFunc(ctx, tx, id)
	}
	return m.GetByID(ctx, id)
}

func (m *MockEntryRepository) GetByIdempotencyKey(ctx context.Context, tx usecase.Transaction, key string) (*domain.LedgerEntry, error) {
	if m.GetByIdempotencyKeyFunc != nil {
		return m.GetByIdempotencyKeyFunc(ctx, tx, key)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, e := range m.entries {
		if e.IdempotencyKey != "" && e.IdempotencyKey == key {
			return e, nil
		}
	}
	return nil, domain.ErrEntryNotFound
}

func (m *MockEntryRepository) ListByParty(ctx context.Context, partyID string) ([]*domain.LedgerEntry, error) {
	if m.ListByPartyFunc != nil {
		return m.ListByPartyFunc(ctx, partyID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var entries []*domain.LedgerEntry
	for _, e := range m.entries {
		if e.PartyID == partyID {
			entries = append(entries, e)
		}
	}
	return entries, nil
}

func (m *MockEntryRepository) CreateItems(ctx context.Context, tx usecase.Transaction, items []*domain.EntryItem) error {
	if m.CreateItemsFunc != nil {
		return m.CreateItemsFunc(ctx, tx, items)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, item := range items {
		m.items[item.EntryID] = append(m.items[item.EntryID], item)
	}
	return nil
}

func (m *MockEntryRepository) GetItems(ctx context.Context, tx usecase.Transaction, entryID string) ([]*domain.EntryItem, error) {
	if m.GetItemsFunc != nil {
		return m.GetItemsFunc(ctx, tx, entryID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.items[entryID], nil
}

func (m *MockEntryRepository) DeleteItems(ctx context.Context, tx usecase.Transaction, entryID string) error {
	if m.DeleteItemsFunc != nil {
		return m.DeleteItemsFunc(ctx, tx, entryID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, entryID)
	return nil
}

func (m *MockEntryRepository) DayCashTotals(ctx context.Context, day time.Time) (decimal.Decimal, decimal.Decimal, error) {
	if m.DayCashTotalsFunc != nil {
		return m.DayCashTotalsFunc(ctx, day)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	received := decimal.Zero
	toDealers := decimal.Zero
	for _, e := range m.entries {
		if e.Method != domain.MethodCash || !sameDay(e.EntryDate, day) {
			continue
		}
		switch e.Kind {
		case domain.EntryPayment:
			received = received.Add(e.Amount)
		case domain.EntryDealerPayment:
			toDealers = toDealers.Add(e.Amount)
		}
	}
	return received, toDealers, nil
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// MockBankRepository is a mock implementation of BankRepository.
type MockBankRepository struct {
	mu       sync.RWMutex
	accounts map[string]*domain.BankAccount
	txns     map[string][]*domain.BankTransaction

	CreateAccountTxFunc         func(ctx context.Context, tx usecase.Transaction, account *domain.BankAccount) error
	GetAccountByIDFunc          func(ctx context.Context, id string) (*domain.BankAccount, error)
	GetAccountByIDForUpdateFunc func(ctx context.Context, tx usecase.Transaction, id string) (*domain.BankAccount, error)
	UpdateBalanceFunc           func(ctx context.Context, tx usecase.Transaction, id string, balance decimal.Decimal, updatedAt time.Time) error
	UpdateStatusFunc            func(ctx context.Context, tx usecase.Transaction, id string, status domain.AccountStatus, updatedAt time.Time) error
	ListAccountsFunc            func(ctx context.Context, limit, offset int) ([]*domain.BankAccount, error)
	CreateTransactionFunc       func(ctx context.Context, tx usecase.Transaction, txn *domain.BankTransaction) error
	ListTransactionsFunc        func(ctx context.Context, accountID string, limit, offset int) ([]*domain.BankTransaction, error)
	SumTransactionsFunc         func(ctx context.Context, accountID string) (decimal.Decimal, error)
}

func NewMockBankRepository() *MockBankRepository {
	return &MockBankRepository{
		accounts: make(map[string]*domain.BankAccount),
		txns:     make(map[string][]*domain.BankTransaction),
	}
}

// Seed puts an account into the backing store directly.
func (m *MockBankRepository) Seed(account *domain.BankAccount) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accounts[account.ID] = account
}

// Transactions returns the recorded transactions of an account.
func (m *MockBankRepository) Transactions(accountID string) []*domain.BankTransaction {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.txns[accountID]
}

func (m *MockBankRepository) CreateAccountTx(ctx context.Context, tx usecase.Transaction, account *domain.BankAccount) error {
	if m.CreateAccountTxFunc != nil {
		return m.CreateAccountTxFunc(ctx, tx, account)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accounts[account.ID] = account
	return nil
}

func (m *MockBankRepository) GetAccountByID(ctx context.Context, id string) (*domain.BankAccount, error) {
	if m.GetAccountByIDFunc != nil {
		return m.GetAccountByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if a, ok := m.accounts[id]; ok {
		return a, nil
	}
	return nil, domain.ErrAccountNotFound
}

func (m *MockBankRepository) GetAccountByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.BankAccount, error) {
	if m.GetAccountByIDForUpdateFunc != nil {
		return m.GetAccountByIDForUpdateFunc(ctx, tx, id)
	}
	return m.GetAccountByID(ctx, id)
}

func (m *MockBankRepository) UpdateBalance(ctx context.Context, tx usecase.Transaction, id string, balance decimal.Decimal, updatedAt time.Time) error {
	if m.UpdateBalanceFunc != nil {
		return m.UpdateBalanceFunc(ctx, tx, id, balance, updatedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if a, ok := m.accounts[id]; ok {
		a.Balance = balance
		a.UpdatedAt = updatedAt
	}
	return nil
}

func (m *MockBankRepository) UpdateStatus(ctx context.Context, tx usecase.Transaction, id string, status domain.AccountStatus, updatedAt time.Time) error {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, tx, id, status, updatedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if a, ok := m.accounts[id]; ok {
		a.Status = status
		a.UpdatedAt = updatedAt
	}
	return nil
}

func (m *MockBankRepository) ListAccounts(ctx context.Context, limit, offset int) ([]*domain.BankAccount, error) {
	if m.ListAccountsFunc != nil {
		return m.ListAccountsFunc(ctx, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var accounts []*domain.BankAccount
	for _, a := range m.accounts {
		accounts = append(accounts, a)
	}
	return accounts, nil
}

func (m *MockBankRepository) CreateTransaction(ctx context.Context, tx usecase.Transaction, txn *domain.BankTransaction) error {
	if m.CreateTransactionFunc != nil {
		return m.CreateTransactionFunc(ctx, tx, txn)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.txns[txn.AccountID] = append(m.txns[txn.AccountID], txn)
	return nil
}

func (m *MockBankRepository) ListTransactions(ctx context.Context, accountID string, limit, offset int) ([]*domain.BankTransaction, error) {
	if m.ListTransactionsFunc != nil {
		return m.ListTransactionsFunc(ctx, accountID, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.txns[accountID], nil
}

func (m *MockBankRepository) SumTransactions(ctx context.Context, accountID string) (decimal.Decimal, error) {
	if m.SumTransactionsFunc != nil {
		return m.SumTransactionsFunc(ctx, accountID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	sum := decimal.Zero
	for _, txn := range m.txns[accountID] {
		sum = sum.Add(txn.SignedAmount())
	}
	return sum, nil
}

// MockStockRepository is a mock implementation of StockRepository.
type MockStockRepository struct {
	mu    sync.RWMutex
	items map[string]*domain.StockItem

	CreateFunc            func(ctx context.Context, item *domain.StockItem) error
	GetByIDFunc           func(ctx context.Context, id string) (*domain.StockItem, error)
	GetByIDForUpdateFunc  func(ctx context.Context, tx usecase.Transaction, id string) (*domain.StockItem, error)
	GetByIDsForUpdateFunc func(ctx context.Context, tx usecase.Transaction, ids []string) ([]*domain.StockItem, error)
	UpdateCountFunc       func(ctx context.Context, tx usecase.Transaction, id string, stock int64, updatedAt time.Time) error
	UpdateDetailsFunc     func(ctx context.Context, item *domain.StockItem) error
	ListFunc              func(ctx context.Context, kind domain.StockItemKind, limit, offset int) ([]*domain.StockItem, error)
}

func NewMockStockRepository() *MockStockRepository {
	return &MockStockRepository{
		items: make(map[string]*domain.StockItem),
	}
}

// Seed puts a stock item into the backing store directly.
func (m *MockStockRepository) Seed(item *domain.StockItem) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[item.ID] = item
}

func (m *MockStockRepository) Create(ctx context.Context, item *domain.StockItem) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, item)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[item.ID] = item
	return nil
}

func (m *MockStockRepository) GetByID(ctx context.Context, id string) (*domain.StockItem, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if item, ok := m.items[id]; ok {
		return item, nil
	}
	return nil, domain.ErrStockItemNotFound
}

func (m *MockStockRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.StockItem, error) {
	if m.GetByIDForUpdateFunc != nil {
		return m.GetByIDForUpdateFunc(ctx, tx, id)
	}
	return m.GetByID(ctx, id)
}

func (m *MockStockRepository) GetByIDsForUpdate(ctx context.Context, tx usecase.Transaction, ids []string) ([]*domain.StockItem, error) {
	if m.GetByIDsForUpdateFunc != nil {
		return m.GetByIDsForUpdateFunc(ctx, tx, ids)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var items []*domain.StockItem
	for _, id := range ids {
		if item, ok := m.items[id]; ok {
			items = append(items, item)
		}
	}
	return items, nil
}

func (m *MockStockRepository) UpdateCount(ctx context.Context, tx usecase.Transaction, id string, stock int64, updatedAt time.Time) error {
	if m.UpdateCountFunc != nil {
		return m.UpdateCountFunc(ctx, tx, id, stock, updatedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if item, ok := m.items[id]; ok {
		item.Stock = stock
		item.UpdatedAt = updatedAt
	}
	return nil
}

func (m *MockStockRepository) UpdateDetails(ctx context.Context, item *domain.StockItem) error {
	if m.UpdateDetailsFunc != nil {
		return m.UpdateDetailsFunc(ctx, item)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[item.ID] = item
	return nil
}

func (m *MockStockRepository) List(ctx context.Context, kind domain.StockItemKind, limit, offset int) ([]*domain.StockItem, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, kind, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var items []*domain.StockItem
	for _, item := range m.items {
		if item.Kind == kind {
			items = append(items, item)
		}
	}
	return items, nil
}

// MockAggregateRepository is a mock implementation of AggregateRepository.
type MockAggregateRepository struct {
	mu         sync.RWMutex
	aggregates map[domain.AggregateResource]*domain.AggregateStock
	movements  []*domain.AggregateMovement

	GetFunc             func(ctx context.Context, resource domain.AggregateResource) (*domain.AggregateStock, error)
	GetForUpdateFunc    func(ctx context.Context, tx usecase.Transaction, resource domain.AggregateResource) (*domain.AggregateStock, error)
	UpdateFunc          func(ctx context.Context, tx usecase.Transaction, resource domain.AggregateResource, quantity, value decimal.Decimal, updatedAt time.Time) error
	CreateMovementFunc  func(ctx context.Context, tx usecase.Transaction, movement *domain.AggregateMovement) error
	ListMovementsFunc   func(ctx context.Context, resource domain.AggregateResource, limit, offset int) ([]*domain.AggregateMovement, error)
	SumMovementsFunc    func(ctx context.Context, resource domain.AggregateResource) (decimal.Decimal, decimal.Decimal, error)
	DayCashForScrapFunc func(ctx context.Context, day time.Time) (decimal.Decimal, error)
}

func NewMockAggregateRepository() *MockAggregateRepository {
	return &MockAggregateRepository{
		aggregates: make(map[domain.AggregateResource]*domain.AggregateStock),
	}
}

// Seed puts an aggregate row into the backing store directly.
func (m *MockAggregateRepository) Seed(agg *domain.AggregateStock) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.aggregates[agg.Resource] = agg
}

func (m *MockAggregateRepository) Get(ctx context.Context, resource domain.AggregateResource) (*domain.AggregateStock, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, resource)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if agg, ok := m.aggregates[resource]; ok {
		return agg, nil
	}
	return nil, domain.ErrAggregateNotFound
}

func (m *MockAggregateRepository) GetForUpdate(ctx context.Context, tx usecase.Transaction, resource domain.AggregateResource) (*domain.AggregateStock, error) {
	if m.GetForUpdateFunc != nil {
		return m.GetForUpdateFunc(ctx, tx, resource)
	}
	return m.Get(ctx, resource)
}

func (m *MockAggregateRepository) Update(ctx context.Context, tx usecase.Transaction, resource domain.AggregateResource, quantity, value decimal.Decimal, updatedAt time.Time) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, tx, resource, quantity, value, updatedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if agg, ok := m.aggregates[resource]; ok {
		agg.Quantity = quantity
		agg.Value = value
		agg.UpdatedAt = updatedAt
	}
	return nil
}

func (m *MockAggregateRepository) CreateMovement(ctx context.Context, tx usecase.Transaction, movement *domain.AggregateMovement) error {
	if m.CreateMovementFunc != nil {
		return m.CreateMovementFunc(ctx, tx, movement)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.movements = append(m.movements, movement)
	return nil
}

func (m *MockAggregateRepository) ListMovements(ctx context.Context, resource domain.AggregateResource, limit, offset int) ([]*domain.AggregateMovement, error) {
	if m.ListMovementsFunc != nil {
		return m.ListMovementsFunc(ctx, resource, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var movements []*domain.AggregateMovement
	for _, mv := range m.movements {
		if mv.Resource == resource {
			movements = append(movements, mv)
		}
	}
	return movements, nil
}

func (m *MockAggregateRepository) SumMovements(ctx context.Context, resource domain.AggregateResource) (decimal.Decimal, decimal.Decimal, error) {
	if m.SumMovementsFunc != nil {
		return m.SumMovementsFunc(ctx, resource)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	quantity := decimal.Zero
	value := decimal.Zero
	for _, mv := range m.movements {
		if mv.Resource == resource {
			quantity = quantity.Add(mv.SignedQuantity())
			value = value.Add(mv.SignedValue())
		}
	}
	return quantity, value, nil
}

func (m *MockAggregateRepository) DayCashForScrap(ctx context.Context, day time.Time) (decimal.Decimal, error) {
	if m.DayCashForScrapFunc != nil {
		return m.DayCashForScrapFunc(ctx, day)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	total := decimal.Zero
	for _, mv := range m.movements {
		if mv.Direction == domain.MovementPurchase && mv.Method == domain.MethodCash && sameDay(mv.MovedAt, day) {
			total = total.Add(mv.Value)
		}
	}
	return total, nil
}

// MockOutboxRepository is a mock implementation of OutboxRepository.
type MockOutboxRepository struct {
	mu     sync.RWMutex
	events []*domain.OutboxEvent

	CreateFunc          func(ctx context.Context, tx usecase.Transaction, event *domain.OutboxEvent) error
	GetUnpublishedFunc  func(ctx context.Context, limit int) ([]*domain.OutboxEvent, error)
	MarkPublishedFunc   func(ctx context.Context, id string, publishedAt time.Time) error
	DeletePublishedFunc func(ctx context.Context, before time.Time) error
}

func NewMockOutboxRepository() *MockOutboxRepository {
	return &MockOutboxRepository{}
}

// Events returns every recorded event.
func (m *MockOutboxRepository) Events() []*domain.OutboxEvent {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.events
}

func (m *MockOutboxRepository) Create(ctx context.Context, tx usecase.Transaction, event *domain.OutboxEvent) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, event)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, event)
	return nil
}

func (m *MockOutboxRepository) GetUnpublished(ctx context.Context, limit int) ([]*domain.OutboxEvent, error) {
	if m.GetUnpublishedFunc != nil {
		return m.GetUnpublishedFunc(ctx, limit)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var unpublished []*domain.OutboxEvent
	for _, e := range m.events {
		if !e.Published {
			unpublished = append(unpublished, e)
		}
	}
	return unpublished, nil
}

func (m *MockOutboxRepository) MarkPublished(ctx context.Context, id string, publishedAt time.Time) error {
	if m.MarkPublishedFunc != nil {
		return m.MarkPublishedFunc(ctx, id, publishedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.events {
		if e.ID == id {
			e.Published = true
			e.PublishedAt = &publishedAt
		}
	}
	return nil
}

func (m *MockOutboxRepository) DeletePublished(ctx context.Context, before time.Time) error {
	if m.DeletePublishedFunc != nil {
		return m.DeletePublishedFunc(ctx, before)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	var kept []*domain.OutboxEvent
	for _, e := range m.events {
		if !e.Published || e.PublishedAt == nil || !e.PublishedAt.Before(before) {
			kept = append(kept, e)
		}
	}
	m.events = kept
	return nil
}

// MockTransactionManager is a mock implementation of TransactionManager.
type MockTransactionManager struct {
	BeginFunc func(ctx context.Context) (usecase.Transaction, error)
}

func NewMockTransactionManager() *MockTransactionManager {
	return &MockTransactionManager{}
}

func (m *MockTransactionManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx)
	}
	return &MockTransaction{}, nil
}

// MockTransaction is a mock implementation of Transaction.
type MockTransaction struct {
	CommitFunc   func(ctx context.Context) error
	RollbackFunc func(ctx context.Context) error
}

func (m *MockTransaction) Commit(ctx context.Context) error {
	if m.CommitFunc != nil {
		return m.CommitFunc(ctx)
	}
	return nil
}

func (m *MockTransaction) Rollback(ctx context.Context) error {
	if m.RollbackFunc != nil {
		return m.RollbackFunc(ctx)
	}
	return nil
}

// MockRetrier is a mock implementation of Retrier that runs the operation
// once.
type MockRetrier struct {
	RetryFunc func(ctx context.Context, operation func() error) error
}

func NewMockRetrier() *MockRetrier {
	return &MockRetrier{}
}

func (m *MockRetrier) Retry(ctx context.Context, operation func() error) error {
	if m.RetryFunc != nil {
		return m.RetryFunc(ctx, operation)
	}
	return operation()
}

// MockIDGenerator is a mock implementation of IDGenerator.
type MockIDGenerator struct {
	GenerateFunc func() string
	counter      int
	mu           sync.Mutex
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counter++
	return fmt.Sprintf("mock-id-%d", m.counter)
}

// MockCache is a mock implementation of Cache.
type MockCache struct {
	mu   sync.RWMutex
	data map[string][]byte

	GetFunc    func(ctx context.Context, key string) ([]byte, error)
	SetFunc    func(ctx context.Context, key string, value []byte, ttl time.Duration) error
	DeleteFunc func(ctx context.Context, key string) error
}

func NewMockCache() *MockCache {
	return &MockCache{
		data: make(map[string][]byte),
	}
}

func (m *MockCache) Get(ctx context.Context, key string) ([]byte, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.data[key], nil
}

func (m *MockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, key, value, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, key)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// MockIdempotencyStore is a mock implementation of IdempotencyStore.
type MockIdempotencyStore struct {
	mu   sync.RWMutex
	data map[string][]byte

	CheckAndSetFunc func(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	UpdateFunc      func(ctx context.Context, key string, response []byte, ttl time.Duration) error
}

func NewMockIdempotencyStore() *MockIdempotencyStore {
	return &MockIdempotencyStore{
		data: make(map[string][]byte),
	}
}

func (m *MockIdempotencyStore) CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error) {
	if m.CheckAndSetFunc != nil {
		return m.CheckAndSetFunc(ctx, key, response, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.data[key]; ok {
		return true, existing, nil
	}
	if response != nil {
		m.data[key] = response
	} else {
		m.data[key] = []byte("processing")
	}
	return false, nil, nil
}

func (m *MockIdempotencyStore) Update(ctx context.Context, key string, response []byte, ttl time.Duration) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, key, response, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = response
	return nil
}

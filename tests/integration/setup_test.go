package integration

import (
	"context"
	"net/http"
	"os"
	"testing"

	adaptershttp "github.com/iho/shopledger/internal/adapter/http"
	"github.com/iho/shopledger/internal/adapter/http/handler"
	"github.com/iho/shopledger/internal/adapter/repository/postgres"
	redisrepo "github.com/iho/shopledger/internal/adapter/repository/redis"
	infraredis "github.com/iho/shopledger/internal/infrastructure/redis"
	"github.com/iho/shopledger/internal/usecase"
	"github.com/iho/shopledger/tests/testutil"
)

// testEnv wires the whole stack against real Postgres and Redis.
type testEnv struct {
	DB     *testutil.TestDB
	Router http.Handler

	OutboxRepo *postgres.OutboxRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()

	testDB := testutil.NewTestDB(t)
	t.Cleanup(testDB.Cleanup)

	pool := testDB.Pool
	txManager := postgres.NewTxManager(pool)
	partyRepo := postgres.NewPartyRepository(pool)
	entryRepo := postgres.NewEntryRepository(pool)
	bankRepo := postgres.NewBankRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	aggRepo := postgres.NewAggregateRepository(pool)
	outboxRepo := postgres.NewOutboxRepository(pool)
	idGen := postgres.NewULIDGenerator()
	retrier := postgres.NewRetrier()

	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	redisClient, err := infraredis.NewClient(ctx, redisURL)
	if err != nil {
		t.Fatalf("failed to connect to redis: %v", err)
	}
	t.Cleanup(func() { _ = redisClient.Close() })

	cache := redisrepo.NewCache(redisClient)
	idempotencyStore := redisrepo.NewIdempotencyStore(redisClient)

	executor := usecase.NewExecutor(
		txManager, retrier,
		partyRepo, entryRepo, bankRepo, stockRepo, aggRepo, outboxRepo,
	)

	partyUC := usecase.NewPartyUseCase(executor, partyRepo, idGen)
	paymentUC := usecase.NewPaymentUseCase(executor, idGen, cache)
	saleUC := usecase.NewSaleUseCase(executor, idGen, cache)
	purchaseUC := usecase.NewPurchaseUseCase(executor, idGen, cache)
	entryUC := usecase.NewEntryUseCase(executor, entryRepo, idGen, cache)
	bankUC := usecase.NewBankUseCase(executor, bankRepo, idGen)
	stockUC := usecase.NewStockUseCase(stockRepo, idGen)
	aggUC := usecase.NewAggregateUseCase(executor, aggRepo, idGen)
	ledgerUC := usecase.NewLedgerUseCase(partyRepo, entryRepo, cache)
	cashUC := usecase.NewCashSessionUseCase(entryRepo, aggRepo)
	reconciliationUC := usecase.NewReconciliationUseCase(partyRepo, entryRepo, bankRepo, aggRepo)

	router := adaptershttp.NewRouter(adaptershttp.RouterConfig{
		PartyHandler:     handler.NewPartyHandler(partyUC),
		PaymentHandler:   handler.NewPaymentHandler(paymentUC),
		SaleHandler:      handler.NewSaleHandler(saleUC),
		PurchaseHandler:  handler.NewPurchaseHandler(purchaseUC),
		EntryHandler:     handler.NewEntryHandler(entryUC),
		BankHandler:      handler.NewBankHandler(bankUC),
		StockHandler:     handler.NewStockHandler(stockUC),
		AggregateHandler: handler.NewAggregateHandler(aggUC),
		LedgerHandler:    handler.NewLedgerHandler(ledgerUC, reconciliationUC, cashUC),
		HealthHandler:    handler.NewHealthHandler(pool, redisClient),
		IdempotencyStore: idempotencyStore,
	})

	return &testEnv{
		DB:         testDB,
		Router:     router,
		OutboxRepo: outboxRepo,
	}
}

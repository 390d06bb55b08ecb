package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	httpAdapter "github.com/iho/shopledger/internal/adapter/http"
	"github.com/iho/shopledger/internal/adapter/http/handler"
	"github.com/iho/shopledger/internal/adapter/http/middleware"
	postgresRepo "github.com/iho/shopledger/internal/adapter/repository/postgres"
	redisRepo "github.com/iho/shopledger/internal/adapter/repository/redis"
	"github.com/iho/shopledger/internal/infrastructure/config"
	"github.com/iho/shopledger/internal/infrastructure/eventpublisher"
	"github.com/iho/shopledger/internal/infrastructure/logger"
	"github.com/iho/shopledger/internal/infrastructure/logging"
	"github.com/iho/shopledger/internal/infrastructure/metrics"
	"github.com/iho/shopledger/internal/infrastructure/postgres"
	"github.com/iho/shopledger/internal/infrastructure/redis"
	"github.com/iho/shopledger/internal/usecase"
)

const migrationsPath = "internal/infrastructure/postgres/migrations"

func main() {
	// Setup logger
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	log.Logger = logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat, Service: "shopledger"})
	zerolog.SetGlobalLevel(log.Logger.GetLevel())

	// Background workers log through slog.
	slog.SetDefault(logging.New(logging.ParseLevel(cfg.LogLevel), cfg.LogFormat))

	ctx := context.Background()

	// Connect to PostgreSQL
	pool, err := postgres.NewPoolWithConfig(ctx, postgres.PoolConfig{
		DatabaseURL:    cfg.DatabaseURL,
		MaxConns:       cfg.DatabaseMaxConns,
		MinConns:       cfg.DatabaseMinConns,
		ConnectTimeout: cfg.DatabaseTimeout,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	// Run migrations
	if err := postgres.RunMigrations(cfg.DatabaseURL, migrationsPath); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Connect to Redis
	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	log.Info().Msg("connected to redis")

	m := metrics.New()

	// Initialize repositories
	txManager := postgresRepo.NewTxManager(pool)
	partyRepo := postgresRepo.NewPartyRepository(pool)
	entryRepo := postgresRepo.NewEntryRepository(pool)
	bankRepo := postgresRepo.NewBankRepository(pool)
	stockRepo := postgresRepo.NewStockRepository(pool)
	aggRepo := postgresRepo.NewAggregateRepository(pool)
	outboxRepo := postgresRepo.NewOutboxRepository(pool)
	cache := redisRepo.NewCache(redisClient)
	idempotencyStore := redisRepo.NewIdempotencyStore(redisClient)
	idGen := postgresRepo.NewULIDGenerator()
	retrier := postgresRepo.NewRetrier().WithMetrics(m)

	executor := usecase.NewExecutor(
		txManager, retrier,
		partyRepo, entryRepo, bankRepo, stockRepo, aggRepo, outboxRepo,
	).WithMetrics(m)

	// Initialize use cases
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

	rateLimiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	go func() {
		ticker := time.NewTicker(10 * time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			rateLimiter.CleanupLimiters(time.Hour)
		}
	}()

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
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
		RateLimiter:      rateLimiter,
		Logging:          middleware.NewLoggingMiddleware(log.Logger),
	})

	// Start the outbox publisher
	publisherCtx, stopPublisher := context.WithCancel(ctx)
	defer stopPublisher()

	publisher := eventpublisher.NewEventPublisher(eventpublisher.Config{
		OutboxRepo: outboxRepo,
		Publisher:  eventpublisher.NewLogPublisher(slog.Default()),
		Metrics:    m,
		BatchSize:  cfg.OutboxBatchSize,
		Interval:   cfg.OutboxInterval,
	})
	go func() {
		if err := publisher.Start(publisherCtx); err != nil && publisherCtx.Err() == nil {
			log.Error().Err(err).Msg("outbox publisher stopped")
		}
	}()

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")
	stopPublisher()

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}

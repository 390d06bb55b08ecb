package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/iho/shopledger/internal/adapter/http/handler"
	"github.com/iho/shopledger/internal/adapter/http/middleware"
	"github.com/iho/shopledger/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	PartyHandler     *handler.PartyHandler
	PaymentHandler   *handler.PaymentHandler
	SaleHandler      *handler.SaleHandler
	PurchaseHandler  *handler.PurchaseHandler
	EntryHandler     *handler.EntryHandler
	BankHandler      *handler.BankHandler
	StockHandler     *handler.StockHandler
	AggregateHandler *handler.AggregateHandler
	LedgerHandler    *handler.LedgerHandler
	HealthHandler    *handler.HealthHandler
	IdempotencyStore usecase.IdempotencyStore
	RateLimiter      *middleware.RateLimiter
	Logging          *middleware.LoggingMiddleware
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Metrics)
	r.Use(middleware.Recovery)

	if cfg.Logging != nil {
		r.Use(cfg.Logging.Wrap)
	}

	if cfg.RateLimiter != nil {
		r.Use(cfg.RateLimiter.Limit)
	}

	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		if cfg.IdempotencyStore != nil {
			idempotencyMiddleware := middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore)
			r.Use(idempotencyMiddleware.Wrap)
		}

		r.Route("/parties", func(r chi.Router) {
			r.Post("/", cfg.PartyHandler.Create)
			r.Get("/", cfg.PartyHandler.List)
			r.Get("/{id}", cfg.PartyHandler.Get)
			r.Put("/{id}", cfg.PartyHandler.Update)
			r.Post("/{id}/archive", cfg.PartyHandler.Archive)
			r.Get("/{id}/statement", cfg.LedgerHandler.Statement)
		})

		r.Route("/payments", func(r chi.Router) {
			r.Post("/", cfg.PaymentHandler.Record)
			r.Put("/{id}", cfg.PaymentHandler.Edit)
		})

		r.Post("/sales", cfg.SaleHandler.Record)
		r.Post("/purchases", cfg.PurchaseHandler.Record)
		r.Post("/purchases/aggregate", cfg.AggregateHandler.Purchase)
		r.Post("/consumptions/aggregate", cfg.AggregateHandler.Consume)

		r.Route("/entries", func(r chi.Router) {
			r.Get("/{id}", cfg.EntryHandler.Get)
			r.Delete("/{id}", cfg.EntryHandler.Delete)
		})

		r.Route("/bank-accounts", func(r chi.Router) {
			r.Post("/", cfg.BankHandler.CreateAccount)
			r.Get("/", cfg.BankHandler.ListAccounts)
			r.Get("/{id}", cfg.BankHandler.GetAccount)
			r.Get("/{id}/transactions", cfg.BankHandler.ListTransactions)
			r.Post("/{id}/manual", cfg.BankHandler.ManualAdjustment)
			r.Post("/{id}/archive", cfg.BankHandler.ArchiveAccount)
		})
		r.Post("/bank-transfers", cfg.BankHandler.Transfer)

		r.Route("/stock-items", func(r chi.Router) {
			r.Post("/", cfg.StockHandler.Create)
			r.Get("/", cfg.StockHandler.List)
			r.Get("/{id}", cfg.StockHandler.Get)
			r.Put("/{id}", cfg.StockHandler.Update)
		})

		r.Route("/aggregates", func(r chi.Router) {
			r.Get("/", cfg.AggregateHandler.Get)
			r.Get("/movements", cfg.AggregateHandler.ListMovements)
		})

		r.Post("/cash-sessions/reconcile", cfg.LedgerHandler.ReconcileCash)
		r.Get("/ledger/consistency", cfg.LedgerHandler.Consistency)
	})

	return r
}

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics.
type Metrics struct {
	// Executor metrics
	LedgerTransactions *prometheus.CounterVec
	LedgerTxDuration   *prometheus.HistogramVec
	LedgerTxRetries    prometheus.Counter

	// Outbox metrics
	EventsPublished prometheus.Counter
	PublishErrors   prometheus.Counter
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		LedgerTransactions: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "shopledger_ledger_transactions_total",
			Help: "Total ledger transaction executions by operation and outcome",
		}, []string{"operation", "status"}),
		LedgerTxDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "shopledger_ledger_transaction_duration_seconds",
			Help:    "Duration of ledger transaction executions",
			Buckets: prometheus.DefBuckets,
		}, []string{"operation"}),
		LedgerTxRetries: promauto.NewCounter(prometheus.CounterOpts{
			Name: "shopledger_ledger_transaction_retries_total",
			Help: "Total ledger transaction retry attempts",
		}),
		EventsPublished: promauto.NewCounter(prometheus.CounterOpts{
			Name: "shopledger_outbox_events_published_total",
			Help: "Total outbox events published",
		}),
		PublishErrors: promauto.NewCounter(prometheus.CounterOpts{
			Name: "shopledger_outbox_publish_errors_total",
			Help: "Total outbox publish failures",
		}),
	}
}

// Package metrics holds the Prometheus collectors of the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	// Authentication metrics
	LoginTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_login_total",
			Help: "Login attempts by result",
		},
		[]string{"result"},
	)

	// Ledger metrics
	LedgerWritesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ledger_transactions_written_total",
			Help: "Ledger transactions written by operation",
		},
		[]string{"operation"},
	)

	CommissionPayoutsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "commission_payouts_total",
			Help: "Monthly commissions marked paid",
		},
	)
)

// Login results.
const (
	LoginSuccess = "success"
	LoginFailure = "failure"
	LoginError   = "error"
)

// Ledger write operations.
const (
	LedgerCreate      = "create"
	LedgerUpdate      = "update"
	LedgerDelete      = "delete"
	LedgerBatchDelete = "batch_delete"
)

// RecordLogin increments the login counter for result.
func RecordLogin(result string) {
	LoginTotal.WithLabelValues(result).Inc()
}

// RecordLedgerWrite adds n written transactions for operation.
func RecordLedgerWrite(operation string, n int) {
	if n <= 0 {
		return
	}
	LedgerWritesTotal.WithLabelValues(operation).Add(float64(n))
}

// RecordCommissionPayout increments the commission payout counter.
func RecordCommissionPayout() {
	CommissionPayoutsTotal.Inc()
}

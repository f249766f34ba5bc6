package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "solgate_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "solgate_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"method", "route"},
	)

	// Ledger RPC metrics
	LedgerCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "solgate_ledger_rpc_calls_total",
			Help: "Total number of calls to the ledger RPC endpoint",
		},
		[]string{"method", "status"}, // status: ok, error
	)

	LedgerCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "solgate_ledger_rpc_call_duration_seconds",
			Help:    "Duration of calls to the ledger RPC endpoint",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
		},
		[]string{"method"},
	)

	// Submitted transactions
	TransactionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "solgate_transactions_total",
			Help: "Total number of transactions submitted to the ledger",
		},
		[]string{"kind", "status"}, // kind: create_mint, transfer_token; status: confirmed, failed
	)

	AirdropsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "solgate_airdrops_total",
			Help: "Total number of airdrop requests",
		},
		[]string{"status"},
	)
)

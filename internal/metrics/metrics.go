package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	ResultOK    = "ok"
	ResultError = "error"
)

var (
	SnapshotLoads = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wallet_snapshot_loads_total",
		Help: "Snapshot loads by result.",
	}, []string{"result"})

	SkippedRecords = promauto.NewCounter(prometheus.CounterOpts{
		Name: "wallet_skipped_records_total",
		Help: "Transaction records dropped during normalization.",
	})

	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wallet_http_requests_total",
		Help: "HTTP requests by route and status code.",
	}, []string{"route", "code"})

	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "wallet_http_request_duration_seconds",
		Help:    "Time spent serving HTTP requests.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})
)

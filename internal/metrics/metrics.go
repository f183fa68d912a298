package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors for ledger analysis and the
// HTTP and queue surfaces around it.
type Metrics struct {
	TransactionsTotal *prometheus.CounterVec // labels: class
	PositionsOpen     prometheus.Gauge
	AnalyzeDuration   prometheus.Histogram
	AnalyzeErrors     *prometheus.CounterVec // labels: stage
	CacheHits         prometheus.Counter
	CacheMisses       prometheus.Counter
	QueueMessages     *prometheus.CounterVec // labels: outcome
	HTTPRequests      *prometheus.CounterVec // labels: route, status
}

// NewMetrics builds the collectors and registers them with reg. Pass
// prometheus.DefaultRegisterer to expose them on the default /metrics
// handler.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		TransactionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tradebook_transactions_total",
			Help: "Transactions reconciled, by instrument class",
		}, []string{"class"}),
		PositionsOpen: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "tradebook_positions_open",
			Help: "Open positions produced by the most recent analysis",
		}),
		AnalyzeDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "tradebook_analyze_duration_seconds",
			Help:    "Time to parse and reconcile one ledger",
			Buckets: prometheus.DefBuckets,
		}),
		AnalyzeErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tradebook_analyze_errors_total",
			Help: "Failed analyses, by stage",
		}, []string{"stage"}),
		CacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tradebook_analyze_cache_hits_total",
			Help: "Analyses served from cache",
		}),
		CacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tradebook_analyze_cache_misses_total",
			Help: "Analyses computed from scratch",
		}),
		QueueMessages: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tradebook_queue_messages_total",
			Help: "Queue messages handled, by outcome",
		}, []string{"outcome"}),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tradebook_http_requests_total",
			Help: "HTTP requests served, by route and status",
		}, []string{"route", "status"}),
	}

	if reg != nil {
		reg.MustRegister(
			m.TransactionsTotal,
			m.PositionsOpen,
			m.AnalyzeDuration,
			m.AnalyzeErrors,
			m.CacheHits,
			m.CacheMisses,
			m.QueueMessages,
			m.HTTPRequests,
		)
	}

	return m
}

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	DocumentsIngested *prometheus.CounterVec
	DocumentsSkipped  prometheus.Counter
	BatchesCommitted  prometheus.Counter
	BatchesRolledBack prometheus.Counter
	BatchDuration     prometheus.Histogram
	APICalls          *prometheus.CounterVec
	HTTPDuration      *prometheus.HistogramVec
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return newWith(prometheus.DefaultRegisterer)
}

// NewForTest creates metrics on a private registry so tests can construct
// multiple instances without duplicate-registration panics.
func NewForTest() *Metrics {
	return newWith(prometheus.NewRegistry())
}

func newWith(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		DocumentsIngested: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "datablock_documents_ingested_total",
			Help: "Documents mapped into the store, by block family.",
		}, []string{"block"}),
		DocumentsSkipped: factory.NewCounter(prometheus.CounterOpts{
			Name: "datablock_documents_skipped_total",
			Help: "Documents skipped because no block family was recognized.",
		}),
		BatchesCommitted: factory.NewCounter(prometheus.CounterOpts{
			Name: "datablock_batches_committed_total",
			Help: "Ingest batches committed.",
		}),
		BatchesRolledBack: factory.NewCounter(prometheus.CounterOpts{
			Name: "datablock_batches_rolled_back_total",
			Help: "Ingest batches rolled back after an error.",
		}),
		BatchDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "datablock_batch_duration_seconds",
			Help:    "Wall time of one ingest batch.",
			Buckets: prometheus.DefBuckets,
		}),
		APICalls: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "datablock_api_calls_total",
			Help: "Direct+ API calls, by endpoint and outcome.",
		}, []string{"endpoint", "outcome"}),
		HTTPDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "datablock_http_request_duration_seconds",
			Help:    "HTTP request latency, by method and status.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "status"}),
	}
}

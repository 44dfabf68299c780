// Package metrics defines the Prometheus collectors for the query engine
// and exposes an HTTP handler for scraping.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Query outcome labels.
const (
	OutcomeHit        = "hit"
	OutcomeZeroResult = "zero_result"
	OutcomeError      = "error"
)

// Metrics holds the collectors. Each Metrics value carries its own
// registry so independent engine instances can coexist in one process.
type Metrics struct {
	registry *prometheus.Registry

	QueriesTotal     *prometheus.CounterVec
	QueryLatency     *prometheus.HistogramVec
	IndexedDocuments prometheus.Gauge
	IndexedTerms     prometheus.Gauge
}

// New creates and registers all collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		QueriesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "search_queries_total",
				Help: "Total queries by type (boolean, proximity) and outcome (hit, zero_result, error).",
			},
			[]string{"type", "outcome"},
		),
		QueryLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "search_query_duration_seconds",
				Help:    "Query evaluation latency in seconds.",
				Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
			},
			[]string{"type"},
		),
		IndexedDocuments: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "index_documents",
				Help: "Number of documents in the collection.",
			},
		),
		IndexedTerms: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "index_terms",
				Help: "Number of distinct terms in the inverted index.",
			},
		),
	}
	m.registry.MustRegister(m.QueriesTotal, m.QueryLatency, m.IndexedDocuments, m.IndexedTerms)
	return m
}

// ObserveQuery records one evaluated query.
func (m *Metrics) ObserveQuery(queryType, outcome string, seconds float64) {
	m.QueriesTotal.WithLabelValues(queryType, outcome).Inc()
	m.QueryLatency.WithLabelValues(queryType).Observe(seconds)
}

// SetIndexSize records the built index dimensions.
func (m *Metrics) SetIndexSize(documents, terms int) {
	m.IndexedDocuments.Set(float64(documents))
	m.IndexedTerms.Set(float64(terms))
}

// Handler returns the scrape endpoint for this Metrics value's registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

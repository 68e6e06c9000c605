// Package metrics defines the Prometheus collectors for the search pipeline
// and the offline dictionary builder.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Search pipeline metrics.
var (
	SearchRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cinerank",
			Name:      "search_requests_total",
			Help:      "Total number of search requests",
		},
		[]string{"status"},
	)

	SearchDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "cinerank",
			Name:      "search_duration_seconds",
			Help:      "End-to-end search request duration in seconds",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
	)

	SearchHits = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "cinerank",
			Name:      "search_hits",
			Help:      "Number of ranked hits returned per request",
			Buckets:   []float64{0, 1, 5, 10, 20, 50},
		},
	)

	ParserEntitiesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cinerank",
			Name:      "parser_entities_total",
			Help:      "Total entities recognized by the query parser",
		},
		[]string{"type"},
	)
)

// Dictionary builder metrics.
var (
	BuilderPagesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "cinerank",
			Name:      "builder_pages_total",
			Help:      "Total catalog pages scanned by the dictionary builder",
		},
	)

	BuilderUpsertsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cinerank",
			Name:      "builder_upserts_total",
			Help:      "Total dictionary upserts attempted by the builder",
		},
		[]string{"status"},
	)
)

var registered bool

// Register registers all collectors. Must be called once from main.
func Register() {
	if registered {
		return
	}
	registered = true
	prometheus.MustRegister(
		SearchRequestsTotal,
		SearchDuration,
		SearchHits,
		ParserEntitiesTotal,
		BuilderPagesTotal,
		BuilderUpsertsTotal,
	)
}

// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	QueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assistant_queries_total",
			Help: "Total number of queries handled by query type",
		},
		[]string{"query_type"},
	)

	QueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "assistant_query_duration_seconds",
			Help: "Duration of query handling in seconds",
		},
		[]string{"query_type"},
	)

	CatalogCacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assistant_catalog_cache_hits_total",
			Help: "Catalog cache hits by operation",
		},
		[]string{"operation"},
	)

	CatalogCacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assistant_catalog_cache_misses_total",
			Help: "Catalog cache misses by operation",
		},
		[]string{"operation"},
	)
)

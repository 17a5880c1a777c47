package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus metrics
type Metrics struct {
	LoadsTotal     *prometheus.CounterVec
	FetchDuration  prometheus.Histogram
	RecordsLoaded  prometheus.Gauge
	CacheHits      *prometheus.CounterVec
	RefreshesTotal prometheus.Counter
	ErrorsCount    *prometheus.CounterVec
	EnrichmentTime prometheus.Histogram
}

// NewMetrics creates new prometheus metrics
func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		LoadsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "loads_total",
			Help:      "The total number of catalog loads by winning source",
		}, []string{"source"}),
		FetchDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "fetch_duration_seconds",
			Help:      "Time taken to fetch the remote archive",
			Buckets:   prometheus.DefBuckets,
		}),
		RecordsLoaded: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "records_loaded",
			Help:      "Number of planet records in the current catalog",
		}),
		CacheHits: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_hits_total",
			Help:      "The total number of cache hits by freshness",
		}, []string{"kind"}),
		RefreshesTotal: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "background_refreshes_total",
			Help:      "The total number of successful background refreshes",
		}),
		ErrorsCount: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "The total number of errors",
		}, []string{"operation"}),
		EnrichmentTime: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "enrichment_time_seconds",
			Help:      "Time taken to enrich a full dataset",
			Buckets:   prometheus.DefBuckets,
		}),
	}
}

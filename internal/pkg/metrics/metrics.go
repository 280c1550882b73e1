package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds the planner's Prometheus collectors on a private registry
type Registry struct {
	reg *prometheus.Registry

	Uploads          *prometheus.CounterVec
	RowsDropped      prometheus.Counter
	OrdersLoaded     prometheus.Counter
	PipelineDuration *prometheus.HistogramVec
	CacheHits        prometheus.Counter
	CacheMisses      prometheus.Counter
	RouteTruncated   prometheus.Counter
}

func NewRegistry() *Registry {
	r := prometheus.NewRegistry()
	uploads := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "planner_uploads_total",
		Help: "Uploads processed by outcome",
	}, []string{"format", "outcome"})
	rowsDropped := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "planner_rows_dropped_total",
		Help: "Rows dropped for a missing Order ID or invalid coordinates",
	})
	ordersLoaded := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "planner_orders_loaded_total",
		Help: "Orders that survived normalization",
	})
	pipelineDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "planner_pipeline_stage_duration_seconds",
		Help:    "Time spent in each ingestion stage",
		Buckets: prometheus.DefBuckets,
	}, []string{"stage"})
	cacheHits := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "planner_dataset_cache_hits_total",
	})
	cacheMisses := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "planner_dataset_cache_misses_total",
	})
	routeTruncated := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "planner_route_truncated_total",
		Help: "Route links capped at the waypoint limit",
	})

	r.MustRegister(uploads, rowsDropped, ordersLoaded, pipelineDuration, cacheHits, cacheMisses, routeTruncated)
	return &Registry{
		reg:              r,
		Uploads:          uploads,
		RowsDropped:      rowsDropped,
		OrdersLoaded:     ordersLoaded,
		PipelineDuration: pipelineDuration,
		CacheHits:        cacheHits,
		CacheMisses:      cacheMisses,
		RouteTruncated:   routeTruncated,
	}
}

func (r *Registry) Handler() http.Handler { return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{}) }

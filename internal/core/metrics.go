package core

import (
	"database/sql"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	registry *prometheus.Registry

	HttpRequests   *prometheus.CounterVec
	HttpDuration   *prometheus.HistogramVec
	DataOperations *prometheus.CounterVec
}

func NewMetrics(namespace, subsystem string) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		HttpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "http_requests_total",
			Help:      "Number of http requests by route and status.",
		}, []string{"method", "route", "status"}),
		HttpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "http_request_duration_seconds",
			Help:      "Latency of http requests by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		DataOperations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "data_operations_total",
			Help:      "Number of datas operations by kind and result.",
		}, []string{"operation", "result"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		m.HttpRequests,
		m.HttpDuration,
		m.DataOperations,
	)
	return m
}

// WatchDB exports the pool statistics of db under the given name.
func (m *Metrics) WatchDB(name string, db *sql.DB) {
	m.registry.MustRegister(collectors.NewDBStatsCollector(db, name))
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

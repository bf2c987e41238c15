package main

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the server's Prometheus collectors
type Metrics struct {
	registry *prometheus.Registry

	requests  *prometheus.CounterVec
	latency   *prometheus.HistogramVec
	fortunes  *prometheus.CounterVec
	relations *prometheus.CounterVec
}

// NewMetrics registers the collectors on a private registry
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "saju",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route, method and status.",
		}, []string{"route", "method", "status"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "saju",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
		fortunes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "saju",
			Name:      "fortunes_computed_total",
			Help:      "Fortunes computed by mode.",
		}, []string{"mode"}),
		relations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "saju",
			Name:      "relations_total",
			Help:      "Relation classes produced by computed fortunes.",
		}, []string{"class"}),
	}
	m.registry.MustRegister(
		m.requests,
		m.latency,
		m.fortunes,
		m.relations,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Handler serves the registry in the Prometheus text format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) observeRequest(route, method string, status int, elapsed time.Duration) {
	m.requests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.latency.WithLabelValues(route).Observe(elapsed.Seconds())
}

func (m *Metrics) observeFortune(mode, class string) {
	m.fortunes.WithLabelValues(mode).Inc()
	if class != "" {
		m.relations.WithLabelValues(class).Inc()
	}
}

// routeLabel returns the matched route template to keep label cardinality bounded
func routeLabel(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil {
		if tpl, err := route.GetPathTemplate(); err == nil {
			return tpl
		}
	}
	return unmatchedRoute
}

// unmatchedRoute labels requests answered before or without a route match
const unmatchedRoute = "unmatched"

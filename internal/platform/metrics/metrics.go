// Package metrics exposes Prometheus collectors for upstream lookups and HTTP traffic.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "dictionary"

// unmatchedRoute labels requests that did not match any registered route, so raw
// paths never become label values.
const unmatchedRoute = "unmatched"

// DefaultBuckets are latency buckets in seconds shared by all histograms.
var DefaultBuckets = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// Metrics owns the service collectors. A nil *Metrics is a valid no-op recorder.
type Metrics struct {
	lookups         *prometheus.CounterVec
	lookupDuration  *prometheus.HistogramVec
	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	auto := promauto.With(reg)
	return &Metrics{
		lookups: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "upstream",
			Name:      "lookups_total",
			Help:      "Upstream dictionary lookups by result.",
		}, []string{"result"}),
		lookupDuration: auto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "upstream",
			Name:      "lookup_duration_seconds",
			Help:      "Upstream dictionary lookup latency by result.",
			Buckets:   DefaultBuckets,
		}, []string{"result"}),
		requests: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by method, route pattern and status.",
		}, []string{"method", "route", "status"}),
		requestDuration: auto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by method and route pattern.",
			Buckets:   DefaultBuckets,
		}, []string{"method", "route"}),
	}
}

// ObserveLookup records the outcome of one upstream lookup.
func (m *Metrics) ObserveLookup(result string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.lookups.WithLabelValues(result).Inc()
	m.lookupDuration.WithLabelValues(result).Observe(elapsed.Seconds())
}

// Middleware records request counts and latency labelled by the chi route pattern.
// It must be installed on the chi router so the pattern is known once routing completes.
func (m *Metrics) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if m == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			route := unmatchedRoute
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				if pattern := rctx.RoutePattern(); pattern != "" {
					route = pattern
				}
			}
			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			m.requests.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
			m.requestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
		})
	}
}

// Handler serves the metrics gathered by g in the Prometheus exposition format.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}

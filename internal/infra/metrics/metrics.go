// Package metrics exposes Prometheus collectors for the remote calls and the shell API.
package metrics

import (
	"database/sql"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "storefront"

var (
	// Registry holds the application-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	remoteRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "remote",
			Name:      "requests_total",
			Help:      "Total number of requests sent to the remote backends.",
		},
		[]string{"backend", "method", "path", "status"},
	)

	remoteDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "remote",
			Name:      "request_duration_seconds",
			Help:      "Duration of requests sent to the remote backends.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 12), // 5ms to ~10s
		},
		[]string{"backend", "method"},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of shell API requests handled.",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of shell API requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10),
		},
		[]string{"method", "route"},
	)

	notices = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ui",
			Name:      "notices_total",
			Help:      "Total number of user notices raised.",
		},
		[]string{"level"},
	)
)

func init() {
	Registry.MustRegister(
		remoteRequests,
		remoteDuration,
		httpRequests,
		httpDuration,
		notices,
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
	)
}

// Handler returns an HTTP handler exposing the registered Prometheus metrics.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// RecordRemoteRequest records one request to a remote backend. status 0 means no response.
func RecordRemoteRequest(backend, method, path string, status int, duration time.Duration) {
	method = strings.ToUpper(method)
	remoteRequests.WithLabelValues(backend, method, canonicalPath(path), statusLabel(status)).Inc()
	remoteDuration.WithLabelValues(backend, method).Observe(duration.Seconds())
}

// RecordHTTPRequest records one shell API request. route is the matched route pattern.
func RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	method = strings.ToUpper(method)
	httpRequests.WithLabelValues(method, route, statusLabel(status)).Inc()
	httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RegisterDB exports the connection pool statistics of db (open, in use, idle, wait count and
// wait time) under the given database name. The returned func removes them again.
func RegisterDB(db *sql.DB, name string) (unregister func(), err error) {
	c := collectors.NewDBStatsCollector(db, name)
	if err := Registry.Register(c); err != nil {
		return nil, err
	}

	return func() { Registry.Unregister(c) }, nil
}

// RecordNotice counts a raised notice.
func RecordNotice(level string) {
	notices.WithLabelValues(level).Inc()
}

func statusLabel(status int) string {
	if status == 0 {
		return "error"
	}

	return strconv.Itoa(status)
}

// canonicalPath replaces identifier segments so label cardinality stays bounded,
// e.g. /orders/3f2a.../status becomes /orders/:id/status.
func canonicalPath(path string) string {
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}

	segments := strings.Split(path, "/")
	for i, seg := range segments {
		if looksLikeID(seg) {
			segments[i] = ":id"
		}
	}

	return strings.Join(segments, "/")
}

func looksLikeID(seg string) bool {
	if seg == "" {
		return false
	}

	digits := 0
	for _, r := range seg {
		if r >= '0' && r <= '9' {
			digits++
		}
	}

	return digits > 0 && (digits == len(seg) || len(seg) >= 16)
}

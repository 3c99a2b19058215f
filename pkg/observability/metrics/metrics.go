// Package metrics implements the observability hooks with Prometheus
// collectors.
package metrics

import (
	"context"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/matzehuels/stackcheck/pkg/observability"
)

// Metrics holds the collectors. It implements CheckHooks, CacheHooks and
// HTTPHooks.
type Metrics struct {
	solves        *prometheus.CounterVec
	solveStacks   prometheus.Histogram
	checks        *prometheus.CounterVec
	checkDuration prometheus.Histogram
	cacheOps      *prometheus.CounterVec
	requests      *prometheus.CounterVec
	reqDuration   *prometheus.HistogramVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		solves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "stackcheck",
			Name:      "solves_total",
			Help:      "Optimal solutions produced, by source.",
		}, []string{"source"}),
		solveStacks: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "stackcheck",
			Name:      "solution_stacks",
			Help:      "Stack count of optimal solutions.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
		}),
		checks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "stackcheck",
			Name:      "checks_total",
			Help:      "Graded cases, by verdict reason or error.",
		}, []string{"reason"}),
		checkDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "stackcheck",
			Name:      "check_duration_seconds",
			Help:      "Time spent grading one case.",
			Buckets:   prometheus.DefBuckets,
		}),
		cacheOps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "stackcheck",
			Name:      "cache_operations_total",
			Help:      "Cache operations, by key type and result.",
		}, []string{"key_type", "result"}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "stackcheck",
			Name:      "http_requests_total",
			Help:      "HTTP requests served.",
		}, []string{"method", "route", "code"}),
		reqDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "stackcheck",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	reg.MustRegister(m.solves, m.solveStacks, m.checks, m.checkDuration, m.cacheOps, m.requests, m.reqDuration)
	return m
}

// Register installs m as the global check, cache and HTTP hooks.
func (m *Metrics) Register() {
	observability.SetCheckHooks(m)
	observability.SetCacheHooks(m)
	observability.SetHTTPHooks(m)
}

func (m *Metrics) OnSolve(_ context.Context, _, stacks int, cached bool, _ time.Duration) {
	source := "computed"
	if cached {
		source = "cache"
	}
	m.solves.WithLabelValues(source).Inc()
	m.solveStacks.Observe(float64(stacks))
}

func (m *Metrics) OnCheck(_ context.Context, reason string, d time.Duration, err error) {
	if err != nil {
		reason = "error"
	}
	m.checks.WithLabelValues(reason).Inc()
	m.checkDuration.Observe(d.Seconds())
}

func (m *Metrics) OnCacheHit(_ context.Context, keyType string) {
	m.cacheOps.WithLabelValues(keyType, "hit").Inc()
}

func (m *Metrics) OnCacheMiss(_ context.Context, keyType string) {
	m.cacheOps.WithLabelValues(keyType, "miss").Inc()
}

func (m *Metrics) OnCacheSet(_ context.Context, keyType string, _ int) {
	m.cacheOps.WithLabelValues(keyType, "set").Inc()
}

func (m *Metrics) OnResponse(_ context.Context, method, route string, code int, d time.Duration) {
	m.requests.WithLabelValues(method, route, strconv.Itoa(code)).Inc()
	m.reqDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

var (
	_ observability.CheckHooks = (*Metrics)(nil)
	_ observability.CacheHooks = (*Metrics)(nil)
	_ observability.HTTPHooks  = (*Metrics)(nil)
)

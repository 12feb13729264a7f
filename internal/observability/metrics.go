package observability

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "minai"

// Metrics holds the Prometheus counters, histograms, and gauges for the
// basin analytics store and its gateway client. A nil *Metrics is valid and
// records nothing.
type Metrics struct {
	// Gateway metrics.
	GatewayRequests *prometheus.CounterVec   // labels: path, code
	GatewayDuration *prometheus.HistogramVec // labels: path
	FetchFailures   *prometheus.CounterVec   // labels: slot

	// Derivation metrics.
	Recomputes        *prometheus.CounterVec // labels: view={footage,timeline}
	RecomputeDuration prometheus.Histogram
	SoftFailures      *prometheus.CounterVec // labels: kind={empty_data,lookup_miss}

	Subscribers prometheus.Gauge
}

func newMetrics(withHelp bool) *Metrics {
	help := func(s string) string {
		if withHelp {
			return s
		}
		return ""
	}
	return &Metrics{
		GatewayRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "gateway_requests_total",
			Help:      help("Gateway HTTP attempts by path and status code (0 = transport failure)."),
		}, []string{"path", "code"}),
		GatewayDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "gateway_request_duration_seconds",
			Help:      help("Gateway HTTP attempt duration in seconds."),
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"path"}),
		FetchFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fetch_failures_total",
			Help:      help("Cache slots cleared after a failed fetch."),
		}, []string{"slot"}),
		Recomputes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "recomputes_total",
			Help:      help("Derived view recomputations."),
		}, []string{"view"}),
		RecomputeDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "recompute_duration_seconds",
			Help:      help("Duration of a derived view recomputation."),
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		}),
		SoftFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "soft_failures_total",
			Help:      help("Derivations that degraded to an empty result."),
		}, []string{"kind"}),
		Subscribers: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "subscribers",
			Help:      help("Active store change subscriptions."),
		}),
	}
}

// NewMetrics creates and registers all metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics(true)
	prometheus.MustRegister(
		m.GatewayRequests,
		m.GatewayDuration,
		m.FetchFailures,
		m.Recomputes,
		m.RecomputeDuration,
		m.SoftFailures,
		m.Subscribers,
	)
	return m
}

// NewMetricsForTesting creates Metrics without registering them, so tests can
// build as many as they like.
func NewMetricsForTesting() *Metrics {
	return newMetrics(false)
}

// ObserveRequest records one gateway HTTP attempt.
func (m *Metrics) ObserveRequest(path string, status int, seconds float64) {
	if m == nil {
		return
	}
	m.GatewayRequests.WithLabelValues(path, strconv.Itoa(status)).Inc()
	m.GatewayDuration.WithLabelValues(path).Observe(seconds)
}

// FetchFailed records a cache slot cleared after a failed fetch.
func (m *Metrics) FetchFailed(slot string) {
	if m == nil {
		return
	}
	m.FetchFailures.WithLabelValues(slot).Inc()
}

// Recomputed records one recomputation of the named view.
func (m *Metrics) Recomputed(view string, d time.Duration) {
	if m == nil {
		return
	}
	m.Recomputes.WithLabelValues(view).Inc()
	m.RecomputeDuration.Observe(d.Seconds())
}

// SoftFailure records a derivation that fell back to an empty result.
func (m *Metrics) SoftFailure(kind string) {
	if m == nil {
		return
	}
	m.SoftFailures.WithLabelValues(kind).Inc()
}

// SetSubscribers publishes the number of live subscriptions.
func (m *Metrics) SetSubscribers(n int) {
	if m == nil {
		return
	}
	m.Subscribers.Set(float64(n))
}

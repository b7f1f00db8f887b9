package middleware

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/wayfind-dev/wayfind/pkg/router"
)

// MetricsConfig configures the Prometheus navigation hook.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "wayfind").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for navigation duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus navigation hook.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "wayfind",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// metricsHook records navigation counts and durations.
type metricsHook struct {
	navigationsTotal   *prometheus.CounterVec
	navigationDuration *prometheus.HistogramVec
	navigationErrors   *prometheus.CounterVec
}

// Prometheus creates a navigation hook that collects Prometheus metrics.
//
// Metrics collected:
//   - wayfind_navigations_total: Counter of settled navigations by route
//     pattern and outcome
//   - wayfind_navigation_duration_seconds: Histogram of resolve-to-settle
//     duration by route pattern
//   - wayfind_navigation_errors_total: Counter of handler failures by route
//     pattern
//
// Labels use the matched route pattern rather than the raw path, so
// cardinality stays bounded by the route table. Unmatched navigations are
// labeled "unmatched".
//
// The hook registers its collectors on the configured registry, so create it
// once and share it:
//
//	rt := router.New(router.Config{
//	    Hooks: []router.Hook{
//	        middleware.Prometheus(middleware.WithNamespace("myapp")),
//	    },
//	    ...
//	})
//
//	http.Handle("/metrics", promhttp.Handler())
func Prometheus(opts ...MetricsOption) router.Hook {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(config.Registry)

	m := &metricsHook{
		navigationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "navigations_total",
			Help:        "Total number of settled navigations",
			ConstLabels: config.ConstLabels,
		}, []string{"pattern", "outcome"}),

		navigationDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "navigation_duration_seconds",
			Help:        "Navigation resolve-to-settle duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}, []string{"pattern"}),

		navigationErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "navigation_errors_total",
			Help:        "Total number of handler failures",
			ConstLabels: config.ConstLabels,
		}, []string{"pattern"}),
	}
	return m
}

// ResolveStart implements router.Hook.
func (m *metricsHook) ResolveStart(path string) func(router.Outcome) {
	return func(o router.Outcome) {
		pattern := o.Pattern
		if pattern == "" {
			pattern = "unmatched"
		}
		m.navigationsTotal.WithLabelValues(pattern, o.Kind.String()).Inc()
		m.navigationDuration.WithLabelValues(pattern).Observe(o.Duration.Seconds())
		if o.Kind == router.OutcomeFailed {
			m.navigationErrors.WithLabelValues(pattern).Inc()
		}
	}
}

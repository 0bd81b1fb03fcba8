// Package metrics exports reconciliation passes as Prometheus metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/vango-dev/retain/internal/errors"
	"github.com/vango-dev/retain/pkg/vdom"
)

// Config configures the Prometheus collector.
type Config struct {
	// Namespace is the metrics namespace (default: "retain").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for pass duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// Option configures the collector.
type Option func(*Config)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) Option {
	return func(c *Config) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) Option {
	return func(c *Config) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) Option {
	return func(c *Config) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) Option {
	return func(c *Config) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) Option {
	return func(c *Config) {
		c.Registry = registry
	}
}

func defaultConfig() Config {
	return Config{
		Namespace: "retain",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Collector records every reconciliation pass it observes. It implements
// vdom.Observer; pass it to vdom.WithObserver.
//
// Metrics collected:
//   - retain_render_passes_total: Counter of passes by trigger and status
//   - retain_render_duration_seconds: Histogram of pass duration by trigger
//   - retain_render_errors_total: Counter of failed passes by error code
//   - retain_mutations_total: Counter of reconciler decisions and host
//     operations by op
type Collector struct {
	passes    *prometheus.CounterVec
	duration  *prometheus.HistogramVec
	errors    *prometheus.CounterVec
	mutations *prometheus.CounterVec
}

// New registers the collector's metrics and returns it. Registering twice
// on the same registry panics, as with promauto.
func New(opts ...Option) *Collector {
	config := defaultConfig()
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(config.Registry)

	return &Collector{
		passes: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "render_passes_total",
			Help:        "Total number of reconciliation passes",
			ConstLabels: config.ConstLabels,
		}, []string{"trigger", "status"}),

		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "render_duration_seconds",
			Help:        "Reconciliation pass duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}, []string{"trigger"}),

		errors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "render_errors_total",
			Help:        "Total number of failed passes by error code",
			ConstLabels: config.ConstLabels,
		}, []string{"code"}),

		mutations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "mutations_total",
			Help:        "Total reconciler decisions and host operations by op",
			ConstLabels: config.ConstLabels,
		}, []string{"op"}),
	}
}

// ObservePass implements vdom.Observer.
func (c *Collector) ObservePass(p vdom.Pass) {
	trigger := string(p.Trigger)
	status := "success"
	if p.Err != nil {
		status = "error"
		code := errors.CodeOf(p.Err)
		if code == "" {
			code = "unknown"
		}
		c.errors.WithLabelValues(code).Inc()
	}
	c.passes.WithLabelValues(trigger, status).Inc()
	c.duration.WithLabelValues(trigger).Observe(p.Duration.Seconds())

	for _, m := range statsOps(p.Stats) {
		if m.n > 0 {
			c.mutations.WithLabelValues(m.op).Add(float64(m.n))
		}
	}
}

type opCount struct {
	op string
	n  int
}

func statsOps(s vdom.Stats) []opCount {
	return []opCount{
		{"insert", s.Inserted},
		{"remove", s.Removed},
		{"replace", s.Replaced},
		{"update", s.Updated},
		{"move", s.Moved},
		{"create", s.Created},
		{"clear_property", s.PropsCleared},
		{"set_property", s.PropsSet},
		{"remove_listener", s.ListenersRemoved},
		{"add_listener", s.ListenersAdded},
	}
}

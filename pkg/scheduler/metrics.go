package scheduler

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus instruments for a Scheduler.
type Metrics struct {
	scheduled     *prometheus.CounterVec
	executed      *prometheus.CounterVec
	cancelled     prometheus.Counter
	panics        prometheus.Counter
	depth         prometheus.Gauge
	drainDuration prometheus.Histogram
}

// MetricsConfig configures scheduler metrics.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "weft").
	Namespace string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for drain duration.
	// Default: prometheus.DefBuckets.
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer.
	Registry prometheus.Registerer
}

// NewMetrics creates and registers the scheduler's Prometheus instruments.
func NewMetrics(cfg MetricsConfig) *Metrics {
	if cfg.Namespace == "" {
		cfg.Namespace = "weft"
	}
	if cfg.Buckets == nil {
		cfg.Buckets = prometheus.DefBuckets
	}
	if cfg.Registry == nil {
		cfg.Registry = prometheus.DefaultRegisterer
	}

	factory := promauto.With(cfg.Registry)

	return &Metrics{
		scheduled: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   "scheduler",
			Name:        "tasks_scheduled_total",
			Help:        "Total tasks scheduled, by priority.",
			ConstLabels: cfg.ConstLabels,
		}, []string{"priority"}),
		executed: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   "scheduler",
			Name:        "tasks_executed_total",
			Help:        "Total tasks executed, by priority.",
			ConstLabels: cfg.ConstLabels,
		}, []string{"priority"}),
		cancelled: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   "scheduler",
			Name:        "tasks_cancelled_total",
			Help:        "Total tasks cancelled before running.",
			ConstLabels: cfg.ConstLabels,
		}),
		panics: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   "scheduler",
			Name:        "task_panics_total",
			Help:        "Total panics recovered from tasks and phase callbacks.",
			ConstLabels: cfg.ConstLabels,
		}),
		depth: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   "scheduler",
			Name:        "queue_depth",
			Help:        "Queued, not-yet-run tasks across all priorities.",
			ConstLabels: cfg.ConstLabels,
		}),
		drainDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   "scheduler",
			Name:        "drain_duration_seconds",
			Help:        "Duration of one queue drain (one frame).",
			ConstLabels: cfg.ConstLabels,
			Buckets:     cfg.Buckets,
		}),
	}
}

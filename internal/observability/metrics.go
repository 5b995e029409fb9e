package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// geo-filtering pipeline.
type Metrics struct {
	MessagesConsumed prometheus.Counter
	MessagesProduced prometheus.Counter
	TransformErrors  prometheus.Counter
	PointsExcluded   prometheus.Counter
	PipelineRunning  prometheus.Gauge

	// Batch processing metrics.
	BatchSize               prometheus.Histogram
	BatchProcessingDuration prometheus.Histogram

	// Geo metrics.
	ViewportSpanKm  prometheus.Histogram
	ClassifierCache *prometheus.CounterVec // labels: result={hit,miss}
}

// NewMetrics creates and registers all pipeline metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		MessagesConsumed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "argo_geo",
			Name:      "messages_consumed_total",
			Help:      "Total messages read from the source topic.",
		}),
		MessagesProduced: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "argo_geo",
			Name:      "messages_produced_total",
			Help:      "Total messages written to the sink topic.",
		}),
		TransformErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "argo_geo",
			Name:      "transform_errors_total",
			Help:      "Total transformation failures (malformed messages).",
		}),
		PointsExcluded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "argo_geo",
			Name:      "points_excluded_total",
			Help:      "Total float positions dropped by the land filter.",
		}),
		PipelineRunning: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "argo_geo",
			Name:      "pipeline_running",
			Help:      "1 when the pipeline is active, 0 when shut down.",
		}),
		BatchSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "argo_geo",
			Name:      "batch_size",
			Help:      "Number of messages per batch extracted from Kafka.",
			Buckets:   []float64{1, 5, 10, 20, 30, 40, 50, 75, 100},
		}),
		BatchProcessingDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "argo_geo",
			Name:      "batch_processing_duration_seconds",
			Help:      "Duration of a complete batch extract-transform-load cycle.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10},
		}),
		ViewportSpanKm: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "argo_geo",
			Name:      "viewport_span_km",
			Help:      "Diagonal great-circle span of the fitted viewport per batch.",
			Buckets:   []float64{100, 250, 500, 1000, 2500, 5000, 10000, 20000},
		}),
		ClassifierCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "argo_geo",
			Name:      "classifier_cache_total",
			Help:      "Classification cache lookups by result.",
		}, []string{"result"}),
	}

	prometheus.MustRegister(
		m.MessagesConsumed,
		m.MessagesProduced,
		m.TransformErrors,
		m.PointsExcluded,
		m.PipelineRunning,
		m.BatchSize,
		m.BatchProcessingDuration,
		m.ViewportSpanKm,
		m.ClassifierCache,
	)

	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		MessagesConsumed:        prometheus.NewCounter(prometheus.CounterOpts{Namespace: "argo_geo", Name: "messages_consumed_total"}),
		MessagesProduced:        prometheus.NewCounter(prometheus.CounterOpts{Namespace: "argo_geo", Name: "messages_produced_total"}),
		TransformErrors:         prometheus.NewCounter(prometheus.CounterOpts{Namespace: "argo_geo", Name: "transform_errors_total"}),
		PointsExcluded:          prometheus.NewCounter(prometheus.CounterOpts{Namespace: "argo_geo", Name: "points_excluded_total"}),
		PipelineRunning:         prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "argo_geo", Name: "pipeline_running"}),
		BatchSize:               prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "argo_geo", Name: "batch_size"}),
		BatchProcessingDuration: prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "argo_geo", Name: "batch_processing_duration_seconds"}),
		ViewportSpanKm:          prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "argo_geo", Name: "viewport_span_km"}),
		ClassifierCache:         prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "argo_geo", Name: "classifier_cache_total"}, []string{"result"}),
	}
}

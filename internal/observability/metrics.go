// Package observability provides Prometheus metrics for pipeline runs.
package observability

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for one pipeline registry.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	// Ingestion metrics
	RowsLoaded     *prometheus.CounterVec
	RowsSkipped    *prometheus.CounterVec
	ParseFallbacks *prometheus.CounterVec
	MissingCells   *prometheus.CounterVec

	// Join metrics
	RecordsJoined prometheus.Counter
	MissingInputs *prometheus.CounterVec

	// Feature metrics
	FeatureRows   prometheus.Counter
	LabelsEmitted *prometheus.CounterVec

	// Pipeline metrics
	PipelineRunsTotal *prometheus.CounterVec
	PipelineDuration  prometheus.Histogram
	LastSuccessfulRun prometheus.Gauge

	registry *prometheus.Registry
}

// NewMetrics creates a Metrics instance registered on reg.
// A nil reg gets a fresh registry so repeated runs never collide.
func NewMetrics(namespace string, reg *prometheus.Registry) *Metrics {
	if namespace == "" {
		namespace = "fundamentals_panel"
	}
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	factory := promauto.With(reg)

	return &Metrics{
		RowsLoaded: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ingestion",
			Name:      "rows_loaded_total",
			Help:      "Total number of CSV data rows loaded by source file",
		}, []string{"source"}),
		RowsSkipped: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ingestion",
			Name:      "rows_skipped_total",
			Help:      "Total number of CSV data rows skipped (empty ticker or short date)",
		}, []string{"source"}),
		ParseFallbacks: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ingestion",
			Name:      "parse_fallbacks_total",
			Help:      "Total number of malformed fields defaulted to zero in lenient mode",
		}, []string{"source"}),
		MissingCells: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ingestion",
			Name:      "missing_cells_total",
			Help:      "Total number of empty cells recorded as missing in strict mode",
		}, []string{"source"}),

		RecordsJoined: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "join",
			Name:      "records_total",
			Help:      "Total number of ticker-year records produced by the join",
		}),
		MissingInputs: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "join",
			Name:      "missing_inputs_total",
			Help:      "Total number of joined fields defaulted to zero because the input was absent",
		}, []string{"metric"}),

		FeatureRows: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "features",
			Name:      "rows_total",
			Help:      "Total number of feature rows emitted",
		}),
		LabelsEmitted: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "features",
			Name:      "labels_total",
			Help:      "Total number of labels emitted by class",
		}, []string{"label"}),

		PipelineRunsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "pipeline",
			Name:      "runs_total",
			Help:      "Total number of pipeline runs by status",
		}, []string{"status"}),
		PipelineDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "pipeline",
			Name:      "duration_seconds",
			Help:      "Pipeline execution duration in seconds",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30, 60},
		}),
		LastSuccessfulRun: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "health",
			Name:      "last_successful_run_timestamp",
			Help:      "Unix timestamp of last successful pipeline run",
		}),

		registry: reg,
	}
}

// Registry returns the registry the metrics are registered on.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// WriteTextfile writes all gathered metrics in the node-exporter textfile format.
func (m *Metrics) WriteTextfile(path string) error {
	if m == nil {
		return nil
	}
	return prometheus.WriteToTextfile(path, m.registry)
}

// RecordLoad records the outcome of loading one CSV source.
func (m *Metrics) RecordLoad(source string, rows, skipped, fallbacks, missing int) {
	if m == nil {
		return
	}
	m.RowsLoaded.WithLabelValues(source).Add(float64(rows))
	m.RowsSkipped.WithLabelValues(source).Add(float64(skipped))
	m.ParseFallbacks.WithLabelValues(source).Add(float64(fallbacks))
	m.MissingCells.WithLabelValues(source).Add(float64(missing))
}

// RecordJoined increments the joined record counter.
func (m *Metrics) RecordJoined(n int) {
	if m == nil {
		return
	}
	m.RecordsJoined.Add(float64(n))
}

// RecordMissingInput increments the missing input counter for a metric.
func (m *Metrics) RecordMissingInput(metric string) {
	if m == nil {
		return
	}
	m.MissingInputs.WithLabelValues(metric).Inc()
}

// RecordFeatureRow records one emitted feature row and its label.
func (m *Metrics) RecordFeatureRow(label int) {
	if m == nil {
		return
	}
	m.FeatureRows.Inc()
	m.LabelsEmitted.WithLabelValues(strconv.Itoa(label)).Inc()
}

// RecordPipelineRun records a pipeline run with its status and duration.
func (m *Metrics) RecordPipelineRun(status string, durationSeconds float64, finishedUnix int64) {
	if m == nil {
		return
	}
	m.PipelineRunsTotal.WithLabelValues(status).Inc()
	m.PipelineDuration.Observe(durationSeconds)
	if status == "success" {
		m.LastSuccessfulRun.Set(float64(finishedUnix))
	}
}

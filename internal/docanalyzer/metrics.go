package docanalyzer

import (
	"time"

	"github.com/aisa-it/docanalyzer/internal/docanalyzer/report"
	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "docanalyzer"

// Failure reasons
const (
	failureInvalidJSON   = "invalid_json"
	failureMalformedTree = "malformed_tree"
	failureTooLarge      = "too_large"
	failureInvalidInput  = "invalid_request"
)

type Metrics struct {
	operations   *prometheus.CounterVec
	failures     *prometheus.CounterVec
	duration     prometheus.Histogram
	documentSize prometheus.Histogram
	bootTime     prometheus.Gauge
}

// NewMetrics создает и регистрирует метрики анализа документов.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "operations_total",
			Help:      "Number of executed document analysis operations",
		}, []string{"operation"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "failures_total",
			Help:      "Number of rejected documents",
		}, []string{"reason"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "analysis_duration_seconds",
			Help:      "Document analysis duration",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}),
		documentSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "document_size_positions",
			Help:      "Size of analyzed documents in tree positions",
			Buckets:   prometheus.ExponentialBuckets(16, 4, 8),
		}),
		bootTime: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "boot_time",
			Help:      "Server startup time",
		}),
	}
	m.bootTime.Set(float64(time.Now().UnixMilli()))

	for _, c := range []prometheus.Collector{m.operations, m.failures, m.duration, m.documentSize, m.bootTime} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) observeAnalysis(ops []report.Operation, size int, start time.Time) {
	if m == nil {
		return
	}
	for _, op := range ops {
		m.operations.WithLabelValues(string(op)).Inc()
	}
	m.documentSize.Observe(float64(size))
	m.duration.Observe(time.Since(start).Seconds())
}

func (m *Metrics) failure(reason string) {
	if m == nil {
		return
	}
	m.failures.WithLabelValues(reason).Inc()
}

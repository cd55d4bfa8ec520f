package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "astronaut_etl"

// Metrics holds the Prometheus counters, histograms, and gauges for the ETL pipeline.
type Metrics struct {
	RunsTotal          prometheus.Counter
	RunErrors          *prometheus.CounterVec // labels: stage={acquire,transform,load}
	PipelineRunning    prometheus.Gauge
	RunDuration        prometheus.Histogram
	AstronautsEnriched prometheus.Counter
	UnknownCrafts      prometheus.Counter
	AstronautsInSpace  prometheus.Gauge
	HealthStatus       *prometheus.CounterVec // labels: status={Normal,Monitor,AtRisk,Critical}
	MessagesProduced   prometheus.Counter

	// Weather cache metrics.
	WeatherCache *prometheus.CounterVec // labels: result={hit,miss}
}

// NewMetrics creates and registers all pipeline metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	return NewMetricsWith(prometheus.DefaultRegisterer)
}

// NewMetricsWith creates all pipeline metrics and registers them with reg.
func NewMetricsWith(reg prometheus.Registerer) *Metrics {
	m := newMetrics()
	reg.MustRegister(
		m.RunsTotal,
		m.RunErrors,
		m.PipelineRunning,
		m.RunDuration,
		m.AstronautsEnriched,
		m.UnknownCrafts,
		m.AstronautsInSpace,
		m.HealthStatus,
		m.MessagesProduced,
		m.WeatherCache,
	)
	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		RunsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Total completed pipeline runs.",
		}),
		RunErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "run_errors_total",
			Help:      "Pipeline run failures by stage.",
		}, []string{"stage"}),
		PipelineRunning: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "pipeline_running",
			Help:      "1 when the pipeline is active, 0 when shut down.",
		}),
		RunDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Duration of a complete acquire-transform-load run.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}),
		AstronautsEnriched: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "astronauts_enriched_total",
			Help:      "Total astronaut records joined against the spacecraft catalog.",
		}),
		UnknownCrafts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "unknown_craft_lookups_total",
			Help:      "Enrichments that fell back to the unknown-craft sentinel.",
		}),
		AstronautsInSpace: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "astronauts_in_space",
			Help:      "Astronauts reported by the most recent run.",
		}),
		HealthStatus: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "health_evaluations_total",
			Help:      "Simulated health evaluations by resulting status.",
		}, []string{"status"}),
		MessagesProduced: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "messages_produced_total",
			Help:      "Total messages written to the sink topics.",
		}),
		WeatherCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "weather_cache_total",
			Help:      "Weather cache lookups by result.",
		}, []string{"result"}),
	}
}

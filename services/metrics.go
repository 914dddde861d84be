package services

import (
	"time"

	"fitnessmap/calculator"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the service's Prometheus collectors. A nil *Metrics is valid
// and records nothing.
type Metrics struct {
	CalculationsTotal    *prometheus.CounterVec
	InvalidMeasurements  prometheus.Counter
	NegativeMacroWarning prometheus.Counter
	CalculationDuration  prometheus.Histogram
	Subscribers          prometheus.Gauge
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		CalculationsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "fitness_calculations_total",
			Help: "Completed fitness calculations by goal",
		}, []string{"goal"}),

		InvalidMeasurements: f.NewCounter(prometheus.CounterOpts{
			Name: "fitness_invalid_measurements_total",
			Help: "Calculations rejected because of an invalid weight or height",
		}),

		NegativeMacroWarning: f.NewCounter(prometheus.CounterOpts{
			Name: "fitness_negative_macro_warnings_total",
			Help: "Calculations that produced a negative macro target",
		}),

		CalculationDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "fitness_calculation_duration_seconds",
			Help:    "Time spent in the calculation engine",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 8),
		}),

		Subscribers: f.NewGauge(prometheus.GaugeOpts{
			Name: "fitness_ws_subscribers",
			Help: "Active realtime subscriptions on this instance",
		}),
	}
}

func (m *Metrics) observeCalculation(goal calculator.Goal, res calculator.Result, err error, took time.Duration) {
	if m == nil {
		return
	}
	m.CalculationDuration.Observe(took.Seconds())
	if err != nil {
		m.InvalidMeasurements.Inc()
		return
	}
	label := string(goal)
	if !goal.Valid() {
		label = "other"
	}
	m.CalculationsTotal.WithLabelValues(label).Inc()
	if len(res.Warnings) > 0 {
		m.NegativeMacroWarning.Inc()
	}
}

func (m *Metrics) subscriberAdded() {
	if m != nil {
		m.Subscribers.Inc()
	}
}

func (m *Metrics) subscriberRemoved() {
	if m != nil {
		m.Subscribers.Dec()
	}
}

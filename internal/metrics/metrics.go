package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics groups the Prometheus instruments for the database probe.
// Registered once at startup via New() on a private registry so tests stay
// isolated from prometheus.DefaultRegisterer.
type Metrics struct {
	ProbesTotal   *prometheus.CounterVec
	ProbeDuration *prometheus.HistogramVec
}

func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		ProbesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "db_probe_total",
			Help: "Database connectivity probes by outcome (connected or error).",
		}, []string{"outcome"}),

		ProbeDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "db_probe_duration_seconds",
			Help:    "Time to open and close one probe connection.",
			Buckets: prometheus.DefBuckets,
		}, []string{"outcome"}),
	}

	reg.MustRegister(m.ProbesTotal, m.ProbeDuration)
	return m
}

// ProbeHook returns the callback expected by service.HealthService so the
// service package does not import prometheus.
func (m *Metrics) ProbeHook() func(outcome string, d time.Duration) {
	return func(outcome string, d time.Duration) {
		m.ProbesTotal.WithLabelValues(outcome).Inc()
		m.ProbeDuration.WithLabelValues(outcome).Observe(d.Seconds())
	}
}

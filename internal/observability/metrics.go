// Package observability defines the prometheus instrumentation for the
// conversation core. Collectors are created against an injected registerer
// so tests can use isolated registries.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics bundles the collectors the transports record into.
type Metrics struct {
	// Transitions counts applied events by origin state, event kind, and
	// result ("accepted", "invalid", "error").
	Transitions *prometheus.CounterVec

	// PlanBuildSeconds observes render plan compilation latency.
	PlanBuildSeconds prometheus.Histogram

	// ValidationFailures counts fatal validation outcomes by component
	// ("compliance", "render_plan").
	ValidationFailures *prometheus.CounterVec
}

// New creates and registers the collectors.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Transitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "editorbot_transitions_total",
				Help: "Conversation events applied, by state, event and result.",
			},
			[]string{"state", "event", "result"},
		),
		PlanBuildSeconds: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "editorbot_plan_build_seconds",
				Help:    "Render plan build and validation latency.",
				Buckets: prometheus.DefBuckets,
			},
		),
		ValidationFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "editorbot_validation_failures_total",
				Help: "Validation runs that produced fatal errors, by component.",
			},
			[]string{"component"},
		),
	}

	reg.MustRegister(m.Transitions, m.PlanBuildSeconds, m.ValidationFailures)
	return m
}

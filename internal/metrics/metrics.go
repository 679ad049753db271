package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// durationBuckets are the fixed histogram boundaries for event processing time.
var durationBuckets = []float64{0.1, 0.2, 0.5, 1, 2, 5, 10, 30, 60, 120}

// EventMetrics holds the observability sinks for one event kind: three
// counters and a processing-duration histogram.
type EventMetrics struct {
	Events   prometheus.Counter
	Success  prometheus.Counter
	Errors   prometheus.Counter
	Duration prometheus.Histogram
}

// NewEventMetrics registers the collectors for the given event kind with reg.
// The prefix is the snake_case event name, e.g. "project_created".
func NewEventMetrics(reg prometheus.Registerer, prefix, eventName string) *EventMetrics {
	m := &EventMetrics{
		Events: prometheus.NewCounter(prometheus.CounterOpts{
			Name: prefix + "_events_total",
			Help: "Total number of " + eventName + " events received",
		}),
		Success: prometheus.NewCounter(prometheus.CounterOpts{
			Name: prefix + "_success_total",
			Help: "Total number of " + eventName + " events successfully processed",
		}),
		Errors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: prefix + "_error_total",
			Help: "Total number of " + eventName + " events that failed during processing",
		}),
		Duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    prefix + "_duration_seconds",
			Help:    "Duration of " + eventName + " event processing",
			Buckets: durationBuckets,
		}),
	}
	reg.MustRegister(m.Events, m.Success, m.Errors, m.Duration)
	return m
}

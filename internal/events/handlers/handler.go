package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"scenarios-conductor/internal/metrics"
)

// Instrumented wraps one event kind's processing with metric bookkeeping:
// received counter, delegated call timing, success/error counters. The
// delegate's error is propagated unchanged.
type Instrumented[E any] struct {
	eventType string
	metrics   *metrics.EventMetrics
	validate  *validator.Validate
	delegate  func(ctx context.Context, event E) error
}

// NewInstrumented creates an instrumented handler for eventType delegating to fn.
func NewInstrumented[E any](eventType string, m *metrics.EventMetrics, fn func(ctx context.Context, event E) error) *Instrumented[E] {
	return &Instrumented[E]{
		eventType: eventType,
		metrics:   m,
		validate:  validator.New(),
		delegate:  fn,
	}
}

// EventType returns the event kind this handler is registered for.
func (h *Instrumented[E]) EventType() string {
	return h.eventType
}

// OnStartup is a lifecycle placeholder invoked once when the consumer starts.
func (h *Instrumented[E]) OnStartup(ctx context.Context) error {
	return nil
}

// OnShutdown is a lifecycle placeholder invoked once when the consumer stops.
func (h *Instrumented[E]) OnShutdown(ctx context.Context) error {
	return nil
}

// Handle decodes and validates the payload, delegates processing and records
// the outcome. The start time is scoped to this invocation so concurrent
// deliveries never share bookkeeping state.
func (h *Instrumented[E]) Handle(ctx context.Context, payload []byte) error {
	start := h.preProcess()

	var event E
	if err := json.Unmarshal(payload, &event); err != nil {
		h.metrics.Errors.Inc()
		return fmt.Errorf("failed to decode %s payload: %w", h.eventType, err)
	}
	if err := h.validate.Struct(event); err != nil {
		h.metrics.Errors.Inc()
		return fmt.Errorf("invalid %s payload: %w", h.eventType, err)
	}

	if err := h.delegate(ctx, event); err != nil {
		h.metrics.Errors.Inc()
		return err
	}

	h.postProcess(start)
	return nil
}

// preProcess counts the received event and records the processing start time.
func (h *Instrumented[E]) preProcess() time.Time {
	h.metrics.Events.Inc()
	return time.Now()
}

// postProcess records the processing duration when a start time was recorded
// and counts the success either way.
func (h *Instrumented[E]) postProcess(start time.Time) {
	if !start.IsZero() {
		h.metrics.Duration.Observe(time.Since(start).Seconds())
	}
	h.metrics.Success.Inc()
}

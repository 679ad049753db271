package handlers

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"scenarios-conductor/internal/events"
	"scenarios-conductor/internal/metrics"
)

// BaseScenarioService is the reconciliation surface the handlers delegate to.
type BaseScenarioService interface {
	HandleProjectCreated(ctx context.Context, event events.ProjectCreated) error
	HandleRegionalScenarioCreated(ctx context.Context, event events.RegionalScenarioCreated) error
}

// NewProjectCreated builds the instrumented handler for ProjectCreated events.
func NewProjectCreated(svc BaseScenarioService, reg prometheus.Registerer) *Instrumented[events.ProjectCreated] {
	m := metrics.NewEventMetrics(reg, "project_created", "ProjectCreated")
	return NewInstrumented(events.TypeProjectCreated, m, svc.HandleProjectCreated)
}

// NewRegionalScenarioCreated builds the instrumented handler for
// RegionalScenarioCreated events.
func NewRegionalScenarioCreated(svc BaseScenarioService, reg prometheus.Registerer) *Instrumented[events.RegionalScenarioCreated] {
	m := metrics.NewEventMetrics(reg, "regional_scenario_created", "RegionalScenarioCreated")
	return NewInstrumented(events.TypeRegionalScenarioCreated, m, svc.HandleRegionalScenarioCreated)
}

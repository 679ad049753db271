package urban

import (
	"context"
	"time"
)

//go:generate mockgen -source=client.go -destination=../mocks/urban_mocks.go -package=mocks

// ScenarioFilter narrows the scenarios listing. Nil pointer fields are not
// sent; the two booleans are always sent and default to false.
type ScenarioFilter struct {
	ParentID    *int64
	ProjectID   *int64
	TerritoryID *int64
	IsBased     bool
	OnlyOwn     bool
}

// ProjectFilter narrows the projects listing. PageSize only affects request
// volume; the listing always returns every match.
type ProjectFilter struct {
	OnlyOwn     bool
	IsRegional  bool
	ProjectType *string
	TerritoryID *int64
	Name        *string
	CreatedAt   *time.Time
	PageSize    int
}

// Client defines the capability set against the Urban API. The HTTP-backed
// implementation lives in this package; tests use the generated mock.
type Client interface {
	// IsAlive probes the API liveness endpoint. It never fails: any
	// transport error or unexpected body is reported as false.
	IsAlive(ctx context.Context) bool

	// GetVersion fetches the API version string from the openapi metadata.
	GetVersion(ctx context.Context) (string, error)

	// GetProjectByID fetches a project snapshot by identifier.
	GetProjectByID(ctx context.Context, projectID int64) (*Project, error)

	// GetScenarioByID fetches a scenario snapshot by identifier.
	GetScenarioByID(ctx context.Context, scenarioID int64) (*Scenario, error)

	// GetScenarios lists scenarios matching all supplied filters.
	GetScenarios(ctx context.Context, filter ScenarioFilter) ([]Scenario, error)

	// GetProjects lists projects matching all supplied filters, following
	// every pagination link and returning the concatenated result.
	GetProjects(ctx context.Context, filter ProjectFilter) ([]Project, error)

	// CreateBaseScenario promotes a regional scenario to the base scenario
	// of the given project. An existing link surfaces as a ConflictError.
	CreateBaseScenario(ctx context.Context, projectID, scenarioID int64) (*Scenario, error)

	// Close releases the underlying transport resources.
	Close()
}

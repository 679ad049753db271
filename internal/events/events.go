package events

// Event type keys carried in the stream entry "type" field.
const (
	TypeProjectCreated          = "ProjectCreated"
	TypeRegionalScenarioCreated = "RegionalScenarioCreated"
)

// ProjectCreated is emitted when a new project appears in the Urban API.
type ProjectCreated struct {
	ProjectID      int64 `json:"project_id" validate:"required"`
	BaseScenarioID int64 `json:"base_scenario_id"`
	TerritoryID    int64 `json:"territory_id" validate:"required"`
}

// RegionalScenarioCreated is emitted when a new regional scenario appears in
// the Urban API.
type RegionalScenarioCreated struct {
	ScenarioID  int64 `json:"scenario_id" validate:"required"`
	TerritoryID int64 `json:"territory_id" validate:"required"`
}

package urban

import "time"

// ShortTerritory is the reduced territory projection embedded in other models.
type ShortTerritory struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ShortScenario is the reduced scenario projection embedded in other models.
type ShortScenario struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ShortProject is the reduced project projection embedded in scenarios.
type ShortProject struct {
	ProjectID int64          `json:"project_id"`
	UserID    string         `json:"user_id"`
	Name      string         `json:"name"`
	Region    ShortTerritory `json:"region"`
}

// FunctionalZoneType is the basic functional zone type projection.
type FunctionalZoneType struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Nickname    string `json:"nickname"`
	Description string `json:"description"`
}

// Scenario is a scenario snapshot with all its attributes.
type Scenario struct {
	ScenarioID         int64                  `json:"scenario_id"`
	ParentScenario     *ShortScenario         `json:"parent_scenario"`
	Project            ShortProject           `json:"project"`
	FunctionalZoneType *FunctionalZoneType    `json:"functional_zone_type"`
	Name               string                 `json:"name"`
	IsBased            bool                   `json:"is_based"`
	Properties         map[string]interface{} `json:"properties"`
	CreatedAt          time.Time              `json:"created_at"`
	UpdatedAt          time.Time              `json:"updated_at"`
}

// Project is a project snapshot with all its attributes.
type Project struct {
	ProjectID    int64                  `json:"project_id"`
	UserID       string                 `json:"user_id"`
	Name         string                 `json:"name"`
	Territory    ShortTerritory         `json:"territory"`
	BaseScenario *ShortScenario         `json:"base_scenario"`
	Description  *string                `json:"description"`
	Public       bool                   `json:"public"`
	IsRegional   bool                   `json:"is_regional"`
	IsCity       bool                   `json:"is_city"`
	Properties   map[string]interface{} `json:"properties"`
	CreatedAt    time.Time              `json:"created_at"`
	UpdatedAt    time.Time              `json:"updated_at"`
}

// paginatedProjects is one page of the projects listing endpoint.
type paginatedProjects struct {
	Count   int64     `json:"count"`
	Prev    *string   `json:"prev"`
	Next    *string   `json:"next"`
	Results []Project `json:"results"`
}

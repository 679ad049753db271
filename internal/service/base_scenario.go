package service

import (
	"context"

	apperrors "scenarios-conductor/internal/errors"
	"scenarios-conductor/internal/events"
	"scenarios-conductor/internal/logger"
	"scenarios-conductor/internal/urban"
)

// BaseScenarioService reacts to project and regional scenario creation events
// by creating the missing base scenario links through the Urban API.
type BaseScenarioService struct {
	urbanClient urban.Client
}

// NewBaseScenarioService creates the reconciliation service over the given client.
func NewBaseScenarioService(urbanClient urban.Client) *BaseScenarioService {
	return &BaseScenarioService{
		urbanClient: urbanClient,
	}
}

// HandleProjectCreated finds all regional scenarios of the project's owner in
// the event's territory and creates a base scenario for each one that does
// not already have one.
//
// An absent project or territory ends processing as a logged no-op. A
// conflict or per-item 400/404 on creation skips that scenario only; any
// other failure aborts the batch and propagates.
func (s *BaseScenarioService) HandleProjectCreated(ctx context.Context, event events.ProjectCreated) error {
	log := logger.WithContext(ctx)

	project, err := s.urbanClient.GetProjectByID(ctx, event.ProjectID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			log.WithField("project_id", event.ProjectID).Warn("project not found")
			return nil
		}
		log.WithField("project_id", event.ProjectID).WithError(err).Error("failed to fetch project")
		return err
	}

	userID := project.UserID

	scenarios, err := s.urbanClient.GetScenarios(ctx, urban.ScenarioFilter{TerritoryID: &event.TerritoryID})
	if err != nil {
		if apperrors.IsNotFound(err) {
			log.WithField("project_id", event.ProjectID).Warn("no territory found")
			return nil
		}
		log.WithField("territory_id", event.TerritoryID).WithError(err).Error("failed to fetch regional scenarios")
		return err
	}

	// Cross-reference by owning user locally: the listing endpoint cannot
	// filter by user id, and based scenarios must never be re-targeted.
	var filtered []urban.Scenario
	for _, scenario := range scenarios {
		if scenario.Project.UserID == userID && !scenario.IsBased {
			filtered = append(filtered, scenario)
		}
	}
	log.WithFields(map[string]interface{}{
		"count":   len(filtered),
		"user_id": userID,
	}).Info("found matching regional scenarios")

	for _, scenario := range filtered {
		baseScenario, err := s.urbanClient.CreateBaseScenario(ctx, event.ProjectID, scenario.ScenarioID)
		itemLog := log.WithFields(map[string]interface{}{
			"project_id":           event.ProjectID,
			"regional_scenario_id": scenario.ScenarioID,
		})
		switch {
		case err == nil:
			itemLog.WithField("base_scenario_id", baseScenario.ScenarioID).Info("base scenario created for project")
		case apperrors.IsConflict(err):
			itemLog.Warn("base scenario already exists")
		case apperrors.IsNotFound(err) || apperrors.IsBadRequest(err):
			itemLog.WithError(err).Error("failed to create base scenario")
		default:
			itemLog.WithError(err).Error("unexpected error while creating base scenario")
			return err
		}
	}
	return nil
}

// HandleRegionalScenarioCreated is the mirror procedure: it finds all
// projects of the scenario owner in the event's territory and creates a base
// scenario from this regional scenario for each of them.
func (s *BaseScenarioService) HandleRegionalScenarioCreated(ctx context.Context, event events.RegionalScenarioCreated) error {
	log := logger.WithContext(ctx)

	scenario, err := s.urbanClient.GetScenarioByID(ctx, event.ScenarioID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			log.WithField("scenario_id", event.ScenarioID).Warn("scenario not found")
			return nil
		}
		log.WithField("scenario_id", event.ScenarioID).WithError(err).Error("failed to fetch scenario")
		return err
	}

	userID := scenario.Project.UserID

	projects, err := s.urbanClient.GetProjects(ctx, urban.ProjectFilter{TerritoryID: &event.TerritoryID})
	if err != nil {
		if apperrors.IsNotFound(err) {
			log.WithField("territory_id", event.TerritoryID).Warn("no territory found")
			return nil
		}
		log.WithField("territory_id", event.TerritoryID).WithError(err).Error("failed to fetch projects")
		return err
	}

	var filtered []urban.Project
	for _, project := range projects {
		if project.UserID == userID {
			filtered = append(filtered, project)
		}
	}
	log.WithFields(map[string]interface{}{
		"count":   len(filtered),
		"user_id": userID,
	}).Info("found matching projects")

	for _, project := range filtered {
		baseScenario, err := s.urbanClient.CreateBaseScenario(ctx, project.ProjectID, event.ScenarioID)
		itemLog := log.WithFields(map[string]interface{}{
			"project_id":           project.ProjectID,
			"regional_scenario_id": scenario.ScenarioID,
		})
		switch {
		case err == nil:
			itemLog.WithField("base_scenario_id", baseScenario.ScenarioID).Info("base scenario created")
		case apperrors.IsConflict(err):
			itemLog.Warn("base scenario already exists")
		case apperrors.IsNotFound(err) || apperrors.IsBadRequest(err):
			itemLog.WithError(err).Error("failed to create base scenario")
		default:
			itemLog.WithError(err).Error("unexpected error while creating base scenario")
			return err
		}
	}
	return nil
}

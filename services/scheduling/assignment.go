package scheduling

import (
	"planify/models"
)

// ValidateAssignment checks a provider against a mission's window and, when
// the provider is free, returns the assignment intent for the host store to
// execute. Any assignment path must run through this check rather than rely
// on disabled UI controls.
func (se *DefaultSchedulingEngine) ValidateAssignment(provider *models.Provider, mission models.Mission) (*models.AssignmentIntent, error) {
	if provider == nil {
		return nil, &NotFoundError{Kind: "provider", ID: ""}
	}
	if mission.ID == "" {
		return nil, &NotFoundError{Kind: "mission", ID: ""}
	}

	result := se.IsAvailable(provider, mission.Date, mission.StartTime, mission.EndTime)
	if !result.Available {
		return nil, &AvailabilityConflictError{
			ProviderID: provider.ID,
			Date:       mission.Date,
			StartTime:  mission.StartTime,
			EndTime:    mission.EndTime,
			Leave:      result.BlockingLeave,
		}
	}

	return &models.AssignmentIntent{MissionID: mission.ID, ProviderID: provider.ID}, nil
}

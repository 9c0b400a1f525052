package scheduling

import (
	"planify/models"
	"planify/utils"
)

// Engine defines the scheduling and availability operations shared by the
// assignment UI, the booking assistant and the conflict audit. Every method
// is a pure transformation over the snapshots supplied by the host; nothing
// here touches storage.
type Engine interface {
	IsAvailable(provider *models.Provider, date, startTime, endTime string) models.Availability
	WeeklyAvailability(provider *models.Provider, weekStart string) ([]models.DayAvailability, error)
	ValidateAssignment(provider *models.Provider, mission models.Mission) (*models.AssignmentIntent, error)

	Expand(template models.MissionTemplate, rule models.RecurrenceRule, knownClients []string) ([]models.Mission, error)

	SplitOptionsFor(totalHours float64) []models.SplitOption
	GenerateFixedSplit(baseDate string, opt models.SplitOption) []models.InterventionSlot
	GenerateFreeForm(baseDate string, days int, totalHours float64) ([]models.InterventionSlot, error)
	AppendSlot(slots []models.InterventionSlot, today string) []models.InterventionSlot

	Audit(providers []models.Provider, missions []models.Mission) []models.Conflict
	Recommend(req RecommendRequest, providers []models.Provider, missions []models.Mission) []models.SlotCandidate
}

// DefaultSchedulingEngine is the production implementation.
type DefaultSchedulingEngine struct {
	Config utils.SchedulingConfig
}

// NewSchedulingEngine builds an engine from the given configuration.
func NewSchedulingEngine(cfg utils.SchedulingConfig) *DefaultSchedulingEngine {
	return &DefaultSchedulingEngine{Config: cfg}
}

// File: services/scheduling/recurrence.go
package scheduling

import (
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"planify/models"
	"planify/utils"
)

var validate = validator.New()

// Expand turns one mission template into a dated series per the recurrence
// rule. The whole series is returned as a single value so the host can commit
// it atomically; on any template problem nothing is emitted.
//
// Duration is computed once from the anchor's times and applied unchanged to
// every instance. All instances share one recurrence group id so the series
// can be bulk-cancelled or edited later.
func (se *DefaultSchedulingEngine) Expand(template models.MissionTemplate, rule models.RecurrenceRule, knownClients []string) ([]models.Mission, error) {
	if err := validate.Struct(template); err != nil {
		return nil, &InvalidTemplateError{Reason: err.Error()}
	}
	if !containsString(knownClients, template.ClientID) {
		return nil, &InvalidTemplateError{Reason: "unknown client " + template.ClientID}
	}

	switch rule.Kind {
	case models.RecurrenceNone, models.RecurrenceWeekly, models.RecurrenceBiweekly, models.RecurrenceMonthly:
	default:
		return nil, &ValidationError{Field: "kind", Message: "unknown recurrence kind " + rule.Kind}
	}

	count := rule.OccurrenceCount
	if count < 1 {
		count = 1
	}
	if count > utils.MaxOccurrences {
		count = utils.MaxOccurrences
	}
	if rule.Kind == models.RecurrenceNone {
		count = 1
	}

	duration := DurationHours(template.StartDate, template.StartTime, template.EndTime)
	groupID := uuid.New().String()

	missions := make([]models.Mission, 0, count)
	for i := 0; i < count; i++ {
		var date string
		switch rule.Kind {
		case models.RecurrenceWeekly:
			date = ShiftCalendarDays(template.StartDate, i*7)
		case models.RecurrenceBiweekly:
			date = ShiftCalendarDays(template.StartDate, i*14)
		case models.RecurrenceMonthly:
			date = ShiftCalendarMonths(template.StartDate, i)
		default:
			date = template.StartDate
		}
		missions = append(missions, models.Mission{
			Date:              date,
			StartTime:         template.StartTime,
			EndTime:           template.EndTime,
			DurationHours:     duration,
			ClientID:          template.ClientID,
			ProviderID:        template.ProviderID,
			Service:           template.Service,
			Status:            models.MissionStatusPlanned,
			RecurrenceGroupID: groupID,
			Source:            template.Source,
		})
	}

	utils.GetLogger().Debug("expanded recurrence series",
		zap.String("groupID", groupID),
		zap.String("kind", rule.Kind),
		zap.Int("instances", len(missions)))

	return missions, nil
}

func containsString(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}

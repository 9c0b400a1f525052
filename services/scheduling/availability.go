// File: services/scheduling/availability.go
package scheduling

import (
	"go.uber.org/zap"

	"planify/models"
	"planify/utils"
)

// IsAvailable reports whether the provider is free over [date+startTime,
// date+endTime). Every leave with status other than rejected blocks — pending
// ones included. A nil provider or a malformed window fails closed.
//
// This predicate is the single source of truth for availability; slot
// generation, the recommendation ranker and assignment validation all go
// through it.
func (se *DefaultSchedulingEngine) IsAvailable(provider *models.Provider, date, startTime, endTime string) models.Availability {
	if provider == nil {
		return models.Availability{Available: false}
	}

	winStart, okS := combine(date, startTime)
	winEnd, okE := combine(date, endTime)
	if !okS || !okE {
		utils.GetLogger().Warn("IsAvailable: malformed window, failing closed",
			zap.String("providerID", provider.ID),
			zap.String("date", date),
			zap.String("start", startTime),
			zap.String("end", endTime))
		return models.Availability{Available: false}
	}

	for i := range provider.Leaves {
		leave := provider.Leaves[i]
		if !leave.Blocks() {
			continue
		}
		leaveStart, okA := combine(leave.StartDate, orDefault(leave.StartTime, utils.FullDayStart))
		leaveEnd, okB := combine(leave.EndDate, orDefault(leave.EndTime, utils.FullDayEnd))
		if !okA || !okB {
			continue
		}
		if Overlaps(winStart, winEnd, leaveStart, leaveEnd) {
			blocking := leave
			return models.Availability{Available: false, BlockingLeave: &blocking}
		}
	}

	return models.Availability{Available: true}
}

// WeeklyAvailability walks 7 consecutive days from weekStart and probes each
// one against the configured working window. Assignment UIs use it to grey
// out days a provider cannot take.
func (se *DefaultSchedulingEngine) WeeklyAvailability(provider *models.Provider, weekStart string) ([]models.DayAvailability, error) {
	if provider == nil {
		return nil, &NotFoundError{Kind: "provider", ID: ""}
	}

	window := se.Config.WorkingWindow
	days := make([]models.DayAvailability, 0, 7)
	for offset := 0; offset < 7; offset++ {
		date := ShiftCalendarDays(weekStart, offset)
		result := se.IsAvailable(provider, date, window.Start, window.End)
		days = append(days, models.DayAvailability{
			Date:          date,
			Available:     result.Available,
			BlockingLeave: result.BlockingLeave,
		})
	}
	return days, nil
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

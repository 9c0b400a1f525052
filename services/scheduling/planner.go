// File: services/scheduling/planner.go
package scheduling

import (
	"math"

	"github.com/google/uuid"

	"planify/models"
	"planify/utils"
)

// SplitOptionsFor lists the configured (days, hoursPerDay) combinations whose
// product equals the pack's hour budget.
func (se *DefaultSchedulingEngine) SplitOptionsFor(totalHours float64) []models.SplitOption {
	var options []models.SplitOption
	for _, split := range se.Config.FixedSplits {
		if math.Abs(split.TotalHours-totalHours) < 1e-9 {
			options = append(options, models.SplitOption{Days: split.Days, HoursPerDay: split.HoursPerDay})
		}
	}
	return options
}

// GenerateFixedSplit builds one slot per option day, spaced every 2 calendar
// days from the base date, each starting at the configured day start.
func (se *DefaultSchedulingEngine) GenerateFixedSplit(baseDate string, opt models.SplitOption) []models.InterventionSlot {
	slots := make([]models.InterventionSlot, 0, opt.Days)
	for i := 0; i < opt.Days; i++ {
		slots = append(slots, se.newSlot(
			ShiftCalendarDays(baseDate, i*utils.FixedSplitGapDays),
			opt.HoursPerDay,
		))
	}
	return slots
}

// GenerateFreeForm spreads totalHours evenly over the requested number of
// consecutive days. Fractional hours per day are allowed.
func (se *DefaultSchedulingEngine) GenerateFreeForm(baseDate string, days int, totalHours float64) ([]models.InterventionSlot, error) {
	if days < 1 {
		return nil, &ValidationError{Field: "days", Message: "day count must be at least 1"}
	}
	if totalHours < 0 {
		totalHours = 0
	}
	hoursPerDay := totalHours / float64(days)

	slots := make([]models.InterventionSlot, 0, days)
	for i := 0; i < days; i++ {
		slots = append(slots, se.newSlot(ShiftCalendarDays(baseDate, i), hoursPerDay))
	}
	return slots, nil
}

// AppendSlot adds a manual slot defaulting to the day after the last one, or
// to today when the plan is empty, with the configured default window.
func (se *DefaultSchedulingEngine) AppendSlot(slots []models.InterventionSlot, today string) []models.InterventionSlot {
	date := today
	if len(slots) > 0 {
		date = ShiftCalendarDays(slots[len(slots)-1].Date, 1)
	}
	return append(slots, se.newSlot(date, se.Config.DefaultSlotHours))
}

// RemoveSlot drops the slot at the given index.
func RemoveSlot(slots []models.InterventionSlot, index int) ([]models.InterventionSlot, error) {
	if index < 0 || index >= len(slots) {
		return nil, &ValidationError{Field: "index", Message: "slot index out of range"}
	}
	out := make([]models.InterventionSlot, 0, len(slots)-1)
	out = append(out, slots[:index]...)
	return append(out, slots[index+1:]...), nil
}

// EditSlotDate changes only the slot's date.
func EditSlotDate(slot models.InterventionSlot, date string) models.InterventionSlot {
	slot.Date = date
	return slot
}

// EditSlotStart moves the start while holding the duration constant; the end
// is recomputed as start + duration.
func EditSlotStart(slot models.InterventionSlot, start string) models.InterventionSlot {
	slot.StartTime = start
	slot.EndTime = AddHoursToTime(start, slot.DurationHours)
	return slot
}

// EditSlotEnd changes the end and recomputes the duration, clamped at 0; the
// start is untouched.
func EditSlotEnd(slot models.InterventionSlot, end string) models.InterventionSlot {
	slot.EndTime = end
	slot.DurationHours = DurationHours(slot.Date, slot.StartTime, end)
	return slot
}

// PlanTotalHours sums the plan's slot durations; callers reconcile it against
// the pack's nominal hour budget.
func PlanTotalHours(slots []models.InterventionSlot) float64 {
	var total float64
	for _, s := range slots {
		total += s.DurationHours
	}
	return total
}

func (se *DefaultSchedulingEngine) newSlot(date string, hours float64) models.InterventionSlot {
	start := se.Config.DayStart
	return models.InterventionSlot{
		ID:            uuid.New().String(),
		Date:          date,
		StartTime:     start,
		EndTime:       AddHoursToTime(start, hours),
		DurationHours: hours,
	}
}

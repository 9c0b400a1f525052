// File: services/scheduling/audit.go
package scheduling

import (
	"go.uber.org/zap"

	"planify/models"
	"planify/utils"
)

// Audit scans the whole fleet and reports every planned mission whose date
// falls inside a non-rejected leave of its assigned provider. Deliberately
// day-granular: a leave covering any part of the day flags the mission. This
// is a reporting pass for the office staff, not a blocking gate; it collects
// everything and never errors.
func (se *DefaultSchedulingEngine) Audit(providers []models.Provider, missions []models.Mission) []models.Conflict {
	byProvider := make(map[string][]models.Mission)
	for _, m := range missions {
		if m.Status != models.MissionStatusPlanned || m.ProviderID == "" {
			continue
		}
		byProvider[m.ProviderID] = append(byProvider[m.ProviderID], m)
	}

	var conflicts []models.Conflict
	for _, p := range providers {
		assigned := byProvider[p.ID]
		if len(assigned) == 0 {
			continue
		}
		for _, leave := range p.Leaves {
			if !leave.Blocks() {
				continue
			}
			for _, m := range assigned {
				// ISO dates order lexically, inclusive on both ends.
				if m.Date >= leave.StartDate && m.Date <= leave.EndDate {
					conflicts = append(conflicts, models.Conflict{
						Mission:      m,
						ProviderName: p.Name,
						LeaveStart:   leave.StartDate,
						LeaveEnd:     leave.EndDate,
					})
				}
			}
		}
	}

	if len(conflicts) > 0 {
		utils.GetLogger().Warn("fleet audit found conflicts", zap.Int("count", len(conflicts)))
	}
	return conflicts
}

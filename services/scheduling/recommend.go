// File: services/scheduling/recommend.go
package scheduling

import (
	"sort"

	"go.uber.org/zap"

	"planify/models"
	"planify/utils"
)

// RecommendRequest carries the booking assistant's query. Service is optional;
// when set, providers not listing it take the specialty penalty.
type RecommendRequest struct {
	Date    string `json:"date"`
	Service string `json:"service,omitempty"`
}

// Recommend enumerates the configured standard windows against every provider,
// drops the pairs the availability checker rejects, and scores the rest from a
// baseline of 100. When no provider is free on that date it returns an empty
// list rather than an error.
//
// Workload is counted from the planned missions in the snapshot; the least
// busy provider sets the zero point. Ordering is deterministic: score desc,
// then name asc, then id asc.
func (se *DefaultSchedulingEngine) Recommend(req RecommendRequest, providers []models.Provider, missions []models.Mission) []models.SlotCandidate {
	workload := make(map[string]int)
	for _, m := range missions {
		if m.Status == models.MissionStatusPlanned && m.ProviderID != "" {
			workload[m.ProviderID]++
		}
	}

	minWorkload := -1
	for _, p := range providers {
		if p.Status == models.ProviderStatusInactive {
			continue
		}
		if w := workload[p.ID]; minWorkload < 0 || w < minWorkload {
			minWorkload = w
		}
	}

	candidates := []models.SlotCandidate{}
	for i := range providers {
		p := &providers[i]
		if p.Status == models.ProviderStatusInactive {
			continue
		}
		workloadRank := workload[p.ID] - minWorkload
		specialtyMiss := req.Service != "" && !p.HasSpecialty(req.Service)

		for _, window := range se.Config.Windows {
			if !se.IsAvailable(p, req.Date, window.Start, window.End).Available {
				continue
			}

			score := 100
			if workloadRank > 0 {
				score -= se.Config.WorkloadPenalty * workloadRank
			}
			if specialtyMiss {
				score -= se.Config.SpecialtyPenalty
			}
			if score < 0 {
				score = 0
			}

			candidates = append(candidates, models.SlotCandidate{
				Window:       window,
				ProviderID:   p.ID,
				ProviderName: p.Name,
				Score:        score,
				Reason:       candidateReason(workloadRank, specialtyMiss),
			})
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Score != candidates[j].Score {
			return candidates[i].Score > candidates[j].Score
		}
		if candidates[i].ProviderName != candidates[j].ProviderName {
			return candidates[i].ProviderName < candidates[j].ProviderName
		}
		return candidates[i].ProviderID < candidates[j].ProviderID
	})

	utils.GetLogger().Debug("recommendation pass finished",
		zap.String("date", req.Date),
		zap.Int("candidates", len(candidates)))

	return candidates
}

// candidateReason names the dominant factor behind a candidate's score.
func candidateReason(workloadRank int, specialtyMiss bool) string {
	switch {
	case workloadRank == 0 && !specialtyMiss:
		return "Best availability match"
	case specialtyMiss && workloadRank == 0:
		return "Lowest current workload"
	case !specialtyMiss:
		return "Specialty match"
	default:
		return "Available on requested date"
	}
}

package scheduling

import (
	"testing"

	"planify/models"
)

func TestRecommendFiltersUnavailablePairs(t *testing.T) {
	se := newTestEngine()

	providers := []models.Provider{
		{
			ID: "p1", Name: "Ana", Status: models.ProviderStatusActive,
			Leaves: []models.Leave{
				{StartDate: "2024-03-10", EndDate: "2024-03-10", Status: models.LeaveStatusApproved},
			},
		},
		{ID: "p2", Name: "Bea", Status: models.ProviderStatusActive},
	}

	candidates := se.Recommend(RecommendRequest{Date: "2024-03-10"}, providers, nil)

	for _, c := range candidates {
		if c.ProviderID == "p1" {
			t.Errorf("candidate for provider on full-day leave: %+v", c)
		}
		p := &providers[1]
		if !se.IsAvailable(p, "2024-03-10", c.Window.Start, c.Window.End).Available {
			t.Errorf("candidate fails the availability predicate: %+v", c)
		}
	}
	if len(candidates) != len(se.Config.Windows) {
		t.Errorf("got %d candidates, want one per catalog window for the free provider", len(candidates))
	}
}

func TestRecommendEmptyWhenNobodyFree(t *testing.T) {
	se := newTestEngine()

	providers := []models.Provider{
		{
			ID: "p1", Name: "Ana", Status: models.ProviderStatusActive,
			Leaves: []models.Leave{
				{StartDate: "2024-03-01", EndDate: "2024-03-31", Status: models.LeaveStatusPending},
			},
		},
	}

	candidates := se.Recommend(RecommendRequest{Date: "2024-03-10"}, providers, nil)
	if candidates == nil {
		t.Fatal("must return an empty list, not nil")
	}
	if len(candidates) != 0 {
		t.Errorf("got %d candidates, want 0", len(candidates))
	}
}

func TestRecommendScoring(t *testing.T) {
	se := newTestEngine()

	providers := []models.Provider{
		{ID: "p1", Name: "Ana", Status: models.ProviderStatusActive, Specialties: []string{"cleaning"}},
		{ID: "p2", Name: "Bea", Status: models.ProviderStatusActive, Specialties: []string{"gardening"}},
	}
	// Ana already carries two planned missions, Bea none.
	missions := []models.Mission{
		{ID: "m1", Date: "2024-03-04", ProviderID: "p1", Status: models.MissionStatusPlanned},
		{ID: "m2", Date: "2024-03-05", ProviderID: "p1", Status: models.MissionStatusPlanned},
		{ID: "m3", Date: "2024-03-06", ProviderID: "p1", Status: models.MissionStatusCancelled},
	}

	candidates := se.Recommend(RecommendRequest{Date: "2024-03-10", Service: "cleaning"}, providers, missions)
	if len(candidates) == 0 {
		t.Fatal("expected candidates")
	}

	scores := map[string]int{}
	reasons := map[string]string{}
	for _, c := range candidates {
		scores[c.ProviderID] = c.Score
		reasons[c.ProviderID] = c.Reason
		if c.Score < 0 || c.Score > 100 {
			t.Errorf("score %d out of range", c.Score)
		}
	}

	// Ana: workload rank 2 over Bea -> 100 - 2*10 = 80. Bea: specialty miss -> 75.
	if scores["p1"] != 80 {
		t.Errorf("Ana score %d, want 80", scores["p1"])
	}
	if scores["p2"] != 75 {
		t.Errorf("Bea score %d, want 75", scores["p2"])
	}
	if reasons["p1"] != "Specialty match" {
		t.Errorf("Ana reason %q", reasons["p1"])
	}
	if reasons["p2"] != "Lowest current workload" {
		t.Errorf("Bea reason %q", reasons["p2"])
	}
}

func TestRecommendPerfectScoreAndOrdering(t *testing.T) {
	se := newTestEngine()

	providers := []models.Provider{
		{ID: "p2", Name: "Bea", Status: models.ProviderStatusActive},
		{ID: "p1", Name: "Ana", Status: models.ProviderStatusActive},
		{ID: "p3", Name: "Cleo", Status: models.ProviderStatusInactive},
	}

	candidates := se.Recommend(RecommendRequest{Date: "2024-03-10"}, providers, nil)

	for _, c := range candidates {
		if c.Score != 100 {
			t.Errorf("zero violations: score %d, want 100", c.Score)
		}
		if c.Reason != "Best availability match" {
			t.Errorf("zero violations: reason %q", c.Reason)
		}
		if c.ProviderID == "p3" {
			t.Error("inactive provider must not be suggested")
		}
	}

	// Equal scores order by provider name.
	for i := 1; i < len(candidates); i++ {
		prev, cur := candidates[i-1], candidates[i]
		if prev.Score == cur.Score && prev.ProviderName > cur.ProviderName {
			t.Errorf("tie not ordered by name: %q before %q", prev.ProviderName, cur.ProviderName)
		}
	}

	// Deterministic: same inputs, same output order.
	again := se.Recommend(RecommendRequest{Date: "2024-03-10"}, providers, nil)
	for i := range candidates {
		if candidates[i] != again[i] {
			t.Fatalf("ordering not reproducible at index %d", i)
		}
	}
}

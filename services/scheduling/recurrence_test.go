package scheduling

import (
	"errors"
	"testing"

	"planify/models"
)

var testClients = []string{"c1", "c2"}

func weeklyTemplate() models.MissionTemplate {
	return models.MissionTemplate{
		StartDate:  "2024-01-01",
		StartTime:  "09:00",
		EndTime:    "11:00",
		ClientID:   "c1",
		ProviderID: "p1",
		Service:    "cleaning",
	}
}

func TestExpandWeekly(t *testing.T) {
	se := newTestEngine()

	missions, err := se.Expand(weeklyTemplate(), models.RecurrenceRule{Kind: models.RecurrenceWeekly, OccurrenceCount: 3}, testClients)
	if err != nil {
		t.Fatalf("Expand returned error: %v", err)
	}

	wantDates := []string{"2024-01-01", "2024-01-08", "2024-01-15"}
	if len(missions) != len(wantDates) {
		t.Fatalf("got %d instances, want %d", len(missions), len(wantDates))
	}
	group := missions[0].RecurrenceGroupID
	if group == "" {
		t.Fatal("expanded instances must carry a recurrence group id")
	}
	for i, m := range missions {
		if m.Date != wantDates[i] {
			t.Errorf("instance %d: date %s, want %s", i, m.Date, wantDates[i])
		}
		if m.StartTime != "09:00" || m.EndTime != "11:00" {
			t.Errorf("instance %d: times %s-%s, want template times", i, m.StartTime, m.EndTime)
		}
		if m.DurationHours != 2 {
			t.Errorf("instance %d: duration %v, want 2", i, m.DurationHours)
		}
		if m.RecurrenceGroupID != group {
			t.Errorf("instance %d: group id differs within series", i)
		}
		if m.Status != models.MissionStatusPlanned {
			t.Errorf("instance %d: status %s, want planned", i, m.Status)
		}
		if m.ID != "" {
			t.Errorf("instance %d: id must be left for the store to assign", i)
		}
	}
}

func TestExpandBiweeklyAndNone(t *testing.T) {
	se := newTestEngine()

	missions, err := se.Expand(weeklyTemplate(), models.RecurrenceRule{Kind: models.RecurrenceBiweekly, OccurrenceCount: 2}, testClients)
	if err != nil {
		t.Fatalf("Expand returned error: %v", err)
	}
	if missions[1].Date != "2024-01-15" {
		t.Errorf("biweekly second instance %s, want 2024-01-15", missions[1].Date)
	}

	// "none" always yields exactly one instance, whatever the count says.
	missions, err = se.Expand(weeklyTemplate(), models.RecurrenceRule{Kind: models.RecurrenceNone, OccurrenceCount: 5}, testClients)
	if err != nil {
		t.Fatalf("Expand returned error: %v", err)
	}
	if len(missions) != 1 || missions[0].Date != "2024-01-01" {
		t.Errorf("none rule: got %d instances, first date %s", len(missions), missions[0].Date)
	}
}

func TestExpandMonthlyClampsShortMonths(t *testing.T) {
	se := newTestEngine()
	tpl := weeklyTemplate()
	tpl.StartDate = "2024-01-31"

	missions, err := se.Expand(tpl, models.RecurrenceRule{Kind: models.RecurrenceMonthly, OccurrenceCount: 3}, testClients)
	if err != nil {
		t.Fatalf("Expand returned error: %v", err)
	}
	wantDates := []string{"2024-01-31", "2024-02-29", "2024-03-31"}
	for i, m := range missions {
		if m.Date != wantDates[i] {
			t.Errorf("instance %d: date %s, want %s", i, m.Date, wantDates[i])
		}
	}
}

func TestExpandClampsOccurrenceCount(t *testing.T) {
	se := newTestEngine()

	missions, err := se.Expand(weeklyTemplate(), models.RecurrenceRule{Kind: models.RecurrenceWeekly, OccurrenceCount: 0}, testClients)
	if err != nil {
		t.Fatalf("Expand returned error: %v", err)
	}
	if len(missions) != 1 {
		t.Errorf("count 0 clamps to 1, got %d", len(missions))
	}

	missions, err = se.Expand(weeklyTemplate(), models.RecurrenceRule{Kind: models.RecurrenceWeekly, OccurrenceCount: 400}, testClients)
	if err != nil {
		t.Fatalf("Expand returned error: %v", err)
	}
	if len(missions) != 52 {
		t.Errorf("count 400 clamps to 52, got %d", len(missions))
	}
}

func TestExpandRejectsBadTemplates(t *testing.T) {
	se := newTestEngine()
	rule := models.RecurrenceRule{Kind: models.RecurrenceWeekly, OccurrenceCount: 3}

	var invalid *InvalidTemplateError

	tpl := weeklyTemplate()
	tpl.ClientID = "ghost"
	missions, err := se.Expand(tpl, rule, testClients)
	if !errors.As(err, &invalid) {
		t.Errorf("unknown client: want InvalidTemplateError, got %v", err)
	}
	if missions != nil {
		t.Error("failed expansion must emit nothing")
	}

	tpl = weeklyTemplate()
	tpl.ClientID = ""
	if _, err := se.Expand(tpl, rule, testClients); !errors.As(err, &invalid) {
		t.Errorf("missing client: want InvalidTemplateError, got %v", err)
	}

	tpl = weeklyTemplate()
	tpl.StartDate = "31/01/2024"
	if _, err := se.Expand(tpl, rule, testClients); !errors.As(err, &invalid) {
		t.Errorf("malformed anchor: want InvalidTemplateError, got %v", err)
	}

	var vErr *ValidationError
	if _, err := se.Expand(weeklyTemplate(), models.RecurrenceRule{Kind: "hourly", OccurrenceCount: 3}, testClients); !errors.As(err, &vErr) {
		t.Errorf("unknown kind: want ValidationError, got %v", err)
	}
}

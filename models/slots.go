// File: models/slots.go
package models

// InterventionSlot is one dated, timed sub-unit of a multi-day service pack,
// prior to being committed as a Mission. The id is draft-local; the store
// assigns a durable one on commit.
type InterventionSlot struct {
	ID            string  `json:"id"`
	Date          string  `json:"date"`
	StartTime     string  `json:"startTime"`
	EndTime       string  `json:"endTime"`
	DurationHours float64 `json:"durationHours"`
}

// SplitOption is one way to spread a pack's hour budget across days, with
// Days * HoursPerDay equal to the pack total.
type SplitOption struct {
	Days        int     `json:"days"`
	HoursPerDay float64 `json:"hoursPerDay"`
}

// TimeWindow is a start/end pair of "HH:MM" times within one day.
type TimeWindow struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// SlotCandidate is a scored (provider, window) suggestion produced for the
// booking assistant. Ephemeral, never persisted.
type SlotCandidate struct {
	Window       TimeWindow `json:"window"`
	ProviderID   string     `json:"providerId"`
	ProviderName string     `json:"providerName"`
	Score        int        `json:"score"` // 0..100
	Reason       string     `json:"reason"`
}

// DayAvailability is one day of a provider's weekly overview: whether the
// configured working window is free of leave on that date.
type DayAvailability struct {
	Date          string `json:"date"`
	Available     bool   `json:"available"`
	BlockingLeave *Leave `json:"blockingLeave,omitempty"`
}

// Availability is the outcome of a single availability check.
type Availability struct {
	Available     bool   `json:"available"`
	BlockingLeave *Leave `json:"blockingLeave,omitempty"`
}

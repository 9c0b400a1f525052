// File: models/mission.go
package models

// Mission status values. Only "planned" missions participate in conflict
// auditing; "cancelled" ones are ignored everywhere.
const (
	MissionStatusPlanned    = "planned"
	MissionStatusInProgress = "in_progress"
	MissionStatusCompleted  = "completed"
	MissionStatusCancelled  = "cancelled"
)

// Recurrence kinds accepted by the expander.
const (
	RecurrenceNone     = "none"
	RecurrenceWeekly   = "weekly"
	RecurrenceBiweekly = "biweekly"
	RecurrenceMonthly  = "monthly"
)

// Mission represents a single scheduled service appointment for a client.
// Dates are "2006-01-02" strings and times-of-day are "HH:MM" strings, the
// convention of the external record store.
type Mission struct {
	ID                string  `json:"id,omitempty"` // assigned by the store on persist
	Date              string  `json:"date"`
	StartTime         string  `json:"startTime"`
	EndTime           string  `json:"endTime"`
	DurationHours     float64 `json:"durationHours"` // derived at creation, never negative
	ClientID          string  `json:"clientId"`
	ProviderID        string  `json:"providerId,omitempty"` // empty means unassigned
	Service           string  `json:"service,omitempty"`
	Status            string  `json:"status"`
	RecurrenceGroupID string  `json:"recurrenceGroupId,omitempty"` // links siblings of one expansion
	Source            string  `json:"source,omitempty"`            // provenance tag
}

// MissionTemplate is the seed of a recurrence expansion: a Mission minus its
// id and date, anchored at StartDate.
type MissionTemplate struct {
	StartDate  string `json:"startDate" validate:"required,datetime=2006-01-02"`
	StartTime  string `json:"startTime" validate:"required"`
	EndTime    string `json:"endTime" validate:"required"`
	ClientID   string `json:"clientId" validate:"required"`
	ProviderID string `json:"providerId,omitempty"`
	Service    string `json:"service,omitempty"`
	Source     string `json:"source,omitempty"`
}

// RecurrenceRule drives the expansion of one template into a dated series.
type RecurrenceRule struct {
	Kind            string `json:"kind" validate:"oneof=none weekly biweekly monthly"`
	OccurrenceCount int    `json:"occurrenceCount"` // clamped to [1,52]
}

// AssignmentIntent is a mutation request handed back to the host store; the
// engine itself never writes.
type AssignmentIntent struct {
	MissionID  string `json:"missionId"`
	ProviderID string `json:"providerId"`
}

// Conflict pairs a planned mission with the leave period that covers its date.
type Conflict struct {
	Mission      Mission `json:"mission"`
	ProviderName string  `json:"providerName"`
	LeaveStart   string  `json:"leaveStart"`
	LeaveEnd     string  `json:"leaveEnd"`
}

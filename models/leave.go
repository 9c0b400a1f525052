package models

// Leave status values. Pending leaves block availability exactly like
// approved ones; only rejected leaves are ignored.
const (
	LeaveStatusPending  = "pending"
	LeaveStatusApproved = "approved"
	LeaveStatusRejected = "rejected"
)

// Leave is a provider's declared unavailability interval, subject to an
// approval workflow owned by the host application.
type Leave struct {
	ID         string `json:"id"`
	ProviderID string `json:"providerId"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
	StartTime  string `json:"startTime,omitempty"` // empty means 00:00
	EndTime    string `json:"endTime,omitempty"`   // empty means 23:59
	Status     string `json:"status"`
}

// Blocks reports whether the leave participates in availability checks.
func (l Leave) Blocks() bool {
	return l.Status != LeaveStatusRejected
}

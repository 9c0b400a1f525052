package scheduling

import (
	"fmt"

	"planify/models"
)

// InvalidTemplateError aborts a recurrence expansion; no partial series is
// ever emitted alongside it.
type InvalidTemplateError struct {
	Reason string
}

func (e *InvalidTemplateError) Error() string {
	return fmt.Sprintf("invalidTemplate: %s", e.Reason)
}

// ValidationError reports an out-of-range parameter that has no sane default
// to clamp to.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validationError: %s: %s", e.Field, e.Message)
}

// AvailabilityConflictError is raised by any assignment path that targets a
// window blocked by a provider's leave.
type AvailabilityConflictError struct {
	ProviderID string
	Date       string
	StartTime  string
	EndTime    string
	Leave      *models.Leave
}

func (e *AvailabilityConflictError) Error() string {
	if e.Leave != nil {
		return fmt.Sprintf("availabilityConflict: provider %s is on leave %s..%s over %s %s-%s",
			e.ProviderID, e.Leave.StartDate, e.Leave.EndDate, e.Date, e.StartTime, e.EndTime)
	}
	return fmt.Sprintf("availabilityConflict: provider %s is unavailable over %s %s-%s",
		e.ProviderID, e.Date, e.StartTime, e.EndTime)
}

// NotFoundError reports an unknown provider or mission id passed to a check.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("notFound: %s %q", e.Kind, e.ID)
}

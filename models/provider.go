package models

// Provider status values.
const (
	ProviderStatusActive   = "active"
	ProviderStatusPassive  = "passive"
	ProviderStatusInactive = "inactive"
)

// Provider is the read-only snapshot of a service provider as supplied by the
// host application. Leaves are owned by the provider record; the engine only
// reads them.
type Provider struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Status      string   `json:"status"`
	Specialties []string `json:"specialties,omitempty"`
	Leaves      []Leave  `json:"leaves,omitempty"`
}

// HasSpecialty reports whether the provider lists the given service.
func (p Provider) HasSpecialty(service string) bool {
	for _, s := range p.Specialties {
		if s == service {
			return true
		}
	}
	return false
}

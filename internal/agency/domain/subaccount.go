package domain

import "time"

// SubAccount is a scoped unit beneath an agency. It belongs to exactly one
// agency and owns its own sidebar configuration.
type SubAccount struct {
	ID        string
	AgencyID  string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

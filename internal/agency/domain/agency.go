package domain

import "time"

// Agency is the top-level tenant. It owns users, sub-accounts and sidebar
// configuration.
type Agency struct {
	ID           string
	Name         string
	CompanyEmail string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

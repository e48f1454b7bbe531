package domain

import "time"

// SidebarOption is a navigation entry belonging to either an agency or a
// sub-account. Behavior around sidebar options lives entirely in the
// rendering frontend; this service only stores and returns them.
type SidebarOption struct {
	ID        string
	Name      string
	Link      string
	Icon      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

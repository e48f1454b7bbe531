package domain

import "time"

// Notification is an immutable activity-log entry. Message embeds the author
// name and the event description ("<name> | <description>"). SubAccountID is
// nil for agency-scoped events.
type Notification struct {
	ID           string
	Message      string
	UserID       string
	AgencyID     string
	SubAccountID *string
	CreatedAt    time.Time
}

package domain

import "strings"

// Principal is the externally authenticated identity for a request. It is
// owned by the identity provider and immutable from this service's
// perspective. A nil *Principal means the caller is unauthenticated.
type Principal struct {
	ID        string
	Email     string
	FirstName string
	LastName  string
	AvatarURL string
}

// Name returns the display name used for provisioning and notification
// authorship ("First Last", trimmed when either part is empty).
func (p Principal) Name() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

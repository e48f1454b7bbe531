package domain

import "time"

// InvitationStatus tracks the lifecycle of a pending membership offer.
type InvitationStatus string

const (
	InvitationPending  InvitationStatus = "PENDING"
	InvitationAccepted InvitationStatus = "ACCEPTED"
	InvitationRevoked  InvitationStatus = "REVOKED"
)

// Invitation is a pending offer of agency membership keyed by email. At most
// one pending invitation exists per email (unique constraint). TokenHash is
// the Argon2id hash of the opaque token embedded in the invite link; the raw
// token is returned once at mint time and never stored.
type Invitation struct {
	ID        string
	Email     string
	AgencyID  string
	Role      Role
	Status    InvitationStatus
	TokenHash string
	CreatedAt time.Time
	UpdatedAt time.Time
}

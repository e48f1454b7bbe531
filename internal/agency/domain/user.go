package domain

import "time"

// User is the internal membership record tied to an agency. The id mirrors
// the identity provider's principal id when the user was provisioned through
// invitation acceptance. Email is unique across the system.
type User struct {
	ID        string
	Email     string
	Name      string
	AvatarURL string
	Role      Role
	AgencyID  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// AuthUser is the fully populated aggregate returned by user resolution: the
// user plus their agency, the agency's sidebar options, its sub-accounts (each
// with their own sidebar options) and the user's permissions.
type AuthUser struct {
	User

	Agency      *AgencyDetail
	Permissions []Permission
}

// AgencyDetail is an agency with its navigation and sub-account tree eagerly
// loaded.
type AgencyDetail struct {
	Agency

	SidebarOptions []SidebarOption
	SubAccounts    []SubAccountDetail
}

// SubAccountDetail is a sub-account with its sidebar options loaded.
type SubAccountDetail struct {
	SubAccount

	SidebarOptions []SidebarOption
}

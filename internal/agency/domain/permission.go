package domain

// Permission grants or denies a user access to a specific sub-account.
type Permission struct {
	ID           string
	UserEmail    string
	SubAccountID string
	Access       bool
}

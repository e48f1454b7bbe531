package store

import (
	"context"
	"errors"
	"time"

	"github.com/brindlelabs/agencyhub/internal/agency/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for now)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable, and a closure-based transaction helper for the few multi-step
// writes that must be atomic.
type Store interface {
	Users() Users
	Agencies() Agencies
	SubAccounts() SubAccounts
	Invitations() Invitations
	Notifications() Notifications
	Permissions() Permissions
	SidebarOptions() SidebarOptions

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed. This is the
	// recommended way to handle transactions.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail returns a user by their unique email. This is the
	// primary principal-to-user mapping.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// GetFirstUserInAgency returns an arbitrary user belonging to the agency,
	// used as the fallback author for system-initiated notifications.
	GetFirstUserInAgency(ctx context.Context, agencyID string) (domain.User, error)

	// CreateUser inserts a new user. The email uniqueness constraint surfaces
	// as ErrAlreadyExists.
	CreateUser(ctx context.Context, u domain.User) error

	// DeleteUser removes a user; notifications cascade per schema.
	DeleteUser(ctx context.Context, userID string) error
}

type Agencies interface {
	// GetAgencyByID fetches an agency by id.
	GetAgencyByID(ctx context.Context, id string) (domain.Agency, error)

	// CreateAgency inserts a new agency.
	CreateAgency(ctx context.Context, a domain.Agency) error
}

type SubAccounts interface {
	// GetSubAccountByID fetches a sub-account, used to derive its owning
	// agency id during notification authoring.
	GetSubAccountByID(ctx context.Context, id string) (domain.SubAccount, error)

	// ListSubAccountsByAgency returns all sub-accounts owned by an agency.
	ListSubAccountsByAgency(ctx context.Context, agencyID string) ([]domain.SubAccount, error)

	// CreateSubAccount inserts a new sub-account.
	CreateSubAccount(ctx context.Context, sa domain.SubAccount) error
}

type Invitations interface {
	// CreateInvitation writes a new invitation (token_hash is the Argon2id
	// hash of the opaque invite-link token). The per-email uniqueness
	// constraint surfaces as ErrAlreadyExists.
	CreateInvitation(ctx context.Context, inv domain.Invitation) error

	// GetPendingInvitationByEmail returns the PENDING invitation for an
	// email, if any.
	GetPendingInvitationByEmail(ctx context.Context, email string) (domain.Invitation, error)

	// DeleteInvitationByEmail removes a consumed or revoked invitation.
	DeleteInvitationByEmail(ctx context.Context, email string) error
}

type Notifications interface {
	// CreateNotification inserts an activity-log entry. Notifications are
	// append-only and never updated.
	CreateNotification(ctx context.Context, n domain.Notification) error

	// ListNotificationsByAgency returns notifications for an agency, newest
	// first, capped at limit (0 means no cap).
	ListNotificationsByAgency(ctx context.Context, agencyID string, limit int) ([]domain.Notification, error)

	// DeleteNotificationsBefore prunes entries created before the cutoff.
	// Housekeeping only.
	DeleteNotificationsBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type Permissions interface {
	// ListPermissionsByEmail returns a user's sub-account permissions.
	ListPermissionsByEmail(ctx context.Context, email string) ([]domain.Permission, error)

	// UpsertPermission creates or updates the access flag for a
	// user/sub-account pair.
	UpsertPermission(ctx context.Context, p domain.Permission) error
}

type SidebarOptions interface {
	// ListAgencySidebarOptions returns the navigation entries for an agency.
	ListAgencySidebarOptions(ctx context.Context, agencyID string) ([]domain.SidebarOption, error)

	// ListSubAccountSidebarOptions returns the navigation entries for a
	// sub-account.
	ListSubAccountSidebarOptions(ctx context.Context, subAccountID string) ([]domain.SidebarOption, error)

	// CreateAgencySidebarOption inserts an agency-scoped entry.
	CreateAgencySidebarOption(ctx context.Context, agencyID string, opt domain.SidebarOption) error

	// CreateSubAccountSidebarOption inserts a sub-account-scoped entry.
	CreateSubAccountSidebarOption(ctx context.Context, subAccountID string, opt domain.SidebarOption) error
}

package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/brindlelabs/agencyhub/internal/agency/domain"
	"github.com/brindlelabs/agencyhub/internal/agency/store"
	"github.com/brindlelabs/agencyhub/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *Store {
	t.Helper()

	st, err := NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func newAgency(t *testing.T, st store.Store) domain.Agency {
	t.Helper()

	now := time.Now().UTC()
	agency := domain.Agency{
		ID:           idx.New().String(),
		Name:         "fixture",
		CompanyEmail: "fixture@example.com",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, st.Agencies().CreateAgency(context.Background(), agency))
	return agency
}

func newUser(t *testing.T, st store.Store, agencyID, email string) domain.User {
	t.Helper()

	now := time.Now().UTC()
	user := domain.User{
		ID:        idx.New().String(),
		Email:     email,
		Name:      "Fixture User",
		Role:      domain.RoleSubAccountUser,
		AgencyID:  agencyID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, st.Users().CreateUser(context.Background(), user))
	return user
}

func TestConflictMapping(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	st := newStore(t)
	agency := newAgency(t, st)
	user := newUser(t, st, agency.ID, "unique@example.com")

	t.Run("duplicate email", func(t *testing.T) {
		dupe := user
		dupe.ID = idx.New().String()
		require.ErrorIs(t, st.Users().CreateUser(ctx, dupe), store.ErrAlreadyExists)
	})

	t.Run("duplicate primary key", func(t *testing.T) {
		dupe := user
		dupe.Email = "different@example.com"
		require.ErrorIs(t, st.Users().CreateUser(ctx, dupe), store.ErrAlreadyExists)
	})

	t.Run("duplicate invitation email", func(t *testing.T) {
		now := time.Now().UTC()
		inv := domain.Invitation{
			ID: idx.New().String(), Email: "invited@example.com", AgencyID: agency.ID,
			Role: domain.RoleSubAccountUser, Status: domain.InvitationPending,
			TokenHash: "h", CreatedAt: now, UpdatedAt: now,
		}
		require.NoError(t, st.Invitations().CreateInvitation(ctx, inv))

		inv.ID = idx.New().String()
		require.ErrorIs(t, st.Invitations().CreateInvitation(ctx, inv), store.ErrAlreadyExists)
	})
}

func TestNotFoundMapping(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	st := newStore(t)

	_, err := st.Users().GetUserByEmail(ctx, "ghost@example.com")
	require.ErrorIs(t, err, store.ErrNotFound)

	_, err = st.Agencies().GetAgencyByID(ctx, "ghost")
	require.ErrorIs(t, err, store.ErrNotFound)

	_, err = st.SubAccounts().GetSubAccountByID(ctx, "ghost")
	require.ErrorIs(t, err, store.ErrNotFound)

	_, err = st.Invitations().GetPendingInvitationByEmail(ctx, "ghost@example.com")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestWithTx(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("commits on success", func(t *testing.T) {
		t.Parallel()

		st := newStore(t)
		agency := newAgency(t, st)

		err := st.WithTx(ctx, func(tx store.Tx) error {
			newUser(t, tx, agency.ID, "committed@example.com")
			return nil
		})
		require.NoError(t, err)

		_, err = st.Users().GetUserByEmail(ctx, "committed@example.com")
		require.NoError(t, err)
	})

	t.Run("rolls back on error", func(t *testing.T) {
		t.Parallel()

		st := newStore(t)
		agency := newAgency(t, st)

		sentinel := store.ErrNotFound
		err := st.WithTx(ctx, func(tx store.Tx) error {
			newUser(t, tx, agency.ID, "discarded@example.com")
			return sentinel
		})
		require.ErrorIs(t, err, sentinel)

		_, err = st.Users().GetUserByEmail(ctx, "discarded@example.com")
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestDeleteUserCascadesNotifications(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	st := newStore(t)
	agency := newAgency(t, st)
	user := newUser(t, st, agency.ID, "author@example.com")

	require.NoError(t, st.Notifications().CreateNotification(ctx, domain.Notification{
		ID:        idx.New().String(),
		Message:   "Fixture User | Did something",
		UserID:    user.ID,
		AgencyID:  agency.ID,
		CreatedAt: time.Now().UTC(),
	}))

	require.NoError(t, st.Users().DeleteUser(ctx, user.ID))

	notifications, err := st.Notifications().ListNotificationsByAgency(ctx, agency.ID, 0)
	require.NoError(t, err)
	require.Empty(t, notifications)
}

func TestDeleteNotificationsBefore(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	st := newStore(t)
	agency := newAgency(t, st)
	user := newUser(t, st, agency.ID, "pruned@example.com")

	now := time.Now().UTC()
	stale := domain.Notification{
		ID: idx.New().String(), Message: "old", UserID: user.ID, AgencyID: agency.ID,
		CreatedAt: now.Add(-100 * 24 * time.Hour),
	}
	fresh := domain.Notification{
		ID: idx.New().String(), Message: "new", UserID: user.ID, AgencyID: agency.ID,
		CreatedAt: now,
	}
	require.NoError(t, st.Notifications().CreateNotification(ctx, stale))
	require.NoError(t, st.Notifications().CreateNotification(ctx, fresh))

	pruned, err := st.Notifications().DeleteNotificationsBefore(ctx, now.Add(-90*24*time.Hour))
	require.NoError(t, err)
	require.EqualValues(t, 1, pruned)

	remaining, err := st.Notifications().ListNotificationsByAgency(ctx, agency.ID, 0)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	require.Equal(t, fresh.ID, remaining[0].ID)
}

func TestPermissionUpsert(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	st := newStore(t)
	agency := newAgency(t, st)
	user := newUser(t, st, agency.ID, "perms@example.com")

	now := time.Now().UTC()
	sa := domain.SubAccount{
		ID: idx.New().String(), AgencyID: agency.ID, Name: "north",
		CreatedAt: now, UpdatedAt: now,
	}
	require.NoError(t, st.SubAccounts().CreateSubAccount(ctx, sa))

	perm := domain.Permission{
		ID: idx.New().String(), UserEmail: user.Email, SubAccountID: sa.ID, Access: true,
	}
	require.NoError(t, st.Permissions().UpsertPermission(ctx, perm))

	// Second upsert for the same pair flips the flag instead of duplicating.
	perm.ID = idx.New().String()
	perm.Access = false
	require.NoError(t, st.Permissions().UpsertPermission(ctx, perm))

	perms, err := st.Permissions().ListPermissionsByEmail(ctx, user.Email)
	require.NoError(t, err)
	require.Len(t, perms, 1)
	require.False(t, perms[0].Access)
}

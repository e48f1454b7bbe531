package service

import (
	"context"
	"testing"

	"github.com/brindlelabs/agencyhub/internal/agency/domain"
	"github.com/brindlelabs/agencyhub/internal/agency/store"
	"github.com/stretchr/testify/require"
)

func TestRecordActivity(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("rejects an entry with no target", func(t *testing.T) {
		t.Parallel()

		svc := &NotificationService{Store: newTestStore(t)}

		_, err := svc.RecordActivity(ctx, nil, ActivityLog{Description: "orphaned"})
		require.ErrorIs(t, err, ErrMissingTarget)
	})

	t.Run("attributes to the authenticated caller", func(t *testing.T) {
		t.Parallel()

		st := newTestStore(t)
		svc := &NotificationService{Store: st}

		agency := seedAgency(t, st, "acme")
		user := seedUser(t, st, agency.ID, "alice@example.com", domain.RoleAgencyAdmin)

		author, err := svc.RecordActivity(ctx, &domain.Principal{ID: user.ID, Email: user.Email}, ActivityLog{
			AgencyID:    agency.ID,
			Description: "Updated funnel settings",
		})
		require.NoError(t, err)
		require.Equal(t, AuthorAuthenticated, author.Kind)
		require.Equal(t, user.ID, author.User.ID)

		notifications, err := st.Notifications().ListNotificationsByAgency(ctx, agency.ID, 0)
		require.NoError(t, err)
		require.Len(t, notifications, 1)
		require.Equal(t, user.Name+" | Updated funnel settings", notifications[0].Message)
		require.Equal(t, user.ID, notifications[0].UserID)
		require.Nil(t, notifications[0].SubAccountID)
	})

	t.Run("derives the agency from the sub-account", func(t *testing.T) {
		t.Parallel()

		st := newTestStore(t)
		svc := &NotificationService{Store: st}

		agency := seedAgency(t, st, "derived")
		sa := seedSubAccount(t, st, agency.ID, "north")
		user := seedUser(t, st, agency.ID, "carol@example.com", domain.RoleSubAccountUser)

		author, err := svc.RecordActivity(ctx, &domain.Principal{ID: user.ID, Email: user.Email}, ActivityLog{
			SubAccountID: sa.ID,
			Description:  "Created media file",
		})
		require.NoError(t, err)
		require.Equal(t, AuthorAuthenticated, author.Kind)

		notifications, err := st.Notifications().ListNotificationsByAgency(ctx, agency.ID, 0)
		require.NoError(t, err)
		require.Len(t, notifications, 1)
		require.Equal(t, agency.ID, notifications[0].AgencyID)
		require.NotNil(t, notifications[0].SubAccountID)
		require.Equal(t, sa.ID, *notifications[0].SubAccountID)
	})

	t.Run("unknown sub-account is an error", func(t *testing.T) {
		t.Parallel()

		svc := &NotificationService{Store: newTestStore(t)}

		_, err := svc.RecordActivity(ctx, nil, ActivityLog{
			SubAccountID: "missing",
			Description:  "ghost",
		})
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("falls back to a team member for unauthenticated entries", func(t *testing.T) {
		t.Parallel()

		st := newTestStore(t)
		svc := &NotificationService{Store: st}

		agency := seedAgency(t, st, "fallback")
		member := seedUser(t, st, agency.ID, "member@example.com", domain.RoleAgencyAdmin)

		author, err := svc.RecordActivity(ctx, nil, ActivityLog{
			AgencyID:    agency.ID,
			Description: "Joined",
		})
		require.NoError(t, err)
		require.Equal(t, AuthorSystemFallback, author.Kind)
		require.Equal(t, member.ID, author.User.ID)

		notifications, err := st.Notifications().ListNotificationsByAgency(ctx, agency.ID, 0)
		require.NoError(t, err)
		require.Len(t, notifications, 1)
		require.Equal(t, member.Name+" | Joined", notifications[0].Message)
	})

	t.Run("drops the entry when no author exists", func(t *testing.T) {
		t.Parallel()

		st := newTestStore(t)
		svc := &NotificationService{Store: st}

		agency := seedAgency(t, st, "empty")

		author, err := svc.RecordActivity(ctx, nil, ActivityLog{
			AgencyID:    agency.ID,
			Description: "unattributable",
		})
		require.NoError(t, err)
		require.Equal(t, AuthorUnresolved, author.Kind)

		notifications, err := st.Notifications().ListNotificationsByAgency(ctx, agency.ID, 0)
		require.NoError(t, err)
		require.Empty(t, notifications)
	})
}

func TestListAgencyNotifications(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	st := newTestStore(t)
	svc := &NotificationService{Store: st}

	agency := seedAgency(t, st, "listed")
	user := seedUser(t, st, agency.ID, "lister@example.com", domain.RoleAgencyOwner)
	principal := &domain.Principal{ID: user.ID, Email: user.Email}

	for _, desc := range []string{"first", "second", "third"} {
		_, err := svc.RecordActivity(ctx, principal, ActivityLog{AgencyID: agency.ID, Description: desc})
		require.NoError(t, err)
	}

	t.Run("requires an agency id", func(t *testing.T) {
		_, err := svc.ListAgencyNotifications(ctx, "", 0)
		require.ErrorIs(t, err, ErrMissingTarget)
	})

	t.Run("newest first with a cap", func(t *testing.T) {
		notifications, err := svc.ListAgencyNotifications(ctx, agency.ID, 2)
		require.NoError(t, err)
		require.Len(t, notifications, 2)
		require.Equal(t, user.Name+" | third", notifications[0].Message)
		require.Equal(t, user.Name+" | second", notifications[1].Message)
	})

	t.Run("zero limit returns everything", func(t *testing.T) {
		notifications, err := svc.ListAgencyNotifications(ctx, agency.ID, 0)
		require.NoError(t, err)
		require.Len(t, notifications, 3)
	})
}

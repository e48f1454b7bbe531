package service

import (
	"context"
	"testing"
	"time"

	"github.com/brindlelabs/agencyhub/internal/agency/domain"
	"github.com/brindlelabs/agencyhub/pkg/idx"
	"github.com/stretchr/testify/require"
)

func TestResolveCurrentUser(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("nil principal resolves to nothing", func(t *testing.T) {
		t.Parallel()

		svc := &UserService{Store: newTestStore(t)}

		auth, err := svc.ResolveCurrentUser(ctx, nil)
		require.NoError(t, err)
		require.Nil(t, auth)
	})

	t.Run("unknown principal resolves to nothing", func(t *testing.T) {
		t.Parallel()

		svc := &UserService{Store: newTestStore(t)}

		auth, err := svc.ResolveCurrentUser(ctx, &domain.Principal{
			ID:    idx.New().String(),
			Email: "stranger@example.com",
		})
		require.NoError(t, err)
		require.Nil(t, auth)
	})

	t.Run("resolves the full aggregate", func(t *testing.T) {
		t.Parallel()

		st := newTestStore(t)
		svc := &UserService{Store: st}

		agency := seedAgency(t, st, "acme")
		saOne := seedSubAccount(t, st, agency.ID, "north")
		saTwo := seedSubAccount(t, st, agency.ID, "south")
		user := seedUser(t, st, agency.ID, "alice@example.com", domain.RoleAgencyAdmin)

		now := time.Now().UTC()
		require.NoError(t, st.SidebarOptions().CreateAgencySidebarOption(ctx, agency.ID, domain.SidebarOption{
			ID: idx.New().String(), Name: "Dashboard", Link: "/dashboard", Icon: "category", CreatedAt: now, UpdatedAt: now,
		}))
		require.NoError(t, st.SidebarOptions().CreateSubAccountSidebarOption(ctx, saOne.ID, domain.SidebarOption{
			ID: idx.New().String(), Name: "Funnels", Link: "/funnels", Icon: "pipelines", CreatedAt: now, UpdatedAt: now,
		}))
		require.NoError(t, st.Permissions().UpsertPermission(ctx, domain.Permission{
			ID: idx.New().String(), UserEmail: user.Email, SubAccountID: saOne.ID, Access: true,
		}))
		require.NoError(t, st.Permissions().UpsertPermission(ctx, domain.Permission{
			ID: idx.New().String(), UserEmail: user.Email, SubAccountID: saTwo.ID, Access: false,
		}))

		auth, err := svc.ResolveCurrentUser(ctx, &domain.Principal{
			ID:    user.ID,
			Email: user.Email,
		})
		require.NoError(t, err)
		require.NotNil(t, auth)

		require.Equal(t, user.ID, auth.ID)
		require.Equal(t, domain.RoleAgencyAdmin, auth.Role)

		require.NotNil(t, auth.Agency)
		require.Equal(t, agency.ID, auth.Agency.ID)
		require.Len(t, auth.Agency.SidebarOptions, 1)
		require.Equal(t, "Dashboard", auth.Agency.SidebarOptions[0].Name)

		require.Len(t, auth.Agency.SubAccounts, 2)
		byID := map[string]domain.SubAccountDetail{}
		for _, sa := range auth.Agency.SubAccounts {
			byID[sa.ID] = sa
		}
		require.Len(t, byID[saOne.ID].SidebarOptions, 1)
		require.Empty(t, byID[saTwo.ID].SidebarOptions)

		require.Len(t, auth.Permissions, 2)
	})

	t.Run("permissions are keyed by email not id", func(t *testing.T) {
		t.Parallel()

		st := newTestStore(t)
		svc := &UserService{Store: st}

		agency := seedAgency(t, st, "keyed")
		sa := seedSubAccount(t, st, agency.ID, "only")
		user := seedUser(t, st, agency.ID, "bob@example.com", domain.RoleSubAccountUser)

		// A permission row for a different email must not leak into bob's view.
		require.NoError(t, st.Permissions().UpsertPermission(ctx, domain.Permission{
			ID: idx.New().String(), UserEmail: "other@example.com", SubAccountID: sa.ID, Access: true,
		}))

		auth, err := svc.ResolveCurrentUser(ctx, &domain.Principal{ID: user.ID, Email: user.Email})
		require.NoError(t, err)
		require.NotNil(t, auth)
		require.Empty(t, auth.Permissions)
	})
}

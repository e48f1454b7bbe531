package service

import (
	"context"
	"testing"

	"github.com/brindlelabs/agencyhub/internal/agency/domain"
	"github.com/brindlelabs/agencyhub/internal/agency/store"
	"github.com/stretchr/testify/require"
)

func TestProvisionAgency(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	const token = "provision-token-12345"

	t.Run("creates agency, owner and navigation", func(t *testing.T) {
		t.Parallel()

		st := newTestStore(t)
		svc := &AgencyService{Store: st, Token: token}

		agency, owner, err := svc.Provision(ctx, token, AgencyProvisionData{
			Name:         "Acme Media",
			CompanyEmail: "hello@acme.example.com",
			OwnerID:      "principal_owner",
			OwnerEmail:   "owner@acme.example.com",
			OwnerName:    "Olive Owner",
		})
		require.NoError(t, err)
		require.NotEmpty(t, agency.ID)
		require.Equal(t, "principal_owner", owner.ID)
		require.Equal(t, domain.RoleAgencyOwner, owner.Role)
		require.Equal(t, agency.ID, owner.AgencyID)

		stored, err := st.Users().GetUserByEmail(ctx, "owner@acme.example.com")
		require.NoError(t, err)
		require.Equal(t, domain.RoleAgencyOwner, stored.Role)

		opts, err := st.SidebarOptions().ListAgencySidebarOptions(ctx, agency.ID)
		require.NoError(t, err)
		require.Len(t, opts, len(defaultSidebarOptions))
	})

	t.Run("rejects a bad token", func(t *testing.T) {
		t.Parallel()

		svc := &AgencyService{Store: newTestStore(t), Token: token}

		_, _, err := svc.Provision(ctx, "wrong", AgencyProvisionData{
			Name: "x", CompanyEmail: "x@example.com", OwnerEmail: "o@example.com",
		})
		require.ErrorIs(t, err, ErrProvisionUnauthorized)
	})

	t.Run("rejects when no token is configured", func(t *testing.T) {
		t.Parallel()

		svc := &AgencyService{Store: newTestStore(t)}

		_, _, err := svc.Provision(ctx, "", AgencyProvisionData{
			Name: "x", CompanyEmail: "x@example.com", OwnerEmail: "o@example.com",
		})
		require.ErrorIs(t, err, ErrProvisionUnauthorized)
	})

	t.Run("validates input", func(t *testing.T) {
		t.Parallel()

		svc := &AgencyService{Store: newTestStore(t), Token: token}

		_, _, err := svc.Provision(ctx, token, AgencyProvisionData{Name: "no emails"})
		require.ErrorIs(t, err, ErrInvalidAgencyRequest)
	})

	t.Run("rolls back everything on a duplicate owner", func(t *testing.T) {
		t.Parallel()

		st := newTestStore(t)
		svc := &AgencyService{Store: st, Token: token}

		existing := seedAgency(t, st, "existing")
		seedUser(t, st, existing.ID, "taken@example.com", domain.RoleAgencyOwner)

		agency, _, err := svc.Provision(ctx, token, AgencyProvisionData{
			Name:         "Doomed",
			CompanyEmail: "doomed@example.com",
			OwnerEmail:   "taken@example.com",
		})
		require.ErrorIs(t, err, store.ErrAlreadyExists)

		// The agency row from the failed transaction must not survive.
		require.Empty(t, agency.ID)
		_, err = st.Agencies().GetAgencyByID(ctx, agency.ID)
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

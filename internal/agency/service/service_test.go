package service

import (
	"context"
	"testing"
	"time"

	"github.com/brindlelabs/agencyhub/internal/agency/domain"
	"github.com/brindlelabs/agencyhub/internal/agency/store"
	"github.com/brindlelabs/agencyhub/internal/agency/store/drivers/sqlite"
	"github.com/brindlelabs/agencyhub/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func seedAgency(t *testing.T, st store.Store, name string) domain.Agency {
	t.Helper()

	now := time.Now().UTC()
	agency := domain.Agency{
		ID:           idx.New().String(),
		Name:         name,
		CompanyEmail: name + "@example.com",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, st.Agencies().CreateAgency(context.Background(), agency))
	return agency
}

func seedSubAccount(t *testing.T, st store.Store, agencyID, name string) domain.SubAccount {
	t.Helper()

	now := time.Now().UTC()
	sa := domain.SubAccount{
		ID:        idx.New().String(),
		AgencyID:  agencyID,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, st.SubAccounts().CreateSubAccount(context.Background(), sa))
	return sa
}

func seedUser(t *testing.T, st store.Store, agencyID, email string, role domain.Role) domain.User {
	t.Helper()

	now := time.Now().UTC()
	user := domain.User{
		ID:        idx.New().String(),
		Email:     email,
		Name:      "Seeded User",
		Role:      role,
		AgencyID:  agencyID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, st.Users().CreateUser(context.Background(), user))
	return user
}

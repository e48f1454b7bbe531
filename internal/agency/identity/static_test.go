package identity

import (
	"context"
	"testing"
	"time"

	"github.com/brindlelabs/agencyhub/internal/agency/domain"
	"github.com/stretchr/testify/require"
)

func TestStaticProviderSessionRoundtrip(t *testing.T) {
	t.Parallel()

	p := NewStaticProvider("agencyhub-test", []byte("shared-secret"))

	principal := domain.Principal{
		ID:        "prn_01",
		Email:     "jane@example.com",
		FirstName: "Jane",
		LastName:  "Doe",
		AvatarURL: "https://img.example.com/jane.png",
	}

	token, err := p.MintSession(principal, time.Minute)
	require.NoError(t, err)

	got, err := p.VerifySession(context.Background(), token)
	require.NoError(t, err)
	require.Equal(t, &principal, got)
}

func TestStaticProviderRejectsExpiredSession(t *testing.T) {
	t.Parallel()

	p := NewStaticProvider("agencyhub-test", []byte("shared-secret"))

	token, err := p.MintSession(domain.Principal{ID: "prn_01", Email: "jane@example.com"}, -time.Minute)
	require.NoError(t, err)

	_, err = p.VerifySession(context.Background(), token)
	require.ErrorIs(t, err, ErrInvalidSession)
}

func TestStaticProviderRejectsWrongSecret(t *testing.T) {
	t.Parallel()

	minter := NewStaticProvider("agencyhub-test", []byte("secret-a"))
	verifier := NewStaticProvider("agencyhub-test", []byte("secret-b"))

	token, err := minter.MintSession(domain.Principal{ID: "prn_01", Email: "jane@example.com"}, time.Minute)
	require.NoError(t, err)

	_, err = verifier.VerifySession(context.Background(), token)
	require.ErrorIs(t, err, ErrInvalidSession)
}

func TestStaticProviderRejectsMissingSubjectOrEmail(t *testing.T) {
	t.Parallel()

	p := NewStaticProvider("agencyhub-test", []byte("shared-secret"))

	token, err := p.MintSession(domain.Principal{Email: "jane@example.com"}, time.Minute)
	require.NoError(t, err)
	_, err = p.VerifySession(context.Background(), token)
	require.ErrorIs(t, err, ErrInvalidSession)

	token, err = p.MintSession(domain.Principal{ID: "prn_01"}, time.Minute)
	require.NoError(t, err)
	_, err = p.VerifySession(context.Background(), token)
	require.ErrorIs(t, err, ErrInvalidSession)
}

func TestStaticProviderStoresMetadata(t *testing.T) {
	t.Parallel()

	p := NewStaticProvider("agencyhub-test", []byte("shared-secret"))

	require.NoError(t, p.UpdateMetadata(context.Background(), "prn_01", Metadata{Role: domain.RoleAgencyAdmin}))

	meta, ok := p.MetadataFor("prn_01")
	require.True(t, ok)
	require.Equal(t, domain.RoleAgencyAdmin, meta.Role)

	_, ok = p.MetadataFor("prn_02")
	require.False(t, ok)
}

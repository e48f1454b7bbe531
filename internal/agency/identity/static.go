package identity

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/brindlelabs/agencyhub/internal/agency/domain"
	"github.com/golang-jwt/jwt/v5"
)

// StaticProvider verifies HS256 session tokens signed with a shared secret
// and keeps metadata in memory. Used for dev environments and the e2e suite,
// where running against the hosted provider is not practical.
type StaticProvider struct {
	issuer string
	secret []byte

	mu       sync.RWMutex
	metadata map[string]Metadata
}

func NewStaticProvider(issuer string, secret []byte) *StaticProvider {
	return &StaticProvider{
		issuer:   issuer,
		secret:   secret,
		metadata: map[string]Metadata{},
	}
}

func (p *StaticProvider) VerifySession(ctx context.Context, token string) (*domain.Principal, error) {
	claims := &sessionClaims{}

	_, err := jwt.ParseWithClaims(token, claims,
		func(t *jwt.Token) (any, error) { return p.secret, nil },
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithIssuer(p.issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSession, err)
	}

	if claims.Subject == "" || claims.Email == "" {
		return nil, ErrInvalidSession
	}

	return claims.principal(), nil
}

func (p *StaticProvider) UpdateMetadata(ctx context.Context, principalID string, meta Metadata) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.metadata[principalID] = meta
	return nil
}

// MetadataFor returns the stored metadata for a principal. Test helper.
func (p *StaticProvider) MetadataFor(principalID string) (Metadata, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	meta, ok := p.metadata[principalID]
	return meta, ok
}

// MintSession issues a session token for the principal, valid for ttl.
// Only the static provider mints tokens; in hosted mode that is the
// provider's job.
func (p *StaticProvider) MintSession(principal domain.Principal, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    p.issuer,
			Subject:   principal.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Email:     principal.Email,
		FirstName: principal.FirstName,
		LastName:  principal.LastName,
		AvatarURL: principal.AvatarURL,
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.secret)
}

// Package identity is the boundary to the hosted identity provider. The
// provider owns authentication entirely; this service only verifies session
// tokens it issued and pushes role metadata back so fresh sessions carry the
// caller's current role.
package identity

import (
	"context"
	"errors"

	"github.com/brindlelabs/agencyhub/internal/agency/domain"
)

// ErrInvalidSession reports a session token that failed verification. An
// invalid or missing session is normal control flow (the caller is treated as
// unauthenticated), never a fatal error.
var ErrInvalidSession = errors.New("identity: invalid session token")

// Metadata is the provider-side private metadata this service maintains for a
// principal.
type Metadata struct {
	Role domain.Role `json:"role"`
}

// Provider verifies sessions and updates provider-side principal metadata.
type Provider interface {
	// VerifySession validates a raw session token and returns the principal
	// it identifies. Returns ErrInvalidSession for malformed, expired or
	// unsigned-by-the-provider tokens.
	VerifySession(ctx context.Context, token string) (*domain.Principal, error)

	// UpdateMetadata pushes private metadata for a principal to the
	// provider. The provider reflects it in the session on the next token
	// refresh.
	UpdateMetadata(ctx context.Context, principalID string, meta Metadata) error
}

type ctxKey struct{}

// WithPrincipal attaches an authenticated principal to the context.
func WithPrincipal(ctx context.Context, p *domain.Principal) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// PrincipalFromContext returns the authenticated principal, or nil when the
// request carries no valid session.
func PrincipalFromContext(ctx context.Context) *domain.Principal {
	p, ok := ctx.Value(ctxKey{}).(*domain.Principal)
	if !ok {
		return nil
	}
	return p
}

package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/brindlelabs/agencyhub/internal/agency/domain"
	"github.com/golang-jwt/jwt/v5"
)

// HostedConfig configures the production provider mode: RS256 session tokens
// verified against the provider's JWKS endpoint, metadata updates over the
// provider's REST API.
type HostedConfig struct {
	Issuer  string // expected iss claim
	JWKSURL string // provider JWKS endpoint
	APIURL  string // provider REST API base, no trailing slash
	APIKey  string // bearer key for the REST API

	HTTPClient *http.Client // optional; defaults to a 10s-timeout client
}

type HostedProvider struct {
	cfg    HostedConfig
	keys   *jwksCache
	client *http.Client
}

func NewHostedProvider(cfg HostedConfig) *HostedProvider {
	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &HostedProvider{
		cfg:    cfg,
		keys:   newJWKSCache(cfg.JWKSURL, client),
		client: client,
	}
}

func (p *HostedProvider) VerifySession(ctx context.Context, token string) (*domain.Principal, error) {
	claims := &sessionClaims{}

	_, err := jwt.ParseWithClaims(token, claims,
		func(t *jwt.Token) (any, error) {
			kid, _ := t.Header["kid"].(string)
			return p.keys.get(ctx, kid)
		},
		jwt.WithValidMethods([]string{"RS256"}),
		jwt.WithIssuer(p.cfg.Issuer),
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

// UpdateMetadata patches the principal's private metadata through the
// provider REST API. The provider merges it into the session on the next
// token refresh.
func (p *HostedProvider) UpdateMetadata(ctx context.Context, principalID string, meta Metadata) error {
	if principalID == "" {
		return errors.New("identity: principal id is required")
	}

	body, err := json.Marshal(map[string]any{
		"private_metadata": meta,
	})
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/v1/principals/%s/metadata", p.cfg.APIURL, principalID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+p.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("identity: metadata update failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("identity: metadata update returned status %d", resp.StatusCode)
	}
	return nil
}

package identity

import (
	"github.com/brindlelabs/agencyhub/internal/agency/domain"
	"github.com/golang-jwt/jwt/v5"
)

// sessionClaims is the claim set both provider modes put in session tokens.
// The subject is the principal id.
type sessionClaims struct {
	jwt.RegisteredClaims

	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

func (c *sessionClaims) principal() *domain.Principal {
	return &domain.Principal{
		ID:        c.Subject,
		Email:     c.Email,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		AvatarURL: c.AvatarURL,
	}
}

package http

import (
	"net/http"
	"strings"

	"github.com/brindlelabs/agencyhub/internal/agency/domain"
	"github.com/brindlelabs/agencyhub/internal/agency/identity"
	"github.com/brindlelabs/agencyhub/pkg/httpx"
	"github.com/brindlelabs/agencyhub/pkg/slogx"
)

// SessionMiddleware resolves the caller's session token into a principal and
// stores it on the request context. An absent or invalid token leaves the
// request unauthenticated rather than rejecting it: several endpoints treat
// "no principal" as ordinary control flow (redirects, absence responses), so
// the decision belongs to the handler, not here.
func SessionMiddleware(provider identity.Provider) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			principal, err := provider.VerifySession(r.Context(), token)
			if err != nil {
				slogx.FromContext(r.Context()).Debug("session verification failed", "err", err)
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(identity.WithPrincipal(r.Context(), principal)))
		})
	}
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return header[len(prefix):]
	}
	return ""
}

// requirePrincipal writes a 401 and returns nil when the request carries no
// valid session.
func requirePrincipal(w http.ResponseWriter, r *http.Request) *domain.Principal {
	principal := identity.PrincipalFromContext(r.Context())
	if principal == nil {
		httpx.WriteJSON(w, http.StatusUnauthorized, httpx.ErrorResponse{
			Error:            "unauthorized",
			ErrorDescription: "Authentication required",
		})
	}
	return principal
}

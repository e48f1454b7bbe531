package http

import (
	"net/http"

	"github.com/brindlelabs/agencyhub/internal/agency/identity"
	"github.com/brindlelabs/agencyhub/internal/agency/service"
	"github.com/brindlelabs/agencyhub/pkg/httpx"
	"github.com/brindlelabs/agencyhub/pkg/slogx"
)

type MeHandler struct {
	UserService *service.UserService
	SignInURL   string
}

// ServeHTTP resolves the caller to their internal user aggregate.
//
//	@Summary		Current User Endpoint
//	@Description	Resolves the authenticated caller to their internal user record, including their agency,
//	@Description	its sub-accounts, sidebar navigation and the caller's sub-account permissions.
//	@Description	Unauthenticated callers are redirected to the sign-in page.
//	@Tags			Users
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	UserResponse			"user with agency tree and permissions"
//	@Success		307	"redirect to sign-in"
//	@Failure		404	{object}	httpx.ErrorResponse		"error, error_description"
//	@Failure		500	{object}	httpx.ErrorResponse		"error, error_description"
//	@Router			/v1/me [get].
func (h *MeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	principal := identity.PrincipalFromContext(ctx)
	if principal == nil {
		http.Redirect(w, r, h.SignInURL, http.StatusTemporaryRedirect)
		return
	}

	auth, err := h.UserService.ResolveCurrentUser(ctx, principal)
	if err != nil {
		log.Error("failed to resolve current user", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, httpx.ErrorResponse{
			Error:            "server_error",
			ErrorDescription: "Failed to resolve user",
		})
		return
	}
	if auth == nil {
		// Authenticated with the provider but unknown here.
		httpx.WriteJSON(w, http.StatusNotFound, httpx.ErrorResponse{
			Error:            "not_found",
			ErrorDescription: "No user record for this account",
		})
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, authUserResponse(auth))
}

package http

import (
	"errors"
	"net/http"

	"github.com/brindlelabs/agencyhub/internal/agency/identity"
	"github.com/brindlelabs/agencyhub/internal/agency/service"
	"github.com/brindlelabs/agencyhub/internal/agency/store"
	"github.com/brindlelabs/agencyhub/pkg/httpx"
	"github.com/brindlelabs/agencyhub/pkg/slogx"
)

type InvitationAcceptHandler struct {
	InvitationService *service.InvitationService
	SignInURL         string
}

// ServeHTTP consumes the caller's pending invitation.
//
//	@Summary		Invitation Acceptance Endpoint
//	@Description	Consumes the pending invitation for the caller's email: provisions a user in the
//	@Description	inviting agency with the invited role, records a join notification, pushes the role
//	@Description	into the identity provider's metadata and deletes the invitation.
//	@Description	Without a pending invitation the caller's existing membership is returned instead;
//	@Description	an empty agency_id means the caller belongs to no agency.
//	@Tags			Invitations
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	AcceptResponse		"agency_id"
//	@Success		307	"redirect to sign-in"
//	@Failure		409	{object}	httpx.ErrorResponse	"error, error_description"
//	@Failure		500	{object}	httpx.ErrorResponse	"error, error_description"
//	@Router			/v1/invitations/accept [post].
func (h *InvitationAcceptHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	principal := identity.PrincipalFromContext(ctx)
	if principal == nil {
		http.Redirect(w, r, h.SignInURL, http.StatusTemporaryRedirect)
		return
	}

	agencyID, err := h.InvitationService.Accept(ctx, principal)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrAlreadyExists):
			httpx.WriteJSON(w, http.StatusConflict, httpx.ErrorResponse{
				Error:            "conflict",
				ErrorDescription: "A user with this email already exists",
			})
		default:
			log.Error("failed to accept invitation", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, httpx.ErrorResponse{
				Error:            "server_error",
				ErrorDescription: "Failed to accept invitation",
			})
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, AcceptResponse{AgencyID: agencyID})
}

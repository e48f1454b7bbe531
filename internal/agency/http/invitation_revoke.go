package http

import (
	"errors"
	"net/http"

	"github.com/brindlelabs/agencyhub/internal/agency/service"
	"github.com/brindlelabs/agencyhub/pkg/httpx"
	"github.com/brindlelabs/agencyhub/pkg/slogx"
)

type InvitationRevokeHandler struct {
	InvitationService *service.InvitationService
}

// ServeHTTP revokes the invitation for an email address.
//
//	@Summary		Invitation Revocation Endpoint
//	@Description	Deletes the invitation for the given email. Revoking an email with no
//	@Description	invitation is a no-op.
//	@Tags			Invitations
//	@Security		BearerAuth
//	@Produce		json
//	@Param			email	path	string	true	"Invited email address"
//	@Success		204		"revoked"
//	@Failure		400		{object}	httpx.ErrorResponse	"error, error_description"
//	@Failure		401		{object}	httpx.ErrorResponse	"error, error_description"
//	@Failure		500		{object}	httpx.ErrorResponse	"error, error_description"
//	@Router			/v1/invitations/{email} [delete].
func (h *InvitationRevokeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	if requirePrincipal(w, r) == nil {
		return
	}

	if err := h.InvitationService.Revoke(ctx, r.PathValue("email")); err != nil {
		if errors.Is(err, service.ErrInvalidInvitationRequest) {
			httpx.WriteJSON(w, http.StatusBadRequest, httpx.ErrorResponse{
				Error:            "invalid_request",
				ErrorDescription: "email is required",
			})
			return
		}
		log.Error("failed to revoke invitation", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, httpx.ErrorResponse{
			Error:            "server_error",
			ErrorDescription: "Failed to revoke invitation",
		})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/brindlelabs/agencyhub/internal/agency/domain"
	"github.com/brindlelabs/agencyhub/internal/agency/service"
	"github.com/brindlelabs/agencyhub/internal/agency/store"
	"github.com/brindlelabs/agencyhub/pkg/httpx"
	"github.com/brindlelabs/agencyhub/pkg/slogx"
)

type InvitationMintHandler struct {
	InvitationService *service.InvitationService
}

// ServeHTTP mints a pending invitation for an email address.
//
//	@Summary		Invitation Mint Endpoint
//	@Description	Creates a PENDING invitation offering agency membership with a role. The response
//	@Description	carries the opaque invite-link token exactly once; only its hash is stored.
//	@Description	At most one pending invitation may exist per email, and the AGENCY_OWNER role
//	@Description	can never be offered by invitation.
//	@Tags			Invitations
//	@Accept			json
//	@Produce		json
//	@Param			request	body		InvitationMintRequest	true	"Invitation request"
//	@Success		201		{object}	InvitationMintResponse	"invitation with one-time token"
//	@Failure		400		{object}	httpx.ErrorResponse		"error, error_description"
//	@Failure		401		{object}	httpx.ErrorResponse		"error, error_description"
//	@Failure		409		{object}	httpx.ErrorResponse		"error, error_description"
//	@Failure		500		{object}	httpx.ErrorResponse		"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/invitations [post].
func (h *InvitationMintHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	if requirePrincipal(w, r) == nil {
		return
	}

	var req InvitationMintRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, httpx.ErrorResponse{
			Error:            "invalid_request",
			ErrorDescription: "Invalid JSON body",
		})
		return
	}

	invitation, token, err := h.InvitationService.Mint(ctx, req.Email, req.AgencyID, domain.Role(req.Role))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidInvitationRequest):
			httpx.WriteJSON(w, http.StatusBadRequest, httpx.ErrorResponse{
				Error:            "invalid_request",
				ErrorDescription: "email and agency_id are required",
			})
		case errors.Is(err, service.ErrInvalidRole):
			httpx.WriteJSON(w, http.StatusBadRequest, httpx.ErrorResponse{
				Error:            "invalid_request",
				ErrorDescription: "Unknown role",
			})
		case errors.Is(err, service.ErrOwnerInviteNotAllowed):
			httpx.WriteJSON(w, http.StatusBadRequest, httpx.ErrorResponse{
				Error:            "invalid_request",
				ErrorDescription: "AGENCY_OWNER cannot be invited",
			})
		case errors.Is(err, service.ErrInvalidAgency):
			httpx.WriteJSON(w, http.StatusBadRequest, httpx.ErrorResponse{
				Error:            "invalid_agency",
				ErrorDescription: "Agency not found",
			})
		case errors.Is(err, store.ErrAlreadyExists):
			httpx.WriteJSON(w, http.StatusConflict, httpx.ErrorResponse{
				Error:            "conflict",
				ErrorDescription: "An invitation for this email already exists",
			})
		default:
			log.Error("failed to mint invitation", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, httpx.ErrorResponse{
				Error:            "server_error",
				ErrorDescription: "Failed to create invitation",
			})
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, InvitationMintResponse{
		ID:       invitation.ID,
		Email:    invitation.Email,
		AgencyID: invitation.AgencyID,
		Role:     invitation.Role.String(),
		Status:   string(invitation.Status),
		Token:    token,
	})
}

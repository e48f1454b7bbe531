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

type TeamHandler struct {
	TeamService *service.TeamService
}

// ServeHTTP provisions a team user directly, without an invitation.
//
//	@Summary		Team Provisioning Endpoint
//	@Description	Creates a user record in the agency with the given role. An AGENCY_OWNER
//	@Description	candidate is refused without error and the response carries a null user.
//	@Tags			Team
//	@Accept			json
//	@Produce		json
//	@Param			agencyID	path		string					true	"Agency id"
//	@Param			request		body		TeamProvisionRequest	true	"Candidate user"
//	@Success		201			{object}	TeamProvisionResponse	"provisioned user"
//	@Success		200			{object}	TeamProvisionResponse	"refused candidate, user is null"
//	@Failure		400			{object}	httpx.ErrorResponse		"error, error_description"
//	@Failure		401			{object}	httpx.ErrorResponse		"error, error_description"
//	@Failure		409			{object}	httpx.ErrorResponse		"error, error_description"
//	@Failure		500			{object}	httpx.ErrorResponse		"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/agencies/{agencyID}/team [post].
func (h *TeamHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	if requirePrincipal(w, r) == nil {
		return
	}

	var req TeamProvisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, httpx.ErrorResponse{
			Error:            "invalid_request",
			ErrorDescription: "Invalid JSON body",
		})
		return
	}

	if req.Email == "" {
		httpx.WriteJSON(w, http.StatusBadRequest, httpx.ErrorResponse{
			Error:            "invalid_request",
			ErrorDescription: "email is required",
		})
		return
	}

	user, err := h.TeamService.ProvisionTeamUser(ctx, r.PathValue("agencyID"), domain.User{
		ID:        req.ID,
		Email:     req.Email,
		Name:      req.Name,
		AvatarURL: req.AvatarURL,
		Role:      domain.Role(req.Role),
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRole):
			httpx.WriteJSON(w, http.StatusBadRequest, httpx.ErrorResponse{
				Error:            "invalid_request",
				ErrorDescription: "Unknown role",
			})
		case errors.Is(err, store.ErrAlreadyExists):
			httpx.WriteJSON(w, http.StatusConflict, httpx.ErrorResponse{
				Error:            "conflict",
				ErrorDescription: "A user with this email already exists",
			})
		default:
			log.Error("failed to provision team user", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, httpx.ErrorResponse{
				Error:            "server_error",
				ErrorDescription: "Failed to provision user",
			})
		}
		return
	}

	if user == nil {
		httpx.WriteJSON(w, http.StatusOK, TeamProvisionResponse{})
		return
	}

	resp := userResponse(*user)
	httpx.WriteJSON(w, http.StatusCreated, TeamProvisionResponse{User: &resp})
}

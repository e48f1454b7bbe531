package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/brindlelabs/agencyhub/internal/agency/service"
	"github.com/brindlelabs/agencyhub/internal/agency/store"
	"github.com/brindlelabs/agencyhub/pkg/httpx"
	"github.com/brindlelabs/agencyhub/pkg/slogx"
)

type AgencyProvisionHandler struct {
	AgencyService *service.AgencyService
}

// ServeHTTP creates a new agency with its owner.
//
//	@Summary		Agency Provisioning Endpoint
//	@Description	Creates an agency, its AGENCY_OWNER user and the default sidebar navigation.
//	@Description	Guarded by a pre-configured provisioning token rather than a session: this is
//	@Description	called by the onboarding system, not by end users.
//	@Tags			Agencies
//	@Accept			json
//	@Produce		json
//	@Param			request	body		AgencyProvisionRequest	true	"Agency and owner"
//	@Success		201		{object}	AgencyProvisionResponse	"agency and owner"
//	@Failure		400		{object}	httpx.ErrorResponse		"error, error_description"
//	@Failure		401		{object}	httpx.ErrorResponse		"error, error_description"
//	@Failure		409		{object}	httpx.ErrorResponse		"error, error_description"
//	@Failure		500		{object}	httpx.ErrorResponse		"error, error_description"
//	@Router			/v1/agencies [post].
func (h *AgencyProvisionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req AgencyProvisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, httpx.ErrorResponse{
			Error:            "invalid_request",
			ErrorDescription: "Invalid JSON body",
		})
		return
	}

	agency, owner, err := h.AgencyService.Provision(ctx, req.Token, service.AgencyProvisionData{
		Name:           req.Name,
		CompanyEmail:   req.CompanyEmail,
		OwnerID:        req.Owner.ID,
		OwnerEmail:     req.Owner.Email,
		OwnerName:      req.Owner.Name,
		OwnerAvatarURL: req.Owner.AvatarURL,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProvisionUnauthorized):
			httpx.WriteJSON(w, http.StatusUnauthorized, httpx.ErrorResponse{
				Error:            "unauthorized",
				ErrorDescription: "Invalid provisioning token",
			})
		case errors.Is(err, service.ErrInvalidAgencyRequest):
			httpx.WriteJSON(w, http.StatusBadRequest, httpx.ErrorResponse{
				Error:            "invalid_request",
				ErrorDescription: "name, company_email and owner email are required",
			})
		case errors.Is(err, store.ErrAlreadyExists):
			httpx.WriteJSON(w, http.StatusConflict, httpx.ErrorResponse{
				Error:            "conflict",
				ErrorDescription: "A user with the owner email already exists",
			})
		default:
			log.Error("failed to provision agency", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, httpx.ErrorResponse{
				Error:            "server_error",
				ErrorDescription: "Failed to provision agency",
			})
		}
		return
	}

	ownerResp := userResponse(owner)
	httpx.WriteJSON(w, http.StatusCreated, AgencyProvisionResponse{
		Agency: AgencyResponse{
			ID:           agency.ID,
			Name:         agency.Name,
			CompanyEmail: agency.CompanyEmail,
		},
		Owner: &ownerResp,
	})
}

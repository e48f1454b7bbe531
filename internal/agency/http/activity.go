package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/brindlelabs/agencyhub/internal/agency/identity"
	"github.com/brindlelabs/agencyhub/internal/agency/service"
	"github.com/brindlelabs/agencyhub/internal/agency/store"
	"github.com/brindlelabs/agencyhub/pkg/httpx"
	"github.com/brindlelabs/agencyhub/pkg/slogx"
)

type ActivityHandler struct {
	NotificationService *service.NotificationService
}

// ServeHTTP records an activity-log notification.
//
//	@Summary		Record Activity Endpoint
//	@Description	Writes an activity-log notification for an agency or one of its sub-accounts.
//	@Description	When only a sub-account id is supplied the owning agency is derived from it.
//	@Description	Authorship is attributed to the caller's user record when one exists, otherwise
//	@Description	to a member of the target agency; an unattributable entry is dropped silently.
//	@Tags			Notifications
//	@Accept			json
//	@Produce		json
//	@Param			request	body		ActivityRequest		true	"Activity entry"
//	@Success		201		{object}	ActivityResponse	"recorded, author"
//	@Success		202		{object}	ActivityResponse	"entry dropped, no author"
//	@Failure		400		{object}	httpx.ErrorResponse	"error, error_description"
//	@Failure		404		{object}	httpx.ErrorResponse	"error, error_description"
//	@Failure		500		{object}	httpx.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/activity [post].
func (h *ActivityHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req ActivityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, httpx.ErrorResponse{
			Error:            "invalid_request",
			ErrorDescription: "Invalid JSON body",
		})
		return
	}

	if req.Description == "" {
		httpx.WriteJSON(w, http.StatusBadRequest, httpx.ErrorResponse{
			Error:            "invalid_request",
			ErrorDescription: "description is required",
		})
		return
	}

	author, err := h.NotificationService.RecordActivity(ctx, identity.PrincipalFromContext(ctx), service.ActivityLog{
		AgencyID:     req.AgencyID,
		SubAccountID: req.SubAccountID,
		Description:  req.Description,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingTarget):
			httpx.WriteJSON(w, http.StatusBadRequest, httpx.ErrorResponse{
				Error:            "invalid_request",
				ErrorDescription: "agency_id or sub_account_id is required",
			})
		case errors.Is(err, store.ErrNotFound):
			httpx.WriteJSON(w, http.StatusNotFound, httpx.ErrorResponse{
				Error:            "not_found",
				ErrorDescription: "Sub-account not found",
			})
		default:
			log.Error("failed to record activity", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, httpx.ErrorResponse{
				Error:            "server_error",
				ErrorDescription: "Failed to record activity",
			})
		}
		return
	}

	if author.Kind == service.AuthorUnresolved {
		httpx.WriteJSON(w, http.StatusAccepted, ActivityResponse{Recorded: false})
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, ActivityResponse{
		Recorded: true,
		Author:   author.Kind.String(),
	})
}

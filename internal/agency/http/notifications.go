package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/brindlelabs/agencyhub/internal/agency/service"
	"github.com/brindlelabs/agencyhub/pkg/httpx"
	"github.com/brindlelabs/agencyhub/pkg/slogx"
)

type NotificationListHandler struct {
	NotificationService *service.NotificationService
}

// ServeHTTP lists an agency's activity log.
//
//	@Summary		Notification Listing Endpoint
//	@Description	Returns an agency's activity-log notifications, newest first. The optional
//	@Description	limit query parameter caps the result; omitted or zero returns everything.
//	@Tags			Notifications
//	@Security		BearerAuth
//	@Produce		json
//	@Param			agencyID	path		string	true	"Agency id"
//	@Param			limit		query		int		false	"Maximum entries to return"
//	@Success		200			{object}	NotificationListResponse	"notifications"
//	@Failure		400			{object}	httpx.ErrorResponse			"error, error_description"
//	@Failure		401			{object}	httpx.ErrorResponse			"error, error_description"
//	@Failure		500			{object}	httpx.ErrorResponse			"error, error_description"
//	@Router			/v1/agencies/{agencyID}/notifications [get].
func (h *NotificationListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	if requirePrincipal(w, r) == nil {
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			httpx.WriteJSON(w, http.StatusBadRequest, httpx.ErrorResponse{
				Error:            "invalid_request",
				ErrorDescription: "limit must be a non-negative integer",
			})
			return
		}
		limit = parsed
	}

	notifications, err := h.NotificationService.ListAgencyNotifications(ctx, r.PathValue("agencyID"), limit)
	if err != nil {
		if errors.Is(err, service.ErrMissingTarget) {
			httpx.WriteJSON(w, http.StatusBadRequest, httpx.ErrorResponse{
				Error:            "invalid_request",
				ErrorDescription: "agency id is required",
			})
			return
		}
		log.Error("failed to list notifications", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, httpx.ErrorResponse{
			Error:            "server_error",
			ErrorDescription: "Failed to list notifications",
		})
		return
	}

	resp := NotificationListResponse{Notifications: make([]NotificationResponse, 0, len(notifications))}
	for _, n := range notifications {
		resp.Notifications = append(resp.Notifications, notificationResponse(n))
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, resp)
}

package http

import (
	"time"

	"github.com/brindlelabs/agencyhub/internal/agency/domain"
)

// Wire types for the JSON API. Domain types stay internal; these are the
// only shapes clients see.

type SidebarOptionResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Link string `json:"link"`
	Icon string `json:"icon"`
}

type SubAccountResponse struct {
	ID             string                  `json:"id"`
	AgencyID       string                  `json:"agency_id"`
	Name           string                  `json:"name"`
	SidebarOptions []SidebarOptionResponse `json:"sidebar_options"`
}

type AgencyResponse struct {
	ID             string                  `json:"id"`
	Name           string                  `json:"name"`
	CompanyEmail   string                  `json:"company_email"`
	SidebarOptions []SidebarOptionResponse `json:"sidebar_options"`
	SubAccounts    []SubAccountResponse    `json:"sub_accounts"`
}

type PermissionResponse struct {
	ID           string `json:"id"`
	UserEmail    string `json:"user_email"`
	SubAccountID string `json:"sub_account_id"`
	Access       bool   `json:"access"`
}

type UserResponse struct {
	ID          string               `json:"id"`
	Email       string               `json:"email"`
	Name        string               `json:"name"`
	AvatarURL   string               `json:"avatar_url"`
	Role        string               `json:"role"`
	AgencyID    string               `json:"agency_id"`
	Agency      *AgencyResponse      `json:"agency,omitempty"`
	Permissions []PermissionResponse `json:"permissions,omitempty"`
}

type ActivityRequest struct {
	AgencyID     string `json:"agency_id,omitempty"`
	SubAccountID string `json:"sub_account_id,omitempty"`
	Description  string `json:"description"`
}

type ActivityResponse struct {
	Recorded bool   `json:"recorded"`
	Author   string `json:"author,omitempty"`
}

type InvitationMintRequest struct {
	Email    string `json:"email"`
	AgencyID string `json:"agency_id"`
	Role     string `json:"role"`
}

type InvitationMintResponse struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	AgencyID string `json:"agency_id"`
	Role     string `json:"role"`
	Status   string `json:"status"`
	Token    string `json:"token"`
}

type AcceptResponse struct {
	AgencyID string `json:"agency_id"`
}

type AgencyProvisionRequest struct {
	Token        string               `json:"token"`
	Name         string               `json:"name"`
	CompanyEmail string               `json:"company_email"`
	Owner        TeamProvisionRequest `json:"owner"`
}

type AgencyProvisionResponse struct {
	Agency AgencyResponse `json:"agency"`
	Owner  *UserResponse  `json:"owner"`
}

type TeamProvisionRequest struct {
	ID        string `json:"id,omitempty"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url,omitempty"`
	Role      string `json:"role"`
}

type TeamProvisionResponse struct {
	User *UserResponse `json:"user"`
}

type NotificationResponse struct {
	ID           string    `json:"id"`
	Message      string    `json:"message"`
	UserID       string    `json:"user_id"`
	AgencyID     string    `json:"agency_id"`
	SubAccountID *string   `json:"sub_account_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
}

type HealthChecks struct {
	Database string `json:"database,omitempty"`
}

type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

func sidebarOptionsResponse(opts []domain.SidebarOption) []SidebarOptionResponse {
	out := make([]SidebarOptionResponse, 0, len(opts))
	for _, o := range opts {
		out = append(out, SidebarOptionResponse{ID: o.ID, Name: o.Name, Link: o.Link, Icon: o.Icon})
	}
	return out
}

func authUserResponse(auth *domain.AuthUser) UserResponse {
	resp := UserResponse{
		ID:        auth.ID,
		Email:     auth.Email,
		Name:      auth.Name,
		AvatarURL: auth.AvatarURL,
		Role:      auth.Role.String(),
		AgencyID:  auth.AgencyID,
	}

	if auth.Agency != nil {
		agency := &AgencyResponse{
			ID:             auth.Agency.ID,
			Name:           auth.Agency.Name,
			CompanyEmail:   auth.Agency.CompanyEmail,
			SidebarOptions: sidebarOptionsResponse(auth.Agency.SidebarOptions),
			SubAccounts:    make([]SubAccountResponse, 0, len(auth.Agency.SubAccounts)),
		}
		for _, sa := range auth.Agency.SubAccounts {
			agency.SubAccounts = append(agency.SubAccounts, SubAccountResponse{
				ID:             sa.ID,
				AgencyID:       sa.AgencyID,
				Name:           sa.Name,
				SidebarOptions: sidebarOptionsResponse(sa.SidebarOptions),
			})
		}
		resp.Agency = agency
	}

	for _, p := range auth.Permissions {
		resp.Permissions = append(resp.Permissions, PermissionResponse{
			ID:           p.ID,
			UserEmail:    p.UserEmail,
			SubAccountID: p.SubAccountID,
			Access:       p.Access,
		})
	}

	return resp
}

func userResponse(u domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		AvatarURL: u.AvatarURL,
		Role:      u.Role.String(),
		AgencyID:  u.AgencyID,
	}
}

func notificationResponse(n domain.Notification) NotificationResponse {
	return NotificationResponse{
		ID:           n.ID,
		Message:      n.Message,
		UserID:       n.UserID,
		AgencyID:     n.AgencyID,
		SubAccountID: n.SubAccountID,
		CreatedAt:    n.CreatedAt,
	}
}

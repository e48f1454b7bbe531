package agency_test

import (
	"net/http"
	"testing"

	"github.com/brindlelabs/agencyhub/internal/agency/domain"
	"github.com/stretchr/testify/require"
)

// TestInvitationLifecycle walks the whole onboarding path: provision an
// agency, mint an invitation, accept it as the invited principal, and verify
// the resulting membership through /v1/me.
func TestInvitationLifecycle(t *testing.T) {
	baseURL, cleanup := setupAgencyContainer(t)
	defer cleanup()

	agencyID, owner := provisionAgency(t, baseURL, "lifecycle")
	ownerSession := mintSession(t, owner)

	invited := domain.Principal{
		ID:        "principal_invited",
		Email:     "invited@example.com",
		FirstName: "Ivy",
		LastName:  "Invited",
	}

	// Mint an invitation as the owner.
	var minted struct {
		Status string `json:"status"`
		Token  string `json:"token"`
	}
	status := doJSON(t, http.MethodPost, baseURL+"/v1/invitations", ownerSession, map[string]any{
		"email":     invited.Email,
		"agency_id": agencyID,
		"role":      "SUBACCOUNT_USER",
	}, &minted)
	require.Equal(t, http.StatusCreated, status)
	require.Equal(t, "PENDING", minted.Status)
	require.NotEmpty(t, minted.Token)

	// Accept as the invited principal.
	invitedSession := mintSession(t, invited)
	var accepted struct {
		AgencyID string `json:"agency_id"`
	}
	status = doJSON(t, http.MethodPost, baseURL+"/v1/invitations/accept", invitedSession, nil, &accepted)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, agencyID, accepted.AgencyID)

	// The new member resolves to the full aggregate.
	var me struct {
		ID     string `json:"id"`
		Role   string `json:"role"`
		Agency struct {
			ID             string `json:"id"`
			SidebarOptions []any  `json:"sidebar_options"`
		} `json:"agency"`
	}
	status = doJSON(t, http.MethodGet, baseURL+"/v1/me", invitedSession, nil, &me)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, invited.ID, me.ID)
	require.Equal(t, "SUBACCOUNT_USER", me.Role)
	require.Equal(t, agencyID, me.Agency.ID)
	require.NotEmpty(t, me.Agency.SidebarOptions)

	// Accepting again without a pending invitation reports the existing
	// membership.
	status = doJSON(t, http.MethodPost, baseURL+"/v1/invitations/accept", invitedSession, nil, &accepted)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, agencyID, accepted.AgencyID)

	// The join shows up on the agency's activity log.
	var list struct {
		Notifications []struct {
			Message string `json:"message"`
		} `json:"notifications"`
	}
	status = doJSON(t, http.MethodGet, baseURL+"/v1/agencies/"+agencyID+"/notifications", ownerSession, nil, &list)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, list.Notifications, 1)
	require.Equal(t, "Ivy Invited | Joined", list.Notifications[0].Message)
}

// TestInvitationGuards covers the refusal paths around minting and acceptance.
func TestInvitationGuards(t *testing.T) {
	baseURL, cleanup := setupAgencyContainer(t)
	defer cleanup()

	agencyID, owner := provisionAgency(t, baseURL, "guards")
	ownerSession := mintSession(t, owner)

	// Owner-role invitations are refused.
	status := doJSON(t, http.MethodPost, baseURL+"/v1/invitations", ownerSession, map[string]any{
		"email":     "usurper@example.com",
		"agency_id": agencyID,
		"role":      "AGENCY_OWNER",
	}, nil)
	require.Equal(t, http.StatusBadRequest, status)

	// Unknown agency is refused.
	status = doJSON(t, http.MethodPost, baseURL+"/v1/invitations", ownerSession, map[string]any{
		"email":     "nobody@example.com",
		"agency_id": "missing",
		"role":      "SUBACCOUNT_USER",
	}, nil)
	require.Equal(t, http.StatusBadRequest, status)

	// A second pending invitation for the same email conflicts.
	mint := map[string]any{
		"email":     "twice@example.com",
		"agency_id": agencyID,
		"role":      "SUBACCOUNT_GUEST",
	}
	require.Equal(t, http.StatusCreated, doJSON(t, http.MethodPost, baseURL+"/v1/invitations", ownerSession, mint, nil))
	require.Equal(t, http.StatusConflict, doJSON(t, http.MethodPost, baseURL+"/v1/invitations", ownerSession, mint, nil))

	// Revocation clears the way for a new invitation.
	status = doJSON(t, http.MethodDelete, baseURL+"/v1/invitations/twice@example.com", ownerSession, nil, nil)
	require.Equal(t, http.StatusNoContent, status)
	require.Equal(t, http.StatusCreated, doJSON(t, http.MethodPost, baseURL+"/v1/invitations", ownerSession, mint, nil))

	// Minting requires a session.
	status = doJSON(t, http.MethodPost, baseURL+"/v1/invitations", "", mint, nil)
	require.Equal(t, http.StatusUnauthorized, status)

	// Acceptance without a session redirects to sign-in.
	status = doJSON(t, http.MethodPost, baseURL+"/v1/invitations/accept", "", nil, nil)
	require.Equal(t, http.StatusTemporaryRedirect, status)
}

// TestAcceptWithoutInvitation verifies a stranger resolves to no membership.
func TestAcceptWithoutInvitation(t *testing.T) {
	baseURL, cleanup := setupAgencyContainer(t)
	defer cleanup()

	stranger := mintSession(t, domain.Principal{
		ID:    "principal_stranger",
		Email: "stranger@example.com",
	})

	var accepted struct {
		AgencyID string `json:"agency_id"`
	}
	status := doJSON(t, http.MethodPost, baseURL+"/v1/invitations/accept", stranger, nil, &accepted)
	require.Equal(t, http.StatusOK, status)
	require.Empty(t, accepted.AgencyID)

	// And /v1/me reports no record for them.
	status = doJSON(t, http.MethodGet, baseURL+"/v1/me", stranger, nil, nil)
	require.Equal(t, http.StatusNotFound, status)
}

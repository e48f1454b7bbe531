package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/brindlelabs/agencyhub/internal/agency/domain"
	"github.com/brindlelabs/agencyhub/internal/agency/identity"
	"github.com/brindlelabs/agencyhub/internal/agency/store"
	"github.com/brindlelabs/agencyhub/pkg/cryptox"
	"github.com/brindlelabs/agencyhub/pkg/idx"
	"github.com/brindlelabs/agencyhub/pkg/slogx"
)

var (
	// ErrUnauthenticated reports a workflow invoked without a principal.
	// The HTTP layer turns this into a sign-in redirect.
	ErrUnauthenticated = errors.New("no authenticated principal")

	// ErrInvalidInvitationRequest reports missing or malformed mint parameters.
	ErrInvalidInvitationRequest = errors.New("invalid invitation request")

	// ErrOwnerInviteNotAllowed reports an attempt to mint an AGENCY_OWNER
	// invitation. Ownership is assigned at agency creation, never by invite.
	ErrOwnerInviteNotAllowed = errors.New("agency owner cannot be invited")

	// ErrInvalidAgency reports an invitation targeting a non-existent agency.
	ErrInvalidAgency = errors.New("invalid agency")

	// ErrInvitationTokenMismatch reports an invite-link token that does not
	// match the pending invitation for the email.
	ErrInvitationTokenMismatch = errors.New("invitation token mismatch")

	// ErrInvitationNotFound reports that no pending invitation exists for
	// the email.
	ErrInvitationNotFound = errors.New("invitation not found")
)

type InvitationService struct {
	Store         store.Store
	Identity      identity.Provider
	Team          *TeamService
	Notifications *NotificationService
}

// Mint creates a PENDING invitation for an email and returns it together with
// the opaque token for the invite link. The token is stored only as an
// Argon2id hash; this is the one time the raw value is available.
func (s *InvitationService) Mint(
	ctx context.Context,
	email string,
	agencyID string,
	role domain.Role,
) (domain.Invitation, string, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate input.
	if email == "" || agencyID == "" {
		return domain.Invitation{}, "", ErrInvalidInvitationRequest
	}
	if !role.Valid() {
		return domain.Invitation{}, "", ErrInvalidRole
	}
	if role == domain.RoleAgencyOwner {
		log.Warn("attempted to mint an owner-role invitation",
			slog.String("agency_id", agencyID),
			slog.String("email", email),
		)
		return domain.Invitation{}, "", ErrOwnerInviteNotAllowed
	}

	// 2. Validate the agency exists.
	if _, err := s.Store.Agencies().GetAgencyByID(ctx, agencyID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Invitation{}, "", ErrInvalidAgency
		}
		log.Error("failed to fetch agency", slog.Any("error", err))
		return domain.Invitation{}, "", err
	}

	// 3. Generate and hash the invite-link token.
	token, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		log.Error("failed to generate invitation token", slog.Any("error", err))
		return domain.Invitation{}, "", err
	}
	tokenHash, err := cryptox.HashToken(token)
	if err != nil {
		log.Error("failed to hash invitation token", slog.Any("error", err))
		return domain.Invitation{}, "", err
	}

	now := time.Now().UTC()
	invitation := domain.Invitation{
		ID:        idx.New().String(),
		Email:     email,
		AgencyID:  agencyID,
		Role:      role,
		Status:    domain.InvitationPending,
		TokenHash: tokenHash,
		CreatedAt: now,
		UpdatedAt: now,
	}

	// 4. Store; the per-email uniqueness constraint enforces "at most one
	// pending invitation per email".
	if err := s.Store.Invitations().CreateInvitation(ctx, invitation); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			log.Warn("invitation already exists for email",
				slog.String("agency_id", agencyID),
			)
		} else {
			log.Error("failed to create invitation", slog.Any("error", err))
		}
		return domain.Invitation{}, "", err
	}

	log.Info("invitation minted",
		slog.String("invitation_id", invitation.ID),
		slog.String("agency_id", agencyID),
		slog.String("role", role.String()),
	)

	return invitation, token, nil
}

// VerifyToken checks an invite-link token against the pending invitation for
// the email. Acceptance itself is keyed by the principal's email; this is an
// integrity check on the link.
func (s *InvitationService) VerifyToken(ctx context.Context, email, token string) error {
	invitation, err := s.Store.Invitations().GetPendingInvitationByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrInvitationNotFound
		}
		return err
	}

	if err := cryptox.VerifyToken(token, invitation.TokenHash); err != nil {
		return ErrInvitationTokenMismatch
	}
	return nil
}

// Revoke removes the invitation for an email, pending or not.
func (s *InvitationService) Revoke(ctx context.Context, email string) error {
	if email == "" {
		return ErrInvalidInvitationRequest
	}
	return s.Store.Invitations().DeleteInvitationByEmail(ctx, email)
}

// Accept converts the principal's pending invitation into a provisioned team
// user and returns the agency id the caller now belongs to. It performs the
// following steps:
//  1. Looks up the PENDING invitation keyed by the principal's email.
//  2. With no invitation, resolves the principal's existing user instead
//     ("already a member") and returns that user's agency id; an empty id
//     means the principal belongs to nothing.
//  3. Provisions a user from the invitation's agency and role plus the
//     principal's identity fields.
//  4. Records a "Joined" activity notification scoped to the agency.
//  5. On successful provisioning, pushes the new role into the provider's
//     metadata (best effort) and deletes the consumed invitation.
//
// An owner-role invitation is refused by provisioning; the workflow then
// returns an empty agency id and deliberately leaves the invitation in
// place. Steps 3-5 are not transactional as a unit: a failure after
// provisioning is not rolled back, and a duplicate notification is accepted
// over the cost of a coordinated rollback.
func (s *InvitationService) Accept(ctx context.Context, principal *domain.Principal) (string, error) {
	log := slogx.FromContext(ctx)

	if principal == nil {
		return "", ErrUnauthenticated
	}

	// 1. Pending invitation lookup, keyed by email.
	invitation, err := s.Store.Invitations().GetPendingInvitationByEmail(ctx, principal.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// 2. No invitation: the principal is either already a member or
			// a stranger. Either way this is absence, not an error.
			user, err := s.Store.Users().GetUserByEmail(ctx, principal.Email)
			if err != nil {
				if errors.Is(err, store.ErrNotFound) {
					return "", nil
				}
				return "", err
			}
			return user.AgencyID, nil
		}
		log.Error("failed to fetch invitation", slog.Any("error", err))
		return "", err
	}

	// 3. Provision the user from invitation + principal.
	now := time.Now().UTC()
	candidate := domain.User{
		ID:        principal.ID,
		Email:     invitation.Email,
		Name:      principal.Name(),
		AvatarURL: principal.AvatarURL,
		Role:      invitation.Role,
		AgencyID:  invitation.AgencyID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	user, err := s.Team.ProvisionTeamUser(ctx, invitation.AgencyID, candidate)
	if err != nil {
		return "", err
	}

	// 4. Record the join, agency-scoped. When provisioning was refused the
	// author falls back to someone already on the team.
	if _, err := s.Notifications.RecordActivity(ctx, principal, ActivityLog{
		AgencyID:    invitation.AgencyID,
		Description: "Joined",
	}); err != nil {
		return "", err
	}

	if user == nil {
		// Owner-role invitation. Refused by provisioning and left pending:
		// it can never be consumed through this path. Flagged loudly since
		// such an invitation should not exist in the first place.
		log.Warn("owner-role invitation cannot be accepted, leaving it pending",
			slog.String("invitation_id", invitation.ID),
			slog.String("agency_id", invitation.AgencyID),
		)
		return "", nil
	}

	// 5. Best-effort metadata sync; the provider reflects the role on the
	// next token refresh. A failure here never undoes the membership.
	if err := s.Identity.UpdateMetadata(ctx, principal.ID, identity.Metadata{Role: user.Role}); err != nil {
		log.Warn("failed to sync role metadata to identity provider",
			slog.String("principal_id", principal.ID),
			slog.Any("error", err),
		)
	}

	// 6. The invitation is consumed.
	if err := s.Store.Invitations().DeleteInvitationByEmail(ctx, user.Email); err != nil {
		log.Error("failed to delete consumed invitation",
			slog.String("invitation_id", invitation.ID),
			slog.Any("error", err),
		)
		return "", err
	}

	log.Info("invitation accepted",
		slog.String("invitation_id", invitation.ID),
		slog.String("user_id", user.ID),
		slog.String("agency_id", user.AgencyID),
		slog.String("role", user.Role.String()),
	)

	return user.AgencyID, nil
}

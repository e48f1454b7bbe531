package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/brindlelabs/agencyhub/internal/agency/domain"
	"github.com/brindlelabs/agencyhub/internal/agency/store"
	"github.com/brindlelabs/agencyhub/pkg/idx"
	"github.com/brindlelabs/agencyhub/pkg/slogx"
)

// ErrInvalidRole reports a candidate with a role outside the known set.
var ErrInvalidRole = errors.New("invalid role")

type TeamService struct {
	Store store.Store
}

// ProvisionTeamUser creates a user record tied to agencyID with the
// candidate's fields. An AGENCY_OWNER candidate is refused and returns
// (nil, nil): agencies have exactly one owner, provisioned through agency
// creation rather than through team membership.
//
// There is no uniqueness pre-check; a duplicate email surfaces as
// store.ErrAlreadyExists from the storage layer.
func (s *TeamService) ProvisionTeamUser(ctx context.Context, agencyID string, candidate domain.User) (*domain.User, error) {
	log := slogx.FromContext(ctx)

	// 1. Ownership never arrives through this path.
	if candidate.Role == domain.RoleAgencyOwner {
		log.Debug("refusing to provision an agency owner as a team user",
			slog.String("agency_id", agencyID),
			slog.String("email", candidate.Email),
		)
		return nil, nil
	}

	if !candidate.Role.Valid() {
		return nil, ErrInvalidRole
	}

	// 2. Fill in what the caller left blank; everything supplied is kept
	// verbatim.
	user := candidate
	user.AgencyID = agencyID
	if user.ID == "" {
		user.ID = idx.New().String()
	}
	now := time.Now().UTC()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	if user.UpdatedAt.IsZero() {
		user.UpdatedAt = now
	}

	// 3. Create; the email uniqueness constraint is the only guard.
	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			log.Warn("team user provisioning hit duplicate email",
				slog.String("agency_id", agencyID),
				slog.String("email", user.Email),
			)
		} else {
			log.Error("failed to create team user",
				slog.String("agency_id", agencyID),
				slog.Any("error", err),
			)
		}
		return nil, err
	}

	log.Info("team user provisioned",
		slog.String("user_id", user.ID),
		slog.String("agency_id", agencyID),
		slog.String("role", user.Role.String()),
	)

	return &user, nil
}

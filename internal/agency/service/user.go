package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/brindlelabs/agencyhub/internal/agency/domain"
	"github.com/brindlelabs/agencyhub/internal/agency/store"
	"github.com/brindlelabs/agencyhub/pkg/slogx"
)

type UserService struct {
	Store store.Store
}

// ResolveCurrentUser maps an authenticated principal to the internal user
// aggregate: the user, their agency with its sidebar options, every
// sub-account of that agency with its own sidebar options, and the user's
// permissions.
//
// A nil principal (unauthenticated caller) and a principal with no matching
// internal record both return (nil, nil) - absence, not an error.
func (s *UserService) ResolveCurrentUser(ctx context.Context, principal *domain.Principal) (*domain.AuthUser, error) {
	log := slogx.FromContext(ctx)

	// 1. No session means no user; this is normal control flow.
	if principal == nil {
		return nil, nil
	}

	// 2. The principal's primary email is the mapping key.
	user, err := s.Store.Users().GetUserByEmail(ctx, principal.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Debug("principal has no internal user record",
				slog.String("principal_id", principal.ID),
			)
			return nil, nil
		}
		log.Error("failed to fetch user", slog.Any("error", err))
		return nil, err
	}

	auth := &domain.AuthUser{User: user}

	// 3. Load the owning agency and its navigation tree.
	agency, err := s.Store.Agencies().GetAgencyByID(ctx, user.AgencyID)
	if err != nil {
		log.Error("failed to fetch agency",
			slog.String("agency_id", user.AgencyID),
			slog.Any("error", err),
		)
		return nil, err
	}

	detail := &domain.AgencyDetail{Agency: agency}

	detail.SidebarOptions, err = s.Store.SidebarOptions().ListAgencySidebarOptions(ctx, agency.ID)
	if err != nil {
		return nil, err
	}

	subAccounts, err := s.Store.SubAccounts().ListSubAccountsByAgency(ctx, agency.ID)
	if err != nil {
		return nil, err
	}
	for _, sa := range subAccounts {
		opts, err := s.Store.SidebarOptions().ListSubAccountSidebarOptions(ctx, sa.ID)
		if err != nil {
			return nil, err
		}
		detail.SubAccounts = append(detail.SubAccounts, domain.SubAccountDetail{
			SubAccount:     sa,
			SidebarOptions: opts,
		})
	}
	auth.Agency = detail

	// 4. Permissions are keyed by email, matching the provisioning path.
	auth.Permissions, err = s.Store.Permissions().ListPermissionsByEmail(ctx, user.Email)
	if err != nil {
		return nil, err
	}

	return auth, nil
}

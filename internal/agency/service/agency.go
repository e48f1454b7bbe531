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

var (
	// ErrProvisionUnauthorized reports a provisioning call without the
	// configured token.
	ErrProvisionUnauthorized = errors.New("unauthorized provisioning attempt")

	// ErrInvalidAgencyRequest reports missing provisioning parameters.
	ErrInvalidAgencyRequest = errors.New("invalid agency request")
)

// AgencyProvisionData describes a new agency and its owner.
type AgencyProvisionData struct {
	Name         string
	CompanyEmail string

	OwnerID        string // identity provider's principal id, optional
	OwnerEmail     string
	OwnerName      string
	OwnerAvatarURL string
}

// defaultSidebarOptions is the navigation every new agency starts with.
var defaultSidebarOptions = []struct {
	Name string
	Link string
	Icon string
}{
	{"Dashboard", "/dashboard", "category"},
	{"Launchpad", "/launchpad", "clipboardIcon"},
	{"Billing", "/billing", "payment"},
	{"Settings", "/settings", "settings"},
	{"Sub Accounts", "/all-subaccounts", "person"},
	{"Team", "/team", "shield"},
}

type AgencyService struct {
	Store store.Store
	Token string // Pre-configured provisioning token
}

// Provision creates an agency together with its AGENCY_OWNER user and the
// default sidebar navigation, all in one transaction. This is the only path
// that creates an owner; every later member arrives through invitations or
// team provisioning.
func (s *AgencyService) Provision(ctx context.Context, token string, req AgencyProvisionData) (domain.Agency, domain.User, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate provided token
	if s.Token == "" || token != s.Token {
		log.Warn("unauthorized agency provisioning attempt")
		return domain.Agency{}, domain.User{}, ErrProvisionUnauthorized
	}

	// 2. Validate input
	if req.Name == "" || req.CompanyEmail == "" || req.OwnerEmail == "" {
		return domain.Agency{}, domain.User{}, ErrInvalidAgencyRequest
	}

	now := time.Now().UTC()
	agency := domain.Agency{
		ID:           idx.New().String(),
		Name:         req.Name,
		CompanyEmail: req.CompanyEmail,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	ownerID := req.OwnerID
	if ownerID == "" {
		ownerID = idx.New().String()
	}
	owner := domain.User{
		ID:        ownerID,
		Email:     req.OwnerEmail,
		Name:      req.OwnerName,
		AvatarURL: req.OwnerAvatarURL,
		Role:      domain.RoleAgencyOwner,
		AgencyID:  agency.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	// 3. Create agency, owner and navigation atomically.
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Agencies().CreateAgency(ctx, agency); err != nil {
			return err
		}
		if err := tx.Users().CreateUser(ctx, owner); err != nil {
			return err
		}
		for _, opt := range defaultSidebarOptions {
			err := tx.SidebarOptions().CreateAgencySidebarOption(ctx, agency.ID, domain.SidebarOption{
				ID:        idx.New().String(),
				Name:      opt.Name,
				Link:      opt.Link,
				Icon:      opt.Icon,
				CreatedAt: now,
				UpdatedAt: now,
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			log.Warn("agency provisioning hit duplicate owner email",
				slog.String("email", req.OwnerEmail),
			)
		} else {
			log.Error("failed to provision agency", slog.Any("error", err))
		}
		return domain.Agency{}, domain.User{}, err
	}

	log.Info("agency provisioned",
		slog.String("agency_id", agency.ID),
		slog.String("owner_id", owner.ID),
	)

	return agency, owner, nil
}

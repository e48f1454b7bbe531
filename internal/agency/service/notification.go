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

// ErrMissingTarget reports an activity entry with neither an agency id nor a
// sub-account id, which makes the agency unresolvable. Caller contract
// violation, never retried.
var ErrMissingTarget = errors.New("must provide an agency id or a sub-account id")

// ActivityLog describes an event to record. AgencyID and SubAccountID are
// optional individually but at least one must be set; Description is
// required free text.
type ActivityLog struct {
	AgencyID     string
	SubAccountID string
	Description  string
}

// AuthorKind tags how the notification author was resolved, so callers can
// tell attributed notifications from best-effort guesses.
type AuthorKind int

const (
	// AuthorUnresolved means no author could be found and nothing was written.
	AuthorUnresolved AuthorKind = iota
	// AuthorAuthenticated means the author is the caller's own user record.
	AuthorAuthenticated
	// AuthorSystemFallback means the author is an arbitrary member of the
	// target agency, standing in for a system-initiated event.
	AuthorSystemFallback
)

func (k AuthorKind) String() string {
	switch k {
	case AuthorAuthenticated:
		return "authenticated"
	case AuthorSystemFallback:
		return "system_fallback"
	}
	return "unresolved"
}

// Author is the outcome of author resolution. User is the zero value when
// Kind is AuthorUnresolved.
type Author struct {
	Kind AuthorKind
	User domain.User
}

type NotificationService struct {
	Store store.Store
}

// RecordActivity writes one activity-log notification. The stored message is
// "<author name> | <description>". The notification links the resolved
// author, the agency, and - only when the entry named one - the sub-account.
//
// Author resolution, in order: the caller's own user record (by the
// principal's email); otherwise an arbitrary user of the target agency; if
// neither exists the entry is dropped with a warning and no error, and the
// returned Author has Kind AuthorUnresolved.
func (s *NotificationService) RecordActivity(ctx context.Context, principal *domain.Principal, entry ActivityLog) (Author, error) {
	log := slogx.FromContext(ctx)

	// 1. Resolve the agency id, deriving it from the sub-account when the
	// caller did not supply it directly.
	agencyID := entry.AgencyID
	if agencyID == "" {
		if entry.SubAccountID == "" {
			return Author{}, ErrMissingTarget
		}

		subAccount, err := s.Store.SubAccounts().GetSubAccountByID(ctx, entry.SubAccountID)
		if err != nil {
			log.Error("failed to resolve sub-account for activity entry",
				slog.String("sub_account_id", entry.SubAccountID),
				slog.Any("error", err),
			)
			return Author{}, err
		}
		agencyID = subAccount.AgencyID
	}

	// 2. Resolve the author.
	author, err := s.resolveAuthor(ctx, principal, agencyID)
	if err != nil {
		return Author{}, err
	}
	if author.Kind == AuthorUnresolved {
		// Not fatal: a notification nobody can be blamed for is dropped.
		log.Warn("could not resolve an author for activity entry, skipping",
			slog.String("agency_id", agencyID),
		)
		return author, nil
	}

	// 3. Write the notification.
	notification := domain.Notification{
		ID:        idx.New().String(),
		Message:   author.User.Name + " | " + entry.Description,
		UserID:    author.User.ID,
		AgencyID:  agencyID,
		CreatedAt: time.Now().UTC(),
	}
	if entry.SubAccountID != "" {
		subAccountID := entry.SubAccountID
		notification.SubAccountID = &subAccountID
	}

	if err := s.Store.Notifications().CreateNotification(ctx, notification); err != nil {
		log.Error("failed to create notification",
			slog.String("agency_id", agencyID),
			slog.Any("error", err),
		)
		return Author{}, err
	}

	return author, nil
}

// ListAgencyNotifications returns an agency's activity log, newest first.
// A limit of 0 returns everything.
func (s *NotificationService) ListAgencyNotifications(ctx context.Context, agencyID string, limit int) ([]domain.Notification, error) {
	if agencyID == "" {
		return nil, ErrMissingTarget
	}
	return s.Store.Notifications().ListNotificationsByAgency(ctx, agencyID, limit)
}

func (s *NotificationService) resolveAuthor(ctx context.Context, principal *domain.Principal, agencyID string) (Author, error) {
	// Prefer the caller's own record.
	if principal != nil {
		user, err := s.Store.Users().GetUserByEmail(ctx, principal.Email)
		if err == nil {
			return Author{Kind: AuthorAuthenticated, User: user}, nil
		}
		if !errors.Is(err, store.ErrNotFound) {
			return Author{}, err
		}
	}

	// System-initiated event, or the caller has no record yet: attribute to
	// someone on the team.
	user, err := s.Store.Users().GetFirstUserInAgency(ctx, agencyID)
	if err == nil {
		return Author{Kind: AuthorSystemFallback, User: user}, nil
	}
	if errors.Is(err, store.ErrNotFound) {
		return Author{Kind: AuthorUnresolved}, nil
	}
	return Author{}, err
}

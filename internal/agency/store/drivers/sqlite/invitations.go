package sqlite

import (
	"context"

	"github.com/brindlelabs/agencyhub/internal/agency/domain"
)

type invitationsRepo struct {
	db dbtx
}

func (r *invitationsRepo) CreateInvitation(ctx context.Context, inv domain.Invitation) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO invitations (id, email, agency_id, role, status, token_hash, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		inv.ID, inv.Email, inv.AgencyID, inv.Role, inv.Status, inv.TokenHash, inv.CreatedAt, inv.UpdatedAt,
	)
	return mapConflict(err)
}

func (r *invitationsRepo) GetPendingInvitationByEmail(ctx context.Context, email string) (domain.Invitation, error) {
	var inv domain.Invitation
	err := r.db.QueryRowContext(ctx,
		`SELECT id, email, agency_id, role, status, token_hash, created_at, updated_at
		 FROM invitations WHERE email = ? AND status = ?`,
		email, domain.InvitationPending,
	).Scan(&inv.ID, &inv.Email, &inv.AgencyID, &inv.Role, &inv.Status, &inv.TokenHash, &inv.CreatedAt, &inv.UpdatedAt)
	if err != nil {
		return domain.Invitation{}, mapNotFound(err)
	}
	return inv, nil
}

func (r *invitationsRepo) DeleteInvitationByEmail(ctx context.Context, email string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM invitations WHERE email = ?`, email)
	return err
}

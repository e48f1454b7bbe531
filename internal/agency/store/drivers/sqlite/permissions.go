package sqlite

import (
	"context"

	"github.com/brindlelabs/agencyhub/internal/agency/domain"
)

type permissionsRepo struct {
	db dbtx
}

func (r *permissionsRepo) ListPermissionsByEmail(ctx context.Context, email string) ([]domain.Permission, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_email, sub_account_id, access
		 FROM permissions WHERE user_email = ? ORDER BY id`, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Permission
	for rows.Next() {
		var p domain.Permission
		if err := rows.Scan(&p.ID, &p.UserEmail, &p.SubAccountID, &p.Access); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *permissionsRepo) UpsertPermission(ctx context.Context, p domain.Permission) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO permissions (id, user_email, sub_account_id, access)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT (user_email, sub_account_id) DO UPDATE SET access = excluded.access`,
		p.ID, p.UserEmail, p.SubAccountID, p.Access,
	)
	return err
}

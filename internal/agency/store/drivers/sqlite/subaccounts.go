package sqlite

import (
	"context"

	"github.com/brindlelabs/agencyhub/internal/agency/domain"
)

type subAccountsRepo struct {
	db dbtx
}

func (r *subAccountsRepo) GetSubAccountByID(ctx context.Context, id string) (domain.SubAccount, error) {
	var sa domain.SubAccount
	err := r.db.QueryRowContext(ctx,
		`SELECT id, agency_id, name, created_at, updated_at FROM sub_accounts WHERE id = ?`, id,
	).Scan(&sa.ID, &sa.AgencyID, &sa.Name, &sa.CreatedAt, &sa.UpdatedAt)
	if err != nil {
		return domain.SubAccount{}, mapNotFound(err)
	}
	return sa, nil
}

func (r *subAccountsRepo) ListSubAccountsByAgency(ctx context.Context, agencyID string) ([]domain.SubAccount, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, agency_id, name, created_at, updated_at
		 FROM sub_accounts WHERE agency_id = ? ORDER BY id`, agencyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.SubAccount
	for rows.Next() {
		var sa domain.SubAccount
		if err := rows.Scan(&sa.ID, &sa.AgencyID, &sa.Name, &sa.CreatedAt, &sa.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, sa)
	}
	return out, rows.Err()
}

func (r *subAccountsRepo) CreateSubAccount(ctx context.Context, sa domain.SubAccount) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO sub_accounts (id, agency_id, name, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?)`,
		sa.ID, sa.AgencyID, sa.Name, sa.CreatedAt, sa.UpdatedAt,
	)
	return mapConflict(err)
}

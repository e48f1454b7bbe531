package sqlite

import (
	"context"

	"github.com/brindlelabs/agencyhub/internal/agency/domain"
)

type sidebarOptionsRepo struct {
	db dbtx
}

func (r *sidebarOptionsRepo) ListAgencySidebarOptions(ctx context.Context, agencyID string) ([]domain.SidebarOption, error) {
	return r.list(ctx,
		`SELECT id, name, link, icon, created_at, updated_at
		 FROM agency_sidebar_options WHERE agency_id = ? ORDER BY id`, agencyID)
}

func (r *sidebarOptionsRepo) ListSubAccountSidebarOptions(ctx context.Context, subAccountID string) ([]domain.SidebarOption, error) {
	return r.list(ctx,
		`SELECT id, name, link, icon, created_at, updated_at
		 FROM sub_account_sidebar_options WHERE sub_account_id = ? ORDER BY id`, subAccountID)
}

func (r *sidebarOptionsRepo) CreateAgencySidebarOption(ctx context.Context, agencyID string, opt domain.SidebarOption) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO agency_sidebar_options (id, agency_id, name, link, icon, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		opt.ID, agencyID, opt.Name, opt.Link, opt.Icon, opt.CreatedAt, opt.UpdatedAt,
	)
	return mapConflict(err)
}

func (r *sidebarOptionsRepo) CreateSubAccountSidebarOption(ctx context.Context, subAccountID string, opt domain.SidebarOption) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO sub_account_sidebar_options (id, sub_account_id, name, link, icon, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		opt.ID, subAccountID, opt.Name, opt.Link, opt.Icon, opt.CreatedAt, opt.UpdatedAt,
	)
	return mapConflict(err)
}

func (r *sidebarOptionsRepo) list(ctx context.Context, query string, arg any) ([]domain.SidebarOption, error) {
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.SidebarOption
	for rows.Next() {
		var opt domain.SidebarOption
		if err := rows.Scan(&opt.ID, &opt.Name, &opt.Link, &opt.Icon, &opt.CreatedAt, &opt.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, opt)
	}
	return out, rows.Err()
}

package sqlite

import (
	"context"

	"github.com/brindlelabs/agencyhub/internal/agency/domain"
)

type agenciesRepo struct {
	db dbtx
}

func (r *agenciesRepo) GetAgencyByID(ctx context.Context, id string) (domain.Agency, error) {
	var a domain.Agency
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, company_email, created_at, updated_at FROM agencies WHERE id = ?`, id,
	).Scan(&a.ID, &a.Name, &a.CompanyEmail, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return domain.Agency{}, mapNotFound(err)
	}
	return a, nil
}

func (r *agenciesRepo) CreateAgency(ctx context.Context, a domain.Agency) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO agencies (id, name, company_email, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?)`,
		a.ID, a.Name, a.CompanyEmail, a.CreatedAt, a.UpdatedAt,
	)
	return mapConflict(err)
}

package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/brindlelabs/agencyhub/internal/agency/domain"
)

type notificationsRepo struct {
	db dbtx
}

func (r *notificationsRepo) CreateNotification(ctx context.Context, n domain.Notification) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO notifications (id, message, user_id, agency_id, sub_account_id, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		n.ID, n.Message, n.UserID, n.AgencyID, mapOptionalString(n.SubAccountID), n.CreatedAt,
	)
	return mapConflict(err)
}

func (r *notificationsRepo) ListNotificationsByAgency(ctx context.Context, agencyID string, limit int) ([]domain.Notification, error) {
	query := `SELECT id, message, user_id, agency_id, sub_account_id, created_at
		 FROM notifications WHERE agency_id = ? ORDER BY created_at DESC, id DESC`
	args := []any{agencyID}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Notification
	for rows.Next() {
		var (
			n   domain.Notification
			sub sql.NullString
		)
		if err := rows.Scan(&n.ID, &n.Message, &n.UserID, &n.AgencyID, &sub, &n.CreatedAt); err != nil {
			return nil, err
		}
		n.SubAccountID = mapNullString(sub)
		out = append(out, n)
	}
	return out, rows.Err()
}

func (r *notificationsRepo) DeleteNotificationsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM notifications WHERE created_at < ?`, cutoff)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

package readstore

import (
	"context"

	"equiploan/internal/infra"
	"equiploan/internal/infra/db"
	"equiploan/internal/pkg/pgconv"
	"equiploan/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type NotificationReadStore struct {
	db db.DBTX
}

func NewNotificationReadStore(db db.DBTX) *NotificationReadStore {
	return &NotificationReadStore{db: db}
}

const notificationViewSQL = `
SELECT id, user_id, message, is_read, created_at
FROM notifications`

func (r *NotificationReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.NotificationView, error) {
	rows, err := r.db.Query(ctx, notificationViewSQL+` WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find notifications by user", err)
	}
	defer rows.Close()

	result := make([]*queries.NotificationView, 0)
	for rows.Next() {
		view, err := scanNotificationView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan notification row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate notification rows", err)
	}

	return result, nil
}

func (r *NotificationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.NotificationView, error) {
	view, err := scanNotificationView(r.db.QueryRow(ctx, notificationViewSQL+` WHERE id = $1`, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("notification not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find notification by ID", err)
	}

	return view, nil
}

func scanNotificationView(row rowScanner) (*queries.NotificationView, error) {
	var (
		view      queries.NotificationView
		createdAt pgtype.Timestamptz
	)
	if err := row.Scan(&view.ID, &view.UserID, &view.Message, &view.IsRead, &createdAt); err != nil {
		return nil, err
	}

	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	return &view, nil
}

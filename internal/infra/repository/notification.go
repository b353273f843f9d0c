package repository

import (
	"context"

	"equiploan/internal/infra"
	"equiploan/internal/infra/db"

	"github.com/google/uuid"
)

type NotificationRepository struct{}

func NewNotificationRepository() *NotificationRepository {
	return &NotificationRepository{}
}

const createNotificationSQL = `
INSERT INTO notifications (user_id, message)
VALUES ($1, $2)
RETURNING id`

func (r *NotificationRepository) Create(ctx context.Context, tx db.DBTX, userID uuid.UUID, message string) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, createNotificationSQL, userID, message).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create notification", err)
	}

	return id, nil
}

const markNotificationReadSQL = `
UPDATE notifications
SET is_read = TRUE
WHERE id = $1`

func (r *NotificationRepository) MarkRead(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, markNotificationReadSQL, id)
	if err != nil {
		return infra.WrapRepoErr("failed to mark notification read", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("notification not found", nil, infra.KindNotFound)
	}

	return nil
}

const deleteNotificationSQL = `DELETE FROM notifications WHERE id = $1`

func (r *NotificationRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, deleteNotificationSQL, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete notification", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("notification not found", nil, infra.KindNotFound)
	}

	return nil
}

const deleteAllNotificationsSQL = `DELETE FROM notifications WHERE user_id = $1`

func (r *NotificationRepository) DeleteAllForUser(ctx context.Context, tx db.DBTX, userID uuid.UUID) error {
	if _, err := tx.Exec(ctx, deleteAllNotificationsSQL, userID); err != nil {
		return infra.WrapRepoErr("failed to delete notifications", err)
	}

	return nil
}

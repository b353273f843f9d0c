package commands

import (
	"context"

	"equiploan/internal/infra"
	"equiploan/internal/pkg/errs"
	"equiploan/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrNotificationNotFound = errs.New("notification not found")
	ErrNotificationNotOwned = errs.New("notification belongs to another user")
)

type NotificationCommands interface {
	MarkRead(ctx context.Context, notificationID, userID uuid.UUID) error
	Delete(ctx context.Context, notificationID, userID uuid.UUID) error
	DeleteAll(ctx context.Context, userID uuid.UUID) error
}

type notificationCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewNotificationCommands(uow shared.UnitOfWork) NotificationCommands {
	return &notificationCommandsImpl{uow: uow}
}

func (c *notificationCommandsImpl) MarkRead(ctx context.Context, notificationID, userID uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := c.checkOwnership(ctx, tx, notificationID, userID); err != nil {
			return err
		}
		if err := tx.Notifications().MarkRead(ctx, tx.DB(), notificationID); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (c *notificationCommandsImpl) Delete(ctx context.Context, notificationID, userID uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := c.checkOwnership(ctx, tx, notificationID, userID); err != nil {
			return err
		}
		if err := tx.Notifications().Delete(ctx, tx.DB(), notificationID); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (c *notificationCommandsImpl) DeleteAll(ctx context.Context, userID uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Notifications().DeleteAllForUser(ctx, tx.DB(), userID); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (c *notificationCommandsImpl) checkOwnership(ctx context.Context, tx shared.Tx, notificationID, userID uuid.UUID) error {
	snapshot, err := tx.Reads().NotificationByID(ctx, notificationID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrNotificationNotFound)
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if snapshot.UserID != userID {
		return ErrNotificationNotOwned
	}
	return nil
}

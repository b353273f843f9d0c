package commands

import (
	"context"

	"equiploan/internal/domain/history"
	"equiploan/internal/domain/request"
	"equiploan/internal/infra"
	"equiploan/internal/pkg/errs"
	"equiploan/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrHistoryEntryNotFound = errs.New("history entry not found")
	ErrHistoryNotReturned   = errs.New("history entry status is not returned")
)

type HistoryCommands interface {
	Delete(ctx context.Context, entryID uuid.UUID) error
}

type historyCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewHistoryCommands(uow shared.UnitOfWork) HistoryCommands {
	return &historyCommandsImpl{uow: uow}
}

func (c *historyCommandsImpl) Delete(ctx context.Context, entryID uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snapshot, err := tx.Reads().HistoryEntryByID(ctx, entryID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrHistoryEntryNotFound)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		entry := history.ReconstructEntry(
			snapshot.ID,
			snapshot.UserID,
			snapshot.EquipmentID,
			snapshot.UnassignedQuantity,
			snapshot.UnassignDate,
			request.Status(snapshot.ReturnStatus),
			snapshot.UnassignDate,
		)
		if err := entry.CanDelete(); err != nil {
			return errs.Mark(err, ErrHistoryNotReturned)
		}

		if err := tx.History().Delete(ctx, tx.DB(), entryID); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

package repository

import (
	"context"

	"equiploan/internal/domain/history"
	"equiploan/internal/infra"
	"equiploan/internal/infra/db"
	"equiploan/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type HistoryRepository struct{}

func NewHistoryRepository() *HistoryRepository {
	return &HistoryRepository{}
}

const appendHistorySQL = `
INSERT INTO equipment_history (id, user_id, equipment_id, unassigned_quantity, unassign_date, return_status)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id`

func (r *HistoryRepository) Append(ctx context.Context, tx db.DBTX, entry *history.Entry) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, appendHistorySQL,
		entry.ID(),
		entry.UserID(),
		entry.EquipmentID(),
		entry.UnassignedQuantity(),
		pgconv.TimeToPgtype(entry.UnassignDate()),
		entry.ReturnStatus().String(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to append history entry", err)
	}

	return id, nil
}

const deleteHistorySQL = `DELETE FROM equipment_history WHERE id = $1`

func (r *HistoryRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, deleteHistorySQL, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete history entry", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("history entry not found", nil, infra.KindNotFound)
	}

	return nil
}

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

type HistoryReadStore struct {
	db db.DBTX
}

func NewHistoryReadStore(db db.DBTX) *HistoryReadStore {
	return &HistoryReadStore{db: db}
}

const historyViewSQL = `
SELECT h.id, h.unassigned_quantity, h.unassign_date, h.return_status,
	u.id, u.first_name, u.last_name, u.username,
	e.id, e.name, e.full_name, e.serial_number, e.quantity
FROM equipment_history h
JOIN users u ON u.id = h.user_id
JOIN equipment e ON e.id = h.equipment_id`

func (r *HistoryReadStore) FindAll(ctx context.Context) ([]*queries.HistoryView, error) {
	rows, err := r.db.Query(ctx, historyViewSQL+` ORDER BY h.unassign_date DESC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find history entries", err)
	}
	defer rows.Close()

	result := make([]*queries.HistoryView, 0)
	for rows.Next() {
		view, err := scanHistoryView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan history row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate history rows", err)
	}

	return result, nil
}

func (r *HistoryReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.HistoryView, error) {
	view, err := scanHistoryView(r.db.QueryRow(ctx, historyViewSQL+` WHERE h.id = $1`, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("history entry not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find history entry by ID", err)
	}

	return view, nil
}

func scanHistoryView(row rowScanner) (*queries.HistoryView, error) {
	var (
		view         queries.HistoryView
		unassignDate pgtype.Timestamptz
	)
	err := row.Scan(
		&view.ID, &view.UnassignedQuantity, &unassignDate, &view.ReturnStatus,
		&view.User.ID, &view.User.FirstName, &view.User.LastName, &view.User.Username,
		&view.Equipment.ID, &view.Equipment.Name, &view.Equipment.FullName,
		&view.Equipment.SerialNumber, &view.Equipment.Quantity,
	)
	if err != nil {
		return nil, err
	}

	view.UnassignDate = pgconv.TimeFromPgtype(unassignDate)
	return &view, nil
}

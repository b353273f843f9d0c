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

type EquipmentReadStore struct {
	db db.DBTX
}

func NewEquipmentReadStore(db db.DBTX) *EquipmentReadStore {
	return &EquipmentReadStore{db: db}
}

const equipmentViewSQL = `
SELECT id, name, full_name, serial_number, condition, quantity, description, created_at, updated_at
FROM equipment`

func (r *EquipmentReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.EquipmentView, error) {
	view, err := scanEquipmentView(r.db.QueryRow(ctx, equipmentViewSQL+` WHERE id = $1`, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("equipment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find equipment by ID", err)
	}

	return view, nil
}

func (r *EquipmentReadStore) FindAll(ctx context.Context) ([]*queries.EquipmentView, error) {
	rows, err := r.db.Query(ctx, equipmentViewSQL+` ORDER BY name ASC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find all equipment", err)
	}
	defer rows.Close()

	result := make([]*queries.EquipmentView, 0)
	for rows.Next() {
		view, err := scanEquipmentView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan equipment row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate equipment rows", err)
	}

	return result, nil
}

func scanEquipmentView(row rowScanner) (*queries.EquipmentView, error) {
	var (
		view        queries.EquipmentView
		description pgtype.Text
		createdAt   pgtype.Timestamptz
		updatedAt   pgtype.Timestamptz
	)
	err := row.Scan(
		&view.ID, &view.Name, &view.FullName, &view.SerialNumber,
		&view.Condition, &view.Quantity, &description, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	view.Description = pgconv.StringPtrFromPgtype(description)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &view, nil
}

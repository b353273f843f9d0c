package repository

import (
	"context"

	"equiploan/internal/domain/equipment"
	"equiploan/internal/infra"
	"equiploan/internal/infra/db"
	"equiploan/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type EquipmentRepository struct{}

func NewEquipmentRepository() *EquipmentRepository {
	return &EquipmentRepository{}
}

const createEquipmentSQL = `
INSERT INTO equipment (id, name, full_name, serial_number, condition, quantity, description)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id`

func (r *EquipmentRepository) Create(ctx context.Context, tx db.DBTX, eq *equipment.Equipment) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, createEquipmentSQL,
		eq.ID(),
		eq.Name(),
		eq.FullName(),
		eq.SerialNumber(),
		eq.Condition(),
		eq.Quantity(),
		pgconv.StringPtrToPgtype(eq.Description()),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create equipment", err)
	}

	return id, nil
}

const updateEquipmentSQL = `
UPDATE equipment
SET name = $2, full_name = $3, serial_number = $4, condition = $5,
    quantity = $6, description = $7, updated_at = now()
WHERE id = $1`

func (r *EquipmentRepository) Update(ctx context.Context, tx db.DBTX, eq *equipment.Equipment) error {
	tag, err := tx.Exec(ctx, updateEquipmentSQL,
		eq.ID(),
		eq.Name(),
		eq.FullName(),
		eq.SerialNumber(),
		eq.Condition(),
		eq.Quantity(),
		pgconv.StringPtrToPgtype(eq.Description()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update equipment", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("equipment not found", nil, infra.KindNotFound)
	}

	return nil
}

const findEquipmentForUpdateSQL = `
SELECT id, name, full_name, serial_number, condition, quantity, description, created_at, updated_at
FROM equipment
WHERE id = $1
FOR UPDATE`

func (r *EquipmentRepository) FindForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*equipment.Equipment, error) {
	var (
		eqID         uuid.UUID
		name         string
		fullName     string
		serialNumber string
		condition    bool
		quantity     int
		description  pgtype.Text
		createdAt    pgtype.Timestamptz
		updatedAt    pgtype.Timestamptz
	)
	err := tx.QueryRow(ctx, findEquipmentForUpdateSQL, id).Scan(
		&eqID, &name, &fullName, &serialNumber, &condition, &quantity, &description, &createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("equipment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock equipment", err)
	}

	return equipment.ReconstructEquipment(
		eqID, name, fullName, serialNumber, condition, quantity,
		pgconv.StringPtrFromPgtype(description),
		pgconv.TimeFromPgtype(createdAt),
		pgconv.TimeFromPgtype(updatedAt),
	), nil
}

const updateEquipmentQuantitySQL = `
UPDATE equipment
SET quantity = $2, updated_at = now()
WHERE id = $1`

func (r *EquipmentRepository) UpdateQuantity(ctx context.Context, tx db.DBTX, id uuid.UUID, quantity int) error {
	tag, err := tx.Exec(ctx, updateEquipmentQuantitySQL, id, quantity)
	if err != nil {
		return infra.WrapRepoErr("failed to update equipment quantity", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("equipment not found", nil, infra.KindNotFound)
	}

	return nil
}

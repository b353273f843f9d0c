package repository

import (
	"context"

	"equiploan/internal/domain/request"
	"equiploan/internal/infra"
	"equiploan/internal/infra/db"
	"equiploan/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type RequestRepository struct{}

func NewRequestRepository() *RequestRepository {
	return &RequestRepository{}
}

const createRequestSQL = `
INSERT INTO requests (id, user_id, equipment_id, quantity, request_status, return_status, assign_date)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id`

func (r *RequestRepository) Create(ctx context.Context, tx db.DBTX, req *request.Request) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, createRequestSQL,
		req.ID(),
		req.UserID(),
		req.EquipmentID(),
		req.Quantity(),
		req.Status().String(),
		req.ReturnStatus().String(),
		pgconv.TimePtrToPgtype(req.AssignDate()),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create request", err)
	}

	return id, nil
}

const updateRequestSQL = `
UPDATE requests
SET quantity = $2, request_status = $3, return_status = $4, assign_date = $5, updated_at = now()
WHERE id = $1`

func (r *RequestRepository) Update(ctx context.Context, tx db.DBTX, req *request.Request) error {
	tag, err := tx.Exec(ctx, updateRequestSQL,
		req.ID(),
		req.Quantity(),
		req.Status().String(),
		req.ReturnStatus().String(),
		pgconv.TimePtrToPgtype(req.AssignDate()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update request", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("request not found", nil, infra.KindNotFound)
	}

	return nil
}

const deleteRequestSQL = `DELETE FROM requests WHERE id = $1`

func (r *RequestRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, deleteRequestSQL, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete request", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("request not found", nil, infra.KindNotFound)
	}

	return nil
}

const findRequestForUpdateSQL = `
SELECT id, user_id, equipment_id, quantity, request_status, return_status, assign_date, created_at, updated_at
FROM requests
WHERE id = $1
FOR UPDATE`

func (r *RequestRepository) FindForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*request.Request, error) {
	var (
		reqID        uuid.UUID
		userID       uuid.UUID
		equipmentID  uuid.UUID
		quantity     int
		status       string
		returnStatus string
		assignDate   pgtype.Timestamptz
		createdAt    pgtype.Timestamptz
		updatedAt    pgtype.Timestamptz
	)
	err := tx.QueryRow(ctx, findRequestForUpdateSQL, id).Scan(
		&reqID, &userID, &equipmentID, &quantity, &status, &returnStatus, &assignDate, &createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock request", err)
	}

	return request.ReconstructRequest(
		reqID, userID, equipmentID, quantity,
		request.Status(status), request.Status(returnStatus),
		pgconv.TimePtrFromPgtype(assignDate),
		pgconv.TimeFromPgtype(createdAt),
		pgconv.TimeFromPgtype(updatedAt),
	), nil
}

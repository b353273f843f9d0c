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

type RequestReadStore struct {
	db db.DBTX
}

func NewRequestReadStore(db db.DBTX) *RequestReadStore {
	return &RequestReadStore{db: db}
}

const requestViewColumns = `
	r.id, r.quantity, r.request_status, r.return_status, r.assign_date, r.created_at,
	u.id, u.first_name, u.last_name, u.username,
	e.id, e.name, e.full_name, e.serial_number, e.quantity`

const requestViewFrom = `
FROM requests r
JOIN users u ON u.id = r.user_id
JOIN equipment e ON e.id = r.equipment_id`

func (r *RequestReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RequestView, error) {
	row := r.db.QueryRow(ctx, `SELECT`+requestViewColumns+requestViewFrom+` WHERE r.id = $1`, id)

	view, err := scanRequestView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find request by ID", err)
	}

	return view, nil
}

func (r *RequestReadStore) FindByStatus(ctx context.Context, status string) ([]*queries.RequestView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT`+requestViewColumns+requestViewFrom+`
		WHERE r.request_status = $1
		ORDER BY r.assign_date ASC NULLS LAST, r.created_at ASC`,
		status,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find requests by status", err)
	}
	defer rows.Close()

	return collectRequestViews(rows)
}

func (r *RequestReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.RequestView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT`+requestViewColumns+requestViewFrom+`
		WHERE r.user_id = $1
		ORDER BY r.created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find requests by user", err)
	}
	defer rows.Close()

	return collectRequestViews(rows)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRequestView(row rowScanner) (*queries.RequestView, error) {
	var (
		view       queries.RequestView
		assignDate pgtype.Timestamptz
		createdAt  pgtype.Timestamptz
	)
	err := row.Scan(
		&view.ID, &view.Quantity, &view.Status, &view.ReturnStatus, &assignDate, &createdAt,
		&view.User.ID, &view.User.FirstName, &view.User.LastName, &view.User.Username,
		&view.Equipment.ID, &view.Equipment.Name, &view.Equipment.FullName,
		&view.Equipment.SerialNumber, &view.Equipment.Quantity,
	)
	if err != nil {
		return nil, err
	}

	view.AssignDate = pgconv.TimePtrFromPgtype(assignDate)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	return &view, nil
}

func collectRequestViews(rows interface {
	rowScanner
	Next() bool
	Err() error
}) ([]*queries.RequestView, error) {
	result := make([]*queries.RequestView, 0)
	for rows.Next() {
		view, err := scanRequestView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan request row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate request rows", err)
	}

	return result, nil
}

package readstore

import (
	"context"

	"equiploan/internal/infra"
	"equiploan/internal/infra/db"
	"equiploan/internal/pkg/pgconv"
	"equiploan/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(db db.DBTX) *UserReadStore {
	return &UserReadStore{db: db}
}

const userViewSQL = `
SELECT id, first_name, last_name, email, username, position, role, is_active
FROM users`

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	var view queries.AuthorizedUserView
	err := r.db.QueryRow(ctx, userViewSQL+` WHERE id = $1`, id).Scan(
		&view.ID, &view.FirstName, &view.LastName, &view.Email,
		&view.Username, &view.Position, &view.Role, &view.IsActive,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}

	return &view, nil
}

func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	var (
		view         queries.AuthorizedUserView
		passwordHash string
	)
	err := r.db.QueryRow(ctx,
		`SELECT id, first_name, last_name, email, username, position, role, is_active, password_hash
		FROM users WHERE email = $1`, email,
	).Scan(
		&view.ID, &view.FirstName, &view.LastName, &view.Email,
		&view.Username, &view.Position, &view.Role, &view.IsActive, &passwordHash,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}

	return &view, passwordHash, nil
}

package readstore

import (
	"context"

	"acacia-booking/internal/infra"
	"acacia-booking/internal/infra/db"
	"acacia-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{db: dbtx}
}

func (s *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	const query = `
		SELECT id, email, role, is_active, last_login
		FROM users
		WHERE id = $1`

	var view queries.AuthorizedUserView
	err := s.db.QueryRow(ctx, query, id).Scan(
		&view.ID, &view.Email, &view.Role, &view.IsActive, &view.LastLogin,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}

	return &view, nil
}

func (s *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	const query = `
		SELECT id, email, role, is_active, last_login, password_hash
		FROM users
		WHERE email = $1`

	var (
		view queries.AuthorizedUserView
		hash string
	)
	err := s.db.QueryRow(ctx, query, email).Scan(
		&view.ID, &view.Email, &view.Role, &view.IsActive, &view.LastLogin, &hash,
	)
	if err != nil {
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}

	return &view, hash, nil
}

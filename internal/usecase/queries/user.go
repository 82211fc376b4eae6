package queries

import (
	"context"

	"acacia-booking/internal/infra"
	"acacia-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

type UserQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error)
}

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error)
	// FindByEmail also returns the stored password hash for login validation.
	FindByEmail(ctx context.Context, email string) (*AuthorizedUserView, string, error)
}

type userQueriesImpl struct {
	store UserReadStore
}

func NewUserQueries(store UserReadStore) UserQueries {
	return &userQueriesImpl{store: store}
}

func (q *userQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrUnauthorized
		}
		return nil, err
	}
	return view, nil
}

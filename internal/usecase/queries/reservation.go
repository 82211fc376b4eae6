package queries

import (
	"context"

	"github.com/google/uuid"
)

type ReservationQueries interface {
	// ListByUser orders by date/time descending, newest plans first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*ReservationView, error)
	ListAll(ctx context.Context) ([]*ReservationView, error)
}

type ReservationReadStore interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*ReservationView, error)
	FindAll(ctx context.Context) ([]*ReservationView, error)
}

type reservationQueriesImpl struct {
	store ReservationReadStore
}

func NewReservationQueries(store ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{store: store}
}

func (q *reservationQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*ReservationView, error) {
	return q.store.FindByUserID(ctx, userID)
}

func (q *reservationQueriesImpl) ListAll(ctx context.Context) ([]*ReservationView, error) {
	return q.store.FindAll(ctx)
}

package queries

import (
	"context"

	"github.com/google/uuid"
)

type EventBookingQueries interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*EventBookingView, error)
	// ListAll is the staff feed, including walk-in bookings with no owner.
	ListAll(ctx context.Context) ([]*EventBookingView, error)
}

type EventBookingReadStore interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*EventBookingView, error)
	FindAll(ctx context.Context) ([]*EventBookingView, error)
}

type eventBookingQueriesImpl struct {
	store EventBookingReadStore
}

func NewEventBookingQueries(store EventBookingReadStore) EventBookingQueries {
	return &eventBookingQueriesImpl{store: store}
}

func (q *eventBookingQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*EventBookingView, error) {
	return q.store.FindByUserID(ctx, userID)
}

func (q *eventBookingQueriesImpl) ListAll(ctx context.Context) ([]*EventBookingView, error) {
	return q.store.FindAll(ctx)
}

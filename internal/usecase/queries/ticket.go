package queries

import (
	"context"

	"github.com/google/uuid"
)

type TicketQueries interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*TicketView, error)
}

type TicketReadStore interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*TicketView, error)
}

type ticketQueriesImpl struct {
	store TicketReadStore
}

func NewTicketQueries(store TicketReadStore) TicketQueries {
	return &ticketQueriesImpl{store: store}
}

func (q *ticketQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*TicketView, error) {
	return q.store.FindByUserID(ctx, userID)
}

package queries

import (
	"context"

	"acacia-booking/internal/infra"
	"acacia-booking/internal/pkg/errs"
	"acacia-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type RoomBookingQueries interface {
	// GetByID returns the booking. Users may read their own bookings only;
	// staff may read any.
	GetByID(ctx context.Context, actor shared.Principal, id uuid.UUID) (*RoomBookingView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*RoomBookingView, error)
	// ListAll is the staff dashboard feed, ordered by check-in descending.
	ListAll(ctx context.Context) ([]*RoomBookingView, error)
}

type RoomBookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RoomBookingView, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*RoomBookingView, error)
	FindAll(ctx context.Context) ([]*RoomBookingView, error)
}

type roomBookingQueriesImpl struct {
	store RoomBookingReadStore
}

func NewRoomBookingQueries(store RoomBookingReadStore) RoomBookingQueries {
	return &roomBookingQueriesImpl{store: store}
}

func (q *roomBookingQueriesImpl) GetByID(ctx context.Context, actor shared.Principal, id uuid.UUID) (*RoomBookingView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBookingNotFound
		}
		return nil, err
	}

	if !actor.IsStaff() && view.UserID != actor.ID {
		// Hidden rather than forbidden so booking IDs are not probeable
		return nil, errs.ErrBookingNotFound
	}

	return view, nil
}

func (q *roomBookingQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*RoomBookingView, error) {
	return q.store.FindByUserID(ctx, userID)
}

func (q *roomBookingQueriesImpl) ListAll(ctx context.Context) ([]*RoomBookingView, error) {
	return q.store.FindAll(ctx)
}

package queries

import (
	"context"
	"time"

	"acacia-booking/internal/domain/booking"
	"acacia-booking/internal/infra"
	"acacia-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

type RoomQueries interface {
	// List returns every room ordered by room number.
	List(ctx context.Context) ([]*RoomView, error)
	// SearchAvailable returns rooms with no active booking overlapping the
	// stay range. Same predicate as booking-creation validation.
	SearchAvailable(ctx context.Context, stay booking.StayRange) ([]*RoomView, error)
	// IsOccupiedOn answers the point-in-time variant: whether any active
	// booking's range includes the date, inclusive on both ends.
	IsOccupiedOn(ctx context.Context, roomID uuid.UUID, date time.Time) (bool, error)
}

type RoomReadStore interface {
	FindAll(ctx context.Context) ([]*RoomView, error)
	FindAvailableBetween(ctx context.Context, checkIn, checkOut time.Time) ([]*RoomView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*RoomView, error)
	HasActiveBookingOn(ctx context.Context, roomID uuid.UUID, date time.Time) (bool, error)
}

type roomQueriesImpl struct {
	store RoomReadStore
}

func NewRoomQueries(store RoomReadStore) RoomQueries {
	return &roomQueriesImpl{store: store}
}

func (q *roomQueriesImpl) List(ctx context.Context) ([]*RoomView, error) {
	return q.store.FindAll(ctx)
}

func (q *roomQueriesImpl) SearchAvailable(ctx context.Context, stay booking.StayRange) ([]*RoomView, error) {
	return q.store.FindAvailableBetween(ctx, stay.CheckIn(), stay.CheckOut())
}

func (q *roomQueriesImpl) IsOccupiedOn(ctx context.Context, roomID uuid.UUID, date time.Time) (bool, error) {
	if _, err := q.store.FindByID(ctx, roomID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return false, errs.ErrRoomNotFound
		}
		return false, err
	}
	return q.store.HasActiveBookingOn(ctx, roomID, date)
}

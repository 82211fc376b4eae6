package readstore

import (
	"context"

	"acacia-booking/internal/infra"
	"acacia-booking/internal/infra/db"
	"acacia-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const eventBookingColumns = `id, user_id, event_name, slot, customer_name, email, phone, date, attendees, message, is_canceled, created_at`

type EventBookingReadStore struct {
	db db.DBTX
}

func NewEventBookingReadStore(dbtx db.DBTX) *EventBookingReadStore {
	return &EventBookingReadStore{db: dbtx}
}

func (s *EventBookingReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.EventBookingView, error) {
	const query = `
		SELECT ` + eventBookingColumns + `
		FROM event_bookings
		WHERE user_id = $1
		ORDER BY date DESC`

	rows, err := s.db.Query(ctx, query, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find event bookings by user", err)
	}
	defer rows.Close()

	return scanEventBookings(rows)
}

func (s *EventBookingReadStore) FindAll(ctx context.Context) ([]*queries.EventBookingView, error) {
	const query = `
		SELECT ` + eventBookingColumns + `
		FROM event_bookings
		ORDER BY date DESC`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list event bookings", err)
	}
	defer rows.Close()

	return scanEventBookings(rows)
}

func scanEventBookings(rows pgx.Rows) ([]*queries.EventBookingView, error) {
	var result []*queries.EventBookingView
	for rows.Next() {
		var view queries.EventBookingView
		err := rows.Scan(
			&view.ID, &view.UserID, &view.EventName, &view.Slot,
			&view.CustomerName, &view.Email, &view.Phone, &view.Date,
			&view.Attendees, &view.Message, &view.IsCanceled, &view.CreatedAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan event booking row", err)
		}
		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read event booking rows", err)
	}
	return result, nil
}

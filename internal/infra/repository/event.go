package repository

import (
	"context"

	"acacia-booking/internal/domain/event"
	"acacia-booking/internal/infra"
	"acacia-booking/internal/infra/db"

	"github.com/google/uuid"
)

type EventBookingRepository struct{}

func NewEventBookingRepository() *EventBookingRepository {
	return &EventBookingRepository{}
}

func (r *EventBookingRepository) Create(ctx context.Context, tx db.DBTX, b *event.Booking) (uuid.UUID, error) {
	const query = `
		INSERT INTO event_bookings (
			id, user_id, event_name, slot, customer_name, email, phone,
			date, attendees, message, is_canceled
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`

	var id uuid.UUID
	err := tx.QueryRow(ctx, query,
		b.ID(), b.UserID(), b.EventName(), b.Slot(),
		b.CustomerName(), b.Email(), b.Phone(),
		b.Date(), b.Attendees(), b.Message(), b.IsCanceled(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create event booking", err)
	}

	return id, nil
}

func (r *EventBookingRepository) MarkCanceled(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	const query = `UPDATE event_bookings SET is_canceled = TRUE WHERE id = $1 AND is_canceled = FALSE`

	tag, err := tx.Exec(ctx, query, id)
	if err != nil {
		return infra.WrapRepoErr("failed to cancel event booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("event booking absent or already canceled", nil, infra.KindNotFound)
	}

	return nil
}

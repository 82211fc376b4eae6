package repository

import (
	"context"

	"acacia-booking/internal/domain/ticket"
	"acacia-booking/internal/infra"
	"acacia-booking/internal/infra/db"

	"github.com/google/uuid"
)

type TicketRepository struct{}

func NewTicketRepository() *TicketRepository {
	return &TicketRepository{}
}

func (r *TicketRepository) Create(ctx context.Context, tx db.DBTX, t *ticket.Ticket) (uuid.UUID, error) {
	const query = `
		INSERT INTO tickets (
			id, user_id, booking_type, room_booking_id, reservation_id,
			event_booking_id, ticket_number, pdf_path
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	var id uuid.UUID
	err := tx.QueryRow(ctx, query,
		t.ID(), t.UserID(), string(t.Kind()),
		t.RoomBookingID(), t.ReservationID(), t.EventID(),
		t.TicketNumber(), t.PDFPath(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create ticket", err)
	}

	return id, nil
}

// SetPDFPath is the only permitted mutation: a one-time artifact assignment.
func (r *TicketRepository) SetPDFPath(ctx context.Context, tx db.DBTX, id uuid.UUID, path string) error {
	const query = `UPDATE tickets SET pdf_path = $2 WHERE id = $1 AND pdf_path IS NULL`

	tag, err := tx.Exec(ctx, query, id, path)
	if err != nil {
		return infra.WrapRepoErr("failed to set ticket pdf path", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("ticket absent or artifact already set", nil, infra.KindNotFound)
	}

	return nil
}

package readstore

import (
	"context"

	"acacia-booking/internal/infra"
	"acacia-booking/internal/infra/db"
	"acacia-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type TicketReadStore struct {
	db db.DBTX
}

func NewTicketReadStore(dbtx db.DBTX) *TicketReadStore {
	return &TicketReadStore{db: dbtx}
}

func (s *TicketReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.TicketView, error) {
	const query = `
		SELECT id, user_id, booking_type, room_booking_id, reservation_id,
		       event_booking_id, ticket_number, pdf_path, created_at
		FROM tickets
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := s.db.Query(ctx, query, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find tickets by user", err)
	}
	defer rows.Close()

	var result []*queries.TicketView
	for rows.Next() {
		var view queries.TicketView
		err := rows.Scan(
			&view.ID, &view.UserID, &view.BookingType,
			&view.RoomBookingID, &view.ReservationID, &view.EventID,
			&view.TicketNumber, &view.PDFPath, &view.CreatedAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan ticket row", err)
		}
		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read ticket rows", err)
	}

	return result, nil
}

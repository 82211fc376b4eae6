package readstore

import (
	"context"

	"acacia-booking/internal/infra"
	"acacia-booking/internal/infra/db"
	"acacia-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const roomBookingColumns = `
	rb.id, rb.user_id, rb.room_id, r.room_number,
	rb.customer_name, rb.email, rb.phone, rb.age, rb.id_number,
	rb.party_size, rb.check_in, rb.check_out, rb.message, rb.is_cleared, rb.created_at`

type RoomBookingReadStore struct {
	db db.DBTX
}

func NewRoomBookingReadStore(dbtx db.DBTX) *RoomBookingReadStore {
	return &RoomBookingReadStore{db: dbtx}
}

func (s *RoomBookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RoomBookingView, error) {
	const query = `
		SELECT ` + roomBookingColumns + `
		FROM room_bookings rb
		JOIN rooms r ON r.id = rb.room_id
		WHERE rb.id = $1`

	view, err := scanRoomBooking(s.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find room booking by ID", err)
	}

	return view, nil
}

func (s *RoomBookingReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.RoomBookingView, error) {
	const query = `
		SELECT ` + roomBookingColumns + `
		FROM room_bookings rb
		JOIN rooms r ON r.id = rb.room_id
		WHERE rb.user_id = $1
		ORDER BY rb.check_in DESC`

	rows, err := s.db.Query(ctx, query, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find room bookings by user", err)
	}
	defer rows.Close()

	return scanRoomBookings(rows)
}

func (s *RoomBookingReadStore) FindAll(ctx context.Context) ([]*queries.RoomBookingView, error) {
	const query = `
		SELECT ` + roomBookingColumns + `
		FROM room_bookings rb
		JOIN rooms r ON r.id = rb.room_id
		ORDER BY rb.check_in DESC`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list room bookings", err)
	}
	defer rows.Close()

	return scanRoomBookings(rows)
}

func scanRoomBookings(rows pgx.Rows) ([]*queries.RoomBookingView, error) {
	var result []*queries.RoomBookingView
	for rows.Next() {
		view, err := scanRoomBooking(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan room booking row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read room booking rows", err)
	}
	return result, nil
}

func scanRoomBooking(row pgx.Row) (*queries.RoomBookingView, error) {
	var view queries.RoomBookingView
	err := row.Scan(
		&view.ID, &view.UserID, &view.RoomID, &view.RoomNumber,
		&view.CustomerName, &view.Email, &view.Phone, &view.Age, &view.IDNumber,
		&view.PartySize, &view.CheckIn, &view.CheckOut, &view.Message,
		&view.IsCleared, &view.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &view, nil
}

package readstore

import (
	"context"
	"time"

	"acacia-booking/internal/infra"
	"acacia-booking/internal/infra/db"
	"acacia-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const roomColumns = `id, room_number, capacity, price_cents, description, image_path, available, is_occupied, created_at, updated_at`

type RoomReadStore struct {
	db db.DBTX
}

func NewRoomReadStore(dbtx db.DBTX) *RoomReadStore {
	return &RoomReadStore{db: dbtx}
}

func (s *RoomReadStore) FindAll(ctx context.Context) ([]*queries.RoomView, error) {
	const query = `SELECT ` + roomColumns + ` FROM rooms ORDER BY room_number`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rooms", err)
	}
	defer rows.Close()

	return scanRooms(rows)
}

// FindAvailableBetween excludes rooms with ANY active booking overlapping the
// closed interval. The overlap predicate is shared with booking validation.
func (s *RoomReadStore) FindAvailableBetween(ctx context.Context, checkIn, checkOut time.Time) ([]*queries.RoomView, error) {
	const query = `
		SELECT ` + roomColumns + `
		FROM rooms r
		WHERE NOT EXISTS (
			SELECT 1 FROM room_bookings rb
			WHERE rb.room_id = r.id AND ` + infra.ActiveStayOverlap + `
		)
		ORDER BY room_number`

	args := pgx.NamedArgs{
		"check_in":  checkIn,
		"check_out": checkOut,
	}

	rows, err := s.db.Query(ctx, query, args)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search available rooms", err)
	}
	defer rows.Close()

	return scanRooms(rows)
}

func (s *RoomReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RoomView, error) {
	const query = `SELECT ` + roomColumns + ` FROM rooms WHERE id = $1`

	view, err := scanRoom(s.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find room by ID", err)
	}

	return view, nil
}

func (s *RoomReadStore) HasActiveBookingOn(ctx context.Context, roomID uuid.UUID, date time.Time) (bool, error) {
	// Point-in-time occupancy: the date query degenerates to a single-day range
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM room_bookings rb
			WHERE rb.room_id = @room_id AND ` + infra.ActiveStayOverlap + `
		)`

	args := pgx.NamedArgs{
		"room_id":   roomID,
		"check_in":  date,
		"check_out": date,
	}

	var occupied bool
	if err := s.db.QueryRow(ctx, query, args).Scan(&occupied); err != nil {
		return false, infra.WrapRepoErr("failed to check room occupancy", err)
	}

	return occupied, nil
}

func scanRooms(rows pgx.Rows) ([]*queries.RoomView, error) {
	var result []*queries.RoomView
	for rows.Next() {
		view, err := scanRoom(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan room row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read room rows", err)
	}
	return result, nil
}

func scanRoom(row pgx.Row) (*queries.RoomView, error) {
	var view queries.RoomView
	err := row.Scan(
		&view.ID, &view.RoomNumber, &view.Capacity, &view.PriceCents,
		&view.Description, &view.ImagePath, &view.Available, &view.IsOccupied,
		&view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &view, nil
}

package repository

import (
	"context"
	"errors"

	"acacia-booking/internal/domain/booking"
	"acacia-booking/internal/infra"
	"acacia-booking/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type RoomBookingRepository struct{}

func NewRoomBookingRepository() *RoomBookingRepository {
	return &RoomBookingRepository{}
}

func (r *RoomBookingRepository) Create(ctx context.Context, tx db.DBTX, b *booking.RoomBooking) (uuid.UUID, error) {
	const query = `
		INSERT INTO room_bookings (
			id, user_id, room_id, customer_name, email, phone, age, id_number,
			party_size, check_in, check_out, message, is_cleared
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id`

	guest := b.Guest()
	var id uuid.UUID
	err := tx.QueryRow(ctx, query,
		b.ID(), b.UserID(), b.RoomID(),
		guest.Name(), guest.Email(), guest.Phone(), guest.Age(), guest.IDNumber(),
		b.PartySize(), b.Stay().CheckIn(), b.Stay().CheckOut(), b.Message(), b.IsCleared(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create room booking", err)
	}

	return id, nil
}

func (r *RoomBookingRepository) HasActiveConflict(ctx context.Context, tx db.DBTX, roomID uuid.UUID, stay booking.StayRange) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM room_bookings rb
			WHERE rb.room_id = @room_id AND ` + infra.ActiveStayOverlap + `
		)`

	args := pgx.NamedArgs{
		"room_id":   roomID,
		"check_in":  stay.CheckIn(),
		"check_out": stay.CheckOut(),
	}

	var conflict bool
	if err := tx.QueryRow(ctx, query, args).Scan(&conflict); err != nil {
		return false, infra.WrapRepoErr("failed to check booking conflict", err)
	}

	return conflict, nil
}

func (r *RoomBookingRepository) MarkCleared(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	const query = `UPDATE room_bookings SET is_cleared = TRUE WHERE id = $1 AND is_cleared = FALSE`

	tag, err := tx.Exec(ctx, query, id)
	if err != nil {
		return infra.WrapRepoErr("failed to clear booking", err)
	}
	if tag.RowsAffected() == 0 {
		// Zero rows is ambiguous: the booking is absent, or a concurrent
		// clear won the race. Re-read to tell the two apart.
		var cleared bool
		err := tx.QueryRow(ctx, `SELECT is_cleared FROM room_bookings WHERE id = $1`, id).Scan(&cleared)
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		case err != nil:
			return infra.WrapRepoErr("failed to clear booking", err)
		case cleared:
			return booking.ErrAlreadyCleared
		}
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}

	return nil
}

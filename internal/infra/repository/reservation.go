package repository

import (
	"context"

	"acacia-booking/internal/domain/reservation"
	"acacia-booking/internal/infra"
	"acacia-booking/internal/infra/db"

	"github.com/google/uuid"
)

type ReservationRepository struct{}

func NewReservationRepository() *ReservationRepository {
	return &ReservationRepository{}
}

func (r *ReservationRepository) Create(ctx context.Context, tx db.DBTX, res *reservation.Reservation) (uuid.UUID, error) {
	const query = `
		INSERT INTO reservations (id, user_id, name, email, phone, party_size, date, time, message)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`

	var id uuid.UUID
	err := tx.QueryRow(ctx, query,
		res.ID(), res.UserID(), res.Name(), res.Email(), res.Phone(),
		res.PartySize(), res.Date(), res.TimeOfDay(), res.Message(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create reservation", err)
	}

	return id, nil
}

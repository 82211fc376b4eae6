package readstore

import (
	"context"

	"acacia-booking/internal/infra"
	"acacia-booking/internal/infra/db"
	"acacia-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const reservationColumns = `id, user_id, name, email, phone, party_size, date, time, message, created_at`

type ReservationReadStore struct {
	db db.DBTX
}

func NewReservationReadStore(dbtx db.DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: dbtx}
}

func (s *ReservationReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.ReservationView, error) {
	const query = `
		SELECT ` + reservationColumns + `
		FROM reservations
		WHERE user_id = $1
		ORDER BY date DESC, time DESC`

	rows, err := s.db.Query(ctx, query, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservations by user", err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

func (s *ReservationReadStore) FindAll(ctx context.Context) ([]*queries.ReservationView, error) {
	const query = `
		SELECT ` + reservationColumns + `
		FROM reservations
		ORDER BY date DESC, time DESC`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

func scanReservations(rows pgx.Rows) ([]*queries.ReservationView, error) {
	var result []*queries.ReservationView
	for rows.Next() {
		var view queries.ReservationView
		err := rows.Scan(
			&view.ID, &view.UserID, &view.Name, &view.Email, &view.Phone,
			&view.PartySize, &view.Date, &view.Time, &view.Message, &view.CreatedAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation row", err)
		}
		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read reservation rows", err)
	}
	return result, nil
}

package repository

import (
	"context"
	"time"

	"acacia-booking/internal/domain/room"
	"acacia-booking/internal/infra"
	"acacia-booking/internal/infra/db"

	"github.com/google/uuid"
)

type RoomRepository struct{}

func NewRoomRepository() *RoomRepository {
	return &RoomRepository{}
}

func (r *RoomRepository) Create(ctx context.Context, tx db.DBTX, rm *room.Room) (uuid.UUID, error) {
	const query = `
		INSERT INTO rooms (id, room_number, capacity, price_cents, description, image_path, available, is_occupied)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	var id uuid.UUID
	err := tx.QueryRow(ctx, query,
		rm.ID(), rm.RoomNumber(), rm.Capacity(), rm.PriceCents(),
		rm.Description(), rm.ImagePath(), rm.Available(), rm.IsOccupied(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create room", err)
	}

	return id, nil
}

// LockByID acquires FOR UPDATE on the room row and hydrates the aggregate.
// Every conflict-check-then-insert and occupancy mutation runs behind this
// lock so concurrent operations on the same room are serialized.
func (r *RoomRepository) LockByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*room.Room, error) {
	const query = `
		SELECT id, room_number, capacity, price_cents, description, image_path,
		       available, is_occupied, created_at, updated_at
		FROM rooms
		WHERE id = $1
		FOR UPDATE`

	var (
		roomID                             uuid.UUID
		roomNumber, description, imagePath string
		capacity                           int
		priceCents                         int64
		available, isOccupied              bool
		createdAt, updatedAt               time.Time
	)
	err := tx.QueryRow(ctx, query, id).Scan(
		&roomID, &roomNumber, &capacity, &priceCents, &description, &imagePath,
		&available, &isOccupied, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock room", err)
	}

	return room.ReconstructRoom(
		roomID, roomNumber, capacity, priceCents, description, imagePath,
		available, isOccupied, createdAt, updatedAt,
	), nil
}

func (r *RoomRepository) ExistsByNumber(ctx context.Context, tx db.DBTX, roomNumber string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM rooms WHERE room_number = $1)`

	var exists bool
	if err := tx.QueryRow(ctx, query, roomNumber).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check room number", err)
	}

	return exists, nil
}

func (r *RoomRepository) SetOccupied(ctx context.Context, tx db.DBTX, id uuid.UUID, occupied bool) error {
	const query = `UPDATE rooms SET is_occupied = $2, updated_at = now() WHERE id = $1`

	tag, err := tx.Exec(ctx, query, id, occupied)
	if err != nil {
		return infra.WrapRepoErr("failed to update room occupancy", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}

	return nil
}

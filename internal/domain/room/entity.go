package room

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyRoomNumber = errors.New("room number is required")
	ErrInvalidCapacity = errors.New("capacity must be positive")
	ErrNegativePrice   = errors.New("price cannot be negative")
)

// Room is an inventory record. `available` is the administrative on/off
// switch; `isOccupied` is the cached current-occupancy state mutated by
// staff toggles and booking clears.
type Room struct {
	id          uuid.UUID
	roomNumber  string
	capacity    int
	priceCents  int64
	description string
	imagePath   string
	available   bool
	isOccupied  bool
	createdAt   time.Time
	updatedAt   time.Time
}

func NewRoom(roomNumber string, capacity int, priceCents int64, description, imagePath string) (*Room, error) {
	roomNumber = strings.TrimSpace(roomNumber)
	if roomNumber == "" {
		return nil, ErrEmptyRoomNumber
	}
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	if priceCents < 0 {
		return nil, ErrNegativePrice
	}

	return &Room{
		id:          uuid.New(),
		roomNumber:  roomNumber,
		capacity:    capacity,
		priceCents:  priceCents,
		description: description,
		imagePath:   imagePath,
		available:   true,
		isOccupied:  false,
	}, nil
}

func ReconstructRoom(
	id uuid.UUID,
	roomNumber string,
	capacity int,
	priceCents int64,
	description, imagePath string,
	available, isOccupied bool,
	createdAt, updatedAt time.Time,
) *Room {
	return &Room{
		id:          id,
		roomNumber:  roomNumber,
		capacity:    capacity,
		priceCents:  priceCents,
		description: description,
		imagePath:   imagePath,
		available:   available,
		isOccupied:  isOccupied,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (r *Room) ToggleOccupancy() {
	r.isOccupied = !r.isOccupied
}

func (r *Room) Free() {
	r.isOccupied = false
}

func (r *Room) ID() uuid.UUID       { return r.id }
func (r *Room) RoomNumber() string  { return r.roomNumber }
func (r *Room) Capacity() int       { return r.capacity }
func (r *Room) PriceCents() int64   { return r.priceCents }
func (r *Room) Description() string { return r.description }
func (r *Room) ImagePath() string   { return r.imagePath }
func (r *Room) Available() bool     { return r.available }
func (r *Room) IsOccupied() bool    { return r.isOccupied }
func (r *Room) CreatedAt() time.Time { return r.createdAt }
func (r *Room) UpdatedAt() time.Time { return r.updatedAt }

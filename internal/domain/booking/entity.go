package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidPartySize = errors.New("party size must be positive")
	ErrAlreadyCleared   = errors.New("booking is already cleared")
)

// RoomBooking is active from creation; the only transition is the one-way
// staff-driven clear (checkout). There is no pending/confirmed distinction.
type RoomBooking struct {
	id        uuid.UUID
	userID    uuid.UUID
	roomID    uuid.UUID
	guest     Guest
	partySize int
	stay      StayRange
	message   string
	isCleared bool
	createdAt time.Time
}

func NewRoomBooking(
	userID, roomID uuid.UUID,
	guest Guest,
	partySize int,
	stay StayRange,
	message string,
) (*RoomBooking, error) {
	if partySize <= 0 {
		return nil, ErrInvalidPartySize
	}

	return &RoomBooking{
		id:        uuid.New(),
		userID:    userID,
		roomID:    roomID,
		guest:     guest,
		partySize: partySize,
		stay:      stay,
		message:   message,
		isCleared: false,
	}, nil
}

func ReconstructRoomBooking(
	id, userID, roomID uuid.UUID,
	guest Guest,
	partySize int,
	stay StayRange,
	message string,
	isCleared bool,
	createdAt time.Time,
) *RoomBooking {
	return &RoomBooking{
		id:        id,
		userID:    userID,
		roomID:    roomID,
		guest:     guest,
		partySize: partySize,
		stay:      stay,
		message:   message,
		isCleared: isCleared,
		createdAt: createdAt,
	}
}

// Clear marks the booking as checked out. The transition is irreversible;
// a second clear fails so callers can surface the double-clear to staff.
func (b *RoomBooking) Clear() error {
	if b.isCleared {
		return ErrAlreadyCleared
	}
	b.isCleared = true
	return nil
}

func (b *RoomBooking) IsActive() bool {
	return !b.isCleared
}

func (b *RoomBooking) ConflictsWith(other *RoomBooking) bool {
	return b.roomID == other.roomID && b.IsActive() && other.IsActive() && b.stay.Overlaps(other.stay)
}

func (b *RoomBooking) ID() uuid.UUID        { return b.id }
func (b *RoomBooking) UserID() uuid.UUID    { return b.userID }
func (b *RoomBooking) RoomID() uuid.UUID    { return b.roomID }
func (b *RoomBooking) Guest() Guest         { return b.guest }
func (b *RoomBooking) PartySize() int       { return b.partySize }
func (b *RoomBooking) Stay() StayRange      { return b.stay }
func (b *RoomBooking) Message() string      { return b.message }
func (b *RoomBooking) IsCleared() bool      { return b.isCleared }
func (b *RoomBooking) CreatedAt() time.Time { return b.createdAt }

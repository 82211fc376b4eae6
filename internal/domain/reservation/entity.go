package reservation

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrMissingName      = errors.New("name is required")
	ErrMissingPhone     = errors.New("phone is required")
	ErrMissingEmail     = errors.New("email is required")
	ErrInvalidPartySize = errors.New("party size must be positive")
	ErrInvalidTime      = errors.New("invalid time format, expected HH:MM")
)

const timeLayout = "15:04"

// Reservation is a table reservation. Tables are an unconstrained capacity
// resource, so no conflict checking applies.
type Reservation struct {
	id        uuid.UUID
	userID    uuid.UUID
	name      string
	email     string
	phone     string
	partySize int
	date      time.Time
	timeOfDay string
	message   string
	createdAt time.Time
}

func NewReservation(
	userID uuid.UUID,
	name, email, phone string,
	partySize int,
	date time.Time,
	timeOfDay, message string,
) (*Reservation, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	phone = strings.TrimSpace(phone)

	switch {
	case name == "":
		return nil, ErrMissingName
	case email == "":
		return nil, ErrMissingEmail
	case phone == "":
		return nil, ErrMissingPhone
	case partySize <= 0:
		return nil, ErrInvalidPartySize
	}

	if _, err := time.Parse(timeLayout, timeOfDay); err != nil {
		return nil, ErrInvalidTime
	}

	return &Reservation{
		id:        uuid.New(),
		userID:    userID,
		name:      name,
		email:     email,
		phone:     phone,
		partySize: partySize,
		date:      date,
		timeOfDay: timeOfDay,
		message:   message,
	}, nil
}

func ReconstructReservation(
	id, userID uuid.UUID,
	name, email, phone string,
	partySize int,
	date time.Time,
	timeOfDay, message string,
	createdAt time.Time,
) *Reservation {
	return &Reservation{
		id:        id,
		userID:    userID,
		name:      name,
		email:     email,
		phone:     phone,
		partySize: partySize,
		date:      date,
		timeOfDay: timeOfDay,
		message:   message,
		createdAt: createdAt,
	}
}

func (r *Reservation) ID() uuid.UUID        { return r.id }
func (r *Reservation) UserID() uuid.UUID    { return r.userID }
func (r *Reservation) Name() string         { return r.name }
func (r *Reservation) Email() string        { return r.email }
func (r *Reservation) Phone() string        { return r.phone }
func (r *Reservation) PartySize() int       { return r.partySize }
func (r *Reservation) Date() time.Time      { return r.date }
func (r *Reservation) TimeOfDay() string    { return r.timeOfDay }
func (r *Reservation) Message() string      { return r.message }
func (r *Reservation) CreatedAt() time.Time { return r.createdAt }

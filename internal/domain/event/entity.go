package event

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrMissingName      = errors.New("customer name is required")
	ErrMissingEmail     = errors.New("customer email is required")
	ErrMissingPhone     = errors.New("customer phone is required")
	ErrInvalidAttendees = errors.New("attendee count must be positive")
	ErrAlreadyCanceled  = errors.New("event booking is already canceled")
)

// Booking for a venue event. The owning user and the event slot are
// optional: walk-in event bookings are captured by staff without an account.
type Booking struct {
	id           uuid.UUID
	userID       *uuid.UUID
	eventName    string
	slot         string
	customerName string
	email        string
	phone        string
	date         time.Time
	attendees    int
	message      string
	isCanceled   bool
	createdAt    time.Time
}

func NewBooking(
	userID *uuid.UUID,
	eventName, slot string,
	customerName, email, phone string,
	date time.Time,
	attendees int,
	message string,
) (*Booking, error) {
	customerName = strings.TrimSpace(customerName)
	email = strings.TrimSpace(email)
	phone = strings.TrimSpace(phone)

	switch {
	case customerName == "":
		return nil, ErrMissingName
	case email == "":
		return nil, ErrMissingEmail
	case phone == "":
		return nil, ErrMissingPhone
	}

	if attendees == 0 {
		attendees = 1
	}
	if attendees < 0 {
		return nil, ErrInvalidAttendees
	}

	return &Booking{
		id:           uuid.New(),
		userID:       userID,
		eventName:    strings.TrimSpace(eventName),
		slot:         strings.TrimSpace(slot),
		customerName: customerName,
		email:        email,
		phone:        phone,
		date:         date,
		attendees:    attendees,
		message:      message,
		isCanceled:   false,
	}, nil
}

func ReconstructBooking(
	id uuid.UUID,
	userID *uuid.UUID,
	eventName, slot string,
	customerName, email, phone string,
	date time.Time,
	attendees int,
	message string,
	isCanceled bool,
	createdAt time.Time,
) *Booking {
	return &Booking{
		id:           id,
		userID:       userID,
		eventName:    eventName,
		slot:         slot,
		customerName: customerName,
		email:        email,
		phone:        phone,
		date:         date,
		attendees:    attendees,
		message:      message,
		isCanceled:   isCanceled,
		createdAt:    createdAt,
	}
}

// Cancel is one-way, mirroring the clear transition on room bookings.
func (b *Booking) Cancel() error {
	if b.isCanceled {
		return ErrAlreadyCanceled
	}
	b.isCanceled = true
	return nil
}

func (b *Booking) ID() uuid.UUID        { return b.id }
func (b *Booking) UserID() *uuid.UUID   { return b.userID }
func (b *Booking) EventName() string    { return b.eventName }
func (b *Booking) Slot() string         { return b.slot }
func (b *Booking) CustomerName() string { return b.customerName }
func (b *Booking) Email() string        { return b.email }
func (b *Booking) Phone() string        { return b.phone }
func (b *Booking) Date() time.Time      { return b.date }
func (b *Booking) Attendees() int       { return b.attendees }
func (b *Booking) Message() string      { return b.message }
func (b *Booking) IsCanceled() bool     { return b.isCanceled }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }

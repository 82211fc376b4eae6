package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type RoomView struct {
	ID          uuid.UUID `json:"id"`
	RoomNumber  string    `json:"room_number"`
	Capacity    int       `json:"capacity"`
	PriceCents  int64     `json:"price_cents"`
	Description string    `json:"description"`
	ImagePath   string    `json:"image_path"`
	Available   bool      `json:"available"`
	IsOccupied  bool      `json:"is_occupied"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type RoomBookingView struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	RoomID       uuid.UUID `json:"room_id"`
	RoomNumber   string    `json:"room_number"`
	CustomerName string    `json:"customer_name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Age          int       `json:"age"`
	IDNumber     string    `json:"id_number"`
	PartySize    int       `json:"party_size"`
	CheckIn      time.Time `json:"check_in"`
	CheckOut     time.Time `json:"check_out"`
	Message      string    `json:"message"`
	IsCleared    bool      `json:"is_cleared"`
	CreatedAt    time.Time `json:"created_at"`
}

type ReservationView struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	PartySize int       `json:"party_size"`
	Date      time.Time `json:"date"`
	Time      string    `json:"time"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

type EventBookingView struct {
	ID           uuid.UUID  `json:"id"`
	UserID       *uuid.UUID `json:"user_id,omitempty"`
	EventName    string     `json:"event_name"`
	Slot         string     `json:"slot"`
	CustomerName string     `json:"customer_name"`
	Email        string     `json:"email"`
	Phone        string     `json:"phone"`
	Date         time.Time  `json:"date"`
	Attendees    int        `json:"attendees"`
	Message      string     `json:"message"`
	IsCanceled   bool       `json:"is_canceled"`
	CreatedAt    time.Time  `json:"created_at"`
}

type TicketView struct {
	ID            uuid.UUID  `json:"id"`
	UserID        uuid.UUID  `json:"user_id"`
	BookingType   string     `json:"booking_type"`
	RoomBookingID *uuid.UUID `json:"room_booking_id,omitempty"`
	ReservationID *uuid.UUID `json:"reservation_id,omitempty"`
	EventID       *uuid.UUID `json:"event_booking_id,omitempty"`
	TicketNumber  string     `json:"ticket_number"`
	PDFPath       *string    `json:"pdf_path,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

type AuthorizedUserView struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	IsActive  bool       `json:"is_active"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}

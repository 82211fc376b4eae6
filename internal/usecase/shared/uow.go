package shared

import (
	"context"

	"acacia-booking/internal/domain/booking"
	"acacia-booking/internal/domain/event"
	"acacia-booking/internal/domain/reservation"
	"acacia-booking/internal/domain/room"
	"acacia-booking/internal/domain/ticket"
	"acacia-booking/internal/domain/user"
	"acacia-booking/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Rooms() RoomRepository
	RoomBookings() RoomBookingRepository
	Reservations() ReservationRepository
	EventBookings() EventBookingRepository
	Tickets() TicketRepository
	Users() UserRepository
	Reads() CommandReads
	DB() db.DBTX
}

// CommandReads hydrates full aggregates for command-side state transitions,
// so the guard logic lives on the domain types rather than in the commands.
type CommandReads interface {
	RoomBookingByID(ctx context.Context, id uuid.UUID) (*booking.RoomBooking, error)
	EventBookingByID(ctx context.Context, id uuid.UUID) (*event.Booking, error)
}

type RoomRepository interface {
	Create(ctx context.Context, tx db.DBTX, r *room.Room) (uuid.UUID, error)
	// LockByID takes a row lock on the room so conflict-check-then-insert is
	// serialized per room within the enclosing transaction.
	LockByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*room.Room, error)
	ExistsByNumber(ctx context.Context, tx db.DBTX, roomNumber string) (bool, error)
	SetOccupied(ctx context.Context, tx db.DBTX, id uuid.UUID, occupied bool) error
}

type RoomBookingRepository interface {
	Create(ctx context.Context, tx db.DBTX, b *booking.RoomBooking) (uuid.UUID, error)
	// HasActiveConflict answers the shared closed-interval overlap predicate
	// against all non-cleared bookings of the room.
	HasActiveConflict(ctx context.Context, tx db.DBTX, roomID uuid.UUID, stay booking.StayRange) (bool, error)
	MarkCleared(ctx context.Context, tx db.DBTX, id uuid.UUID) error
}

type ReservationRepository interface {
	Create(ctx context.Context, tx db.DBTX, r *reservation.Reservation) (uuid.UUID, error)
}

type EventBookingRepository interface {
	Create(ctx context.Context, tx db.DBTX, b *event.Booking) (uuid.UUID, error)
	MarkCanceled(ctx context.Context, tx db.DBTX, id uuid.UUID) error
}

type TicketRepository interface {
	Create(ctx context.Context, tx db.DBTX, t *ticket.Ticket) (uuid.UUID, error)
	SetPDFPath(ctx context.Context, tx db.DBTX, id uuid.UUID, path string) error
}

type UserRepository interface {
	Create(ctx context.Context, tx db.DBTX, u *user.User) (uuid.UUID, error)
	UpdateLastLogin(ctx context.Context, tx db.DBTX, userID uuid.UUID) error
}

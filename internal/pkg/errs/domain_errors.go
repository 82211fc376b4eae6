package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Room inventory errors
	ErrRoomNotFound        = errors.New("room not found")
	ErrDuplicateRoomNumber = errors.New("duplicate room number")

	// Room booking errors
	ErrRoomUnavailable = errors.New("room unavailable for the selected dates")
	ErrBookingNotFound = errors.New("booking not found")
	ErrAlreadyCleared  = errors.New("booking already cleared")

	// Reservation / event booking errors
	ErrReservationNotFound  = errors.New("reservation not found")
	ErrEventBookingNotFound = errors.New("event booking not found")
	ErrAlreadyCanceled      = errors.New("event booking already canceled")

	// Ticket errors
	ErrTicketNotFound = errors.New("ticket not found")

	// Validation errors
	ErrValidation        = errors.New("validation error")
	ErrInvalidDateFormat = errors.New("invalid date format, expected YYYY-MM-DD")

	// Authorization errors
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)

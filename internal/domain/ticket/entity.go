package ticket

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrMissingBookingRef  = errors.New("ticket must reference exactly one booking")
	ErrAmbiguousReference = errors.New("ticket references more than one booking")
	ErrArtifactAlreadySet = errors.New("ticket artifact already assigned")
	ErrInvalidKind        = errors.New("invalid booking kind")
)

type Kind string

const (
	KindRoom        Kind = "room"
	KindReservation Kind = "reservation"
	KindEvent       Kind = "event"
)

func (k Kind) IsValid() bool {
	switch k {
	case KindRoom, KindReservation, KindEvent:
		return true
	default:
		return false
	}
}

func NewKind(s string) (Kind, error) {
	k := Kind(s)
	if !k.IsValid() {
		return "", ErrInvalidKind
	}
	return k, nil
}

// Ticket is a confirmation artifact bound one-to-one with a booking for its
// lifetime. It is created only after the underlying booking is persisted and
// is immutable except for the one-time PDF path assignment.
type Ticket struct {
	id            uuid.UUID
	userID        uuid.UUID
	kind          Kind
	roomBookingID *uuid.UUID
	reservationID *uuid.UUID
	eventID       *uuid.UUID
	ticketNumber  string
	pdfPath       *string
	createdAt     time.Time
}

func NewTicket(userID uuid.UUID, kind Kind, bookingRef uuid.UUID) (*Ticket, error) {
	if !kind.IsValid() {
		return nil, ErrInvalidKind
	}
	if bookingRef == uuid.Nil {
		return nil, ErrMissingBookingRef
	}

	t := &Ticket{
		id:           uuid.New(),
		userID:       userID,
		kind:         kind,
		ticketNumber: generateTicketNumber(),
	}

	ref := bookingRef
	switch kind {
	case KindRoom:
		t.roomBookingID = &ref
	case KindReservation:
		t.reservationID = &ref
	case KindEvent:
		t.eventID = &ref
	}

	return t, nil
}

func ReconstructTicket(
	id, userID uuid.UUID,
	kind Kind,
	roomBookingID, reservationID, eventID *uuid.UUID,
	ticketNumber string,
	pdfPath *string,
	createdAt time.Time,
) (*Ticket, error) {
	refs := 0
	for _, ref := range []*uuid.UUID{roomBookingID, reservationID, eventID} {
		if ref != nil {
			refs++
		}
	}
	if refs == 0 {
		return nil, ErrMissingBookingRef
	}
	if refs > 1 {
		return nil, ErrAmbiguousReference
	}

	return &Ticket{
		id:            id,
		userID:        userID,
		kind:          kind,
		roomBookingID: roomBookingID,
		reservationID: reservationID,
		eventID:       eventID,
		ticketNumber:  ticketNumber,
		pdfPath:       pdfPath,
		createdAt:     createdAt,
	}, nil
}

// AttachArtifact records the generated PDF reference. The assignment happens
// exactly once; any further mutation attempt fails.
func (t *Ticket) AttachArtifact(path string) error {
	if t.pdfPath != nil {
		return ErrArtifactAlreadySet
	}
	t.pdfPath = &path
	return nil
}

// BookingRef returns the single booking the ticket is bound to.
func (t *Ticket) BookingRef() uuid.UUID {
	switch t.kind {
	case KindRoom:
		return *t.roomBookingID
	case KindReservation:
		return *t.reservationID
	default:
		return *t.eventID
	}
}

func (t *Ticket) ID() uuid.UUID             { return t.id }
func (t *Ticket) UserID() uuid.UUID         { return t.userID }
func (t *Ticket) Kind() Kind                { return t.kind }
func (t *Ticket) RoomBookingID() *uuid.UUID { return t.roomBookingID }
func (t *Ticket) ReservationID() *uuid.UUID { return t.reservationID }
func (t *Ticket) EventID() *uuid.UUID       { return t.eventID }
func (t *Ticket) TicketNumber() string      { return t.ticketNumber }
func (t *Ticket) PDFPath() *string          { return t.pdfPath }
func (t *Ticket) CreatedAt() time.Time      { return t.createdAt }

func generateTicketNumber() string {
	var buf [5]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// uuid-derived fallback keeps the number unique if crypto/rand fails
		return "TKT-" + strings.ToUpper(uuid.NewString()[:10])
	}
	return "TKT-" + strings.ToUpper(hex.EncodeToString(buf[:]))
}

package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"acacia-booking/internal/domain/booking"
	"acacia-booking/internal/domain/ticket"
	"acacia-booking/internal/infra"
	"acacia-booking/internal/pkg/clock"
	"acacia-booking/internal/pkg/errs"
	"acacia-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateRoomBookingInput struct {
	RoomID       uuid.UUID
	CustomerName string
	Email        string
	Phone        string
	Age          int
	IDNumber     string
	PartySize    int
	CheckIn      string // YYYY-MM-DD
	CheckOut     string // YYYY-MM-DD
	Message      string
}

type RoomBookingCommands interface {
	// CreateBooking validates the stay, takes a per-room lock, checks for
	// overlapping active bookings and persists. A ticket event is published
	// after commit; publish failures never fail the booking.
	CreateBooking(ctx context.Context, actor shared.Principal, input CreateRoomBookingInput) (uuid.UUID, error)
	// ClearBooking is the staff checkout: marks the booking cleared and frees
	// the room in one transaction.
	ClearBooking(ctx context.Context, actor shared.Principal, bookingID uuid.UUID) error
}

type roomBookingCommandsImpl struct {
	uow       shared.UnitOfWork
	publisher BookingEventPublisher
	clock     clock.Clock
}

func NewRoomBookingCommands(uow shared.UnitOfWork, publisher BookingEventPublisher, clk clock.Clock) RoomBookingCommands {
	return &roomBookingCommandsImpl{
		uow:       uow,
		publisher: publisher,
		clock:     clk,
	}
}

func (r *roomBookingCommandsImpl) CreateBooking(ctx context.Context, actor shared.Principal, input CreateRoomBookingInput) (uuid.UUID, error) {
	stay, err := booking.ParseStayRange(input.CheckIn, input.CheckOut)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrValidation)
	}

	guest, err := booking.NewGuest(input.CustomerName, input.Email, input.Phone, input.Age, input.IDNumber)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrValidation)
	}

	newBooking, err := booking.NewRoomBooking(actor.ID, input.RoomID, guest, input.PartySize, stay, input.Message)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrValidation)
	}

	var (
		id         uuid.UUID
		roomNumber string
	)
	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// Row lock serializes concurrent bookings for the same room, so the
		// conflict check below cannot race with another insert.
		rm, err := tx.Rooms().LockByID(ctx, tx.DB(), input.RoomID)
		if err != nil {
			return err
		}
		if !rm.Available() {
			return errs.ErrRoomUnavailable
		}
		roomNumber = rm.RoomNumber()

		conflict, err := tx.RoomBookings().HasActiveConflict(ctx, tx.DB(), input.RoomID, stay)
		if err != nil {
			return err
		}
		if conflict {
			return errs.ErrRoomUnavailable
		}

		id, err = tx.RoomBookings().Create(ctx, tx.DB(), newBooking)
		return err
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return uuid.Nil, errs.ErrRoomNotFound
		}
		return uuid.Nil, err
	}

	r.publishCreated(ctx, BookingCreatedEvent{
		Kind:         string(ticket.KindRoom),
		BookingID:    id,
		UserID:       &actor.ID,
		CustomerName: guest.Name(),
		Email:        guest.Email(),
		Summary: fmt.Sprintf("Room %s, %s to %s",
			roomNumber, stay.CheckIn().Format("2006-01-02"), stay.CheckOut().Format("2006-01-02")),
		OccurredAt: r.clock.Now().UTC(),
	})

	return id, nil
}

func (r *roomBookingCommandsImpl) ClearBooking(ctx context.Context, actor shared.Principal, bookingID uuid.UUID) error {
	if !actor.IsStaff() {
		return errs.ErrForbidden
	}

	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Reads().RoomBookingByID(ctx, bookingID)
		if err != nil {
			return err
		}
		if err := b.Clear(); err != nil {
			return err
		}

		if err := tx.RoomBookings().MarkCleared(ctx, tx.DB(), b.ID()); err != nil {
			return err
		}

		rm, err := tx.Rooms().LockByID(ctx, tx.DB(), b.RoomID())
		if err != nil {
			return err
		}
		rm.Free()
		// Clear and room release are atomic: both commit or neither does
		return tx.Rooms().SetOccupied(ctx, tx.DB(), rm.ID(), rm.IsOccupied())
	})
	if err != nil {
		switch {
		// MarkCleared reports a lost clear-vs-clear race with the same
		// sentinel the aggregate uses for a sequential double clear.
		case errors.Is(err, booking.ErrAlreadyCleared):
			return errs.Mark(err, errs.ErrAlreadyCleared)
		case infra.IsKind(err, infra.KindNotFound):
			return errs.ErrBookingNotFound
		}
		return err
	}

	return nil
}

func (r *roomBookingCommandsImpl) publishCreated(ctx context.Context, event BookingCreatedEvent) {
	if err := r.publisher.Publish(ctx, event); err != nil {
		slog.Warn("failed to publish booking created event",
			"kind", event.Kind,
			"booking_id", event.BookingID,
			"error", err.Error())
	}
}

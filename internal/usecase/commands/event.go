package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"acacia-booking/internal/domain/booking"
	"acacia-booking/internal/domain/event"
	"acacia-booking/internal/domain/ticket"
	"acacia-booking/internal/infra"
	"acacia-booking/internal/pkg/clock"
	"acacia-booking/internal/pkg/errs"
	"acacia-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateEventBookingInput struct {
	EventName    string
	Slot         string
	CustomerName string
	Email        string
	Phone        string
	Date         string // YYYY-MM-DD
	Attendees    int
	Message      string
	// WalkIn detaches the booking from the acting staff account. Ignored for
	// non-staff callers.
	WalkIn bool
}

type EventCommands interface {
	CreateEventBooking(ctx context.Context, actor shared.Principal, input CreateEventBookingInput) (uuid.UUID, error)
	// CancelEventBooking is allowed for staff and for the booking owner.
	CancelEventBooking(ctx context.Context, actor shared.Principal, bookingID uuid.UUID) error
}

type eventCommandsImpl struct {
	uow       shared.UnitOfWork
	publisher BookingEventPublisher
	clock     clock.Clock
}

func NewEventCommands(uow shared.UnitOfWork, publisher BookingEventPublisher, clk clock.Clock) EventCommands {
	return &eventCommandsImpl{
		uow:       uow,
		publisher: publisher,
		clock:     clk,
	}
}

func (e *eventCommandsImpl) CreateEventBooking(ctx context.Context, actor shared.Principal, input CreateEventBookingInput) (uuid.UUID, error) {
	date, err := booking.ParseDate(input.Date)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrValidation)
	}

	ownerID := &actor.ID
	if input.WalkIn && actor.IsStaff() {
		ownerID = nil
	}

	b, err := event.NewBooking(
		ownerID, input.EventName, input.Slot,
		input.CustomerName, input.Email, input.Phone,
		date, input.Attendees, input.Message,
	)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrValidation)
	}

	var id uuid.UUID
	err = e.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, err = tx.EventBookings().Create(ctx, tx.DB(), b)
		return err
	})
	if err != nil {
		return uuid.Nil, err
	}

	ev := BookingCreatedEvent{
		Kind:         string(ticket.KindEvent),
		BookingID:    id,
		UserID:       ownerID,
		CustomerName: b.CustomerName(),
		Email:        b.Email(),
		Summary:      fmt.Sprintf("%s on %s, %d attending", b.EventName(), input.Date, b.Attendees()),
		OccurredAt:   e.clock.Now().UTC(),
	}
	if err := e.publisher.Publish(ctx, ev); err != nil {
		slog.Warn("failed to publish event booking created event",
			"booking_id", id,
			"error", err.Error())
	}

	return id, nil
}

func (e *eventCommandsImpl) CancelEventBooking(ctx context.Context, actor shared.Principal, bookingID uuid.UUID) error {
	err := e.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Reads().EventBookingByID(ctx, bookingID)
		if err != nil {
			return err
		}

		owned := b.UserID() != nil && *b.UserID() == actor.ID
		if !actor.IsStaff() && !owned {
			// Hidden rather than forbidden so booking IDs are not probeable
			return errs.ErrEventBookingNotFound
		}
		if err := b.Cancel(); err != nil {
			return err
		}

		return tx.EventBookings().MarkCanceled(ctx, tx.DB(), b.ID())
	})
	if err != nil {
		switch {
		case errors.Is(err, event.ErrAlreadyCanceled):
			return errs.Mark(err, errs.ErrAlreadyCanceled)
		case infra.IsKind(err, infra.KindNotFound):
			return errs.ErrEventBookingNotFound
		}
		return err
	}

	return nil
}

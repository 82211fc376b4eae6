package commands

import (
	"context"
	"fmt"
	"log/slog"

	"acacia-booking/internal/domain/booking"
	"acacia-booking/internal/domain/reservation"
	"acacia-booking/internal/domain/ticket"
	"acacia-booking/internal/pkg/clock"
	"acacia-booking/internal/pkg/errs"
	"acacia-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateReservationInput struct {
	Name      string
	Email     string
	Phone     string
	PartySize int
	Date      string // YYYY-MM-DD
	Time      string // HH:MM
	Message   string
}

type ReservationCommands interface {
	CreateReservation(ctx context.Context, actor shared.Principal, input CreateReservationInput) (uuid.UUID, error)
}

type reservationCommandsImpl struct {
	uow       shared.UnitOfWork
	publisher BookingEventPublisher
	clock     clock.Clock
}

func NewReservationCommands(uow shared.UnitOfWork, publisher BookingEventPublisher, clk clock.Clock) ReservationCommands {
	return &reservationCommandsImpl{
		uow:       uow,
		publisher: publisher,
		clock:     clk,
	}
}

func (r *reservationCommandsImpl) CreateReservation(ctx context.Context, actor shared.Principal, input CreateReservationInput) (uuid.UUID, error) {
	date, err := booking.ParseDate(input.Date)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrValidation)
	}

	res, err := reservation.NewReservation(
		actor.ID, input.Name, input.Email, input.Phone,
		input.PartySize, date, input.Time, input.Message,
	)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrValidation)
	}

	var id uuid.UUID
	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, err = tx.Reservations().Create(ctx, tx.DB(), res)
		return err
	})
	if err != nil {
		return uuid.Nil, err
	}

	event := BookingCreatedEvent{
		Kind:         string(ticket.KindReservation),
		BookingID:    id,
		UserID:       &actor.ID,
		CustomerName: res.Name(),
		Email:        res.Email(),
		Summary:      fmt.Sprintf("Table for %d on %s at %s", res.PartySize(), input.Date, res.TimeOfDay()),
		OccurredAt:   r.clock.Now().UTC(),
	}
	if err := r.publisher.Publish(ctx, event); err != nil {
		slog.Warn("failed to publish reservation created event",
			"booking_id", id,
			"error", err.Error())
	}

	return id, nil
}

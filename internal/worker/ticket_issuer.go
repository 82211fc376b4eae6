// Package worker runs the background ticket issuer. It consumes booking
// created events, persists a ticket, renders the confirmation artifact and
// notifies the customer. Issuance is best-effort: a failed message is
// rejected without requeue so a poison message cannot stall the queue.
package worker

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"acacia-booking/internal/domain/ticket"
	"acacia-booking/internal/infra/artifact"
	"acacia-booking/internal/infra/notifier"
	"acacia-booking/internal/pkg/clock"
	"acacia-booking/internal/pkg/config"
	"acacia-booking/internal/pkg/errs"
	"acacia-booking/internal/usecase/commands"
	"acacia-booking/internal/usecase/shared"

	amqp "github.com/rabbitmq/amqp091-go"
)

type ArtifactRenderer interface {
	Render(doc artifact.TicketDocument) (string, error)
}

type TicketNotifier interface {
	NotifyTicketIssued(ctx context.Context, notice notifier.TicketIssuedNotice) error
}

type TicketIssuer struct {
	cfg      config.BrokerConfig
	uow      shared.UnitOfWork
	renderer ArtifactRenderer
	notifier TicketNotifier
	clock    clock.Clock
}

func NewTicketIssuer(
	cfg config.BrokerConfig,
	uow shared.UnitOfWork,
	renderer ArtifactRenderer,
	tn TicketNotifier,
	clk clock.Clock,
) *TicketIssuer {
	return &TicketIssuer{
		cfg:      cfg,
		uow:      uow,
		renderer: renderer,
		notifier: tn,
		clock:    clk,
	}
}

// Run blocks until ctx is canceled, reconnecting to the broker with
// exponential backoff after any connection loss.
func (w *TicketIssuer) Run(ctx context.Context) error {
	backoff := time.Second
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		conn, err := amqp.Dial(w.cfg.URL)
		if err != nil {
			slog.Warn("ticket issuer failed to dial broker",
				"error", err.Error(),
				"retry_in", backoff.String())
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff):
			}
			if backoff < 30*time.Second {
				backoff *= 2
			}
			continue
		}
		backoff = time.Second

		if err := w.consumeLoop(ctx, conn); err != nil {
			slog.Warn("ticket issuer consume loop ended", "error", err.Error())
		}
		_ = conn.Close()
	}
}

func (w *TicketIssuer) consumeLoop(ctx context.Context, conn *amqp.Connection) error {
	ch, err := conn.Channel()
	if err != nil {
		return errs.Wrap(err, "failed to open channel")
	}
	defer func() { _ = ch.Close() }()

	if err := ch.Qos(10, 0, false); err != nil {
		return errs.Wrap(err, "failed to set QoS")
	}

	if _, err := ch.QueueDeclare(w.cfg.QueueName, true, false, false, false, nil); err != nil {
		return errs.Wrap(err, "failed to declare queue")
	}

	deliveries, err := ch.Consume(w.cfg.QueueName, "", false, false, false, false, nil)
	if err != nil {
		return errs.Wrap(err, "failed to start consuming")
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-deliveries:
			if !ok {
				return errs.New("deliveries channel closed")
			}
			if err := w.handleMessage(ctx, d.Body); err != nil {
				slog.Error("ticket issuance failed", "error", err.Error())
				_ = d.Nack(false, false) // no requeue, avoids tight redelivery loops
				continue
			}
			_ = d.Ack(false)
		}
	}
}

func (w *TicketIssuer) handleMessage(ctx context.Context, body []byte) error {
	var ev commands.BookingCreatedEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		return errs.Wrap(err, "failed to unmarshal booking event")
	}

	kind, err := ticket.NewKind(ev.Kind)
	if err != nil {
		return errs.Wrap(err, "failed to parse booking kind")
	}

	if ev.UserID == nil {
		// Walk-in bookings have no account to attach a ticket to
		slog.Info("skipping ticket for walk-in booking", "booking_id", ev.BookingID)
		return nil
	}

	t, err := ticket.NewTicket(*ev.UserID, kind, ev.BookingID)
	if err != nil {
		return errs.Wrap(err, "failed to build ticket")
	}

	err = w.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, err := tx.Tickets().Create(ctx, tx.DB(), t)
		return err
	})
	if err != nil {
		return errs.Wrap(err, "failed to persist ticket")
	}

	path, err := w.renderer.Render(artifact.TicketDocument{
		TicketNumber: t.TicketNumber(),
		Kind:         string(kind),
		CustomerName: ev.CustomerName,
		Email:        ev.Email,
		Summary:      ev.Summary,
		IssuedAt:     w.clock.Now().UTC(),
	})
	if err != nil {
		// The ticket row exists; only the artifact is missing
		slog.Warn("failed to render ticket artifact",
			"ticket_number", t.TicketNumber(),
			"error", err.Error())
	} else if err := t.AttachArtifact(path); err == nil {
		err = w.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Tickets().SetPDFPath(ctx, tx.DB(), t.ID(), path)
		})
		if err != nil {
			slog.Warn("failed to store ticket artifact path",
				"ticket_number", t.TicketNumber(),
				"error", err.Error())
		}
	}

	notice := notifier.TicketIssuedNotice{
		TicketNumber: t.TicketNumber(),
		Kind:         string(kind),
		Email:        ev.Email,
		CustomerName: ev.CustomerName,
		Summary:      ev.Summary,
	}
	if t.PDFPath() != nil {
		notice.PDFPath = *t.PDFPath()
	}
	if err := w.notifier.NotifyTicketIssued(ctx, notice); err != nil {
		slog.Warn("failed to notify ticket issued",
			"ticket_number", t.TicketNumber(),
			"error", err.Error())
	}

	return nil
}

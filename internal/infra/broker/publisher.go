// Package broker publishes booking events to RabbitMQ. Publish failures are
// returned to the caller, which logs and continues; ticket issuance is
// best-effort and never blocks the booking flow.
package broker

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"acacia-booking/internal/pkg/config"
	"acacia-booking/internal/pkg/errs"
	"acacia-booking/internal/usecase/commands"

	amqp "github.com/rabbitmq/amqp091-go"
)

type Publisher struct {
	cfg config.BrokerConfig

	mu   sync.Mutex
	conn *amqp.Connection
	ch   *amqp.Channel
}

func NewPublisher(cfg config.BrokerConfig) *Publisher {
	return &Publisher{cfg: cfg}
}

// ensureChannel lazily dials and re-dials after a dropped connection.
func (p *Publisher) ensureChannel() (*amqp.Channel, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ch != nil && !p.ch.IsClosed() {
		return p.ch, nil
	}

	if p.conn == nil || p.conn.IsClosed() {
		conn, err := amqp.Dial(p.cfg.URL)
		if err != nil {
			return nil, errs.Wrap(err, "failed to dial broker")
		}
		p.conn = conn
	}

	ch, err := p.conn.Channel()
	if err != nil {
		return nil, errs.Wrap(err, "failed to open broker channel")
	}

	// Durable queue so events survive broker restarts
	if _, err := ch.QueueDeclare(p.cfg.QueueName, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		return nil, errs.Wrap(err, "failed to declare queue")
	}

	p.ch = ch
	return ch, nil
}

func (p *Publisher) Publish(ctx context.Context, event commands.BookingCreatedEvent) error {
	ch, err := p.ensureChannel()
	if err != nil {
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		return errs.Wrap(err, "failed to marshal booking event")
	}

	err = ch.PublishWithContext(ctx,
		"",              // default exchange
		p.cfg.QueueName, // routing key = queue name
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now().UTC(),
			Body:         body,
		},
	)
	if err != nil {
		return errs.Wrap(err, "failed to publish booking event")
	}

	return nil
}

func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ch != nil {
		_ = p.ch.Close()
		p.ch = nil
	}
	if p.conn != nil {
		err := p.conn.Close()
		p.conn = nil
		return err
	}
	return nil
}

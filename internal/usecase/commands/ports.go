package commands

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// BookingCreatedEvent is published after a booking of any kind commits.
// The ticket issuer consumes it asynchronously.
type BookingCreatedEvent struct {
	Kind         string     `json:"kind"` // room | reservation | event
	BookingID    uuid.UUID  `json:"booking_id"`
	UserID       *uuid.UUID `json:"user_id,omitempty"`
	CustomerName string     `json:"customer_name"`
	Email        string     `json:"email"`
	Summary      string     `json:"summary"`
	OccurredAt   time.Time  `json:"occurred_at"`
}

type BookingEventPublisher interface {
	Publish(ctx context.Context, event BookingCreatedEvent) error
}

//go:build unit

package event_test

import (
	"testing"
	"time"

	"acacia-booking/internal/domain/event"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validBooking(t *testing.T, userID *uuid.UUID) *event.Booking {
	t.Helper()
	b, err := event.NewBooking(
		userID,
		"Jazz Night", "evening",
		"Jill Valentine", "jill@example.com", "+12025550142",
		time.Date(2026, 5, 8, 0, 0, 0, 0, time.UTC),
		3, "near the stage",
	)
	require.NoError(t, err)
	return b
}

func TestNewBooking(t *testing.T) {
	t.Run("valid booking with owner", func(t *testing.T) {
		userID := uuid.New()
		b := validBooking(t, &userID)

		require.NotNil(t, b.UserID())
		assert.Equal(t, userID, *b.UserID())
		assert.Equal(t, "Jazz Night", b.EventName())
		assert.Equal(t, 3, b.Attendees())
		assert.False(t, b.IsCanceled())
	})

	t.Run("walk-in booking has no owner", func(t *testing.T) {
		b := validBooking(t, nil)
		assert.Nil(t, b.UserID())
	})

	t.Run("zero attendees defaults to one", func(t *testing.T) {
		b, err := event.NewBooking(nil, "Jazz Night", "", "Jill Valentine", "jill@example.com", "+12025550142",
			time.Date(2026, 5, 8, 0, 0, 0, 0, time.UTC), 0, "")
		require.NoError(t, err)
		assert.Equal(t, 1, b.Attendees())
	})

	t.Run("negative attendees rejected", func(t *testing.T) {
		_, err := event.NewBooking(nil, "Jazz Night", "", "Jill Valentine", "jill@example.com", "+12025550142",
			time.Date(2026, 5, 8, 0, 0, 0, 0, time.UTC), -2, "")
		assert.ErrorIs(t, err, event.ErrInvalidAttendees)
	})

	cases := []struct {
		name         string
		customerName string
		email        string
		phone        string
		errIs        error
	}{
		{"missing customer name", " ", "jill@example.com", "+12025550142", event.ErrMissingName},
		{"missing email", "Jill Valentine", "", "+12025550142", event.ErrMissingEmail},
		{"missing phone", "Jill Valentine", "jill@example.com", "", event.ErrMissingPhone},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := event.NewBooking(nil, "Jazz Night", "", tc.customerName, tc.email, tc.phone,
				time.Date(2026, 5, 8, 0, 0, 0, 0, time.UTC), 1, "")
			assert.ErrorIs(t, err, tc.errIs)
		})
	}
}

func TestBookingCancel(t *testing.T) {
	b := validBooking(t, nil)

	require.NoError(t, b.Cancel())
	assert.True(t, b.IsCanceled())

	// Cancellation is one-way
	assert.ErrorIs(t, b.Cancel(), event.ErrAlreadyCanceled)
	assert.True(t, b.IsCanceled())
}

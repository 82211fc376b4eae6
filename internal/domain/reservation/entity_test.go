//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"acacia-booking/internal/domain/reservation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReservation(t *testing.T) {
	userID := uuid.New()
	date := time.Date(2026, 4, 20, 0, 0, 0, 0, time.UTC)

	t.Run("valid reservation", func(t *testing.T) {
		r, err := reservation.NewReservation(userID, "Leon Kennedy", "leon@example.com", "+12025550199", 4, date, "19:30", "window table please")
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, r.ID())
		assert.Equal(t, userID, r.UserID())
		assert.Equal(t, 4, r.PartySize())
		assert.Equal(t, "19:30", r.TimeOfDay())
	})

	t.Run("contact fields are trimmed", func(t *testing.T) {
		r, err := reservation.NewReservation(userID, " Leon Kennedy ", " leon@example.com ", " +12025550199 ", 2, date, "12:00", "")
		require.NoError(t, err)
		assert.Equal(t, "Leon Kennedy", r.Name())
		assert.Equal(t, "leon@example.com", r.Email())
	})

	cases := []struct {
		name      string
		guestName string
		email     string
		phone     string
		partySize int
		timeOfDay string
		errIs     error
	}{
		{"missing name", "", "leon@example.com", "+12025550199", 2, "19:30", reservation.ErrMissingName},
		{"missing email", "Leon Kennedy", " ", "+12025550199", 2, "19:30", reservation.ErrMissingEmail},
		{"missing phone", "Leon Kennedy", "leon@example.com", "", 2, "19:30", reservation.ErrMissingPhone},
		{"zero party size", "Leon Kennedy", "leon@example.com", "+12025550199", 0, "19:30", reservation.ErrInvalidPartySize},
		{"malformed time", "Leon Kennedy", "leon@example.com", "+12025550199", 2, "7:30pm", reservation.ErrInvalidTime},
		{"out-of-range time", "Leon Kennedy", "leon@example.com", "+12025550199", 2, "25:00", reservation.ErrInvalidTime},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := reservation.NewReservation(userID, tc.guestName, tc.email, tc.phone, tc.partySize, date, tc.timeOfDay, "")
			assert.ErrorIs(t, err, tc.errIs)
		})
	}
}

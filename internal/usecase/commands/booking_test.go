//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"acacia-booking/internal/domain/booking"
	"acacia-booking/internal/domain/room"
	"acacia-booking/internal/domain/user"
	"acacia-booking/internal/pkg/clock"
	"acacia-booking/internal/pkg/errs"
	"acacia-booking/internal/usecase/commands"
	"acacia-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func guestActor() shared.Principal {
	return shared.Principal{ID: uuid.New(), Role: user.RoleUser}
}

func staffActor() shared.Principal {
	return shared.Principal{ID: uuid.New(), Role: user.RoleStaff}
}

func validBookingInput(roomID uuid.UUID) commands.CreateRoomBookingInput {
	return commands.CreateRoomBookingInput{
		RoomID:       roomID,
		CustomerName: "Ada Wong",
		Email:        "ada@example.com",
		Phone:        "+12025550123",
		Age:          34,
		IDNumber:     "AB123456",
		PartySize:    2,
		CheckIn:      "2026-03-10",
		CheckOut:     "2026-03-12",
		Message:      "late arrival",
	}
}

func availableRoom(id uuid.UUID) *room.Room {
	return room.ReconstructRoom(id, "101", 2, 12000, "Twin room", "", true, false, testTime, testTime)
}

func storedBooking(t *testing.T, id, roomID uuid.UUID, cleared bool) *booking.RoomBooking {
	t.Helper()
	stay, err := booking.ParseStayRange("2026-03-10", "2026-03-12")
	require.NoError(t, err)
	guest := booking.ReconstructGuest("Ada Wong", "ada@example.com", "+12025550123", 34, "AB123456")
	return booking.ReconstructRoomBooking(id, uuid.New(), roomID, guest, 2, stay, "", cleared, testTime)
}

func TestCreateBooking(t *testing.T) {
	roomID := uuid.New()
	actor := guestActor()

	t.Run("creates booking and publishes ticket event", func(t *testing.T) {
		uow := newFakeUoW()
		uow.tx.rooms.lockRoom = availableRoom(roomID)
		pub := &fakePublisher{}
		cmd := commands.NewRoomBookingCommands(uow, pub, clock.NewMockClock(testTime))

		id, err := cmd.CreateBooking(context.Background(), actor, validBookingInput(roomID))
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, id)

		require.Len(t, uow.tx.roomBookings.created, 1)
		created := uow.tx.roomBookings.created[0]
		assert.Equal(t, actor.ID, created.UserID())
		assert.Equal(t, roomID, created.RoomID())

		require.Len(t, pub.events, 1)
		ev := pub.events[0]
		assert.Equal(t, "room", ev.Kind)
		assert.Equal(t, id, ev.BookingID)
		require.NotNil(t, ev.UserID)
		assert.Equal(t, actor.ID, *ev.UserID)
		assert.Equal(t, "Room 101, 2026-03-10 to 2026-03-12", ev.Summary)
		assert.Equal(t, testTime, ev.OccurredAt)
	})

	t.Run("overlapping active booking rejects", func(t *testing.T) {
		uow := newFakeUoW()
		uow.tx.rooms.lockRoom = availableRoom(roomID)
		uow.tx.roomBookings.conflict = true
		pub := &fakePublisher{}
		cmd := commands.NewRoomBookingCommands(uow, pub, clock.NewMockClock(testTime))

		_, err := cmd.CreateBooking(context.Background(), actor, validBookingInput(roomID))
		assert.ErrorIs(t, err, errs.ErrRoomUnavailable)
		assert.Empty(t, uow.tx.roomBookings.created)
		assert.Empty(t, pub.events)
	})

	t.Run("administratively unavailable room rejects", func(t *testing.T) {
		uow := newFakeUoW()
		uow.tx.rooms.lockRoom = room.ReconstructRoom(
			roomID, "101", 2, 12000, "", "", false, false, testTime, testTime)
		cmd := commands.NewRoomBookingCommands(uow, &fakePublisher{}, clock.NewMockClock(testTime))

		_, err := cmd.CreateBooking(context.Background(), actor, validBookingInput(roomID))
		assert.ErrorIs(t, err, errs.ErrRoomUnavailable)
	})

	t.Run("unknown room maps to not found", func(t *testing.T) {
		uow := newFakeUoW()
		uow.tx.rooms.lockErr = notFoundErr()
		cmd := commands.NewRoomBookingCommands(uow, &fakePublisher{}, clock.NewMockClock(testTime))

		_, err := cmd.CreateBooking(context.Background(), actor, validBookingInput(roomID))
		assert.ErrorIs(t, err, errs.ErrRoomNotFound)
	})

	t.Run("malformed dates fail validation before any lock", func(t *testing.T) {
		uow := newFakeUoW()
		cmd := commands.NewRoomBookingCommands(uow, &fakePublisher{}, clock.NewMockClock(testTime))

		input := validBookingInput(roomID)
		input.CheckIn = "03/10/2026"
		_, err := cmd.CreateBooking(context.Background(), actor, input)
		assert.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("inverted stay fails validation", func(t *testing.T) {
		uow := newFakeUoW()
		cmd := commands.NewRoomBookingCommands(uow, &fakePublisher{}, clock.NewMockClock(testTime))

		input := validBookingInput(roomID)
		input.CheckIn, input.CheckOut = input.CheckOut, input.CheckIn
		_, err := cmd.CreateBooking(context.Background(), actor, input)
		assert.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("publish failure does not fail the booking", func(t *testing.T) {
		uow := newFakeUoW()
		uow.tx.rooms.lockRoom = availableRoom(roomID)
		pub := &fakePublisher{err: assert.AnError}
		cmd := commands.NewRoomBookingCommands(uow, pub, clock.NewMockClock(testTime))

		id, err := cmd.CreateBooking(context.Background(), actor, validBookingInput(roomID))
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, id)
	})
}

func TestClearBooking(t *testing.T) {
	bookingID := uuid.New()
	roomID := uuid.New()

	occupiedRoom := func() *room.Room {
		return room.ReconstructRoom(roomID, "101", 2, 12000, "", "", true, true, testTime, testTime)
	}

	t.Run("clears booking and frees room in one transaction", func(t *testing.T) {
		uow := newFakeUoW()
		uow.tx.reads.roomBooking = storedBooking(t, bookingID, roomID, false)
		uow.tx.rooms.lockRoom = occupiedRoom()
		cmd := commands.NewRoomBookingCommands(uow, &fakePublisher{}, clock.NewMockClock(testTime))

		err := cmd.ClearBooking(context.Background(), staffActor(), bookingID)
		require.NoError(t, err)

		assert.Equal(t, []uuid.UUID{bookingID}, uow.tx.roomBookings.clearedIDs)
		require.Len(t, uow.tx.rooms.setOccupiedCalls, 1)
		assert.Equal(t, setOccupiedCall{id: roomID, occupied: false}, uow.tx.rooms.setOccupiedCalls[0])
	})

	t.Run("non-staff is forbidden", func(t *testing.T) {
		uow := newFakeUoW()
		cmd := commands.NewRoomBookingCommands(uow, &fakePublisher{}, clock.NewMockClock(testTime))

		err := cmd.ClearBooking(context.Background(), guestActor(), bookingID)
		assert.ErrorIs(t, err, errs.ErrForbidden)
		assert.Empty(t, uow.tx.roomBookings.clearedIDs)
	})

	t.Run("second clear fails", func(t *testing.T) {
		uow := newFakeUoW()
		uow.tx.reads.roomBooking = storedBooking(t, bookingID, roomID, true)
		cmd := commands.NewRoomBookingCommands(uow, &fakePublisher{}, clock.NewMockClock(testTime))

		err := cmd.ClearBooking(context.Background(), staffActor(), bookingID)
		assert.ErrorIs(t, err, errs.ErrAlreadyCleared)
		assert.Empty(t, uow.tx.roomBookings.clearedIDs)
		assert.Empty(t, uow.tx.rooms.setOccupiedCalls)
	})

	t.Run("clear losing a concurrent race reports already cleared", func(t *testing.T) {
		// The read sees an active booking but another clear commits first;
		// the repository reports the stale update as an already-cleared error.
		uow := newFakeUoW()
		uow.tx.reads.roomBooking = storedBooking(t, bookingID, roomID, false)
		uow.tx.roomBookings.markClearedErr = booking.ErrAlreadyCleared
		cmd := commands.NewRoomBookingCommands(uow, &fakePublisher{}, clock.NewMockClock(testTime))

		err := cmd.ClearBooking(context.Background(), staffActor(), bookingID)
		assert.ErrorIs(t, err, errs.ErrAlreadyCleared)
		assert.Empty(t, uow.tx.rooms.setOccupiedCalls)
	})

	t.Run("unknown booking maps to not found", func(t *testing.T) {
		uow := newFakeUoW()
		uow.tx.reads.roomBookingErr = notFoundErr()
		cmd := commands.NewRoomBookingCommands(uow, &fakePublisher{}, clock.NewMockClock(testTime))

		err := cmd.ClearBooking(context.Background(), staffActor(), bookingID)
		assert.ErrorIs(t, err, errs.ErrBookingNotFound)
	})
}

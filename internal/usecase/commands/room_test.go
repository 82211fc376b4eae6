//go:build unit

package commands_test

import (
	"context"
	"testing"

	"acacia-booking/internal/domain/room"
	"acacia-booking/internal/pkg/errs"
	"acacia-booking/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRoomInput() commands.CreateRoomInput {
	return commands.CreateRoomInput{
		RoomNumber:  "101",
		Capacity:    2,
		PriceCents:  12000,
		Description: "Twin room",
		ImagePath:   "rooms/101.jpg",
	}
}

func TestCreateRoom(t *testing.T) {
	t.Run("staff creates room", func(t *testing.T) {
		uow := newFakeUoW()
		cmd := commands.NewRoomCommands(uow)

		id, err := cmd.CreateRoom(context.Background(), staffActor(), validRoomInput())
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, id)

		require.Len(t, uow.tx.rooms.created, 1)
		assert.Equal(t, "101", uow.tx.rooms.created[0].RoomNumber())
	})

	t.Run("non-staff is forbidden", func(t *testing.T) {
		uow := newFakeUoW()
		cmd := commands.NewRoomCommands(uow)

		_, err := cmd.CreateRoom(context.Background(), guestActor(), validRoomInput())
		assert.ErrorIs(t, err, errs.ErrForbidden)
		assert.Empty(t, uow.tx.rooms.created)
	})

	t.Run("invalid input fails validation", func(t *testing.T) {
		uow := newFakeUoW()
		cmd := commands.NewRoomCommands(uow)

		input := validRoomInput()
		input.Capacity = 0
		_, err := cmd.CreateRoom(context.Background(), staffActor(), input)
		assert.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("duplicate room number rejected by pre-check", func(t *testing.T) {
		uow := newFakeUoW()
		uow.tx.rooms.exists = true
		cmd := commands.NewRoomCommands(uow)

		_, err := cmd.CreateRoom(context.Background(), staffActor(), validRoomInput())
		assert.ErrorIs(t, err, errs.ErrDuplicateRoomNumber)
		assert.Empty(t, uow.tx.rooms.created)
	})

	t.Run("duplicate key on insert maps to duplicate room number", func(t *testing.T) {
		uow := newFakeUoW()
		uow.tx.rooms.createErr = duplicateKeyErr()
		cmd := commands.NewRoomCommands(uow)

		_, err := cmd.CreateRoom(context.Background(), staffActor(), validRoomInput())
		assert.ErrorIs(t, err, errs.ErrDuplicateRoomNumber)
	})
}

func TestToggleOccupancy(t *testing.T) {
	roomID := uuid.New()

	t.Run("flips occupancy and returns new state", func(t *testing.T) {
		uow := newFakeUoW()
		uow.tx.rooms.lockRoom = room.ReconstructRoom(
			roomID, "101", 2, 12000, "", "", true, false, testTime, testTime)
		cmd := commands.NewRoomCommands(uow)

		occupied, err := cmd.ToggleOccupancy(context.Background(), staffActor(), roomID)
		require.NoError(t, err)
		assert.True(t, occupied)

		require.Len(t, uow.tx.rooms.setOccupiedCalls, 1)
		assert.Equal(t, setOccupiedCall{id: roomID, occupied: true}, uow.tx.rooms.setOccupiedCalls[0])
	})

	t.Run("occupied room toggles back to free", func(t *testing.T) {
		uow := newFakeUoW()
		uow.tx.rooms.lockRoom = room.ReconstructRoom(
			roomID, "101", 2, 12000, "", "", true, true, testTime, testTime)
		cmd := commands.NewRoomCommands(uow)

		occupied, err := cmd.ToggleOccupancy(context.Background(), staffActor(), roomID)
		require.NoError(t, err)
		assert.False(t, occupied)
	})

	t.Run("non-staff is forbidden", func(t *testing.T) {
		cmd := commands.NewRoomCommands(newFakeUoW())

		_, err := cmd.ToggleOccupancy(context.Background(), guestActor(), roomID)
		assert.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("unknown room maps to not found", func(t *testing.T) {
		uow := newFakeUoW()
		uow.tx.rooms.lockErr = notFoundErr()
		cmd := commands.NewRoomCommands(uow)

		_, err := cmd.ToggleOccupancy(context.Background(), staffActor(), roomID)
		assert.ErrorIs(t, err, errs.ErrRoomNotFound)
	})
}

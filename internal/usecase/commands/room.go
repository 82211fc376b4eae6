package commands

import (
	"context"

	"acacia-booking/internal/domain/room"
	"acacia-booking/internal/infra"
	"acacia-booking/internal/pkg/errs"
	"acacia-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateRoomInput struct {
	RoomNumber  string
	Capacity    int
	PriceCents  int64
	Description string
	ImagePath   string
}

type RoomCommands interface {
	CreateRoom(ctx context.Context, actor shared.Principal, input CreateRoomInput) (uuid.UUID, error)
	// ToggleOccupancy flips the occupancy flag and returns the new state.
	ToggleOccupancy(ctx context.Context, actor shared.Principal, roomID uuid.UUID) (bool, error)
}

type roomCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewRoomCommands(uow shared.UnitOfWork) RoomCommands {
	return &roomCommandsImpl{uow: uow}
}

func (r *roomCommandsImpl) CreateRoom(ctx context.Context, actor shared.Principal, input CreateRoomInput) (uuid.UUID, error) {
	if !actor.IsStaff() {
		return uuid.Nil, errs.ErrForbidden
	}

	newRoom, err := room.NewRoom(input.RoomNumber, input.Capacity, input.PriceCents, input.Description, input.ImagePath)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrValidation)
	}

	var id uuid.UUID
	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		exists, err := tx.Rooms().ExistsByNumber(ctx, tx.DB(), newRoom.RoomNumber())
		if err != nil {
			return err
		}
		if exists {
			return errs.ErrDuplicateRoomNumber
		}

		id, err = tx.Rooms().Create(ctx, tx.DB(), newRoom)
		return err
	})
	if err != nil {
		// Unique index catches the race the pre-check misses
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return uuid.Nil, errs.ErrDuplicateRoomNumber
		}
		return uuid.Nil, err
	}

	return id, nil
}

func (r *roomCommandsImpl) ToggleOccupancy(ctx context.Context, actor shared.Principal, roomID uuid.UUID) (bool, error) {
	if !actor.IsStaff() {
		return false, errs.ErrForbidden
	}

	var newState bool
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rm, err := tx.Rooms().LockByID(ctx, tx.DB(), roomID)
		if err != nil {
			return err
		}

		rm.ToggleOccupancy()
		newState = rm.IsOccupied()
		return tx.Rooms().SetOccupied(ctx, tx.DB(), rm.ID(), rm.IsOccupied())
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return false, errs.ErrRoomNotFound
		}
		return false, err
	}

	return newState, nil
}

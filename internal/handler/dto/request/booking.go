package request

import (
	"acacia-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateRoomBookingRequest struct {
	RoomID       uuid.UUID `json:"room_id" binding:"required"`
	CustomerName string    `json:"customer_name" binding:"required"`
	Email        string    `json:"email" binding:"required,email"`
	Phone        string    `json:"phone" binding:"required"`
	Age          int       `json:"age" binding:"required,min=1"`
	IDNumber     string    `json:"id_number" binding:"required"`
	PartySize    int       `json:"party_size" binding:"required,min=1"`
	CheckIn      string    `json:"check_in" binding:"required"`
	CheckOut     string    `json:"check_out" binding:"required"`
	Message      string    `json:"message"`
}

func (r *CreateRoomBookingRequest) ToInput() commands.CreateRoomBookingInput {
	return commands.CreateRoomBookingInput{
		RoomID:       r.RoomID,
		CustomerName: r.CustomerName,
		Email:        r.Email,
		Phone:        r.Phone,
		Age:          r.Age,
		IDNumber:     r.IDNumber,
		PartySize:    r.PartySize,
		CheckIn:      r.CheckIn,
		CheckOut:     r.CheckOut,
		Message:      r.Message,
	}
}

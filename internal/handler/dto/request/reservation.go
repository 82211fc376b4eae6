package request

import "acacia-booking/internal/usecase/commands"

type CreateReservationRequest struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone" binding:"required"`
	PartySize int    `json:"party_size" binding:"required,min=1"`
	Date      string `json:"date" binding:"required"`
	Time      string `json:"time" binding:"required"`
	Message   string `json:"message"`
}

func (r *CreateReservationRequest) ToInput() commands.CreateReservationInput {
	return commands.CreateReservationInput{
		Name:      r.Name,
		Email:     r.Email,
		Phone:     r.Phone,
		PartySize: r.PartySize,
		Date:      r.Date,
		Time:      r.Time,
		Message:   r.Message,
	}
}

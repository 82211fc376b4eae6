package request

import "acacia-booking/internal/usecase/commands"

type CreateEventBookingRequest struct {
	EventName    string `json:"event_name" binding:"required"`
	Slot         string `json:"slot"`
	CustomerName string `json:"customer_name" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Phone        string `json:"phone" binding:"required"`
	Date         string `json:"date" binding:"required"`
	Attendees    int    `json:"attendees" binding:"min=0"`
	Message      string `json:"message"`
	WalkIn       bool   `json:"walk_in"`
}

func (r *CreateEventBookingRequest) ToInput() commands.CreateEventBookingInput {
	return commands.CreateEventBookingInput{
		EventName:    r.EventName,
		Slot:         r.Slot,
		CustomerName: r.CustomerName,
		Email:        r.Email,
		Phone:        r.Phone,
		Date:         r.Date,
		Attendees:    r.Attendees,
		Message:      r.Message,
		WalkIn:       r.WalkIn,
	}
}

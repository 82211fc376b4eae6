package response

import (
	"time"

	"acacia-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type EventBookingResponse struct {
	ID           uuid.UUID  `json:"id"`
	UserID       *uuid.UUID `json:"user_id,omitempty"`
	EventName    string     `json:"event_name"`
	Slot         string     `json:"slot"`
	CustomerName string     `json:"customer_name"`
	Email        string     `json:"email"`
	Phone        string     `json:"phone"`
	Date         string     `json:"date"`
	Attendees    int        `json:"attendees"`
	Message      string     `json:"message"`
	IsCanceled   bool       `json:"is_canceled"`
	CreatedAt    time.Time  `json:"created_at"`
}

func FromEventBookingView(view *queries.EventBookingView) *EventBookingResponse {
	return &EventBookingResponse{
		ID:           view.ID,
		UserID:       view.UserID,
		EventName:    view.EventName,
		Slot:         view.Slot,
		CustomerName: view.CustomerName,
		Email:        view.Email,
		Phone:        view.Phone,
		Date:         view.Date.Format(dateLayout),
		Attendees:    view.Attendees,
		Message:      view.Message,
		IsCanceled:   view.IsCanceled,
		CreatedAt:    view.CreatedAt,
	}
}

func FromEventBookingViews(views []*queries.EventBookingView) []*EventBookingResponse {
	result := make([]*EventBookingResponse, 0, len(views))
	for _, v := range views {
		result = append(result, FromEventBookingView(v))
	}
	return result
}

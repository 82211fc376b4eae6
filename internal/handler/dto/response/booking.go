package response

import (
	"time"

	"acacia-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type RoomBookingResponse struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	RoomID       uuid.UUID `json:"room_id"`
	RoomNumber   string    `json:"room_number"`
	CustomerName string    `json:"customer_name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	PartySize    int       `json:"party_size"`
	CheckIn      string    `json:"check_in"`
	CheckOut     string    `json:"check_out"`
	Message      string    `json:"message"`
	IsCleared    bool      `json:"is_cleared"`
	CreatedAt    time.Time `json:"created_at"`
}

const dateLayout = "2006-01-02"

func FromRoomBookingView(view *queries.RoomBookingView) *RoomBookingResponse {
	return &RoomBookingResponse{
		ID:           view.ID,
		UserID:       view.UserID,
		RoomID:       view.RoomID,
		RoomNumber:   view.RoomNumber,
		CustomerName: view.CustomerName,
		Email:        view.Email,
		Phone:        view.Phone,
		PartySize:    view.PartySize,
		CheckIn:      view.CheckIn.Format(dateLayout),
		CheckOut:     view.CheckOut.Format(dateLayout),
		Message:      view.Message,
		IsCleared:    view.IsCleared,
		CreatedAt:    view.CreatedAt,
	}
}

func FromRoomBookingViews(views []*queries.RoomBookingView) []*RoomBookingResponse {
	result := make([]*RoomBookingResponse, 0, len(views))
	for _, v := range views {
		result = append(result, FromRoomBookingView(v))
	}
	return result
}

type CreatedResponse struct {
	ID uuid.UUID `json:"id"`
}

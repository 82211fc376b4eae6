package response

import (
	"time"

	"acacia-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	PartySize int       `json:"party_size"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

func FromReservationView(view *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		ID:        view.ID,
		UserID:    view.UserID,
		Name:      view.Name,
		Email:     view.Email,
		Phone:     view.Phone,
		PartySize: view.PartySize,
		Date:      view.Date.Format(dateLayout),
		Time:      view.Time,
		Message:   view.Message,
		CreatedAt: view.CreatedAt,
	}
}

func FromReservationViews(views []*queries.ReservationView) []*ReservationResponse {
	result := make([]*ReservationResponse, 0, len(views))
	for _, v := range views {
		result = append(result, FromReservationView(v))
	}
	return result
}

package response

import (
	"time"

	"acacia-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type RoomResponse struct {
	ID          uuid.UUID `json:"id"`
	RoomNumber  string    `json:"room_number"`
	Capacity    int       `json:"capacity"`
	PriceCents  int64     `json:"price_cents"`
	Description string    `json:"description"`
	ImagePath   string    `json:"image_path"`
	Available   bool      `json:"available"`
	IsOccupied  bool      `json:"is_occupied"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromRoomView(view *queries.RoomView) *RoomResponse {
	var resp RoomResponse
	// Field-for-field mapping; copier keeps this in step with the view
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromRoomViews(views []*queries.RoomView) []*RoomResponse {
	result := make([]*RoomResponse, 0, len(views))
	for _, v := range views {
		result = append(result, FromRoomView(v))
	}
	return result
}

type OccupancyResponse struct {
	RoomID     uuid.UUID `json:"room_id"`
	Date       string    `json:"date"`
	IsOccupied bool      `json:"is_occupied"`
}

type ToggleOccupancyResponse struct {
	RoomID     uuid.UUID `json:"room_id"`
	IsOccupied bool      `json:"is_occupied"`
}

package request

import "acacia-booking/internal/usecase/commands"

type CreateRoomRequest struct {
	RoomNumber  string `json:"room_number" binding:"required"`
	Capacity    int    `json:"capacity" binding:"required,min=1"`
	PriceCents  int64  `json:"price_cents" binding:"min=0"`
	Description string `json:"description"`
	ImagePath   string `json:"image_path"`
}

func (r *CreateRoomRequest) ToInput() commands.CreateRoomInput {
	return commands.CreateRoomInput{
		RoomNumber:  r.RoomNumber,
		Capacity:    r.Capacity,
		PriceCents:  r.PriceCents,
		Description: r.Description,
		ImagePath:   r.ImagePath,
	}
}

// SearchRoomsQuery binds the availability search query string. Both dates are
// required together; a bare list request omits both.
type SearchRoomsQuery struct {
	CheckIn  string `form:"check_in"`
	CheckOut string `form:"check_out"`
}

func (q *SearchRoomsQuery) HasRange() bool {
	return q.CheckIn != "" || q.CheckOut != ""
}

type OccupancyQuery struct {
	Date string `form:"date"`
}

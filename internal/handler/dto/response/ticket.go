package response

import (
	"time"

	"acacia-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type TicketResponse struct {
	ID           uuid.UUID `json:"id"`
	BookingType  string    `json:"booking_type"`
	BookingID    uuid.UUID `json:"booking_id"`
	TicketNumber string    `json:"ticket_number"`
	PDFPath      *string   `json:"pdf_path,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func FromTicketView(view *queries.TicketView) *TicketResponse {
	resp := &TicketResponse{
		ID:           view.ID,
		BookingType:  view.BookingType,
		TicketNumber: view.TicketNumber,
		PDFPath:      view.PDFPath,
		CreatedAt:    view.CreatedAt,
	}
	switch {
	case view.RoomBookingID != nil:
		resp.BookingID = *view.RoomBookingID
	case view.ReservationID != nil:
		resp.BookingID = *view.ReservationID
	case view.EventID != nil:
		resp.BookingID = *view.EventID
	}
	return resp
}

func FromTicketViews(views []*queries.TicketView) []*TicketResponse {
	result := make([]*TicketResponse, 0, len(views))
	for _, v := range views {
		result = append(result, FromTicketView(v))
	}
	return result
}

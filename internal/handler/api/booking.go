package api

import (
	"errors"
	"net/http"

	reqdto "acacia-booking/internal/handler/dto/request"
	resdto "acacia-booking/internal/handler/dto/response"
	"acacia-booking/internal/handler/middleware"
	"acacia-booking/internal/pkg/errs"
	"acacia-booking/internal/usecase/commands"
	"acacia-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingCommands commands.RoomBookingCommands
	bookingQueries  queries.RoomBookingQueries
}

func NewBookingHandler(bookingCommands commands.RoomBookingCommands, bookingQueries queries.RoomBookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

func (h *BookingHandler) CreateBooking(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req reqdto.CreateRoomBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.bookingCommands.CreateBooking(c.Request.Context(), principal, req.ToInput())
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrRoomUnavailable):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Room unavailable for the selected dates",
			})
		case errors.Is(err, errs.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Room not found",
			})
		case errors.Is(err, errs.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": err.Error(),
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

func (h *BookingHandler) GetBooking(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking ID"})
		return
	}

	view, err := h.bookingQueries.GetByID(c.Request.Context(), principal, id)
	if err != nil {
		if errors.Is(err, errs.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomBookingView(view))
}

// ListBookings returns the caller's own bookings.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	views, err := h.bookingQueries.ListByUser(c.Request.Context(), principal.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomBookingViews(views))
}

// ListAllBookings is the staff dashboard feed.
func (h *BookingHandler) ListAllBookings(c *gin.Context) {
	views, err := h.bookingQueries.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomBookingViews(views))
}

func (h *BookingHandler) ClearBooking(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking ID"})
		return
	}

	err = h.bookingCommands.ClearBooking(c.Request.Context(), principal, id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		case errors.Is(err, errs.ErrAlreadyCleared):
			c.JSON(http.StatusConflict, gin.H{"error": "Booking already cleared"})
		case errors.Is(err, errs.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

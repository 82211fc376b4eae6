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

type EventHandler struct {
	eventCommands commands.EventCommands
	eventQueries  queries.EventBookingQueries
}

func NewEventHandler(eventCommands commands.EventCommands, eventQueries queries.EventBookingQueries) *EventHandler {
	return &EventHandler{
		eventCommands: eventCommands,
		eventQueries:  eventQueries,
	}
}

func (h *EventHandler) CreateEventBooking(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req reqdto.CreateEventBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.eventCommands.CreateEventBooking(c.Request.Context(), principal, req.ToInput())
	if err != nil {
		if errors.Is(err, errs.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// ListEventBookings returns the caller's bookings, or all bookings for staff.
func (h *EventHandler) ListEventBookings(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var (
		views []*queries.EventBookingView
		err   error
	)
	if principal.IsStaff() {
		views, err = h.eventQueries.ListAll(c.Request.Context())
	} else {
		views, err = h.eventQueries.ListByUser(c.Request.Context(), principal.ID)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromEventBookingViews(views))
}

func (h *EventHandler) CancelEventBooking(c *gin.Context) {
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

	err = h.eventCommands.CancelEventBooking(c.Request.Context(), principal, id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrEventBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Event booking not found"})
		case errors.Is(err, errs.ErrAlreadyCanceled):
			c.JSON(http.StatusConflict, gin.H{"error": "Event booking already canceled"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

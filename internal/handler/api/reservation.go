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
)

type ReservationHandler struct {
	reservationCommands commands.ReservationCommands
	reservationQueries  queries.ReservationQueries
}

func NewReservationHandler(
	reservationCommands commands.ReservationCommands,
	reservationQueries queries.ReservationQueries,
) *ReservationHandler {
	return &ReservationHandler{
		reservationCommands: reservationCommands,
		reservationQueries:  reservationQueries,
	}
}

func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.reservationCommands.CreateReservation(c.Request.Context(), principal, req.ToInput())
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

// ListReservations returns the caller's reservations, newest first.
func (h *ReservationHandler) ListReservations(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	views, err := h.reservationQueries.ListByUser(c.Request.Context(), principal.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationViews(views))
}

// ListAllReservations is the staff dashboard feed.
func (h *ReservationHandler) ListAllReservations(c *gin.Context) {
	views, err := h.reservationQueries.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationViews(views))
}

package api

import (
	"net/http"

	resdto "acacia-booking/internal/handler/dto/response"
	"acacia-booking/internal/handler/middleware"
	"acacia-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type TicketHandler struct {
	ticketQueries queries.TicketQueries
}

func NewTicketHandler(ticketQueries queries.TicketQueries) *TicketHandler {
	return &TicketHandler{ticketQueries: ticketQueries}
}

// ListTickets returns the caller's issued tickets, newest first.
func (h *TicketHandler) ListTickets(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	views, err := h.ticketQueries.ListByUser(c.Request.Context(), principal.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromTicketViews(views))
}

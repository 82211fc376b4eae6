package api

import (
	"errors"
	"net/http"
	"time"

	"acacia-booking/internal/domain/booking"
	reqdto "acacia-booking/internal/handler/dto/request"
	resdto "acacia-booking/internal/handler/dto/response"
	"acacia-booking/internal/handler/middleware"
	"acacia-booking/internal/pkg/errs"
	"acacia-booking/internal/usecase/commands"
	"acacia-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RoomHandler struct {
	roomCommands commands.RoomCommands
	roomQueries  queries.RoomQueries
}

func NewRoomHandler(roomCommands commands.RoomCommands, roomQueries queries.RoomQueries) *RoomHandler {
	return &RoomHandler{
		roomCommands: roomCommands,
		roomQueries:  roomQueries,
	}
}

// ListRooms returns all rooms, or only available ones when a stay range is
// given in the query string.
func (h *RoomHandler) ListRooms(c *gin.Context) {
	var q reqdto.SearchRoomsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid query parameters",
		})
		return
	}

	if !q.HasRange() {
		views, err := h.roomQueries.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
			return
		}
		c.JSON(http.StatusOK, resdto.FromRoomViews(views))
		return
	}

	stay, err := booking.ParseStayRange(q.CheckIn, q.CheckOut)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	views, err := h.roomQueries.SearchAvailable(c.Request.Context(), stay)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomViews(views))
}

func (h *RoomHandler) CreateRoom(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req reqdto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.roomCommands.CreateRoom(c.Request.Context(), principal, req.ToInput())
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrDuplicateRoomNumber):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Room number already exists",
			})
		case errors.Is(err, errs.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid request data",
			})
		case errors.Is(err, errs.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Insufficient permissions",
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

// IsOccupied reports whether the room has an active booking covering the
// given date (today when omitted).
func (h *RoomHandler) IsOccupied(c *gin.Context) {
	roomID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid room ID"})
		return
	}

	var q reqdto.OccupancyQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	dateStr := q.Date
	var date time.Time
	if dateStr == "" {
		date = time.Now().UTC()
		dateStr = date.Format("2006-01-02")
	} else {
		var err error
		date, err = booking.ParseDate(dateStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	occupied, err := h.roomQueries.IsOccupiedOn(c.Request.Context(), roomID, date)
	if err != nil {
		if errors.Is(err, errs.ErrRoomNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.OccupancyResponse{
		RoomID:     roomID,
		Date:       dateStr,
		IsOccupied: occupied,
	})
}

func (h *RoomHandler) ToggleOccupancy(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	roomID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid room ID"})
		return
	}

	newState, err := h.roomCommands.ToggleOccupancy(c.Request.Context(), principal, roomID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
		case errors.Is(err, errs.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.ToggleOccupancyResponse{
		RoomID:     roomID,
		IsOccupied: newState,
	})
}

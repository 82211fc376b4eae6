//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"acacia-booking/internal/domain/booking"
	"acacia-booking/internal/domain/user"
	"acacia-booking/internal/handler/api"
	resdto "acacia-booking/internal/handler/dto/response"
	"acacia-booking/internal/pkg/errs"
	"acacia-booking/internal/usecase/queries"
	"acacia-booking/internal/usecase/shared"
	"acacia-booking/tests/common/httptest"
	commandsmock "acacia-booking/tests/mock/commands"
	queriesmock "acacia-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RoomHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockRoomCommands
	mockQueries  *queriesmock.MockRoomQueries
	handler      *api.RoomHandler
	principal    *shared.Principal
}

func (s *RoomHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.principal = nil

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockRoomCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockRoomQueries(s.mockCtrl)
	s.handler = api.NewRoomHandler(s.mockCommands, s.mockQueries)

	// Stand-in for the auth middleware
	s.router.Use(func(c *gin.Context) {
		if s.principal != nil {
			c.Set("principal", *s.principal)
		}
		c.Next()
	})

	s.router.GET("/rooms", s.handler.ListRooms)
	s.router.POST("/rooms", s.handler.CreateRoom)
	s.router.GET("/rooms/:id/occupied", s.handler.IsOccupied)
	s.router.POST("/rooms/:id/toggle", s.handler.ToggleOccupancy)
}

func (s *RoomHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRoomHandlerSuite(t *testing.T) {
	suite.Run(t, new(RoomHandlerTestSuite))
}

func (s *RoomHandlerTestSuite) TestListRooms() {
	s.Run("success: no range lists every room", func() {
		views := []*queries.RoomView{{ID: uuid.New(), RoomNumber: "101"}}
		s.mockQueries.EXPECT().List(gomock.Any()).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms", nil, "")

		var response []*resdto.RoomResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
	})

	s.Run("success: stay range searches availability", func() {
		stay, err := booking.ParseStayRange("2026-03-10", "2026-03-12")
		s.Require().NoError(err)

		views := []*queries.RoomView{{ID: uuid.New(), RoomNumber: "202"}}
		s.mockQueries.EXPECT().SearchAvailable(gomock.Any(), stay).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/rooms?check_in=2026-03-10&check_out=2026-03-12", nil, "")

		var response []*resdto.RoomResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
	})

	s.Run("error: 400 for malformed range", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/rooms?check_in=2026-03-12&check_out=2026-03-10", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 400 when only one bound is given", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/rooms?check_in=2026-03-10", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *RoomHandlerTestSuite) TestCreateRoom() {
	url := "/rooms"
	reqBody := map[string]any{
		"room_number": "101",
		"capacity":    2,
		"price_cents": 12000,
		"description": "Twin room",
	}

	s.Run("success: returns 201 Created with the room id", func() {
		principal := shared.Principal{ID: uuid.New(), Role: user.RoleStaff}
		s.principal = &principal

		roomID := uuid.New()
		s.mockCommands.EXPECT().CreateRoom(gomock.Any(), principal, gomock.Any()).
			Return(roomID, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")

		var response resdto.CreatedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(roomID, response.ID)
	})

	s.Run("error: 409 for duplicate room number", func() {
		principal := shared.Principal{ID: uuid.New(), Role: user.RoleStaff}
		s.principal = &principal

		s.mockCommands.EXPECT().CreateRoom(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(uuid.Nil, errs.ErrDuplicateRoomNumber).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Room number already exists")
	})

	s.Run("error: 403 for non-staff", func() {
		principal := shared.Principal{ID: uuid.New(), Role: user.RoleUser}
		s.principal = &principal

		s.mockCommands.EXPECT().CreateRoom(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(uuid.Nil, errs.ErrForbidden).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Insufficient permissions")
	})

	s.Run("error: 400 on malformed body", func() {
		principal := shared.Principal{ID: uuid.New(), Role: user.RoleStaff}
		s.principal = &principal

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"capacity": 2}, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}

func (s *RoomHandlerTestSuite) TestIsOccupied() {
	roomID := uuid.New()
	url := "/rooms/" + roomID.String() + "/occupied"

	s.Run("success: reports occupancy on a given date", func() {
		date := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)
		s.mockQueries.EXPECT().IsOccupiedOn(gomock.Any(), roomID, date).
			Return(true, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?date=2026-03-11", nil, "")

		var response resdto.OccupancyResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.IsOccupied)
		s.Equal("2026-03-11", response.Date)
	})

	s.Run("success: date defaults to today", func() {
		s.mockQueries.EXPECT().IsOccupiedOn(gomock.Any(), roomID, gomock.Any()).
			Return(false, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.OccupancyResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.False(response.IsOccupied)
	})

	s.Run("error: 404 for unknown room", func() {
		s.mockQueries.EXPECT().IsOccupiedOn(gomock.Any(), roomID, gomock.Any()).
			Return(false, errs.ErrRoomNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?date=2026-03-11", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Room not found")
	})

	s.Run("error: 400 for malformed date", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?date=tomorrow", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *RoomHandlerTestSuite) TestToggleOccupancy() {
	roomID := uuid.New()
	url := "/rooms/" + roomID.String() + "/toggle"

	s.Run("success: returns the new occupancy state", func() {
		principal := shared.Principal{ID: uuid.New(), Role: user.RoleStaff}
		s.principal = &principal

		s.mockCommands.EXPECT().ToggleOccupancy(gomock.Any(), principal, roomID).
			Return(true, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")

		var response resdto.ToggleOccupancyResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.IsOccupied)
		s.Equal(roomID, response.RoomID)
	})

	s.Run("error: 404 for unknown room", func() {
		principal := shared.Principal{ID: uuid.New(), Role: user.RoleStaff}
		s.principal = &principal

		s.mockCommands.EXPECT().ToggleOccupancy(gomock.Any(), gomock.Any(), roomID).
			Return(false, errs.ErrRoomNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Room not found")
	})
}

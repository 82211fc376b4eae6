//go:build unit

package handler_test

import (
	"net/http"
	"testing"
	"time"

	"acacia-booking/internal/domain/user"
	"acacia-booking/internal/handler"
	"acacia-booking/internal/handler/api"
	"acacia-booking/internal/handler/middleware"
	"acacia-booking/internal/pkg/config"
	"acacia-booking/internal/pkg/jwt"
	"acacia-booking/internal/usecase"
	"acacia-booking/internal/usecase/queries"
	"acacia-booking/tests/common/httptest"
	commandsmock "acacia-booking/tests/mock/commands"
	queriesmock "acacia-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// Full router with real auth middleware: route registration decides which
// endpoints demand a token, so gating is asserted here rather than in the
// per-handler suites.
func newTestRouter(t *testing.T, ctrl *gomock.Controller) (*gin.Engine, *queriesmock.MockRoomQueries, *jwt.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	engine := gin.New()

	cfg := config.NewTestConfig()
	cfg.CORS = config.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000"},
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
	}

	jwtService := jwt.NewService("test-secret", 15*time.Minute, 24*time.Hour)
	authMiddleware := middleware.NewAuthMiddleware(usecase.NewTokenValidator(jwtService))

	roomQueries := queriesmock.NewMockRoomQueries(ctrl)
	handler.NewRouter(
		engine,
		cfg,
		api.NewAuthHandler(commandsmock.NewMockAuthCommands(ctrl), queriesmock.NewMockUserQueries(ctrl)),
		api.NewRoomHandler(commandsmock.NewMockRoomCommands(ctrl), roomQueries),
		api.NewBookingHandler(commandsmock.NewMockRoomBookingCommands(ctrl), queriesmock.NewMockRoomBookingQueries(ctrl)),
		api.NewReservationHandler(commandsmock.NewMockReservationCommands(ctrl), queriesmock.NewMockReservationQueries(ctrl)),
		api.NewEventHandler(commandsmock.NewMockEventCommands(ctrl), queriesmock.NewMockEventBookingQueries(ctrl)),
		api.NewTicketHandler(queriesmock.NewMockTicketQueries(ctrl)),
		authMiddleware,
	)

	return engine, roomQueries, jwtService
}

func TestRoomReadRoutesRequireAuth(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	engine, roomQueries, jwtService := newTestRouter(t, ctrl)

	t.Run("room list rejects missing token", func(t *testing.T) {
		rec := httptest.PerformRequest(t, engine, http.MethodGet, "/api/rooms", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Access token required")
	})

	t.Run("occupancy check rejects missing token", func(t *testing.T) {
		url := "/api/rooms/" + uuid.NewString() + "/occupied"
		rec := httptest.PerformRequest(t, engine, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Access token required")
	})

	t.Run("room list accepts an authenticated user", func(t *testing.T) {
		token, err := jwtService.GenerateAccessToken(uuid.New(), user.RoleUser)
		require.NoError(t, err)

		roomQueries.EXPECT().List(gomock.Any()).Return([]*queries.RoomView{}, nil).Times(1)

		rec := httptest.PerformRequest(t, engine, http.MethodGet, "/api/rooms", nil, token)
		require.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestHealthEndpointIsPublic(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	engine, _, _ := newTestRouter(t, ctrl)

	rec := httptest.PerformRequest(t, engine, http.MethodGet, "/health", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
}

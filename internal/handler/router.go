package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"acacia-booking/internal/handler/api"
	"acacia-booking/internal/handler/middleware"
	"acacia-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	roomHandler *api.RoomHandler,
	bookingHandler *api.BookingHandler,
	reservationHandler *api.ReservationHandler,
	eventHandler *api.EventHandler,
	ticketHandler *api.TicketHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, roomHandler, bookingHandler, reservationHandler, eventHandler, ticketHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	roomHandler *api.RoomHandler,
	bookingHandler *api.BookingHandler,
	reservationHandler *api.ReservationHandler,
	eventHandler *api.EventHandler,
	ticketHandler *api.TicketHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: authHandler.Register},
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: authHandler.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: authHandler.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		rooms := apiGroup.Group("/rooms")
		rooms.Use(authMiddleware.RequireAuth())
		{
			addRoutes(rooms, []route{
				{Method: http.MethodGet, Path: "", Handler: roomHandler.ListRooms},
				{Method: http.MethodGet, Path: "/:id/occupied", Handler: roomHandler.IsOccupied},
			})

			staffOnly := rooms.Group("")
			staffOnly.Use(authMiddleware.RequireStaff())
			addRoutes(staffOnly, []route{
				{Method: http.MethodPost, Path: "", Handler: roomHandler.CreateRoom},
				{Method: http.MethodPost, Path: "/:id/toggle", Handler: roomHandler.ToggleOccupancy},
			})
		}

		bookings := apiGroup.Group("/bookings")
		bookings.Use(authMiddleware.RequireAuth())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: bookingHandler.CreateBooking},
				{Method: http.MethodGet, Path: "", Handler: bookingHandler.ListBookings},
				{Method: http.MethodGet, Path: "/:id", Handler: bookingHandler.GetBooking},
				{
					Method: http.MethodPost, Path: "/:id/clear", Handler: bookingHandler.ClearBooking,
					Mw: []gin.HandlerFunc{authMiddleware.RequireStaff()},
				},
			})
		}

		reservations := apiGroup.Group("/reservations")
		reservations.Use(authMiddleware.RequireAuth())
		{
			addRoutes(reservations, []route{
				{Method: http.MethodPost, Path: "", Handler: reservationHandler.CreateReservation},
				{Method: http.MethodGet, Path: "", Handler: reservationHandler.ListReservations},
			})
		}

		events := apiGroup.Group("/events")
		events.Use(authMiddleware.RequireAuth())
		{
			addRoutes(events, []route{
				{Method: http.MethodPost, Path: "", Handler: eventHandler.CreateEventBooking},
				{Method: http.MethodGet, Path: "", Handler: eventHandler.ListEventBookings},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: eventHandler.CancelEventBooking},
			})
		}

		tickets := apiGroup.Group("/tickets")
		tickets.Use(authMiddleware.RequireAuth())
		{
			addRoutes(tickets, []route{
				{Method: http.MethodGet, Path: "", Handler: ticketHandler.ListTickets},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireStaff())
		{
			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "/bookings", Handler: bookingHandler.ListAllBookings},
				{Method: http.MethodGet, Path: "/reservations", Handler: reservationHandler.ListAllReservations},
			})
		}
	}
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}

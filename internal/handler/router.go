package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"appointment-engine/internal/handler/api"
	"appointment-engine/internal/handler/middleware"
	"appointment-engine/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Slots        *api.SlotHandler
	Bookings     *api.BookingHandler
	Schedule     *api.ScheduleHandler
	Availability *api.AvailabilityHandler
	Events       *api.BookingEventHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		public := apiGroup.Group("/public/businesses/:businessId")
		public.Use(authMiddleware.OptionalAuth())
		addRoutes(public, []route{
			{Method: http.MethodGet, Path: "/slots", Handler: h.Slots.PublicFreeSlots},
			{Method: http.MethodPost, Path: "/bookings", Handler: h.Bookings.CreatePublic},
		})

		business := apiGroup.Group("/businesses/:businessId")
		business.Use(authMiddleware.RequireAuth())
		addRoutes(business, []route{
			{Method: http.MethodGet, Path: "/slots", Handler: h.Slots.FreeSlots},

			{Method: http.MethodPost, Path: "/bookings", Handler: h.Bookings.Create},
			{Method: http.MethodGet, Path: "/bookings", Handler: h.Bookings.List},
			{Method: http.MethodGet, Path: "/bookings/:id", Handler: h.Bookings.Get},
			{Method: http.MethodPatch, Path: "/bookings/:id/status", Handler: h.Bookings.UpdateStatus},
			{Method: http.MethodGet, Path: "/calendar.ics", Handler: h.Bookings.Calendar},
			{Method: http.MethodGet, Path: "/booking-events", Handler: h.Events.List},

			{Method: http.MethodPost, Path: "/schedule-rules", Handler: h.Schedule.CreateRule},
			{Method: http.MethodGet, Path: "/schedule-rules", Handler: h.Schedule.ListRules},
			{Method: http.MethodDelete, Path: "/schedule-rules/:id", Handler: h.Schedule.DeactivateRule},

			{Method: http.MethodPost, Path: "/availability/materialize", Handler: h.Availability.Materialize},
			{Method: http.MethodPost, Path: "/availability/blocks", Handler: h.Availability.CreateBlock},
			{Method: http.MethodGet, Path: "/availability/blocks", Handler: h.Availability.ListBlocks},
			{Method: http.MethodDelete, Path: "/availability/blocks/:id", Handler: h.Availability.DeleteBlock},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
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

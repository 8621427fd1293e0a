package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"salon-dashboard/internal/handler/api"
	"salon-dashboard/internal/handler/middleware"
	"salon-dashboard/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

type Handlers struct {
	Auth        *api.AuthHandler
	Calendar    *api.CalendarHandler
	Appointment *api.AppointmentHandler
	Staff       *api.StaffHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		calendar := apiGroup.Group("/calendar")
		calendar.Use(authMiddleware.RequireAuth())
		{
			addRoutes(calendar, []route{
				{Method: http.MethodGet, Path: "/board", Handler: h.Calendar.Board},
				{Method: http.MethodPost, Path: "/date", Handler: h.Calendar.SelectDate},
				{Method: http.MethodPost, Path: "/drag-start", Handler: h.Calendar.DragStart},
				{Method: http.MethodPost, Path: "/prompt/submit", Handler: h.Calendar.SubmitPrompt},
				{Method: http.MethodPost, Path: "/prompt/cancel", Handler: h.Calendar.CancelPrompt},
				{Method: http.MethodPost, Path: "/appointments/:id/select", Handler: h.Calendar.SelectAppointment},
			})

			columns := calendar.Group("/columns/:staffId")
			addRoutes(columns, []route{
				{Method: http.MethodPost, Path: "/pointer-move", Handler: h.Calendar.PointerMove},
				{Method: http.MethodPost, Path: "/pointer-leave", Handler: h.Calendar.PointerLeave},
				{Method: http.MethodPost, Path: "/drag-over", Handler: h.Calendar.DragOver},
				{Method: http.MethodPost, Path: "/drag-leave", Handler: h.Calendar.DragLeave},
				{Method: http.MethodPost, Path: "/drop", Handler: h.Calendar.Drop},
				{Method: http.MethodPost, Path: "/click", Handler: h.Calendar.ClickSlot},
			})
		}

		appointments := apiGroup.Group("/appointments")
		appointments.Use(authMiddleware.RequireAuth())
		{
			addRoutes(appointments, []route{
				{Method: http.MethodGet, Path: "/upcoming", Handler: h.Appointment.Upcoming},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Appointment.Get},
			})
		}

		staff := apiGroup.Group("/staff")
		staff.Use(authMiddleware.RequireAuth())
		{
			addRoutes(staff, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Staff.List},
			})
		}
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
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

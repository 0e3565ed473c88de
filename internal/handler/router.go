package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"expo-gateway/internal/handler/api"
	"expo-gateway/internal/handler/middleware"
	"expo-gateway/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, scheduleHandler *api.ScheduleHandler, registrationHandler *api.RegistrationHandler, sessionHandler *api.SessionHandler, sessionMiddleware *middleware.SessionMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, scheduleHandler, registrationHandler, sessionHandler, sessionMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, scheduleHandler *api.ScheduleHandler, registrationHandler *api.RegistrationHandler, sessionHandler *api.SessionHandler, sessionMiddleware *middleware.SessionMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/schedule", Handler: scheduleHandler.GetSchedule},
		})

		registrations := apiGroup.Group("/registrations")
		{
			addRoutes(registrations, []route{
				{Method: http.MethodPost, Path: "/quote", Handler: registrationHandler.Quote},
				{Method: http.MethodPost, Path: "/confirm", Handler: registrationHandler.Confirm},
			})
		}

		session := apiGroup.Group("/session")
		{
			addRoutes(session, []route{
				{Method: http.MethodPost, Path: "/login", Handler: sessionHandler.Login},
			})

			sessionRequired := session.Group("")
			sessionRequired.Use(sessionMiddleware.RequireSession())
			addRoutes(sessionRequired, []route{
				{Method: http.MethodGet, Path: "", Handler: sessionHandler.GetSession},
				{Method: http.MethodPut, Path: "/selection", Handler: sessionHandler.UpdateSelection},
				{Method: http.MethodPost, Path: "/update/quote", Handler: sessionHandler.QuoteUpdate},
				{Method: http.MethodPost, Path: "/update/confirm", Handler: sessionHandler.ConfirmUpdate},
				{Method: http.MethodPost, Path: "/cancel/quote", Handler: sessionHandler.QuoteCancel},
				{Method: http.MethodPost, Path: "/cancel/confirm", Handler: sessionHandler.ConfirmCancel},
				{Method: http.MethodPost, Path: "/dismiss", Handler: sessionHandler.Dismiss},
				{Method: http.MethodGet, Path: "/document", Handler: sessionHandler.GetDocument},
				{Method: http.MethodPost, Path: "/logout", Handler: sessionHandler.Logout},
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

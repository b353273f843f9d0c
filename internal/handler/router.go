package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"equiploan/internal/handler/api"
	"equiploan/internal/handler/middleware"
	"equiploan/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth         *api.AuthHandler
	Request      *api.RequestHandler
	Equipment    *api.EquipmentHandler
	History      *api.HistoryHandler
	Notification *api.NotificationHandler
	WS           *api.WSHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: h.Auth.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		equipment := apiGroup.Group("/equipment")
		equipment.Use(authMiddleware.RequireAuth())
		{
			addRoutes(equipment, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Equipment.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Equipment.Get},
			})
		}

		userRequests := apiGroup.Group("/user/requests")
		userRequests.Use(authMiddleware.RequireAuth())
		{
			addRoutes(userRequests, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Request.Submit},
				{Method: http.MethodGet, Path: "", Handler: h.Request.ListOwn},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Request.Cancel},
			})
		}

		notifications := apiGroup.Group("/notifications")
		notifications.Use(authMiddleware.RequireAuth())
		{
			addRoutes(notifications, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Notification.List},
				{Method: http.MethodPatch, Path: "/:id/read", Handler: h.Notification.MarkRead},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Notification.Delete},
				{Method: http.MethodDelete, Path: "", Handler: h.Notification.DeleteAll},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireAdmin())
		{
			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "/requests/active", Handler: h.Request.ListActive},
				{Method: http.MethodGet, Path: "/requests/pending", Handler: h.Request.ListPending},
				{Method: http.MethodPatch, Path: "/requests/:id", Handler: h.Request.Decide},
				{Method: http.MethodPatch, Path: "/requests/:id/return", Handler: h.Request.Return},
				{Method: http.MethodPost, Path: "/equipment", Handler: h.Equipment.Create},
				{Method: http.MethodPut, Path: "/equipment/:id", Handler: h.Equipment.Update},
				{Method: http.MethodGet, Path: "/history", Handler: h.History.List},
				{Method: http.MethodDelete, Path: "/history/:id", Handler: h.History.Delete},
			})
		}
	}

	ws := engine.Group("/ws")
	ws.Use(authMiddleware.RequireAuth())
	ws.GET("", h.WS.Connect)
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

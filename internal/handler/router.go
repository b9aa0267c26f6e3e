package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"lending-ledger/internal/domain/user"
	"lending-ledger/internal/handler/api"
	"lending-ledger/internal/handler/middleware"
	"lending-ledger/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth      *api.AuthHandler
	Items     *api.ItemHandler
	Lending   *api.LendingHandler
	Dashboard *api.DashboardHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// request logger sits outside recovery so panics are logged with their 500
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.Recovery(logger))
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS, logger))
	engine.Use(middleware.ErrorHandler(logger))
	engine.NoRoute(middleware.NotFound)
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	approverOnly := []gin.HandlerFunc{authMiddleware.RequireRole(user.RoleApprover)}
	requesterOnly := []gin.HandlerFunc{authMiddleware.RequireRole(user.RoleRequester)}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
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

		items := apiGroup.Group("/items")
		items.Use(authMiddleware.RequireAuth())
		{
			addRoutes(items, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Items.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Items.Get},
				{Method: http.MethodPost, Path: "", Handler: h.Items.Create, Mw: approverOnly},
				{Method: http.MethodPut, Path: "", Handler: h.Items.Upsert, Mw: approverOnly},
				{Method: http.MethodPatch, Path: "/:id", Handler: h.Items.Update, Mw: approverOnly},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Items.Delete, Mw: approverOnly},
			})
		}

		requests := apiGroup.Group("/requests")
		requests.Use(authMiddleware.RequireAuth())
		{
			addRoutes(requests, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Lending.Submit, Mw: requesterOnly},
				{Method: http.MethodGet, Path: "", Handler: h.Lending.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Lending.Get},
				{Method: http.MethodPost, Path: "/:id/approve", Handler: h.Lending.Approve, Mw: approverOnly},
				{Method: http.MethodPost, Path: "/:id/reject", Handler: h.Lending.Reject, Mw: approverOnly},
				{Method: http.MethodPost, Path: "/:id/return", Handler: h.Lending.Return, Mw: approverOnly},
				{Method: http.MethodPatch, Path: "/:id/due-date", Handler: h.Lending.AmendDueDate, Mw: approverOnly},
			})
		}

		dashboard := apiGroup.Group("/dashboard")
		dashboard.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(user.RoleApprover))
		{
			addRoutes(dashboard, []route{
				{Method: http.MethodGet, Path: "/summary", Handler: h.Dashboard.Summary},
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

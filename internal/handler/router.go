package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"barberpro/internal/handler/api"
	"barberpro/internal/handler/middleware"
	"barberpro/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth        *api.AuthHandler
	Shop        *api.ShopHandler
	Appointment *api.AppointmentHandler
	Customer    *api.CustomerHandler
	Finance     *api.FinanceHandler
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
		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
			{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
		})

		authRequired := apiGroup.Group("")
		authRequired.Use(authMiddleware.RequireAuth())
		{
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/sync", Handler: h.Shop.Sync},

				{Method: http.MethodPost, Path: "/barbershop", Handler: h.Shop.CreateShop},
				{Method: http.MethodPost, Path: "/barbershop/join", Handler: h.Shop.JoinShop},

				{Method: http.MethodPost, Path: "/appointments", Handler: h.Appointment.Create},
				{Method: http.MethodPost, Path: "/appointments/:id/complete", Handler: h.Appointment.Complete},
				{Method: http.MethodPost, Path: "/appointments/:id/cancel", Handler: h.Appointment.Cancel},
				{Method: http.MethodGet, Path: "/queue", Handler: h.Appointment.Queue},

				{Method: http.MethodPost, Path: "/customers", Handler: h.Customer.Create},
				{Method: http.MethodGet, Path: "/customers", Handler: h.Customer.List},

				{Method: http.MethodGet, Path: "/finance/summary", Handler: h.Finance.Summary},
				{Method: http.MethodGet, Path: "/performance", Handler: h.Finance.Performance},

				{Method: http.MethodPatch, Path: "/barbers/:id/commission", Handler: h.Finance.SetCommission,
					Mw: []gin.HandlerFunc{authMiddleware.RequireOwner()}},
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

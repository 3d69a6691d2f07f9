package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"mealpass-api/internal/handler/api"
	"mealpass-api/internal/handler/middleware"
	"mealpass-api/internal/pkg/config"
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
	employeeHandler *api.EmployeeHandler,
	couponHandler *api.CouponHandler,
	notificationHandler *api.NotificationHandler,
	analyticsHandler *api.AnalyticsHandler,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, employeeHandler, couponHandler, notificationHandler, analyticsHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	employeeHandler *api.EmployeeHandler,
	couponHandler *api.CouponHandler,
	notificationHandler *api.NotificationHandler,
	analyticsHandler *api.AnalyticsHandler,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		employees := apiGroup.Group("/employees")
		{
			addRoutes(employees, []route{
				{Method: http.MethodGet, Path: "", Handler: employeeHandler.List},
				{Method: http.MethodPost, Path: "", Handler: employeeHandler.Create},
				{Method: http.MethodGet, Path: "/:id", Handler: employeeHandler.Get},
				{Method: http.MethodPut, Path: "/:id", Handler: employeeHandler.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: employeeHandler.Delete},
				{Method: http.MethodGet, Path: "/:id/coupons", Handler: couponHandler.ListForEmployee},
			})
		}

		coupons := apiGroup.Group("/coupons")
		{
			addRoutes(coupons, []route{
				{Method: http.MethodPost, Path: "/generate", Handler: couponHandler.Generate},
				{Method: http.MethodPost, Path: "/generate-all", Handler: couponHandler.GenerateAll},
				{Method: http.MethodGet, Path: "/expiring", Handler: couponHandler.ExpiringSoon},
				{Method: http.MethodGet, Path: "/barcode/:barcode", Handler: couponHandler.GetByBarcode},
				{Method: http.MethodGet, Path: "/:id", Handler: couponHandler.Get},
				{Method: http.MethodPost, Path: "/:id/claim", Handler: couponHandler.Claim},
			})
		}

		notifications := apiGroup.Group("/notifications")
		{
			addRoutes(notifications, []route{
				{Method: http.MethodGet, Path: "", Handler: notificationHandler.List},
				{Method: http.MethodPost, Path: "/sweep", Handler: notificationHandler.Sweep},
				{Method: http.MethodPatch, Path: "/read-all", Handler: notificationHandler.MarkAllRead},
				{Method: http.MethodPatch, Path: "/:id/read", Handler: notificationHandler.MarkRead},
				{Method: http.MethodDelete, Path: "/:id", Handler: notificationHandler.Delete},
			})
		}

		analytics := apiGroup.Group("/analytics")
		{
			addRoutes(analytics, []route{
				{Method: http.MethodGet, Path: "/departments", Handler: analyticsHandler.Departments},
				{Method: http.MethodGet, Path: "/top-performers", Handler: analyticsHandler.TopPerformers},
				{Method: http.MethodGet, Path: "/summary", Handler: analyticsHandler.Summary},
			})
		}

		apiGroup.GET("/dashboard", couponHandler.Dashboard)
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

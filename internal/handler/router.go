package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"glamping-booking/internal/domain/pricing"
	"glamping-booking/internal/handler/api"
	"glamping-booking/internal/handler/middleware"
	"glamping-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth    *api.AuthHandler
	Booking *api.BookingHandler
	Payment *api.PaymentHandler
	Admin   *api.AdminHandler
}

type Middlewares struct {
	Auth      *middleware.AuthMiddleware
	RateLimit *middleware.RateLimiter
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, h Handlers, mw Middlewares) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, mw)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, mw Middlewares) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		for _, product := range []pricing.Product{pricing.ProductCamping, pricing.ProductBarbecue} {
			addRoutes(apiGroup.Group("/"+product.String()), []route{
				{Method: http.MethodGet, Path: "/availability", Handler: h.Booking.Availability(product)},
				{Method: http.MethodPost, Path: "/quote", Handler: h.Booking.Quote(product)},
				{Method: http.MethodPost, Path: "/reservations", Handler: h.Booking.Create(product), Mw: []gin.HandlerFunc{mw.RateLimit.Limit("create")}},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/reservations/:id", Handler: h.Booking.GetReservation},
			{Method: http.MethodPost, Path: "/payments/webhook", Handler: h.Payment.Webhook},
			{Method: http.MethodPost, Path: "/admin/login", Handler: h.Auth.Login, Mw: []gin.HandlerFunc{mw.RateLimit.Limit("login")}},
		})

		admin := apiGroup.Group("/admin")
		admin.Use(mw.Auth.RequireAdmin())
		{
			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "/settings/:product", Handler: h.Admin.GetSettings},
				{Method: http.MethodPut, Path: "/settings/:product", Handler: h.Admin.ReplaceSettings},
				{Method: http.MethodPost, Path: "/settings/:product/custom-add-ons", Handler: h.Admin.AddCustomAddOn},
				{Method: http.MethodDelete, Path: "/settings/:product/custom-add-ons/:id", Handler: h.Admin.RemoveCustomAddOn},
				{Method: http.MethodPost, Path: "/settings/:product/special-periods", Handler: h.Admin.AddSpecialPeriod},
				{Method: http.MethodPut, Path: "/settings/:product/special-periods/:id", Handler: h.Admin.UpdateSpecialPeriod},
				{Method: http.MethodDelete, Path: "/settings/:product/special-periods/:id", Handler: h.Admin.RemoveSpecialPeriod},

				{Method: http.MethodGet, Path: "/blocked-ranges", Handler: h.Admin.ListBlockedRanges},
				{Method: http.MethodPost, Path: "/blocked-ranges", Handler: h.Admin.CreateBlockedRange},
				{Method: http.MethodDelete, Path: "/blocked-ranges/:id", Handler: h.Admin.DeleteBlockedRange},

				{Method: http.MethodGet, Path: "/reservations", Handler: h.Admin.ListReservations},
				{Method: http.MethodGet, Path: "/reservations/export.csv", Handler: h.Admin.ExportReservations},
				{Method: http.MethodGet, Path: "/reservations/:id/invoice.pdf", Handler: h.Admin.Invoice},
				{Method: http.MethodDelete, Path: "/reservations/:id", Handler: h.Admin.DeleteReservation},
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

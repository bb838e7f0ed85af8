package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/liquidglass/storefront-api/internal/api/handler"
	"github.com/liquidglass/storefront-api/internal/api/middleware"
	"github.com/liquidglass/storefront-api/internal/auth"
	"github.com/liquidglass/storefront-api/internal/core/ports"
	"github.com/liquidglass/storefront-api/internal/core/service"
	redisdedup "github.com/liquidglass/storefront-api/internal/infrastructure/db/redis"
)

// Options carries everything the router needs beyond its collaborators.
type Options struct {
	JWTSecret string
	// SecureCookies should be true everywhere except local development.
	SecureCookies bool
	// Registry overrides the Prometheus registry for the HTTP middleware.
	// Leave nil to use the default registry.
	Registry *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb may be nil; the order idempotency cache is then disabled.
func NewRouter(store ports.Store, rdb *redis.Client, opts Options, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())

	promConfig := echoprometheus.MiddlewareConfig{Subsystem: "storefront"}
	handlerConfig := echoprometheus.HandlerConfig{}
	if opts.Registry != nil {
		promConfig.Registerer = opts.Registry
		handlerConfig.Gatherer = opts.Registry
	}
	e.Use(echoprometheus.NewMiddlewareWithConfig(promConfig))

	// --- Dependencies ---
	codec := auth.NewCodec(opts.JWTSecret, auth.TokenTTL)

	var dedup service.DedupChecker
	if rdb != nil {
		dedup = redisdedup.NewDedupChecker(rdb)
	}

	authService := service.NewAuthService(store, codec, log)
	productService := service.NewProductService(store, log)
	orderService := service.NewOrderService(store, dedup, log)
	analyticsService := service.NewAnalyticsService(store, log)

	authHandler := handler.NewAuthHandler(authService, codec.TTL(), opts.SecureCookies)
	productHandler := handler.NewProductHandler(productService)
	orderHandler := handler.NewOrderHandler(orderService)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsService)
	pageHandler := handler.NewPageHandler(productService, orderService, analyticsService)

	requireAdmin := []echo.MiddlewareFunc{middleware.Auth(codec), middleware.RequireAdmin()}

	// --- Auth routes ---
	e.POST("/api/auth/login", authHandler.Login)
	e.POST("/api/auth/logout", authHandler.Logout)
	e.GET("/api/auth/me", authHandler.Me)

	// --- Catalog ---
	// Reads are public; every mutation is admin-gated.
	e.GET("/api/products", productHandler.List)
	e.GET("/api/products/:id", productHandler.Get)
	e.POST("/api/products", productHandler.Create, requireAdmin...)
	e.PUT("/api/products/:id", productHandler.Update, requireAdmin...)
	e.DELETE("/api/products/:id", productHandler.Delete, requireAdmin...)

	// --- Orders ---
	// Checkout stays open to anonymous shoppers; management is admin-gated.
	e.POST("/api/orders", orderHandler.Create)
	e.GET("/api/orders", orderHandler.List, requireAdmin...)
	e.PUT("/api/orders/:id", orderHandler.UpdateStatus, requireAdmin...)

	// --- Analytics (admin) ---
	e.GET("/api/analytics/metrics", analyticsHandler.Metrics, requireAdmin...)
	e.GET("/api/analytics/dashboard", analyticsHandler.Dashboard, requireAdmin...)

	// --- Admin pages (redirect-style guard) ---
	admin := e.Group("/admin", middleware.PageAuth(codec))
	admin.GET("", pageHandler.AdminHome)
	admin.GET("/orders", pageHandler.AdminOrders)
	admin.GET("/products", pageHandler.AdminProducts)

	// --- Observability (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(store, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(handlerConfig))

	return e
}

package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/time/rate"

	"github.com/key-tactile/commerce-api/internal/api/handler"
	"github.com/key-tactile/commerce-api/internal/api/middleware"
	"github.com/key-tactile/commerce-api/internal/core/domain"
	"github.com/key-tactile/commerce-api/internal/core/ports"
	"github.com/key-tactile/commerce-api/internal/core/service"
	"github.com/key-tactile/commerce-api/internal/infrastructure/config"
	mongodb "github.com/key-tactile/commerce-api/internal/infrastructure/db/mongo"
	redisdb "github.com/key-tactile/commerce-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The audit-event sink is owned by the caller so its worker lifecycle stays
// with the process, not the router.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger, sink ports.OrderEventSink) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("commerce"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	productRepo := mongodb.NewProductRepository(db)
	brandRepo := mongodb.NewBrandRepository(db)
	orderRepo := mongodb.NewOrderRepository(db)
	eventRepo := mongodb.NewOrderEventRepository(db)
	statsRepo := mongodb.NewStatsRepository(db)
	statsCache := redisdb.NewStatsCache(rdb)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTExpiry)
	userService := service.NewUserService(userRepo, log)
	productService := service.NewProductService(productRepo, log)
	brandService := service.NewBrandService(brandRepo, log)
	orderService := service.NewOrderService(orderRepo, productRepo, eventRepo, sink, log)
	statsService := service.NewStatsService(statsRepo, statsCache, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	productHandler := handler.NewProductHandler(productService)
	brandHandler := handler.NewBrandHandler(brandService)
	orderHandler := handler.NewOrderHandler(orderService)
	statsHandler := handler.NewStatsHandler(statsService)

	auth := middleware.Auth(cfg.JWTSecret)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)
	userOnly := middleware.RequireRole(domain.RoleUser)

	// Brute-force protection on credential verification.
	loginLimiter := echomiddleware.RateLimiterWithConfig(echomiddleware.RateLimiterConfig{
		Store: echomiddleware.NewRateLimiterMemoryStoreWithConfig(echomiddleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(5),
			Burst:     10,
			ExpiresIn: 3 * time.Minute,
		}),
	})

	// --- Auth routes ---
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login, loginLimiter)

	// --- Users ---
	e.GET("/users", userHandler.List, auth, adminOnly)
	e.PATCH("/update-profile/:email", userHandler.UpdateProfile, auth)

	// --- Products ---
	e.GET("/products", productHandler.List)
	e.POST("/products", productHandler.Create, auth, adminOnly)
	e.PUT("/products/:id", productHandler.Update, auth, adminOnly)
	e.PATCH("/products/:id/quantity", productHandler.AdjustQuantity, auth, adminOnly)

	// --- Brands ---
	e.GET("/brands", brandHandler.List)
	e.POST("/brands", brandHandler.Create, auth, adminOnly)
	e.PATCH("/brands/:id", brandHandler.Update, auth, adminOnly)
	e.DELETE("/brands/:id", brandHandler.Delete, auth, adminOnly)

	// --- Orders ---
	e.POST("/orders", orderHandler.Create, auth, userOnly)
	e.GET("/orders", orderHandler.List, auth)
	e.PATCH("/orders/:id/status", orderHandler.UpdateStatus, auth, adminOnly)
	e.DELETE("/orders/:id", orderHandler.Delete, auth, adminOnly)
	e.GET("/orders/:id/events", orderHandler.Events, auth, adminOnly)

	// --- Stats ---
	e.GET("/stat", statsHandler.Overview, auth, adminOnly)

	// --- Operational endpoints ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}

package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/skillforge/catalog-api/docs"
	"github.com/skillforge/catalog-api/internal/api/handler"
	"github.com/skillforge/catalog-api/internal/api/middleware"
	"github.com/skillforge/catalog-api/internal/core/ports"
	"github.com/skillforge/catalog-api/internal/core/service"
	mongodb "github.com/skillforge/catalog-api/internal/infrastructure/db/mongo"
	redisdb "github.com/skillforge/catalog-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, audit ports.AuditSink, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("catalog"))

	// --- Dependencies ---
	badgeRepo := mongodb.NewBadgeRepository(db)
	userRepo := mongodb.NewUserRepository(db)
	listCache := redisdb.NewListCache(rdb)

	catalogService := service.NewCatalogService(badgeRepo, listCache, audit, log)
	directoryService := service.NewDirectoryService(userRepo, audit, log)

	badgeHandler := handler.NewBadgeHandler(catalogService)
	userHandler := handler.NewUserHandler(directoryService)

	identity := middleware.Identity(directoryService)
	adminOnly := middleware.AdminOnly()

	// --- Catalog routes ---
	badges := e.Group("/api/catalog-badges", identity)
	badges.GET("", badgeHandler.List)
	badges.POST("", badgeHandler.Create, adminOnly)

	users := e.Group("/api/users", identity)
	users.POST("", userHandler.Create, adminOnly)

	// --- Health probes (no identity required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Observability and docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mindreboot/mindreboot-api/internal/api/handler"
	"github.com/mindreboot/mindreboot-api/internal/api/middleware"
	"github.com/mindreboot/mindreboot-api/internal/core/domain"
	"github.com/mindreboot/mindreboot-api/internal/core/service"
	"github.com/mindreboot/mindreboot-api/internal/infrastructure/auth"
	mongodb "github.com/mindreboot/mindreboot-api/internal/infrastructure/db/mongo"
	redisdb "github.com/mindreboot/mindreboot-api/internal/infrastructure/db/redis"
)

// Config carries the settings the router needs beyond its infrastructure
// handles.
type Config struct {
	JWTSecret string
	TokenTTL  time.Duration
}

// NewRouter builds and returns the Echo instance with all routes registered.
//
// The route table is the single authority on access control:
//   - public:           browsing, auth entry points, health, metrics, docs
//   - authenticated:    profile lookup, personalized-request submission
//   - admin:            catalog mutations and the destructive seed loader
//   - therapist|admin:  personalized-request fulfillment
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("mindreboot"))

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Dependencies ---
	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)

	userRepo := mongodb.NewUserRepository(db)
	audioRepo := mongodb.NewAudioRepository(db)
	requestRepo := mongodb.NewRequestRepository(db)

	playGuard := redisdb.NewPlayGuard(rdb, time.Hour)

	authService := service.NewAuthService(userRepo, tokens, log)
	catalogService := service.NewCatalogService(audioRepo, playGuard, log)
	intakeService := service.NewIntakeService(requestRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	audioHandler := handler.NewAudioHandler(catalogService)
	requestHandler := handler.NewRequestHandler(intakeService)

	requireAuth := middleware.Auth(tokens)
	adminOnly := middleware.RBAC(domain.RoleAdmin)
	therapistOrAdmin := middleware.RBAC(domain.RoleAdmin, domain.RoleTherapist)

	// --- Auth routes ---
	e.POST("/api/auth/register", authHandler.Register)
	e.POST("/api/auth/login", authHandler.Login)
	e.POST("/api/auth/logout", authHandler.Logout)
	e.GET("/api/auth/me", authHandler.Me, requireAuth)

	// --- Catalog routes ---
	e.GET("/api/audios", audioHandler.List)
	e.GET("/api/audios/:id", audioHandler.Get)
	e.POST("/api/audios/:id/play", audioHandler.Play)
	e.POST("/api/audios/:id/like", audioHandler.Like)
	e.POST("/api/audios", audioHandler.Create, requireAuth, adminOnly)
	e.PUT("/api/audios/:id", audioHandler.Update, requireAuth, adminOnly)
	e.DELETE("/api/audios/:id", audioHandler.Delete, requireAuth, adminOnly)

	// Destructive delete-then-insert loader; admin-gated on purpose.
	e.POST("/api/seed", audioHandler.Seed, requireAuth, adminOnly)

	// --- Personalized request routes ---
	e.POST("/api/personalized-requests", requestHandler.Submit, requireAuth)
	e.GET("/api/personalized-requests", requestHandler.List, requireAuth, therapistOrAdmin)
	e.PATCH("/api/personalized-requests/:id/status", requestHandler.UpdateStatus, requireAuth, therapistOrAdmin)

	// --- Observability & docs (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

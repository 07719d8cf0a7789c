package api

import (
	"context"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/batarcade/arcade-api/docs"
	"github.com/batarcade/arcade-api/internal/api/handler"
	"github.com/batarcade/arcade-api/internal/api/middleware"
	"github.com/batarcade/arcade-api/internal/core/service"
	"github.com/batarcade/arcade-api/internal/infrastructure/config"
	mongodb "github.com/batarcade/arcade-api/internal/infrastructure/db/mongo"
	redisdb "github.com/batarcade/arcade-api/internal/infrastructure/db/redis"
	"github.com/batarcade/arcade-api/internal/infrastructure/queue"
)

// NewRouter builds the Echo instance with all routes registered. The context
// bounds the lifetime of the activity dispatcher's workers.
func NewRouter(ctx context.Context, db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("arcade"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	credentialSvc := service.NewCredentialService(userRepo, cfg.BcryptCost)
	sessionSvc := service.NewSessionService(cfg.JWTSecret, cfg.SessionTTL)

	activityRepo := mongodb.NewActivityRepository(db)
	activitySvc := service.NewActivityService(activityRepo, redisdb.NewDedupChecker(rdb), log)
	dispatcher := queue.NewDispatcher(cfg.Workers, activitySvc, log)
	dispatcher.Start(ctx)

	scoreRepo := mongodb.NewScoreRepository(db)
	scoreSvc := service.NewScoreService(scoreRepo, redisdb.NewScoreCache(rdb), dispatcher, log)

	authHandler := handler.NewAuthHandler(credentialSvc, sessionSvc)
	scoreHandler := handler.NewScoreHandler(scoreSvc)
	registerPortalRoutes(e, authHandler, scoreHandler, middleware.Auth(sessionSvc))

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}

// registerPortalRoutes mounts the account and score endpoints under /api.
func registerPortalRoutes(e *echo.Echo, authHandler *handler.AuthHandler, scoreHandler *handler.ScoreHandler, requireSession echo.MiddlewareFunc) {
	g := e.Group("/api")
	g.POST("/auth/register", authHandler.Register)
	g.POST("/auth/login", authHandler.Login)
	g.GET("/auth/me", authHandler.Me, requireSession)
	g.POST("/auth/logout", authHandler.Logout)
	g.GET("/scores", scoreHandler.List, requireSession)
	g.POST("/scores", scoreHandler.Submit, requireSession)
	g.GET("/games", handler.NewGameHandler().List)
}

package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/sparkmeet/dating-api/docs"
	"github.com/sparkmeet/dating-api/internal/api/handler"
	"github.com/sparkmeet/dating-api/internal/api/middleware"
	"github.com/sparkmeet/dating-api/internal/core/ports"
	"github.com/sparkmeet/dating-api/internal/core/service"
	"github.com/sparkmeet/dating-api/internal/infrastructure/config"
	mongodb "github.com/sparkmeet/dating-api/internal/infrastructure/db/mongo"
	redisdb "github.com/sparkmeet/dating-api/internal/infrastructure/db/redis"
	"github.com/sparkmeet/dating-api/internal/infrastructure/geoip"
	healthhandlers "github.com/sparkmeet/dating-api/internal/infrastructure/http/handlers"
	"github.com/sparkmeet/dating-api/internal/infrastructure/storage"
	"github.com/sparkmeet/dating-api/pkg/logger"
)

// Deps carries the externally constructed dependencies the router wires
// together. Everything else (repositories, services, handlers) is built here.
type Deps struct {
	Config     *config.Config
	Mongo      *mongo.Database
	Redis      *redis.Client
	Dispatcher ports.NotificationDispatcher
	Logger     zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(logger.Component(d.Logger, "http"))

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("dating"))
	e.Use(middleware.RateLimit(d.Config.HTTP.RateRPS, d.Config.HTTP.RateBurst))

	// --- Dependencies ---
	clientRepo := mongodb.NewClientRepository(d.Mongo)

	tokenService := service.NewTokenService(
		d.Config.JWT.AccessSecret,
		d.Config.JWT.RefreshSecret,
		d.Config.JWT.AccessTTL,
		d.Config.JWT.RefreshTTL,
	)

	geoCache := redisdb.NewGeoCache(d.Redis, d.Config.GeoIP.CacheTTL)
	locator := geoip.NewLocator(
		d.Config.GeoIP.BaseURL,
		d.Config.GeoIP.Timeout,
		geoCache,
		logger.Component(d.Logger, "geoip"),
	)

	authService := service.NewAuthService(clientRepo, tokenService, locator, logger.Component(d.Logger, "auth"))
	rateGate := service.NewRateGate(clientRepo, d.Config.Match.Window, d.Config.Match.LikesPerWindow)
	matchService := service.NewMatchService(clientRepo, rateGate, d.Dispatcher, logger.Component(d.Logger, "match"))
	clientService := service.NewClientService(clientRepo, logger.Component(d.Logger, "clients"))

	avatarStore := storage.NewAvatarStore(storage.Config{
		Endpoint:      d.Config.S3.Endpoint,
		Region:        d.Config.S3.Region,
		AccessKeyID:   d.Config.S3.AccessKeyID,
		SecretKey:     d.Config.S3.SecretKey,
		Bucket:        d.Config.S3.Bucket,
		PublicBaseURL: d.Config.S3.PublicBaseURL,
	})
	watermarker, err := storage.NewWatermarker(d.Config.S3.WatermarkPath)
	if err != nil {
		d.Logger.Fatal().Err(err).Str("path", d.Config.S3.WatermarkPath).Msg("loading watermark image")
	}

	authHandler := handler.NewAuthHandler(authService)
	clientHandler := handler.NewClientHandler(clientService, matchService)
	avatarHandler := handler.NewAvatarHandler(watermarker, avatarStore)
	authMiddleware := middleware.Auth(tokenService, clientRepo)

	// --- Public routes ---
	e.POST("/api/clients/create", authHandler.Register)
	e.POST("/api/clients/login", authHandler.Login)
	e.POST("/api/clients/logout", authHandler.Logout)
	e.POST("/api/token/refresh", authHandler.Refresh)

	// --- Authenticated routes ---
	e.GET("/api/list", clientHandler.List, authMiddleware)
	e.POST("/api/clients/:target_client_id/match", clientHandler.Match, authMiddleware)
	e.POST("/api/storage/upload", avatarHandler.Upload, authMiddleware)

	// --- Health probes (no auth required) ---
	healthHandler := healthhandlers.NewHealthHandler()
	healthDepsHandler := healthhandlers.NewHealthDependenciesHandler(d.Mongo, d.Redis)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

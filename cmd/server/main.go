package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/sparkmeet/dating-api/internal/api"
	"github.com/sparkmeet/dating-api/internal/infrastructure/config"
	mongodb "github.com/sparkmeet/dating-api/internal/infrastructure/db/mongo"
	redisdb "github.com/sparkmeet/dating-api/internal/infrastructure/db/redis"
	"github.com/sparkmeet/dating-api/internal/infrastructure/mail"
	"github.com/sparkmeet/dating-api/internal/infrastructure/queue"
	"github.com/sparkmeet/dating-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// @title           SparkMeet Dating API
// @version         1.0
// @description     Client registration, matching and discovery service.
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Missing .env is fine; real deployments configure via the environment.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg.LogLevel, cfg.Env)

	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("connecting to mongodb")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongodb disconnect")
		}
	}()

	if err := mongodb.NewClientRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("creating mongodb indexes")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("connecting to redis")
	}
	defer rdb.Close()

	notifier := mail.NewSMTPNotifier(mail.Config{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
	})
	dispatcher := queue.NewDispatcher(cfg.Match.NotifyWorkers, notifier, logger.Component(log, "notify"))
	dispatcher.Start(ctx)

	e := api.NewRouter(api.Deps{
		Config:     cfg,
		Mongo:      db,
		Redis:      rdb,
		Dispatcher: dispatcher,
		Logger:     log,
	})

	go func() {
		addr := ":" + cfg.Port
		log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

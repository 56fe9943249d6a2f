package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/key-tactile/commerce-api/internal/api"
	"github.com/key-tactile/commerce-api/internal/core/service"
	"github.com/key-tactile/commerce-api/internal/infrastructure/config"
	mongodb "github.com/key-tactile/commerce-api/internal/infrastructure/db/mongo"
	redisdb "github.com/key-tactile/commerce-api/internal/infrastructure/db/redis"
	"github.com/key-tactile/commerce-api/internal/infrastructure/queue"
	"github.com/key-tactile/commerce-api/pkg/logger"

	_ "github.com/key-tactile/commerce-api/docs"
)

// @title           Commerce API
// @version         1.0
// @description     REST backend for products, brands, users and orders.
//
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization
func main() {
	cfg := config.Load()

	logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})
	log := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongodb disconnect failed")
		}
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	userRepo := mongodb.NewUserRepository(db)
	orderRepo := mongodb.NewOrderRepository(db)
	eventRepo := mongodb.NewOrderEventRepository(db)
	for _, ensure := range []func(context.Context) error{
		userRepo.EnsureIndexes,
		orderRepo.EnsureIndexes,
		eventRepo.EnsureIndexes,
	} {
		if err := ensure(ctx); err != nil {
			log.Fatal().Err(err).Msg("index creation failed")
		}
	}

	// Order audit events are written off the request path by a sharded
	// worker pool; events for the same order always land on the same worker.
	eventService := service.NewOrderEventService(eventRepo, log)
	dispatcher := queue.NewDispatcher(cfg.EventWorkers, eventService, log)
	// The dispatcher outlives the signal context so queued events can still
	// drain during shutdown.
	dispatcher.Start(context.Background())

	e := api.NewRouter(db, rdb, cfg, log, dispatcher)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}

	// Drain queued audit events before exiting.
	dispatcher.Stop()
	log.Info().Msg("server stopped")
}

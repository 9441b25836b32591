package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/aebalz/ubermensch-tracker/docs"
	"github.com/aebalz/ubermensch-tracker/internal/app"
	"github.com/aebalz/ubermensch-tracker/internal/config"
	"github.com/aebalz/ubermensch-tracker/internal/logger"
	"github.com/aebalz/ubermensch-tracker/internal/middleware"
	fiberserver "github.com/aebalz/ubermensch-tracker/pkg/fiber"
	ginserver "github.com/aebalz/ubermensch-tracker/pkg/gin"
)

// @title Ubermensch Tracker API
// @version 1.0
// @description Personal health tracker: supplements, food, recipes, metrics, workouts, equipment, daily logs, notes and an assistant.

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	cfg, err := config.LoadConfig("config.env")
	if err != nil {
		panic(err)
	}
	log := logger.New(cfg.LogLevel, cfg.AppEnv)

	docs.SwaggerInfo.Host = cfg.SwaggerHost
	docs.SwaggerInfo.BasePath = cfg.SwaggerBasePath
	docs.SwaggerInfo.Schemes = cfg.SwaggerSchemes
	docs.SwaggerInfo.Title = cfg.AppName + " API"

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Str("backend", cfg.StoreBackend).Msg("failed to open store")
	}
	defer func() {
		if err := a.Close(); err != nil {
			log.Error().Err(err).Msg("error closing store")
		}
	}()

	wd := a.Watchdog()
	if err := wd.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to start watchdog")
	}
	defer wd.Stop()

	limiter := middleware.NewRateLimiter(cfg.RateLimitPerSecond, cfg.RateLimitBurst)
	go limiter.Run(ctx)

	handlers := a.Handlers()
	shutdownTimeout := 5 * time.Second

	switch cfg.ServerFramework {
	case "gin":
		engine := ginserver.NewGinServer(cfg, handlers, log, limiter)
		srv := ginserver.StartGinServer(engine, cfg, log)
		<-ctx.Done()
		log.Info().Msg("shutting down Gin server")
		if err := ginserver.ShutdownGinServer(srv, shutdownTimeout); err != nil {
			log.Error().Err(err).Msg("server forced to shutdown")
		}
	default:
		fiberApp := fiberserver.NewFiberServer(cfg, handlers, log, limiter)
		go func() {
			if err := fiberserver.StartFiberServer(fiberApp, cfg, log); err != nil {
				log.Error().Err(err).Msg("fiber server stopped")
				stop()
			}
		}()
		<-ctx.Done()
		log.Info().Msg("shutting down Fiber server")
		if err := fiberApp.ShutdownWithTimeout(shutdownTimeout); err != nil {
			log.Error().Err(err).Msg("error during Fiber server shutdown")
		}
	}

	log.Info().Msg("server gracefully stopped")
}

// Package app wires configuration, storage and services into one application for the server and the CLI.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/aebalz/ubermensch-tracker/internal/assistant"
	"github.com/aebalz/ubermensch-tracker/internal/config"
	"github.com/aebalz/ubermensch-tracker/internal/handler"
	"github.com/aebalz/ubermensch-tracker/internal/repository"
	"github.com/aebalz/ubermensch-tracker/internal/service"
	"github.com/aebalz/ubermensch-tracker/internal/store"
	"github.com/aebalz/ubermensch-tracker/internal/watchdog"
	"github.com/aebalz/ubermensch-tracker/pkg/database"
)

type App struct {
	Config    *config.AppConfig
	Log       zerolog.Logger
	Store     store.Store
	Services  *service.Services
	Assistant *assistant.Service

	closers []func() error
}

// New opens the configured store and builds the services over it.
func New(ctx context.Context, cfg *config.AppConfig, log zerolog.Logger) (*App, error) {
	st, closeStore, err := OpenStore(ctx, cfg)
	if err != nil {
		return nil, err
	}
	loc := cfg.Location()
	svc := service.New(repository.NewSet(st, time.Now), service.Options{Location: loc})

	client := assistant.NewClient(cfg.AssistantBaseURL, cfg.AssistantAPIKey, cfg.AssistantID)
	ai := assistant.NewService(assistant.Config{
		ApplyDirectives: cfg.ApplyDirectives,
		PollMaxInterval: cfg.AssistantMaxPoll,
		PollTimeout:     cfg.AssistantTimeout,
		VoiceURL:        cfg.VoiceChatURL,
	}, client, svc, log.With().Str("component", "assistant").Logger())

	return &App{
		Config:    cfg,
		Log:       log,
		Store:     st,
		Services:  svc,
		Assistant: ai,
		closers:   []func() error{closeStore},
	}, nil
}

// OpenStore connects the backend named by STORE_BACKEND. The returned func releases it.
func OpenStore(ctx context.Context, cfg *config.AppConfig) (store.Store, func() error, error) {
	switch cfg.StoreBackend {
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("connect to redis at %s: %w", cfg.RedisAddr, err)
		}
		return store.NewRedisStore(client, cfg.RedisNamespace), client.Close, nil
	default:
		db, err := database.ConnectDB(cfg)
		if err != nil {
			return nil, nil, err
		}
		if err := database.MigrateDB(db); err != nil {
			_ = database.CloseDB(db)
			return nil, nil, err
		}
		return store.NewGormStore(db), func() error { return database.CloseDB(db) }, nil
	}
}

// Handlers builds the HTTP handlers over the app's services.
func (a *App) Handlers() *handler.Handlers {
	return handler.New(a.Store, a.Services, a.Assistant, a.Log)
}

// Notifier logs every message and also sends it to Telegram when a bot token and chat are configured.
func (a *App) Notifier() watchdog.Notifier {
	notifiers := watchdog.MultiNotifier{watchdog.LogNotifier{Log: a.Log}}
	if a.Config.TelegramToken == "" {
		return notifiers
	}
	tg, err := watchdog.NewTelegramNotifier(a.Config.TelegramToken, a.Config.TelegramChatID)
	if err != nil {
		a.Log.Warn().Err(err).Msg("telegram notifications disabled")
		return notifiers
	}
	return append(notifiers, tg)
}

// Watchdog builds the day-rollover and reminder scheduler.
func (a *App) Watchdog() *watchdog.Watchdog {
	return watchdog.New(watchdog.Config{
		RolloverSpec: a.Config.WatchdogSpec,
		ReminderSpec: a.Config.ReminderSpec,
		Location:     a.Config.Location(),
	}, a.Store, a.Services, a.Notifier(), a.Log.With().Str("component", "watchdog").Logger())
}

// Close releases the store.
func (a *App) Close() error {
	var errs []error
	for _, c := range a.closers {
		if err := c(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

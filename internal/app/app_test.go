package app

import (
	"context"
	"io"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/rs/zerolog"

	"github.com/aebalz/ubermensch-tracker/internal/config"
	"github.com/aebalz/ubermensch-tracker/internal/model"
	"github.com/aebalz/ubermensch-tracker/internal/store"
	"github.com/aebalz/ubermensch-tracker/internal/watchdog"
)

func testConfig(t *testing.T) *config.AppConfig {
	t.Helper()
	return &config.AppConfig{
		DBDriver:       "sqlite",
		SQLitePath:     filepath.Join(t.TempDir(), "ubermensch.db"),
		StoreBackend:   "database",
		AppEnv:         "test",
		Timezone:       "UTC",
		WatchdogSpec:   "@every 1m",
		ReminderSpec:   "@every 1m",
		RedisNamespace: "ubermensch:",
	}
}

func TestNewWithSQLite(t *testing.T) {
	ctx := context.Background()
	a, err := New(ctx, testConfig(t), zerolog.New(io.Discard))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer a.Close()

	created, err := a.Services.Equipment.Create(ctx, model.FitnessEquipment{Name: "Kettlebell", Type: "Weights"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := a.Services.Equipment.Get(ctx, created.ID); err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if err := a.Store.Ping(ctx); err != nil {
		t.Fatalf("Ping() error = %v", err)
	}
	if a.Handlers().Health == nil {
		t.Fatal("handlers not wired")
	}
}

func TestNewWithRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := testConfig(t)
	cfg.StoreBackend = "redis"
	cfg.RedisAddr = mr.Addr()

	ctx := context.Background()
	a, err := New(ctx, cfg, zerolog.New(io.Discard))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer a.Close()

	if _, err := a.Services.Notes.Add(ctx, "buy magnesium", nil); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if !mr.Exists(cfg.RedisNamespace + store.KeyNotes) {
		t.Errorf("notes key not written, keys = %v", mr.Keys())
	}
}

func TestNewWithUnreachableRedis(t *testing.T) {
	cfg := testConfig(t)
	cfg.StoreBackend = "redis"
	cfg.RedisAddr = "127.0.0.1:1"
	if _, err := New(context.Background(), cfg, zerolog.New(io.Discard)); err == nil {
		t.Fatal("expected a connection error")
	}
}

func TestNotifierWithoutTelegram(t *testing.T) {
	a := &App{Config: testConfig(t), Log: zerolog.New(io.Discard)}
	n, ok := a.Notifier().(watchdog.MultiNotifier)
	if !ok || len(n) != 1 {
		t.Fatalf("Notifier() = %#v, want only the log notifier", a.Notifier())
	}
	a.Config.TelegramToken = "123:abc"
	if n, _ := a.Notifier().(watchdog.MultiNotifier); len(n) != 1 {
		t.Errorf("telegram without a chat id must be skipped, got %d notifiers", len(n))
	}
}

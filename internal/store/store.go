// Package store persists namespaced JSON documents, one per collection key.
package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when a key has never been written or was cleared.
var ErrNotFound = errors.New("store: key not found")

// Store is a flat key/value store holding one JSON document per key.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	// Clear removes every key owned by the application at once.
	Clear(ctx context.Context) error
	Ping(ctx context.Context) error
}

// Collection keys. They match the keys used by the browser build so exported stores stay compatible.
const (
	KeySupplements    = "ubermensch_supplements"
	KeyFoodItems      = "ubermensch_food_items"
	KeyRecipes        = "ubermensch_recipes"
	KeyHealthMetrics  = "ubermensch_health_metrics"
	KeyWorkouts       = "ubermensch_workouts"
	KeyEquipment      = "ubermensch_equipment"
	KeyDailyLogs      = "ubermensch_daily_logs"
	KeyNotes          = "ubermensch_notes"
	KeySupplementsDay = "supplements_last_reset"
)

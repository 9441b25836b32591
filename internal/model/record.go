package model

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Record is implemented by every tracked entity so collections can be handled generically.
type Record interface {
	GetID() string
	SetID(id string)
}

// Kind names a tracked collection.
type Kind string

const (
	KindSupplements Kind = "supplements"
	KindFood        Kind = "food"
	KindRecipes     Kind = "recipes"
	KindMetrics     Kind = "metrics"
	KindWorkouts    Kind = "workouts"
	KindEquipment   Kind = "equipment"
	KindDailyLogs   Kind = "daily_logs"
	KindNotes       Kind = "notes"
)

// Kinds lists every collection in display order.
var Kinds = []Kind{
	KindDailyLogs,
	KindSupplements,
	KindEquipment,
	KindRecipes,
	KindFood,
	KindMetrics,
	KindWorkouts,
	KindNotes,
}

// kindAliases accepts the upper-case collection names used by stored directives and older exports.
var kindAliases = map[string]Kind{
	"SUPPLEMENTS":    KindSupplements,
	"FOOD_ITEMS":     KindFood,
	"FOOD":           KindFood,
	"RECIPES":        KindRecipes,
	"HEALTH_METRICS": KindMetrics,
	"METRICS":        KindMetrics,
	"WORKOUTS":       KindWorkouts,
	"EQUIPMENT":      KindEquipment,
	"DAILY_LOGS":     KindDailyLogs,
	"NOTES":          KindNotes,
}

// ParseKind resolves a collection name in either its canonical or its upper-case alias form.
func ParseKind(s string) (Kind, error) {
	s = strings.TrimSpace(s)
	for _, k := range Kinds {
		if string(k) == s {
			return k, nil
		}
	}
	if k, ok := kindAliases[strings.ToUpper(s)]; ok {
		return k, nil
	}
	return "", fmt.Errorf("unknown collection %q", s)
}

// NewID returns a time-ordered identifier (UUIDv7).
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// IntPtr is a small helper for optional integer fields.
func IntPtr(v int) *int { return &v }

// IntValue dereferences an optional integer, treating nil as zero.
func IntValue(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

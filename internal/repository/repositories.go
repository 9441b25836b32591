package repository

import (
	"context"
	"time"

	"github.com/aebalz/ubermensch-tracker/internal/model"
	"github.com/aebalz/ubermensch-tracker/internal/store"
)

type (
	SupplementRepository = Repository[model.Supplement]
	FoodRepository       = Repository[model.FoodItem]
	RecipeRepository     = Repository[model.Recipe]
	MetricRepository     = Repository[model.HealthMetric]
	WorkoutRepository    = Repository[model.WorkoutPlan]
	EquipmentRepository  = Repository[model.FitnessEquipment]
	DailyLogRepository   = Repository[model.DailyLog]
	NoteRepository       = Repository[model.Note]
)

// Set holds one repository per tracker, all sharing a store.
type Set struct {
	Store       store.Store
	Supplements SupplementRepository
	Food        FoodRepository
	Recipes     RecipeRepository
	Metrics     MetricRepository
	Workouts    WorkoutRepository
	Equipment   EquipmentRepository
	DailyLogs   DailyLogRepository
	Notes       NoteRepository
}

// NewSet wires every tracker collection to s. now is used when seeding time-relative examples.
func NewSet(s store.Store, now func() time.Time) *Set {
	if now == nil {
		now = time.Now
	}
	return &Set{
		Store:       s,
		Supplements: NewCollection[model.Supplement](s, store.KeySupplements, nil),
		Food:        NewCollection(s, store.KeyFoodItems, seedFood),
		Recipes:     NewCollection[model.Recipe](s, store.KeyRecipes, nil),
		Metrics:     NewCollection(s, store.KeyHealthMetrics, func() []model.HealthMetric { return seedMetrics(now()) }),
		Workouts:    NewCollection(s, store.KeyWorkouts, func() []model.WorkoutPlan { return seedWorkouts(now()) }),
		Equipment:   NewCollection(s, store.KeyEquipment, seedEquipment),
		DailyLogs:   NewCollection[model.DailyLog](s, store.KeyDailyLogs, nil),
		Notes:       NewCollection(s, store.KeyNotes, seedNotes),
	}
}

// Reset clears the whole store, including keys that are not collections.
func (s *Set) Reset(ctx context.Context) error {
	return s.Store.Clear(ctx)
}

// Package service holds the tracker operations shared by the HTTP API, the CLI and the terminal UI.
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/aebalz/ubermensch-tracker/internal/csvio"
	"github.com/aebalz/ubermensch-tracker/internal/model"
	"github.com/aebalz/ubermensch-tracker/internal/repository"
	"github.com/aebalz/ubermensch-tracker/internal/table"
)

// Options configures the services. Zero values use the wall clock in local time.
type Options struct {
	Now      func() time.Time
	Location *time.Location
}

type clock struct {
	now func() time.Time
	loc *time.Location
}

func (c clock) Now() time.Time {
	return c.now().In(c.loc)
}

// Today is the current calendar day in the configured location.
func (c clock) Today() string {
	return c.Now().Format(model.DateLayout)
}

// Services bundles one service per tracker over a shared repository set.
type Services struct {
	Supplements *Supplements
	Food        *Food
	Recipes     *Recipes
	Metrics     *Metrics
	Workouts    *Workouts
	Equipment   *Equipment
	DailyLogs   *DailyLogs
	Notes       *Notes

	repos *repository.Set
	clock clock
}

// New wires the tracker services to repos.
func New(repos *repository.Set, opts Options) *Services {
	clk := clock{now: opts.Now, loc: opts.Location}
	if clk.now == nil {
		clk.now = time.Now
	}
	if clk.loc == nil {
		clk.loc = time.Local
	}
	metricDefaults := func(m *model.HealthMetric) {
		if m.Timestamp.IsZero() {
			m.Timestamp = clk.Now()
		}
	}
	return &Services{
		Supplements: &Supplements{&Tracker[model.Supplement, *model.Supplement]{
			Kind: model.KindSupplements, Repo: repos.Supplements, Codec: csvio.Supplements,
			Columns: supplementColumns, Defaults: supplementDefaults,
		}},
		Food: &Food{&Tracker[model.FoodItem, *model.FoodItem]{
			Kind: model.KindFood, Repo: repos.Food, Codec: csvio.Food, Columns: foodColumns,
		}},
		Recipes: &Recipes{&Tracker[model.Recipe, *model.Recipe]{
			Kind: model.KindRecipes, Repo: repos.Recipes, Codec: csvio.Recipes,
			Columns: recipeColumns, Defaults: recipeDefaults,
		}},
		Metrics: &Metrics{&Tracker[model.HealthMetric, *model.HealthMetric]{
			Kind: model.KindMetrics, Repo: repos.Metrics, Codec: csvio.Metrics,
			Columns: metricColumns, Defaults: metricDefaults,
		}},
		Workouts: &Workouts{&Tracker[model.WorkoutPlan, *model.WorkoutPlan]{
			Kind: model.KindWorkouts, Repo: repos.Workouts, Codec: csvio.Workouts,
			Columns: workoutColumns, Defaults: workoutDefaults,
		}},
		Equipment: &Equipment{&Tracker[model.FitnessEquipment, *model.FitnessEquipment]{
			Kind: model.KindEquipment, Repo: repos.Equipment, Codec: csvio.Equipment, Columns: equipmentColumns,
		}},
		DailyLogs: &DailyLogs{
			Tracker: &Tracker[model.DailyLog, *model.DailyLog]{
				Kind: model.KindDailyLogs, Repo: repos.DailyLogs, Columns: dailyLogColumns,
			},
			clock: clk,
		},
		Notes: &Notes{
			Tracker: &Tracker[model.Note, *model.Note]{
				Kind: model.KindNotes, Repo: repos.Notes, Columns: noteColumns,
				Defaults: noteDefaults(clk), Prepend: true,
			},
			clock: clk,
		},
		repos: repos,
		clock: clk,
	}
}

// Now is the current time in the configured location.
func (s *Services) Now() time.Time {
	return s.clock.Now()
}

// Today is the current calendar day (YYYY-MM-DD) in the configured location.
func (s *Services) Today() string {
	return s.clock.Today()
}

// Reset clears the entire store. Collections reseed on their next load.
func (s *Services) Reset(ctx context.Context) error {
	return s.repos.Reset(ctx)
}

// Snapshot is every collection at one point in time.
type Snapshot struct {
	ExportedAt  time.Time                `json:"exportedAt"`
	Supplements []model.Supplement       `json:"supplements"`
	Food        []model.FoodItem         `json:"foodItems"`
	Recipes     []model.Recipe           `json:"recipes"`
	Metrics     []model.HealthMetric     `json:"healthMetrics"`
	Workouts    []model.WorkoutPlan      `json:"workouts"`
	Equipment   []model.FitnessEquipment `json:"equipment"`
	DailyLogs   []model.DailyLog         `json:"dailyLogs"`
	Notes       []model.Note             `json:"notes"`
}

// Collections returns the snapshot keyed by collection, in display order.
func (s *Snapshot) Collections() []Collection {
	return []Collection{
		{model.KindDailyLogs, s.DailyLogs},
		{model.KindSupplements, s.Supplements},
		{model.KindEquipment, s.Equipment},
		{model.KindRecipes, s.Recipes},
		{model.KindFood, s.Food},
		{model.KindMetrics, s.Metrics},
		{model.KindWorkouts, s.Workouts},
		{model.KindNotes, s.Notes},
	}
}

// Collection is one named collection of a snapshot.
type Collection struct {
	Kind  model.Kind
	Items any
}

// Snapshot loads every collection.
func (s *Services) Snapshot(ctx context.Context) (*Snapshot, error) {
	snap := &Snapshot{ExportedAt: s.clock.Now()}
	var err error
	if snap.Supplements, err = s.Supplements.List(ctx); err != nil {
		return nil, err
	}
	if snap.Food, err = s.Food.List(ctx); err != nil {
		return nil, err
	}
	if snap.Recipes, err = s.Recipes.List(ctx); err != nil {
		return nil, err
	}
	if snap.Metrics, err = s.Metrics.List(ctx); err != nil {
		return nil, err
	}
	if snap.Workouts, err = s.Workouts.List(ctx); err != nil {
		return nil, err
	}
	if snap.Equipment, err = s.Equipment.List(ctx); err != nil {
		return nil, err
	}
	if snap.DailyLogs, err = s.DailyLogs.List(ctx); err != nil {
		return nil, err
	}
	if snap.Notes, err = s.Notes.List(ctx); err != nil {
		return nil, err
	}
	return snap, nil
}

// Tabular is the kind-independent surface of a tracker used by the CLI.
type Tabular interface {
	ImportCSV(ctx context.Context, r io.Reader) (int, error)
	ExportCSV(ctx context.Context, w io.Writer) error
	View(ctx context.Context, sortKey string, clicks int) (table.View, error)
	FileName() string
}

// Tabular returns the tracker of collection kind.
func (s *Services) Tabular(kind model.Kind) (Tabular, error) {
	switch kind {
	case model.KindSupplements:
		return s.Supplements, nil
	case model.KindFood:
		return s.Food, nil
	case model.KindRecipes:
		return s.Recipes, nil
	case model.KindMetrics:
		return s.Metrics, nil
	case model.KindWorkouts:
		return s.Workouts, nil
	case model.KindEquipment:
		return s.Equipment, nil
	case model.KindDailyLogs:
		return s.DailyLogs, nil
	case model.KindNotes:
		return s.Notes, nil
	}
	return nil, fmt.Errorf("%w: unknown collection %q", ErrValidation, kind)
}

// JSONWriter creates and patches records of one collection from raw JSON.
type JSONWriter interface {
	CreateJSON(ctx context.Context, raw json.RawMessage) (any, error)
	PatchJSON(ctx context.Context, id string, raw json.RawMessage) (any, error)
	CheckJSON(raw json.RawMessage) error
}

// Writer returns the JSON writer of collection kind.
func (s *Services) Writer(kind model.Kind) (JSONWriter, error) {
	switch kind {
	case model.KindSupplements:
		return s.Supplements, nil
	case model.KindFood:
		return s.Food, nil
	case model.KindRecipes:
		return s.Recipes, nil
	case model.KindMetrics:
		return s.Metrics, nil
	case model.KindWorkouts:
		return s.Workouts, nil
	case model.KindEquipment:
		return s.Equipment, nil
	case model.KindDailyLogs:
		return s.DailyLogs, nil
	case model.KindNotes:
		return s.Notes, nil
	}
	return nil, fmt.Errorf("%w: unknown collection %q", ErrValidation, kind)
}

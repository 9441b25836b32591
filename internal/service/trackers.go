package service

import (
	"context"
	"fmt"
	"math"
	"slices"

	"github.com/aebalz/ubermensch-tracker/internal/model"
)

type Supplements struct {
	*Tracker[model.Supplement, *model.Supplement]
}

// ToggleTaken flips the taken-today flag.
func (s *Supplements) ToggleTaken(ctx context.Context, id string) (model.Supplement, error) {
	return s.Modify(ctx, id, func(x *model.Supplement) error {
		x.TakenToday = !x.TakenToday
		return nil
	})
}

// AdjustStock adds delta to the current stock, never going below zero.
func (s *Supplements) AdjustStock(ctx context.Context, id string, delta int) (model.Supplement, error) {
	return s.Modify(ctx, id, func(x *model.Supplement) error {
		x.CurrentStock = model.ClampStock(x.CurrentStock, delta)
		return nil
	})
}

// LowStock returns the supplements at or below their positive threshold.
func (s *Supplements) LowStock(ctx context.Context) ([]model.Supplement, error) {
	items, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	low := []model.Supplement{}
	for i := range items {
		if items[i].LowOnStock() {
			low = append(low, items[i])
		}
	}
	return low, nil
}

// ResetTaken clears every taken-today flag and reports how many were set.
func (s *Supplements) ResetTaken(ctx context.Context) (int, error) {
	cleared := 0
	_, err := s.Repo.Mutate(ctx, func(items []model.Supplement) ([]model.Supplement, error) {
		for i := range items {
			if items[i].TakenToday {
				items[i].TakenToday = false
				cleared++
			}
		}
		return items, nil
	})
	return cleared, wrap(err)
}

type Food struct {
	*Tracker[model.FoodItem, *model.FoodItem]
}

// AdjustStock adds delta to the current stock, never going below zero.
func (f *Food) AdjustStock(ctx context.Context, id string, delta int) (model.FoodItem, error) {
	return f.Modify(ctx, id, func(x *model.FoodItem) error {
		x.CurrentStock = model.ClampStock(x.CurrentStock, delta)
		return nil
	})
}

// LowStock returns the pantry items at or below their positive threshold.
func (f *Food) LowStock(ctx context.Context) ([]model.FoodItem, error) {
	items, err := f.List(ctx)
	if err != nil {
		return nil, err
	}
	low := []model.FoodItem{}
	for i := range items {
		if items[i].LowOnStock() {
			low = append(low, items[i])
		}
	}
	return low, nil
}

type Recipes struct {
	*Tracker[model.Recipe, *model.Recipe]
}

// ToggleTag adds tag to the recipe, or removes it when already present. Only catalogue tags are accepted.
func (r *Recipes) ToggleTag(ctx context.Context, id, tag string) (model.Recipe, error) {
	if !slices.Contains(model.RecipeTags, tag) {
		return model.Recipe{}, fmt.Errorf("%w: unknown recipe tag %q", ErrValidation, tag)
	}
	return r.Modify(ctx, id, func(x *model.Recipe) error {
		if i := slices.Index(x.Tags, tag); i >= 0 {
			x.Tags = slices.Delete(x.Tags, i, i+1)
			return nil
		}
		x.Tags = append(x.Tags, tag)
		return nil
	})
}

type Metrics struct {
	*Tracker[model.HealthMetric, *model.HealthMetric]
}

// Progress is a metric's value relative to its target.
type Progress struct {
	ID      string  `json:"id"`
	Value   string  `json:"value"`
	Target  string  `json:"targetValue"`
	Percent float64 `json:"percent"`
	// Display is Percent clamped to 0..100 for progress bars.
	Display float64 `json:"display"`
	Reached bool    `json:"reached"`
}

// Progress computes value/target*100 for the metric with id. Non-numeric values yield 0.
func (m *Metrics) Progress(ctx context.Context, id string) (Progress, error) {
	metric, err := m.Get(ctx, id)
	if err != nil {
		return Progress{}, err
	}
	pct := metric.Progress()
	return Progress{
		ID:      metric.ID,
		Value:   metric.Value,
		Target:  metric.TargetValue,
		Percent: pct,
		Display: DisplayProgress(pct),
		Reached: pct >= 100,
	}, nil
}

// DisplayProgress clamps a percentage to the 0..100 range of a progress bar.
func DisplayProgress(pct float64) float64 {
	return math.Max(0, math.Min(100, pct))
}

type Workouts struct {
	*Tracker[model.WorkoutPlan, *model.WorkoutPlan]
}

// ToggleCompleted flips the completed flag.
func (w *Workouts) ToggleCompleted(ctx context.Context, id string) (model.WorkoutPlan, error) {
	return w.Modify(ctx, id, func(x *model.WorkoutPlan) error {
		x.Completed = !x.Completed
		return nil
	})
}

func workoutDefaults(w *model.WorkoutPlan) {
	if w.Type == "" {
		w.Type = "Strength"
	}
	if w.Duration == "" {
		w.Duration = "60"
	}
	if w.Intensity == "" {
		w.Intensity = model.IntensityMedium
	}
}

func supplementDefaults(s *model.Supplement) {
	if s.Timing == "" {
		s.Timing = model.TimingBoth
	}
}

func recipeDefaults(r *model.Recipe) {
	if r.Tags == nil {
		r.Tags = []string{}
	}
}

type Equipment struct {
	*Tracker[model.FitnessEquipment, *model.FitnessEquipment]
}

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aebalz/ubermensch-tracker/internal/model"
	"github.com/aebalz/ubermensch-tracker/internal/repository"
)

// DailyLogs keeps at most one journal entry per calendar day.
type DailyLogs struct {
	*Tracker[model.DailyLog, *model.DailyLog]
	clock clock
}

// Save stores log for its date. An existing log for the same date is replaced and keeps its id.
func (d *DailyLogs) Save(ctx context.Context, log model.DailyLog) (model.DailyLog, error) {
	if err := checkDate(log.Date); err != nil {
		return log, err
	}
	_, err := d.Repo.Mutate(ctx, func(items []model.DailyLog) ([]model.DailyLog, error) {
		if i := indexOfDate(items, log.Date); i >= 0 {
			log.ID = items[i].ID
			items[i] = log
			return items, nil
		}
		log.ID = model.NewID()
		return append(items, log), nil
	})
	return log, wrap(err)
}

// ForDate returns the stored log for date.
func (d *DailyLogs) ForDate(ctx context.Context, date string) (model.DailyLog, error) {
	items, err := d.List(ctx)
	if err != nil {
		return model.DailyLog{}, err
	}
	for _, l := range items {
		if l.Date == date {
			return l, nil
		}
	}
	return model.DailyLog{}, fmt.Errorf("daily log for %s: %w", date, ErrNotFound)
}

// OrDefault returns the stored log for date, or the default log when none exists yet. The default is not stored.
func (d *DailyLogs) OrDefault(ctx context.Context, date string) (model.DailyLog, error) {
	l, err := d.ForDate(ctx, date)
	if err == nil {
		return l, nil
	}
	if !isNotFound(err) {
		return model.DailyLog{}, err
	}
	return model.NewDailyLog(date), nil
}

// Today returns today's log or the default one.
func (d *DailyLogs) Today(ctx context.Context) (model.DailyLog, error) {
	return d.OrDefault(ctx, d.clock.Today())
}

// AdjustHydration adds delta ounces to the day's hydration, never going below zero.
func (d *DailyLogs) AdjustHydration(ctx context.Context, date string, delta int) (model.DailyLog, error) {
	return d.adjust(ctx, date, func(l *model.DailyLog) {
		l.Hydration = model.ClampStock(l.Hydration, delta)
	})
}

// AdjustBowelMovements adds delta to the day's count, never going below zero.
func (d *DailyLogs) AdjustBowelMovements(ctx context.Context, date string, delta int) (model.DailyLog, error) {
	return d.adjust(ctx, date, func(l *model.DailyLog) {
		l.BowelMovements = model.ClampStock(l.BowelMovements, delta)
	})
}

// AddMeal appends a meal to the day's log. A meal without a time is stamped with the current HH:MM.
func (d *DailyLogs) AddMeal(ctx context.Context, date string, meal model.Meal) (model.DailyLog, error) {
	meal.Description = strings.TrimSpace(meal.Description)
	if meal.Description == "" {
		return model.DailyLog{}, fmt.Errorf("%w: meal description is required", ErrValidation)
	}
	if meal.Time == "" {
		meal.Time = d.clock.Now().Format("15:04")
	}
	return d.adjust(ctx, date, func(l *model.DailyLog) {
		l.Meals = append(l.Meals, meal)
	})
}

// adjust applies fn to the day's log, starting from the default log when none is stored, under the collection lock.
func (d *DailyLogs) adjust(ctx context.Context, date string, fn func(*model.DailyLog)) (model.DailyLog, error) {
	if err := checkDate(date); err != nil {
		return model.DailyLog{}, err
	}
	var out model.DailyLog
	_, err := d.Repo.Mutate(ctx, func(items []model.DailyLog) ([]model.DailyLog, error) {
		if i := indexOfDate(items, date); i >= 0 {
			fn(&items[i])
			out = items[i]
			return items, nil
		}
		l := model.NewDailyLog(date)
		l.ID = model.NewID()
		fn(&l)
		out = l
		return append(items, l), nil
	})
	return out, wrap(err)
}

// Modify applies fn to the log with id. Moving a log onto a date that already has one is rejected.
func (d *DailyLogs) Modify(ctx context.Context, id string, fn func(*model.DailyLog) error) (model.DailyLog, error) {
	var out model.DailyLog
	_, err := d.Repo.Mutate(ctx, func(items []model.DailyLog) ([]model.DailyLog, error) {
		i := repository.IndexOf[model.DailyLog, *model.DailyLog](items, id)
		if i < 0 {
			return nil, d.notFound(id)
		}
		l := items[i]
		if err := fn(&l); err != nil {
			return nil, err
		}
		l.ID = id
		if err := checkDate(l.Date); err != nil {
			return nil, err
		}
		if j := indexOfDate(items, l.Date); j >= 0 && j != i {
			return nil, fmt.Errorf("%w: a daily log for %s already exists", ErrValidation, l.Date)
		}
		items[i] = l
		out = l
		return items, nil
	})
	return out, wrap(err)
}

// Update replaces the log with id, keeping its id.
func (d *DailyLogs) Update(ctx context.Context, id string, log model.DailyLog) (model.DailyLog, error) {
	return d.Modify(ctx, id, func(l *model.DailyLog) error {
		*l = log
		return nil
	})
}

// PatchJSON merges the fields present in raw into the log with id.
func (d *DailyLogs) PatchJSON(ctx context.Context, id string, raw json.RawMessage) (any, error) {
	patched, err := d.Modify(ctx, id, func(l *model.DailyLog) error {
		if err := json.Unmarshal(raw, l); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrValidation, d.Kind, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return patched, nil
}

// CreateJSON decodes a daily log and saves it under its date.
func (d *DailyLogs) CreateJSON(ctx context.Context, raw json.RawMessage) (any, error) {
	var l model.DailyLog
	if err := json.Unmarshal(raw, &l); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrValidation, d.Kind, err)
	}
	saved, err := d.Save(ctx, l)
	if err != nil {
		return nil, err
	}
	return saved, nil
}

func checkDate(date string) error {
	if _, err := time.Parse(model.DateLayout, date); err != nil {
		return fmt.Errorf("%w: date %q must be YYYY-MM-DD", ErrValidation, date)
	}
	return nil
}

func indexOfDate(items []model.DailyLog, date string) int {
	for i := range items {
		if items[i].Date == date {
			return i
		}
	}
	return -1
}

func isNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

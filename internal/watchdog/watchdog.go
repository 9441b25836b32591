// Package watchdog runs the periodic jobs: the daily reset of supplement check-offs and note reminders.
package watchdog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/aebalz/ubermensch-tracker/internal/model"
	"github.com/aebalz/ubermensch-tracker/internal/service"
	"github.com/aebalz/ubermensch-tracker/internal/store"
)

var (
	rolloversTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ubermensch_day_rollovers_total",
		Help: "Number of day rollovers that cleared supplement check-offs.",
	})
	remindersTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ubermensch_reminders_total",
		Help: "Note reminders by delivery result.",
	}, []string{"result"})
)

// Config holds the schedules in cron syntax (descriptors such as "@every 1m" are accepted).
type Config struct {
	RolloverSpec string
	ReminderSpec string
	Location     *time.Location
}

type Watchdog struct {
	Store    store.Store
	Services *service.Services
	Notifier Notifier
	Log      zerolog.Logger
	Now      func() time.Time

	cfg  Config
	cron *cron.Cron
}

func New(cfg Config, st store.Store, svc *service.Services, n Notifier, log zerolog.Logger) *Watchdog {
	if cfg.RolloverSpec == "" {
		cfg.RolloverSpec = "@every 1m"
	}
	if cfg.ReminderSpec == "" {
		cfg.ReminderSpec = "@every 1m"
	}
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	if n == nil {
		n = LogNotifier{Log: log}
	}
	return &Watchdog{Store: st, Services: svc, Notifier: n, Log: log, Now: time.Now, cfg: cfg}
}

// Start checks for a rollover once, then schedules both jobs. Jobs run until Stop.
func (w *Watchdog) Start(ctx context.Context) error {
	if _, err := w.CheckRollover(ctx); err != nil {
		w.Log.Error().Err(err).Msg("initial day rollover check failed")
	}

	c := cron.New(cron.WithLocation(w.cfg.Location), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
	if _, err := c.AddFunc(w.cfg.RolloverSpec, func() {
		if _, err := w.CheckRollover(ctx); err != nil {
			w.Log.Error().Err(err).Msg("day rollover check failed")
		}
	}); err != nil {
		return fmt.Errorf("schedule rollover %q: %w", w.cfg.RolloverSpec, err)
	}
	if _, err := c.AddFunc(w.cfg.ReminderSpec, func() {
		if _, err := w.DeliverReminders(ctx); err != nil {
			w.Log.Error().Err(err).Msg("reminder delivery failed")
		}
	}); err != nil {
		return fmt.Errorf("schedule reminders %q: %w", w.cfg.ReminderSpec, err)
	}
	c.Start()
	w.cron = c
	w.Log.Info().Str("rollover", w.cfg.RolloverSpec).Str("reminders", w.cfg.ReminderSpec).Msg("watchdog started")
	return nil
}

// Stop halts the scheduler and waits for running jobs.
func (w *Watchdog) Stop() {
	if w.cron == nil {
		return
	}
	<-w.cron.Stop().Done()
	w.Log.Info().Msg("watchdog stopped")
}

func (w *Watchdog) today() string {
	return w.Now().In(w.cfg.Location).Format(model.DateLayout)
}

// LastReset returns the day of the last rollover, or "" when none is stored.
func (w *Watchdog) LastReset(ctx context.Context) (string, error) {
	raw, err := w.Store.Get(ctx, store.KeySupplementsDay)
	if errors.Is(err, store.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	var day string
	if err := json.Unmarshal(raw, &day); err != nil {
		// Older markers were stored as a bare string.
		return strings.TrimSpace(string(raw)), nil
	}
	return day, nil
}

// CheckRollover clears every supplement's taken-today flag when the stored day differs from today,
// then records today. It reports whether a rollover happened.
func (w *Watchdog) CheckRollover(ctx context.Context) (bool, error) {
	today := w.today()
	last, err := w.LastReset(ctx)
	if err != nil {
		return false, fmt.Errorf("read last reset: %w", err)
	}
	if last == today {
		return false, nil
	}

	cleared, err := w.Services.Supplements.ResetTaken(ctx)
	if err != nil {
		return false, fmt.Errorf("reset supplements: %w", err)
	}
	raw, err := json.Marshal(today)
	if err != nil {
		return false, fmt.Errorf("encode last reset: %w", err)
	}
	if err := w.Store.Set(ctx, store.KeySupplementsDay, raw); err != nil {
		return false, fmt.Errorf("store last reset: %w", err)
	}
	rolloversTotal.Inc()
	w.Log.Info().Str("previous", last).Str("today", today).Int("cleared", cleared).Msg("day rollover")

	msg, err := w.rolloverMessage(ctx, today, cleared)
	if err != nil {
		return true, err
	}
	if err := w.Notifier.Notify(ctx, msg); err != nil {
		w.Log.Warn().Err(err).Msg("rollover notification failed")
	}
	return true, nil
}

func (w *Watchdog) rolloverMessage(ctx context.Context, today string, cleared int) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "Good morning! It's %s. %d supplement check-offs were reset.", today, cleared)

	sups, err := w.Services.Supplements.LowStock(ctx)
	if err != nil {
		return "", err
	}
	food, err := w.Services.Food.LowStock(ctx)
	if err != nil {
		return "", err
	}
	if len(sups)+len(food) == 0 {
		return b.String(), nil
	}
	b.WriteString("\nRunning low:")
	for _, s := range sups {
		fmt.Fprintf(&b, "\n- %s (%d left)", s.Name, model.IntValue(s.CurrentStock))
	}
	for _, f := range food {
		fmt.Fprintf(&b, "\n- %s (%d left)", f.Name, model.IntValue(f.CurrentStock))
	}
	return b.String(), nil
}

// DeliverReminders notifies every due note reminder and marks the delivered ones.
// A failed delivery is retried on the next run.
func (w *Watchdog) DeliverReminders(ctx context.Context) (int, error) {
	due, err := w.Services.Notes.DueReminders(ctx, w.Now())
	if err != nil {
		return 0, err
	}
	var delivered []string
	for _, n := range due {
		if err := w.Notifier.Notify(ctx, "Reminder: "+n.Content); err != nil {
			remindersTotal.WithLabelValues("failed").Inc()
			w.Log.Warn().Err(err).Str("note", n.ID).Msg("reminder not delivered")
			continue
		}
		remindersTotal.WithLabelValues("delivered").Inc()
		delivered = append(delivered, n.ID)
	}
	if err := w.Services.Notes.MarkNotified(ctx, delivered...); err != nil {
		return 0, err
	}
	return len(delivered), nil
}

package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aebalz/ubermensch-tracker/internal/model"
	"github.com/aebalz/ubermensch-tracker/internal/repository"
	"github.com/aebalz/ubermensch-tracker/internal/service"
	"github.com/aebalz/ubermensch-tracker/internal/store/storetest"
	"github.com/aebalz/ubermensch-tracker/internal/table"
)

func newTestModel(t *testing.T) (appModel, *service.Services) {
	t.Helper()
	clock := func() time.Time { return time.Date(2026, 3, 10, 9, 15, 0, 0, time.UTC) }
	svc := service.New(repository.NewSet(storetest.New(t), clock), service.Options{Now: clock, Location: time.UTC})
	ctx := context.Background()
	for _, name := range []string{"Zinc", "Creatine"} {
		if _, err := svc.Supplements.Create(ctx, model.Supplement{Name: name}); err != nil {
			t.Fatal(err)
		}
	}
	m, err := newModel(ctx, svc)
	if err != nil {
		t.Fatal(err)
	}
	return run(t, m, m.Init()), svc
}

// run executes cmd synchronously and feeds its message back into the model.
func run(t *testing.T, m appModel, cmd tea.Cmd) appModel {
	t.Helper()
	if cmd == nil {
		return m
	}
	next, _ := m.Update(cmd())
	return next.(appModel)
}

func press(t *testing.T, m appModel, key tea.KeyMsg) appModel {
	t.Helper()
	next, cmd := m.Update(key)
	nm := next.(appModel)
	if cmd != nil {
		if msg := cmd(); msg != nil {
			if _, quit := msg.(tea.QuitMsg); !quit {
				next, _ = nm.Update(msg)
				nm = next.(appModel)
			}
		}
	}
	return nm
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModelLoadsFirstTab(t *testing.T) {
	m, _ := newTestModel(t)
	if m.tabs.Active() != "supplements" {
		t.Fatalf("active tab = %q", m.tabs.Active())
	}
	if got := m.tabs.Panel().Len(); got != 2 {
		t.Fatalf("rows = %d, want 2", got)
	}
	if !strings.Contains(m.View(), "Creatine") {
		t.Errorf("view missing rows:\n%s", m.View())
	}
}

func TestModelSortAndToggle(t *testing.T) {
	m, svc := newTestModel(t)

	m = press(t, m, runes("1"))
	if v := m.tabs.Panel().View(); v.Sort.Key != "name" || v.Sort.Direction != table.Ascending || v.Rows[0][0] != "Creatine" {
		t.Fatalf("after one click: sort %+v first row %q", v.Sort, v.Rows[0][0])
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeySpace})
	items, err := svc.Supplements.List(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	for _, s := range items {
		if s.TakenToday != (s.Name == "Creatine") {
			t.Errorf("%s taken = %v", s.Name, s.TakenToday)
		}
	}
}

func TestModelDeleteNeedsConfirmation(t *testing.T) {
	m, svc := newTestModel(t)
	ctx := context.Background()

	m = press(t, m, runes("d"))
	if !m.confirming {
		t.Fatal("delete did not ask for confirmation")
	}
	m = press(t, m, runes("n"))
	if items, _ := svc.Supplements.List(ctx); len(items) != 2 {
		t.Fatalf("declined delete removed a row, %d left", len(items))
	}

	m = press(t, m, runes("j"))
	m = press(t, m, runes("d"))
	m = press(t, m, runes("y"))
	items, _ := svc.Supplements.List(ctx)
	if len(items) != 1 || items[0].Name != "Zinc" {
		t.Fatalf("after delete = %+v", items)
	}
	if m.selected != 0 {
		t.Errorf("selection = %d, want clamped to 0", m.selected)
	}
}

func TestModelTabSwitchRebuildsPanel(t *testing.T) {
	m, _ := newTestModel(t)
	m = press(t, m, runes("1"))
	m = press(t, m, runes("j"))

	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.tabs.Active() != "food" || m.selected != 0 {
		t.Fatalf("after tab: active %q selected %d", m.tabs.Active(), m.selected)
	}
	m = press(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if v := m.tabs.Panel().View(); v.Sort.Key != "" {
		t.Errorf("sort survived the tab switch: %+v", v.Sort)
	}

	m = press(t, m, runes("h"))
	if m.tabs.Active() != "notes" {
		t.Errorf("prev from first tab = %q, want notes", m.tabs.Active())
	}
	if m = press(t, m, tea.KeyMsg{Type: tea.KeySpace}); !strings.Contains(m.status, "no toggle") {
		t.Errorf("status = %q", m.status)
	}
}

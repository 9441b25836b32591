package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aebalz/ubermensch-tracker/internal/service"
	"github.com/aebalz/ubermensch-tracker/internal/table"
	"github.com/aebalz/ubermensch-tracker/internal/tabs"
	"github.com/aebalz/ubermensch-tracker/internal/ui"
)

// Tabs builds the tracker tabs in display order.
func Tabs(svc *service.Services) []tabs.Tab[panel] {
	return []tabs.Tab[panel]{
		{ID: "supplements", Label: "Supplements", New: func() panel {
			return newPanel(svc.Supplements.Tracker, discard(svc.Supplements.ToggleTaken))
		}},
		{ID: "food", Label: "Food", New: func() panel { return newPanel(svc.Food.Tracker, nil) }},
		{ID: "recipes", Label: "Recipes", New: func() panel { return newPanel(svc.Recipes.Tracker, nil) }},
		{ID: "metrics", Label: "Metrics", New: func() panel { return newPanel(svc.Metrics.Tracker, nil) }},
		{ID: "workouts", Label: "Workouts", New: func() panel {
			return newPanel(svc.Workouts.Tracker, discard(svc.Workouts.ToggleCompleted))
		}},
		{ID: "equipment", Label: "Equipment", New: func() panel { return newPanel(svc.Equipment.Tracker, nil) }},
		{ID: "daily-logs", Label: "Daily Logs", New: func() panel { return newPanel(svc.DailyLogs.Tracker, nil) }},
		{ID: "notes", Label: "Notes", New: func() panel { return newPanel(svc.Notes.Tracker, nil) }},
	}
}

type loadedMsg struct {
	err error
}

type appModel struct {
	ctx  context.Context
	tabs *tabs.Container[panel]

	selected   int
	confirming bool
	status     string
	err        error
}

func newModel(ctx context.Context, svc *service.Services) (appModel, error) {
	c, err := tabs.New(Tabs(svc))
	if err != nil {
		return appModel{}, err
	}
	return appModel{ctx: ctx, tabs: c, status: "Loading…"}, nil
}

func (m appModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m appModel) loadCmd() tea.Cmd {
	p := m.tabs.Panel()
	return func() tea.Msg {
		return loadedMsg{err: p.Load(m.ctx)}
	}
}

// switched resets per-tab state after the container mounted a fresh panel.
func (m appModel) switched() (tea.Model, tea.Cmd) {
	m.selected = 0
	m.confirming = false
	m.status = "Loading…"
	return m, m.loadCmd()
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		m.err = msg.err
		if msg.err != nil {
			m.status = "Load failed: " + msg.err.Error()
			return m, nil
		}
		m.status = fmt.Sprintf("%d rows.", m.tabs.Panel().Len())
		m.clampSelection()
		return m, nil
	case tea.KeyMsg:
		if m.confirming {
			return m.confirm(msg.String())
		}
		return m.key(msg.String())
	}
	return m, nil
}

func (m appModel) key(k string) (tea.Model, tea.Cmd) {
	p := m.tabs.Panel()
	switch k {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "tab", "right", "l":
		m.tabs.Next()
		return m.switched()
	case "shift+tab", "left", "h":
		m.tabs.Prev()
		return m.switched()
	case "r":
		m.status = "Refreshing…"
		return m, m.loadCmd()
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
	case "down", "j":
		if m.selected < p.Len()-1 {
			m.selected++
		}
	case " ", "enter":
		if err := p.Toggle(m.ctx, m.selected); err != nil {
			m.status = err.Error()
		} else {
			m.status = "Updated."
		}
	case "d":
		if p.Len() == 0 {
			return m, nil
		}
		m.confirming = true
		m.status = "Are you sure you want to delete this item? (y/n)"
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		if err := p.Click(int(k[0] - '1')); err != nil {
			m.status = "No such column."
		}
	}
	return m, nil
}

func (m appModel) confirm(k string) (tea.Model, tea.Cmd) {
	m.confirming = false
	deleted, err := m.tabs.Panel().Delete(m.ctx, m.selected, k == "y" || k == "Y")
	switch {
	case err != nil:
		m.status = "Delete failed: " + err.Error()
	case deleted:
		m.status = "Deleted."
		m.clampSelection()
	default:
		m.status = "Kept."
	}
	return m, nil
}

func (m *appModel) clampSelection() {
	n := m.tabs.Panel().Len()
	if m.selected >= n {
		m.selected = n - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

func (m appModel) View() string {
	var b strings.Builder
	b.WriteString(ui.Title.Render("Ubermensch"))
	b.WriteString("\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")
	if m.err == nil {
		b.WriteString(table.Terminal(m.tabs.Panel().View(), m.selected))
		b.WriteString("\n")
	}
	b.WriteString(ui.Muted.Render("tab/←→ switch · ↑↓ move · 1-9 sort · space toggle · d delete · r refresh · q quit"))
	b.WriteString("\n")
	b.WriteString(m.status)
	b.WriteString("\n")
	return b.String()
}

func (m appModel) renderTabs() string {
	labels := make([]string, 0, len(m.tabs.Tabs()))
	for i, t := range m.tabs.Tabs() {
		if i == m.tabs.ActiveIndex() {
			labels = append(labels, ui.ActiveTab.Render(t.Label))
		} else {
			labels = append(labels, ui.InactiveTab.Render(t.Label))
		}
	}
	return strings.Join(labels, " ")
}

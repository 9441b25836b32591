package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Shared terminal styles for the CLI and the TUI.

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("135") // purple
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)

	Header      = lipgloss.NewStyle().Bold(true).Foreground(cPrimary).Padding(0, 1)
	Cell        = lipgloss.NewStyle().Padding(0, 1)
	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("230")).Background(cAccent).Padding(0, 1)
	Border      = lipgloss.NewStyle().Foreground(cMuted)

	ActiveTab   = lipgloss.NewStyle().Bold(true).Foreground(cAccent).Underline(true).Padding(0, 1)
	InactiveTab = lipgloss.NewStyle().Foreground(cMuted).Padding(0, 1)
)

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

const (
	IconOK    = "✓"
	IconError = "✗"
)

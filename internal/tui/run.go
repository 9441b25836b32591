package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aebalz/ubermensch-tracker/internal/service"
)

// Run shows the tabbed tracker tables until the user quits.
func Run(ctx context.Context, svc *service.Services, out io.Writer) error {
	m, err := newModel(ctx, svc)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithOutput(out), tea.WithContext(ctx))
	_, err = p.Run()
	return err
}

package table

import (
	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"

	"github.com/aebalz/ubermensch-tracker/internal/ui"
)

// Sort indicators appended to the active header.
const (
	arrowUp   = " ▲"
	arrowDown = " ▼"
)

// Terminal renders a view as a bordered terminal table. selected highlights one
// body row; pass -1 for none.
func Terminal(v View, selected int) string {
	headers := make([]string, len(v.Headers))
	copy(headers, v.Headers)
	for i, k := range v.Keys {
		if k != v.Sort.Key {
			continue
		}
		switch v.Sort.Direction {
		case Ascending:
			headers[i] += arrowUp
		case Descending:
			headers[i] += arrowDown
		}
	}

	rows := v.Rows
	if v.Placeholder != "" {
		// lipgloss tables have no column spans; the placeholder occupies the first cell.
		row := make([]string, len(headers))
		row[0] = v.Placeholder
		rows = [][]string{row}
		selected = -1
	}

	t := ltable.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(ui.Border).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == ltable.HeaderRow:
				return ui.Header
			case row == selected:
				return ui.SelectedRow
			case v.Placeholder != "":
				return ui.Muted.Padding(0, 1)
			default:
				return ui.Cell
			}
		})
	return t.String()
}

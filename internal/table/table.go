// Package table implements a generic sortable table: typed rows under configurable
// columns, tri-state header sorting and optional edit/delete row actions.
package table

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
)

// NoDataText is shown in the single placeholder row of an empty table.
const NoDataText = "No data available"

// ErrRowOutOfRange is returned by row actions addressed past the visible rows.
var ErrRowOutOfRange = errors.New("table: row out of range")

// Column describes one table column. Value accesses the field used for display and sorting;
// Render, when set, replaces the default cell text.
type Column[T any] struct {
	Header string
	Key    string
	Value  func(T) any
	Render func(T) string
}

// Table renders rows under columns. Rows keep their insertion order until a header is clicked.
type Table[T any] struct {
	Columns []Column[T]
	Rows    []T
	Sort    SortState

	OnEdit   func(T) error
	OnDelete func(T) error
	// Confirm gates OnDelete. A nil Confirm refuses every delete.
	Confirm func(T) bool
}

// New builds a table over rows.
func New[T any](columns []Column[T], rows []T) *Table[T] {
	return &Table[T]{Columns: columns, Rows: rows}
}

// ClickHeader advances the sort state for the column with key.
func (t *Table[T]) ClickHeader(key string) error {
	if t.column(key) == nil {
		return fmt.Errorf("table: unknown column %q", key)
	}
	t.Sort = t.Sort.Click(key)
	return nil
}

func (t *Table[T]) column(key string) *Column[T] {
	for i := range t.Columns {
		if t.Columns[i].Key == key {
			return &t.Columns[i]
		}
	}
	return nil
}

// Sorted returns the rows in display order. The input slice is never reordered.
func (t *Table[T]) Sorted() []T {
	out := make([]T, len(t.Rows))
	copy(out, t.Rows)
	if !t.Sort.Active() {
		return out
	}
	col := t.column(t.Sort.Key)
	if col == nil || col.Value == nil {
		return out
	}
	desc := t.Sort.Direction == Descending
	sort.SliceStable(out, func(i, j int) bool {
		c := Compare(col.Value(out[i]), col.Value(out[j]))
		if desc {
			return c > 0
		}
		return c < 0
	})
	return out
}

func (t *Table[T]) hasActions() bool {
	return t.OnEdit != nil || t.OnDelete != nil
}

// Edit invokes OnEdit for the i-th visible row.
func (t *Table[T]) Edit(i int) error {
	if t.OnEdit == nil {
		return errors.New("table: edit is not enabled")
	}
	rows := t.Sorted()
	if i < 0 || i >= len(rows) {
		return ErrRowOutOfRange
	}
	return t.OnEdit(rows[i])
}

// Delete asks Confirm for the i-th visible row and invokes OnDelete only when it agrees.
// It reports whether the row was handed to OnDelete.
func (t *Table[T]) Delete(i int) (bool, error) {
	if t.OnDelete == nil {
		return false, errors.New("table: delete is not enabled")
	}
	rows := t.Sorted()
	if i < 0 || i >= len(rows) {
		return false, ErrRowOutOfRange
	}
	if t.Confirm == nil || !t.Confirm(rows[i]) {
		return false, nil
	}
	return true, t.OnDelete(rows[i])
}

// View is a rendered table, independent of the output medium.
type View struct {
	Headers     []string   `json:"headers"`
	Keys        []string   `json:"keys"`
	Rows        [][]string `json:"rows"`
	Actions     bool       `json:"actions"`
	Placeholder string     `json:"placeholder,omitempty"`
	// Span is the number of columns the placeholder row covers.
	Span int       `json:"span"`
	Sort SortState `json:"sort"`
}

// Render produces the current view of the table.
func (t *Table[T]) Render() View {
	v := View{Actions: t.hasActions(), Sort: t.Sort}
	for _, c := range t.Columns {
		v.Headers = append(v.Headers, c.Header)
		v.Keys = append(v.Keys, c.Key)
	}
	if v.Actions {
		v.Headers = append(v.Headers, "Actions")
	}
	v.Span = len(v.Headers)

	rows := t.Sorted()
	if len(rows) == 0 {
		v.Placeholder = NoDataText
		v.Rows = [][]string{{NoDataText}}
		return v
	}
	v.Rows = make([][]string, 0, len(rows))
	for _, r := range rows {
		cells := make([]string, 0, v.Span)
		for _, c := range t.Columns {
			cells = append(cells, cell(c, r))
		}
		if v.Actions {
			cells = append(cells, t.actionsCell())
		}
		v.Rows = append(v.Rows, cells)
	}
	return v
}

func (t *Table[T]) actionsCell() string {
	var parts []string
	if t.OnEdit != nil {
		parts = append(parts, "edit")
	}
	if t.OnDelete != nil {
		parts = append(parts, "delete")
	}
	return strings.Join(parts, " | ")
}

func cell[T any](c Column[T], row T) string {
	if c.Render != nil {
		return c.Render(row)
	}
	if c.Value == nil {
		return ""
	}
	return FormatValue(c.Value(row))
}

// FormatValue is the default cell text for a raw field value.
func FormatValue(v any) string {
	v = deref(v)
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case []string:
		return strings.Join(x, ", ")
	case time.Time:
		if x.IsZero() {
			return ""
		}
		return x.Format("2006-01-02 15:04")
	case float64:
		return fmt.Sprintf("%g", x)
	default:
		return fmt.Sprint(x)
	}
}

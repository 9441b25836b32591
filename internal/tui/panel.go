package tui

import (
	"context"
	"errors"

	"github.com/aebalz/ubermensch-tracker/internal/model"
	"github.com/aebalz/ubermensch-tracker/internal/service"
	"github.com/aebalz/ubermensch-tracker/internal/table"
)

var errNoToggle = errors.New("this tab has no toggle action")

// panel is the content of one tab: a tracker's table plus the actions the terminal exposes.
type panel interface {
	Load(ctx context.Context) error
	View() table.View
	Len() int
	// Click advances the sort of the i-th column.
	Click(col int) error
	Delete(ctx context.Context, row int, confirmed bool) (bool, error)
	Toggle(ctx context.Context, row int) error
}

type trackerPanel[T any, PT interface {
	*T
	model.Record
}] struct {
	tracker *service.Tracker[T, PT]
	tbl     *table.Table[T]
	// toggle flips the row's boolean flag (taken today, completed). Nil when the tracker has none.
	toggle func(ctx context.Context, id string) error
}

func newPanel[T any, PT interface {
	*T
	model.Record
}](tr *service.Tracker[T, PT], toggle func(ctx context.Context, id string) error) panel {
	return &trackerPanel[T, PT]{tracker: tr, tbl: table.New(tr.Columns, nil), toggle: toggle}
}

func (p *trackerPanel[T, PT]) Load(ctx context.Context) error {
	items, err := p.tracker.List(ctx)
	if err != nil {
		return err
	}
	p.tbl.Rows = items
	p.tbl.OnDelete = func(item T) error {
		return p.tracker.Delete(ctx, PT(&item).GetID())
	}
	return nil
}

func (p *trackerPanel[T, PT]) View() table.View {
	return p.tbl.Render()
}

func (p *trackerPanel[T, PT]) Len() int {
	return len(p.tbl.Rows)
}

func (p *trackerPanel[T, PT]) Click(col int) error {
	if col < 0 || col >= len(p.tbl.Columns) {
		return table.ErrRowOutOfRange
	}
	return p.tbl.ClickHeader(p.tbl.Columns[col].Key)
}

func (p *trackerPanel[T, PT]) Delete(ctx context.Context, row int, confirmed bool) (bool, error) {
	p.tbl.Confirm = func(T) bool { return confirmed }
	deleted, err := p.tbl.Delete(row)
	if err != nil || !deleted {
		return deleted, err
	}
	return true, p.Load(ctx)
}

func (p *trackerPanel[T, PT]) Toggle(ctx context.Context, row int) error {
	if p.toggle == nil {
		return errNoToggle
	}
	rows := p.tbl.Sorted()
	if row < 0 || row >= len(rows) {
		return table.ErrRowOutOfRange
	}
	if err := p.toggle(ctx, PT(&rows[row]).GetID()); err != nil {
		return err
	}
	return p.Load(ctx)
}

func discard[T any](fn func(context.Context, string) (T, error)) func(context.Context, string) error {
	return func(ctx context.Context, id string) error {
		_, err := fn(ctx, id)
		return err
	}
}

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/aebalz/ubermensch-tracker/internal/csvio"
	"github.com/aebalz/ubermensch-tracker/internal/model"
	"github.com/aebalz/ubermensch-tracker/internal/repository"
	"github.com/aebalz/ubermensch-tracker/internal/table"
)

var (
	// ErrNotFound is returned when no record has the requested id (or date, for daily logs).
	ErrNotFound = errors.New("record not found")
	// ErrValidation is returned when a record is rejected before it is stored.
	ErrValidation = errors.New("validation failed")
)

// Tracker provides the operations shared by every tracked collection.
type Tracker[T any, PT interface {
	*T
	model.Record
}] struct {
	Kind    model.Kind
	Repo    repository.Repository[T]
	Codec   csvio.Codec[T]
	Columns []table.Column[T]
	// Defaults fills form defaults into records that are created or imported.
	Defaults func(*T)
	// Prepend stores new records first instead of last.
	Prepend bool
}

func (t *Tracker[T, PT]) notFound(id string) error {
	return fmt.Errorf("%s %q: %w", t.Kind, id, ErrNotFound)
}

// List returns the collection in stored order.
func (t *Tracker[T, PT]) List(ctx context.Context) ([]T, error) {
	items, err := t.Repo.Load(ctx)
	return items, wrap(err)
}

// Get returns the record with id.
func (t *Tracker[T, PT]) Get(ctx context.Context, id string) (T, error) {
	var zero T
	items, err := t.Repo.Load(ctx)
	if err != nil {
		return zero, wrap(err)
	}
	i := repository.IndexOf[T, PT](items, id)
	if i < 0 {
		return zero, t.notFound(id)
	}
	return items[i], nil
}

// Create stores item under a fresh id.
func (t *Tracker[T, PT]) Create(ctx context.Context, item T) (T, error) {
	t.prepare(&item)
	_, err := t.Repo.Mutate(ctx, func(items []T) ([]T, error) {
		if t.Prepend {
			return append([]T{item}, items...), nil
		}
		return append(items, item), nil
	})
	return item, wrap(err)
}

func (t *Tracker[T, PT]) prepare(item *T) {
	PT(item).SetID(model.NewID())
	if t.Defaults != nil {
		t.Defaults(item)
	}
}

// Update replaces the record with id, keeping its id and position.
func (t *Tracker[T, PT]) Update(ctx context.Context, id string, item T) (T, error) {
	PT(&item).SetID(id)
	_, err := t.Repo.Mutate(ctx, func(items []T) ([]T, error) {
		i := repository.IndexOf[T, PT](items, id)
		if i < 0 {
			return nil, t.notFound(id)
		}
		items[i] = item
		return items, nil
	})
	return item, wrap(err)
}

// Modify applies fn to the stored record with id and saves the collection.
func (t *Tracker[T, PT]) Modify(ctx context.Context, id string, fn func(*T) error) (T, error) {
	var out T
	_, err := t.Repo.Mutate(ctx, func(items []T) ([]T, error) {
		i := repository.IndexOf[T, PT](items, id)
		if i < 0 {
			return nil, t.notFound(id)
		}
		if err := fn(&items[i]); err != nil {
			return nil, err
		}
		PT(&items[i]).SetID(id)
		out = items[i]
		return items, nil
	})
	return out, wrap(err)
}

// Delete removes the record with id.
func (t *Tracker[T, PT]) Delete(ctx context.Context, id string) error {
	_, err := t.Repo.Mutate(ctx, func(items []T) ([]T, error) {
		i := repository.IndexOf[T, PT](items, id)
		if i < 0 {
			return nil, t.notFound(id)
		}
		return slices.Delete(items, i, i+1), nil
	})
	return wrap(err)
}

// ImportCSV appends every record of the file under fresh ids. Nothing is stored when any record fails.
func (t *Tracker[T, PT]) ImportCSV(ctx context.Context, r io.Reader) (int, error) {
	if t.Codec.Decode == nil {
		return 0, fmt.Errorf("%w: %s: csv import is not supported", ErrValidation, t.Kind)
	}
	imported, err := t.Codec.Import(r)
	if err != nil {
		return 0, err
	}
	for i := range imported {
		t.prepare(&imported[i])
	}
	if len(imported) == 0 {
		return 0, nil
	}
	_, err = t.Repo.Mutate(ctx, func(items []T) ([]T, error) {
		return append(items, imported...), nil
	})
	if err != nil {
		return 0, wrap(err)
	}
	return len(imported), nil
}

// ExportCSV writes the collection in the tracker's CSV layout.
func (t *Tracker[T, PT]) ExportCSV(ctx context.Context, w io.Writer) error {
	if t.Codec.Encode == nil {
		return fmt.Errorf("%w: %s: csv export is not supported", ErrValidation, t.Kind)
	}
	items, err := t.Repo.Load(ctx)
	if err != nil {
		return wrap(err)
	}
	return t.Codec.Export(w, items)
}

// Table returns the collection as a table after replaying clicks header clicks on sortKey.
func (t *Tracker[T, PT]) Table(ctx context.Context, sortKey string, clicks int) (*table.Table[T], error) {
	items, err := t.Repo.Load(ctx)
	if err != nil {
		return nil, wrap(err)
	}
	tbl := table.New(t.Columns, items)
	if sortKey == "" {
		return tbl, nil
	}
	for i := 0; i < clicks; i++ {
		if err := tbl.ClickHeader(sortKey); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}
	}
	return tbl, nil
}

// View renders the collection after replaying clicks header clicks on sortKey.
func (t *Tracker[T, PT]) View(ctx context.Context, sortKey string, clicks int) (table.View, error) {
	tbl, err := t.Table(ctx, sortKey, clicks)
	if err != nil {
		return table.View{}, err
	}
	return tbl.Render(), nil
}

// FileName is the default CSV file name of the collection.
func (t *Tracker[T, PT]) FileName() string {
	return t.Codec.Name
}

// CreateJSON decodes a record from raw JSON and creates it.
func (t *Tracker[T, PT]) CreateJSON(ctx context.Context, raw json.RawMessage) (any, error) {
	var item T
	if err := json.Unmarshal(raw, &item); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrValidation, t.Kind, err)
	}
	created, err := t.Create(ctx, item)
	if err != nil {
		return nil, err
	}
	return created, nil
}

// CheckJSON decodes a record from raw JSON, fills defaults and validates it without storing anything.
func (t *Tracker[T, PT]) CheckJSON(raw json.RawMessage) error {
	var item T
	if err := json.Unmarshal(raw, &item); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrValidation, t.Kind, err)
	}
	t.prepare(&item)
	if err := model.Validate(&item); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrValidation, t.Kind, err)
	}
	return nil
}

// PatchJSON merges the fields present in raw into the record with id.
func (t *Tracker[T, PT]) PatchJSON(ctx context.Context, id string, raw json.RawMessage) (any, error) {
	patched, err := t.Modify(ctx, id, func(item *T) error {
		if err := json.Unmarshal(raw, item); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrValidation, t.Kind, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return patched, nil
}

// wrap tags persistence-boundary validation failures with ErrValidation.
func wrap(err error) error {
	var ve *repository.ValidationError
	if errors.As(err, &ve) && !errors.Is(err, ErrValidation) {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return err
}

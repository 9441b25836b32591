package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/aebalz/ubermensch-tracker/internal/model"
	"github.com/aebalz/ubermensch-tracker/internal/store"
)

// Repository is the persistence contract of one tracked collection.
type Repository[T any] interface {
	Load(ctx context.Context) ([]T, error)
	Save(ctx context.Context, items []T) error
	Clear(ctx context.Context) error
	Mutate(ctx context.Context, fn func([]T) ([]T, error)) ([]T, error)
}

// Collection persists an ordered slice of records as a single JSON array under Key.
// PT is the pointer type implementing model.Record; items are stored by value.
type Collection[T any, PT interface {
	*T
	model.Record
}] struct {
	Store store.Store
	Key   string
	// Seed returns the collection written on first load when the key is absent. Nil seeds an empty collection.
	Seed func() []T

	mu sync.Mutex
}

// NewCollection creates a Collection for key.
func NewCollection[T any, PT interface {
	*T
	model.Record
}](s store.Store, key string, seed func() []T) *Collection[T, PT] {
	return &Collection[T, PT]{Store: s, Key: key, Seed: seed}
}

// Load reads the collection, seeding and persisting the default collection when the key is absent.
func (c *Collection[T, PT]) Load(ctx context.Context) ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load(ctx)
}

func (c *Collection[T, PT]) load(ctx context.Context) ([]T, error) {
	raw, err := c.Store.Get(ctx, c.Key)
	if errors.Is(err, store.ErrNotFound) {
		items := []T{}
		if c.Seed != nil {
			items = c.Seed()
		}
		if err := c.save(ctx, items); err != nil {
			return nil, err
		}
		return items, nil
	}
	if err != nil {
		return nil, err
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode %s: %w", c.Key, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// Save validates every record and overwrites the stored collection.
func (c *Collection[T, PT]) Save(ctx context.Context, items []T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.save(ctx, items)
}

func (c *Collection[T, PT]) save(ctx context.Context, items []T) error {
	for i := range items {
		if err := model.Validate(PT(&items[i])); err != nil {
			return &ValidationError{Key: c.Key, Index: i, ID: PT(&items[i]).GetID(), Err: err}
		}
	}
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.Key, err)
	}
	return c.Store.Set(ctx, c.Key, raw)
}

// Clear removes the stored collection; the next Load seeds it again.
func (c *Collection[T, PT]) Clear(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.Store.Delete(ctx, c.Key)
}

// Mutate loads the collection, applies fn and saves the result while holding the collection lock.
// Nothing is written when fn returns an error.
func (c *Collection[T, PT]) Mutate(ctx context.Context, fn func([]T) ([]T, error)) ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	items, err := c.load(ctx)
	if err != nil {
		return nil, err
	}
	items, err = fn(items)
	if err != nil {
		return nil, err
	}
	if err := c.save(ctx, items); err != nil {
		return nil, err
	}
	return items, nil
}

// IndexOf returns the position of the record with id, or -1.
func IndexOf[T any, PT interface {
	*T
	model.Record
}](items []T, id string) int {
	for i := range items {
		if PT(&items[i]).GetID() == id {
			return i
		}
	}
	return -1
}

// ValidationError reports a record rejected at the persistence boundary.
type ValidationError struct {
	Key   string
	Index int
	ID    string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid record %d (id %q) in %s: %v", e.Index, e.ID, e.Key, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

package store_test

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/aebalz/ubermensch-tracker/internal/store"
	"github.com/aebalz/ubermensch-tracker/internal/store/storetest"
)

func newRedisStore(t *testing.T) (*store.RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return store.NewRedisStore(client, "test:"), mr
}

func backends(t *testing.T) map[string]store.Store {
	rs, _ := newRedisStore(t)
	return map[string]store.Store{
		"gorm":  storetest.New(t),
		"redis": rs,
	}
}

func TestStoreRoundTrip(t *testing.T) {
	t.Parallel()
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			if _, err := s.Get(ctx, store.KeyNotes); !errors.Is(err, store.ErrNotFound) {
				t.Fatalf("expected ErrNotFound for missing key, got %v", err)
			}
			if err := s.Set(ctx, store.KeyNotes, []byte(`[{"id":"1"}]`)); err != nil {
				t.Fatalf("set: %v", err)
			}
			if err := s.Set(ctx, store.KeyNotes, []byte(`[{"id":"2"}]`)); err != nil {
				t.Fatalf("overwrite: %v", err)
			}
			got, err := s.Get(ctx, store.KeyNotes)
			if err != nil {
				t.Fatalf("get: %v", err)
			}
			if string(got) != `[{"id":"2"}]` {
				t.Fatalf("expected overwritten value, got %s", got)
			}
			if err := s.Delete(ctx, store.KeyNotes); err != nil {
				t.Fatalf("delete: %v", err)
			}
			if _, err := s.Get(ctx, store.KeyNotes); !errors.Is(err, store.ErrNotFound) {
				t.Fatalf("expected ErrNotFound after delete, got %v", err)
			}
		})
	}
}

func TestStoreClearRemovesEveryKey(t *testing.T) {
	t.Parallel()
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			for _, key := range []string{store.KeySupplements, store.KeyRecipes, store.KeySupplementsDay} {
				if err := s.Set(ctx, key, []byte(`[]`)); err != nil {
					t.Fatalf("set %s: %v", key, err)
				}
			}
			if err := s.Clear(ctx); err != nil {
				t.Fatalf("clear: %v", err)
			}
			for _, key := range []string{store.KeySupplements, store.KeyRecipes, store.KeySupplementsDay} {
				if _, err := s.Get(ctx, key); !errors.Is(err, store.ErrNotFound) {
					t.Fatalf("expected %s to be cleared, got %v", key, err)
				}
			}
			if err := s.Ping(ctx); err != nil {
				t.Fatalf("ping: %v", err)
			}
		})
	}
}

func TestRedisClearKeepsForeignKeys(t *testing.T) {
	t.Parallel()
	s, mr := newRedisStore(t)
	ctx := context.Background()
	if err := mr.Set("other:key", "keep"); err != nil {
		t.Fatalf("seed foreign key: %v", err)
	}
	if err := s.Set(ctx, store.KeyWorkouts, []byte(`[]`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := s.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if !mr.Exists("other:key") {
		t.Fatalf("expected keys outside the namespace to survive Clear")
	}
}

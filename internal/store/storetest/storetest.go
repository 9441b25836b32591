// Package storetest provides throwaway stores for tests.
package storetest

import (
	"path/filepath"
	"testing"

	"github.com/aebalz/ubermensch-tracker/internal/store"
	"github.com/aebalz/ubermensch-tracker/pkg/database"
)

// New returns a GormStore backed by a fresh SQLite file in t.TempDir().
func New(t *testing.T) *store.GormStore {
	t.Helper()
	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "ubermensch.db"), nil)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.MigrateDB(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() {
		_ = database.CloseDB(db)
	})
	return store.NewGormStore(db)
}

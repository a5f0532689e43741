package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nechberman/berman/internal/repository"
	"github.com/nechberman/berman/internal/storage/sqlite"
)

// newTestRepos builds the full repository set over a throwaway
// sqlite database.
func newTestRepos(t *testing.T) *repository.Repositories {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "berman-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	store, err := sqlite.New(filepath.Join(tempDir, "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return repository.NewRepositories(store)
}

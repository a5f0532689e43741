package sqlite

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/nechberman/berman/internal/storage"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "berman-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	dbPath := filepath.Join(tempDir, "test.db")
	store, err := New(dbPath)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store, dbPath
}

func TestReadMissingBucket(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.Read(context.Background(), "tasks")
	if !errors.Is(err, storage.ErrNoValue) {
		t.Fatalf("expected ErrNoValue for unwritten bucket, got %v", err)
	}
}

func TestWriteReadRoundtrip(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	payload := []byte(`[{"id":"t1"}]`)
	if err := store.Write(ctx, "tasks", payload); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	got, err := store.Read(ctx, "tasks")
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if string(got) != string(payload) {
		t.Errorf("payload mismatch: got %s, want %s", got, payload)
	}
}

func TestWriteReplacesPayload(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	if err := store.Write(ctx, "rooms", []byte(`["old"]`)); err != nil {
		t.Fatalf("first Write failed: %v", err)
	}
	if err := store.Write(ctx, "rooms", []byte(`["new"]`)); err != nil {
		t.Fatalf("second Write failed: %v", err)
	}

	got, err := store.Read(ctx, "rooms")
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if string(got) != `["new"]` {
		t.Errorf("expected full replacement, got %s", got)
	}
}

func TestBucketsAreIndependent(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	if err := store.Write(ctx, "users", []byte(`["u"]`)); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	if _, err := store.Read(ctx, "people"); !errors.Is(err, storage.ErrNoValue) {
		t.Errorf("expected ErrNoValue for sibling bucket, got %v", err)
	}
}

func TestPersistsAcrossReopen(t *testing.T) {
	store, dbPath := newTestStore(t)
	ctx := context.Background()

	if err := store.Write(ctx, "events", []byte(`["e1"]`)); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reopened, err := New(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()

	got, err := reopened.Read(ctx, "events")
	if err != nil {
		t.Fatalf("Read after reopen failed: %v", err)
	}
	if string(got) != `["e1"]` {
		t.Errorf("payload lost across reopen: got %s", got)
	}
}

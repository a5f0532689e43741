package storage

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
)

// Bucket is a typed view over one key of a KeyValue store, holding a
// slice of records of a single entity kind.
//
// Load is read-through seeding: the first access to a bucket that has
// never been written persists the seed and returns it, so first reads
// always yield a deterministic, non-empty starting data set.
//
// Failure handling favors a degraded UI over a crashed one: if the
// backend is unavailable, Load returns the seed without persisting it
// and Store logs and drops the write. Neither ever returns an error.
type Bucket[T any] struct {
	kv   KeyValue
	key  string
	seed func() []T
}

// NewBucket binds a bucket key to its seed. The seed function is
// invoked lazily, once per seeding read.
func NewBucket[T any](kv KeyValue, key string, seed func() []T) *Bucket[T] {
	return &Bucket[T]{kv: kv, key: key, seed: seed}
}

// Key returns the bucket's storage key.
func (b *Bucket[T]) Key() string { return b.key }

// Load returns the bucket's current records, seeding on first access.
func (b *Bucket[T]) Load(ctx context.Context) []T {
	readsTotal.WithLabelValues(b.key).Inc()

	payload, err := b.kv.Read(ctx, b.key)
	if errors.Is(err, ErrNoValue) {
		seedsTotal.WithLabelValues(b.key).Inc()
		items := b.seed()
		b.Store(ctx, items)
		return items
	}
	if err != nil {
		readFailures.WithLabelValues(b.key).Inc()
		slog.Warn("bucket read failed, serving seed data", "bucket", b.key, "error", err)
		return b.seed()
	}

	var items []T
	if err := json.Unmarshal(payload, &items); err != nil {
		readFailures.WithLabelValues(b.key).Inc()
		slog.Warn("bucket payload corrupt, serving seed data", "bucket", b.key, "error", err)
		return b.seed()
	}
	return items
}

// Store persists a full replacement of the bucket's records.
func (b *Bucket[T]) Store(ctx context.Context, items []T) {
	writesTotal.WithLabelValues(b.key).Inc()

	payload, err := json.Marshal(items)
	if err != nil {
		writeFailures.WithLabelValues(b.key).Inc()
		slog.Error("bucket encode failed, dropping write", "bucket", b.key, "error", err)
		return
	}
	if err := b.kv.Write(ctx, b.key, payload); err != nil {
		writeFailures.WithLabelValues(b.key).Inc()
		slog.Error("bucket write failed, dropping write", "bucket", b.key, "error", err)
	}
}

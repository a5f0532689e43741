// Package repository layers typed CRUD over the key-value store, one
// repository per entity kind.
package repository

import (
	"context"

	"github.com/nechberman/berman/internal/storage"
)

// Entity is any record addressable by an opaque string id.
type Entity interface {
	EntityID() string
}

// Repository provides list/upsert/delete for one entity kind.
//
// Upsert replaces the whole record: callers merge fields into a full
// object before saving. A replaced record keeps its ordinal position
// in the list; a new one is appended. Deleting an id that does not
// exist is a no-op.
type Repository[T Entity] struct {
	bucket *storage.Bucket[T]
}

// New builds a repository over the given bucket key and seed.
func New[T Entity](kv storage.KeyValue, key string, seed func() []T) *Repository[T] {
	return &Repository[T]{bucket: storage.NewBucket(kv, key, seed)}
}

// List returns every record, seeding the bucket on first access.
func (r *Repository[T]) List(ctx context.Context) []T {
	return r.bucket.Load(ctx)
}

// Get returns the record with the given id.
func (r *Repository[T]) Get(ctx context.Context, id string) (T, bool) {
	for _, item := range r.bucket.Load(ctx) {
		if item.EntityID() == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Upsert replaces the record with a matching id, or appends it.
func (r *Repository[T]) Upsert(ctx context.Context, item T) {
	items := r.bucket.Load(ctx)
	for i := range items {
		if items[i].EntityID() == item.EntityID() {
			items[i] = item
			r.bucket.Store(ctx, items)
			return
		}
	}
	r.bucket.Store(ctx, append(items, item))
}

// Delete removes the record with the given id, if present.
func (r *Repository[T]) Delete(ctx context.Context, id string) {
	items := r.bucket.Load(ctx)
	kept := items[:0]
	for _, item := range items {
		if item.EntityID() != id {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(items) {
		return
	}
	r.bucket.Store(ctx, kept)
}

// Replace persists the given list wholesale, discarding the previous
// contents. Used by bulk operations that collapse many logical
// upserts into one physical write.
func (r *Repository[T]) Replace(ctx context.Context, items []T) {
	r.bucket.Store(ctx, items)
}

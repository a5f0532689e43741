// Package storage provides the key-value persistence abstraction the
// repositories are built on.
//
// The layout is deliberately simple: one bucket key per entity kind,
// each holding the serialized JSON array of that kind's records. The
// store never interprets payloads; all typing lives in Bucket.
package storage

import (
	"context"
	"errors"
)

// ErrNoValue is returned by Read when no payload has ever been
// written for a bucket.
var ErrNoValue = errors.New("storage: no value for bucket")

// KeyValue defines the raw persistence contract.
// This abstraction allows swapping backends (SQLite, in-memory, etc.)
// without touching the repository layer.
type KeyValue interface {
	// Read returns the payload stored for the bucket, or ErrNoValue
	// if the bucket has never been written.
	Read(ctx context.Context, bucket string) ([]byte, error)

	// Write persists a full replacement of the bucket's payload.
	Write(ctx context.Context, bucket string, payload []byte) error

	// Close releases any resources held by the store.
	Close() error
}

// Package storage provides the key-value blob store backing the inventory.
// The store persists a small fixed set of JSON blobs; backends are
// best-effort and interchangeable (SQLite for production, in-memory for
// tests).
package storage

import (
	"context"
	"errors"
)

// Fixed keys for the four persisted state parts.
const (
	KeyItems      = "inventory/items"
	KeyBins       = "inventory/bins"
	KeyCategories = "inventory/categories"
	KeySubtypes   = "inventory/subtypes"
)

// ErrNotFound is returned by Get when a key has no stored value.
var ErrNotFound = errors.New("storage: key not found")

// BlobStore is a minimal key-value store for serialized state.
type BlobStore interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put stores value under key, replacing any previous value.
	Put(ctx context.Context, key string, value []byte) error
}

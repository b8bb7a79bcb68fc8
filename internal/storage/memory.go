package storage

import (
	"context"
	"sync"
)

// MemoryStore is an in-memory BlobStore for tests. Errors can be injected to
// exercise the fail-open persistence contract.
type MemoryStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte

	// GetErr and PutErr, when set, are returned by every Get/Put call.
	GetErr error
	PutErr error

	// PutCount counts successful Put calls.
	PutCount int
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{blobs: make(map[string][]byte)}
}

// Get implements BlobStore.
func (m *MemoryStore) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.GetErr != nil {
		return nil, m.GetErr
	}

	value, ok := m.blobs[key]
	if !ok {
		return nil, ErrNotFound
	}

	cp := make([]byte, len(value))
	copy(cp, value)
	return cp, nil
}

// Put implements BlobStore.
func (m *MemoryStore) Put(ctx context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.PutErr != nil {
		return m.PutErr
	}

	cp := make([]byte, len(value))
	copy(cp, value)
	m.blobs[key] = cp
	m.PutCount++
	return nil
}

// Len returns the number of stored blobs.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.blobs)
}

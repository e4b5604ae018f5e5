package store

import (
	"context"
	"sync"
)

// MemoryBlobStore is a non-persistent [BlobStore] used in tests and as a
// last-resort fallback when no database is configured. Unlike the SQL
// backends it is lost on restart.
type MemoryBlobStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

func NewMemoryBlobStore() *MemoryBlobStore {
	return &MemoryBlobStore{
		blobs: make(map[string][]byte),
	}
}

func (m *MemoryBlobStore) Get(_ context.Context, store, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, ok := m.blobs[store+"/"+key]
	if !ok {
		return nil, ErrBlobNotFound
	}

	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (m *MemoryBlobStore) Put(_ context.Context, store, key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := make([]byte, len(data))
	copy(stored, data)
	m.blobs[store+"/"+key] = stored
	return nil
}

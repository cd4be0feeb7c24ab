package store

import (
	"context"
	"sync"
)

// memoryStorage keeps values in a process-local map. Nothing survives a
// restart; it backs the "memory" backend and tests.
type memoryStorage struct {
	mu     sync.RWMutex
	items  map[string][]byte
	closed bool
}

// NewMemoryStorage returns an empty in-memory [KeyValueStorage].
func NewMemoryStorage() KeyValueStorage {
	return &memoryStorage{items: make(map[string][]byte)}
}

func (m *memoryStorage) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, false, ErrStorageClosed
	}

	v, ok := m.items[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

func (m *memoryStorage) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStorageClosed
	}

	m.items[key] = append([]byte(nil), value...)
	return nil
}

func (m *memoryStorage) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closed = true
	return nil
}

package storage

import (
	"context"
	"sync"
)

// MemoryStore is an in-memory Store for tests and ephemeral sessions.
// InTx offers no rollback: mutations made by fn stick even if it errors,
// which matches the last-writer-wins behavior of the original storage.
type MemoryStore struct {
	mu    sync.Mutex
	slots map[string][]byte
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{slots: make(map[string][]byte)}
}

func (m *MemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	value, ok := m.slots[key]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

func (m *MemoryStore) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := make([]byte, len(value))
	copy(stored, value)
	m.slots[key] = stored
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.slots, key)
	return nil
}

func (m *MemoryStore) List(_ context.Context) (map[string][]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	result := make(map[string][]byte, len(m.slots))
	for k, v := range m.slots {
		out := make([]byte, len(v))
		copy(out, v)
		result[k] = out
	}
	return result, nil
}

func (m *MemoryStore) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.slots = make(map[string][]byte)
	return nil
}

func (m *MemoryStore) InTx(_ context.Context, fn func(Store) error) error {
	return fn(m)
}

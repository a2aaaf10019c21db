package storage

import (
	"context"
	"sync"
)

// Memory keeps buckets in a map. Used when DATABASE_URL is not set and in
// tests; nothing survives a restart.
type Memory struct {
	mu   sync.RWMutex
	data map[string]string
}

func NewMemory() *Memory {
	return &Memory{data: make(map[string]string)}
}

func (m *Memory) Get(_ context.Context, bucket string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.data[bucket]
	return value, ok, nil
}

func (m *Memory) Put(_ context.Context, bucket string, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[bucket] = value
	return nil
}

func (m *Memory) Delete(_ context.Context, bucket string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, bucket)
	return nil
}

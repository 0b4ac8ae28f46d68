// internal/store/memory.go
//
// Progress persistence for puzzle sessions.
//
// A progress record maps a puzzle key (center + outer letters) to the
// newline-joined list of found words. Records are read once when a session
// opens and rewritten wholesale after every accepted word.
//
// This file holds the Store interface and an in-memory implementation used
// by tests and by the HTTP layer, where each request rebuilds its progress
// from the client's state token.
//   - Concurrency-safe via RWMutex.
//   - State is lost when the process restarts.

package store

import (
	"context"
	"sync"
)

// Store defines the persistence interface for found-word progress.
type Store interface {
	// Load returns the stored value for key; ok is false when absent.
	Load(ctx context.Context, key string) (value string, ok bool, err error)

	// Save replaces the value stored under key.
	Save(ctx context.Context, key, value string) error
}

// Memory is an in-memory map-based Store.
type Memory struct {
	mu      sync.RWMutex
	records map[string]string
}

// NewMemory constructs an empty in-memory Store.
func NewMemory() *Memory {
	return &Memory{records: make(map[string]string)}
}

// Load looks up key.
func (m *Memory) Load(ctx context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.records[key]
	return v, ok, nil
}

// Save adds or replaces the record.
func (m *Memory) Save(ctx context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[key] = value
	return nil
}

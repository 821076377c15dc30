package storage

import "sync"

// Memory is an in-process high score store with the same semantics as
// Store. Used by tests and by hosts running without a database.
type Memory struct {
	mu     sync.Mutex
	values map[string]int
}

// NewMemory returns an empty store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string]int)}
}

func (m *Memory) LoadHighScore(gameID string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.values[gameID], nil
}

func (m *Memory) SaveHighScore(gameID string, value int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if value > m.values[gameID] {
		m.values[gameID] = value
	}
	return nil
}

package db

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Memory is a process-local Store, used when Firebase is not configured.
type Memory struct {
	mu      sync.Mutex
	results map[string]Record
	now     func() time.Time
}

func NewMemory() *Memory {
	return &Memory{results: make(map[string]Record), now: time.Now}
}

func (m *Memory) SaveResult(_ context.Context, r Record) error {
	if r.RoundID == "" {
		return fmt.Errorf("result has no round id")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results[r.RoundID] = r
	return nil
}

func (m *Memory) RecentResults(_ context.Context, n int) ([]Record, error) {
	m.mu.Lock()
	list := make([]Record, 0, len(m.results))
	for _, r := range m.results {
		list = append(list, r)
	}
	m.mu.Unlock()
	return newestFirst(list, n), nil
}

func (m *Memory) Prune(_ context.Context, maxAge time.Duration) error {
	cutoff := m.now().Add(-maxAge).Unix()
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, r := range m.results {
		if r.FinishedAt < cutoff {
			delete(m.results, id)
		}
	}
	return nil
}

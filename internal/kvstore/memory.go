package kvstore

import (
	"context"
	"strings"
	"sync"

	"github.com/tidwall/btree"
)

type Memory struct {
	mu     sync.RWMutex
	keys   *btree.Map[string, string]
	closed bool
}

func NewMemory() *Memory {
	return &Memory{keys: btree.NewMap[string, string](0)}
}

func (m *Memory) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return "", false, ErrClosed
	}
	value, ok := m.keys.Get(key)
	return value, ok, nil
}

func (m *Memory) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrClosed
	}
	m.keys.Set(key, value)
	return nil
}

func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrClosed
	}
	m.keys.Delete(key)
	return nil
}

func (m *Memory) Keys(_ context.Context, prefix string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, ErrClosed
	}

	keys := []string{}
	m.keys.Ascend(prefix, func(key, _ string) bool {
		if !strings.HasPrefix(key, prefix) {
			return false
		}
		keys = append(keys, key)
		return true
	})
	return keys, nil
}

func (m *Memory) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.keys.Clear()
	m.closed = true
	return nil
}

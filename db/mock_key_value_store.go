package db

import (
	"context"
	"fmt"
	"path"
	"sort"
	"sync"
)

// MockKeyValueStore simulates a key-value backend in memory for tests.
type MockKeyValueStore struct {
	data map[string]string // Key-value store
	mu   sync.RWMutex      // Mutex for thread-safe operations

	// Optional failure injection
	GetErr error
	SetErr error
}

// NewMockKeyValueStore initializes a new MockKeyValueStore.
func NewMockKeyValueStore() *MockKeyValueStore {
	return &MockKeyValueStore{
		data: make(map[string]string),
	}
}

// Set stores a key-value pair in the mock store.
func (m *MockKeyValueStore) Set(ctx context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SetErr != nil {
		return m.SetErr
	}
	m.data[key] = value
	return nil
}

// Get retrieves a value for a given key from the mock store.
func (m *MockKeyValueStore) Get(ctx context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.GetErr != nil {
		return "", m.GetErr
	}
	value, exists := m.data[key]
	if !exists {
		return "", fmt.Errorf("%w: %s", ErrKeyNotFound, key)
	}
	return value, nil
}

func (m *MockKeyValueStore) Del(ctx context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range keys {
		delete(m.data, k)
	}
	return nil
}

func (m *MockKeyValueStore) Keys(ctx context.Context, pattern string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var keys []string
	for k := range m.data {
		ok, err := path.Match(pattern, k)
		if err != nil {
			return nil, err
		}
		if ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

// Ping always succeeds.
func (m *MockKeyValueStore) Ping(ctx context.Context) error {
	return nil
}

func (m *MockKeyValueStore) Close() error {
	return nil
}

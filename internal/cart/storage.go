package cart

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
)

// DefaultStorageKey is the key the cart state is written under.
const DefaultStorageKey = "mary-cart-v1"

// ErrNotFound is returned by a Storage when nothing is stored under a key.
var ErrNotFound = errors.New("cart state not found")

// Storage is the key-value store a Cart persists itself to.
//
// Implementations return ErrNotFound (possibly wrapped) for missing keys.
type Storage interface {
	Load(key string) ([]byte, error)
	Save(key string, data []byte) error
}

// State is the persisted form of a cart. Derived values are not part of it.
type State struct {
	NextID int        `json:"nextId"`
	Items  []LineItem `json:"items"`
}

// ParseState decodes persisted cart state.
func ParseState(data []byte) (State, error) {
	var s State
	if err := json.Unmarshal(data, &s); err != nil {
		return State{}, fmt.Errorf("decode cart state: %w", err)
	}
	if s.NextID < 1 {
		s.NextID = 1
	}
	if s.Items == nil {
		s.Items = []LineItem{}
	}
	return s, nil
}

// MemoryStorage keeps cart state in process memory. It is safe for concurrent use.
type MemoryStorage struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryStorage creates an empty MemoryStorage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{data: make(map[string][]byte)}
}

// Load returns a copy of the value stored under key.
func (m *MemoryStorage) Load(key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

// Save stores a copy of data under key.
func (m *MemoryStorage) Save(key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.data[key] = append([]byte(nil), data...)
	return nil
}

// Delete removes key.
func (m *MemoryStorage) Delete(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.data, key)
}

package collectionsx

import (
	"fmt"
	"iter"
	"sync"
)

// Entry is a key/value pair snapshot produced by ConstMap.Entries.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// ConstMap is a write-once mapping: a key can be inserted exactly once and
// never overwritten or removed. It grows monotonically for its whole
// lifetime.
//
// All state lives in unexported fields; the only mutation path is Set, so
// the write-once invariant cannot be bypassed from outside the package.
// ConstMap is safe for concurrent use: an internal mutex makes the
// check-then-insert in Set atomic under contention.
type ConstMap[K comparable, V any] struct {
	mu    sync.RWMutex
	data  map[K]V
	order []K // insertion order, for reproducible iteration
}

// NewConstMap creates an empty write-once map.
func NewConstMap[K comparable, V any]() *ConstMap[K, V] {
	return &ConstMap[K, V]{
		data: make(map[K]V),
	}
}

// Contains reports whether key is present.
func (m *ConstMap[K, V]) Contains(key K) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.data[key]
	return ok
}

// Get returns the value stored for key.
func (m *ConstMap[K, V]) Get(key K) (V, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	if !ok {
		var zero V
		return zero, fmt.Errorf("key '%v': %w", key, ErrKeyNotFound)
	}
	return v, nil
}

// Set inserts a new key/value pair. Inserting over an existing key fails
// with ErrConstantViolation; the error message reports the value already
// stored. The map is unchanged on failure.
func (m *ConstMap[K, V]) Set(key K, value V) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.data[key]; ok {
		return fmt.Errorf("%w: value for '%v' is already '%v'", ErrConstantViolation, key, existing)
	}
	m.data[key] = value
	m.order = append(m.order, key)
	return nil
}

// Delete always fails with ErrInvalidOperation. Removal from a write-once
// map is permanently disallowed, not merely guarded.
func (m *ConstMap[K, V]) Delete(key K) error {
	return fmt.Errorf("delete '%v': %w", key, ErrInvalidOperation)
}

// Len returns the number of entries.
func (m *ConstMap[K, V]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}

// Keys returns the keys in insertion order.
func (m *ConstMap[K, V]) Keys() []K {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]K, len(m.order))
	copy(out, m.order)
	return out
}

// Entries returns a snapshot of all pairs in insertion order.
func (m *ConstMap[K, V]) Entries() []Entry[K, V] {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Entry[K, V], 0, len(m.order))
	for _, k := range m.order {
		out = append(out, Entry[K, V]{Key: k, Value: m.data[k]})
	}
	return out
}

// All returns an iterator over a snapshot of the map in insertion order.
// The snapshot is taken when All is called, so holding the iterator across
// later Set calls does not expose live internal state.
func (m *ConstMap[K, V]) All() iter.Seq2[K, V] {
	entries := m.Entries()
	return func(yield func(K, V) bool) {
		for _, e := range entries {
			if !yield(e.Key, e.Value) {
				return
			}
		}
	}
}

// AsMap returns the contents as a genuine plain map. The result is a copy;
// mutating it does not affect the ConstMap.
func (m *ConstMap[K, V]) AsMap() map[K]V {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[K]V, len(m.data))
	for k, v := range m.data {
		out[k] = v
	}
	return out
}

// String renders the contents like a plain map literal, in insertion order.
func (m *ConstMap[K, V]) String() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s := "map["
	for i, k := range m.order {
		if i > 0 {
			s += " "
		}
		s += fmt.Sprintf("%v:%v", k, m.data[k])
	}
	return s + "]"
}

package collectionsx

import (
	"fmt"
	"slices"
	"sync"
)

// GuardedList is an ordered sequence with a reversible lock. While locked,
// every mutating operation and every operation that reads through the
// element accessors (indexed read, iteration snapshot, element search)
// fails with ErrSequenceLocked.
//
// Length and membership queries stay available in both states: they answer
// from a point-in-time snapshot and cannot leak live internal state the way
// a held iterator could. Concatenation, repetition, and reversal also stay
// available because they produce new, unlocked lists.
//
// GuardedList is safe for concurrent use; an internal mutex keeps the
// lock-state checks atomic with the operations they gate.
type GuardedList[T comparable] struct {
	mu     sync.RWMutex
	items  []T
	locked bool
}

// NewGuardedList creates an unlocked list holding items.
func NewGuardedList[T comparable](items ...T) *GuardedList[T] {
	return &GuardedList[T]{items: slices.Clone(items)}
}

// Lock transitions the list from unlocked to locked. Locking an already
// locked list fails with ErrInvalidOperation.
func (l *GuardedList[T]) Lock() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.locked {
		return fmt.Errorf("lock: already locked: %w", ErrInvalidOperation)
	}
	l.locked = true
	return nil
}

// Unlock transitions the list from locked to unlocked. Unlocking an already
// unlocked list fails with ErrNotLocked.
func (l *GuardedList[T]) Unlock() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.locked {
		return fmt.Errorf("unlock: %w", ErrNotLocked)
	}
	l.locked = false
	return nil
}

// Locked reports the current lock state.
func (l *GuardedList[T]) Locked() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.locked
}

// Append adds v at the end. Gated.
func (l *GuardedList[T]) Append(v T) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.locked {
		return fmt.Errorf("append: %w", ErrSequenceLocked)
	}
	l.items = append(l.items, v)
	return nil
}

// Extend appends every value in vs, in order. Gated.
func (l *GuardedList[T]) Extend(vs ...T) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.locked {
		return fmt.Errorf("extend: %w", ErrSequenceLocked)
	}
	l.items = append(l.items, vs...)
	return nil
}

// At returns the element at index i. Gated.
func (l *GuardedList[T]) At(i int) (T, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	var zero T
	if l.locked {
		return zero, fmt.Errorf("index %d: %w", i, ErrSequenceLocked)
	}
	if i < 0 || i >= len(l.items) {
		return zero, fmt.Errorf("index %d out of range [0,%d): %w", i, len(l.items), ErrIndexOrKeyNotFound)
	}
	return l.items[i], nil
}

// IndexOf returns the index of the first element equal to v. Gated. A miss
// fails with ErrIndexOrKeyNotFound.
func (l *GuardedList[T]) IndexOf(v T) (int, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.locked {
		return 0, fmt.Errorf("index of '%v': %w", v, ErrSequenceLocked)
	}
	i := slices.Index(l.items, v)
	if i < 0 {
		return 0, fmt.Errorf("'%v': %w", v, ErrIndexOrKeyNotFound)
	}
	return i, nil
}

// DeleteAt removes the element at index i. Gated.
func (l *GuardedList[T]) DeleteAt(i int) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.locked {
		return fmt.Errorf("delete at %d: %w", i, ErrSequenceLocked)
	}
	if i < 0 || i >= len(l.items) {
		return fmt.Errorf("index %d out of range [0,%d): %w", i, len(l.items), ErrIndexOrKeyNotFound)
	}
	l.items = slices.Delete(l.items, i, i+1)
	return nil
}

// Values returns an iteration snapshot of the elements. Gated: iteration
// reads through the element accessor path, and the snapshot would otherwise
// let a caller hold element state across a lock boundary.
func (l *GuardedList[T]) Values() ([]T, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.locked {
		return nil, fmt.Errorf("iterate: %w", ErrSequenceLocked)
	}
	return slices.Clone(l.items), nil
}

// AsSlice returns the contents as a genuine plain slice copy. Gated, same
// as Values.
func (l *GuardedList[T]) AsSlice() ([]T, error) {
	return l.Values()
}

// Len reports the number of elements. Always permitted.
func (l *GuardedList[T]) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.items)
}

// Contains reports whether v is present. Always permitted.
func (l *GuardedList[T]) Contains(v T) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return slices.Contains(l.items, v)
}

// Concat returns a new unlocked list holding the elements of l followed by
// the elements of other. Always permitted; neither input is modified or
// read through the guarded accessor path.
func (l *GuardedList[T]) Concat(other *GuardedList[T]) *GuardedList[T] {
	l.mu.RLock()
	a := slices.Clone(l.items)
	l.mu.RUnlock()
	other.mu.RLock()
	b := slices.Clone(other.items)
	other.mu.RUnlock()
	return &GuardedList[T]{items: append(a, b...)}
}

// Repeat returns a new unlocked list holding n copies of l's elements.
// Always permitted. n <= 0 yields an empty list.
func (l *GuardedList[T]) Repeat(n int) *GuardedList[T] {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]T, 0, len(l.items)*max(n, 0))
	for range max(n, 0) {
		out = append(out, l.items...)
	}
	return &GuardedList[T]{items: out}
}

// Reversed returns a new unlocked list with the elements in reverse order.
// Always permitted.
func (l *GuardedList[T]) Reversed() *GuardedList[T] {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := slices.Clone(l.items)
	slices.Reverse(out)
	return &GuardedList[T]{items: out}
}

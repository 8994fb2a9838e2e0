package collectionsx

import (
	"fmt"
	"slices"
	"sync"
)

// OwnedList is an ordered sequence whose lock carries an exclusive owner
// identity. Acquire claims the list for one caller-chosen identity; while
// acquired, every element operation requires the caller to present that
// same identity, and any other identity fails with ErrAccessDenied.
//
// Acquire is a non-blocking, fail-fast exclusive claim, not a mutex callers
// can queue on: nothing waits, and contention resolves by immediate
// failure. Retry and backoff policy belong to the caller. There is no wait
// queue, no fairness guarantee, and no re-entrancy bookkeeping.
//
// The owner check and the operation it guards run under one internal
// mutex, so two callers racing to Acquire an unlocked list cannot both
// succeed, and a release cannot interleave with a gated read.
type OwnedList[T comparable] struct {
	mu    sync.Mutex
	items []T
	owner string
	held  bool
}

// NewOwnedList creates an unlocked list holding items.
func NewOwnedList[T comparable](items ...T) *OwnedList[T] {
	return &OwnedList[T]{items: slices.Clone(items)}
}

// Acquire claims exclusive access for owner. Only valid while unlocked;
// if the list is already acquired the call fails immediately with
// ErrInvalidOperation naming the current owner. An empty owner identity is
// rejected because it is indistinguishable from "no owner".
func (l *OwnedList[T]) Acquire(owner string) error {
	if owner == "" {
		return fmt.Errorf("acquire: empty owner identity: %w", ErrInvalidOperation)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.held {
		return fmt.Errorf("acquire by '%s': already acquired by '%s': %w", owner, l.owner, ErrInvalidOperation)
	}
	l.held = true
	l.owner = owner
	return nil
}

// Release returns the list to the unlocked state. Only the current owner
// may release: a non-owner fails with ErrAccessDenied naming both
// identities, and releasing an unlocked list fails with
// ErrInvalidOperation.
func (l *OwnedList[T]) Release(owner string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.held {
		return fmt.Errorf("release by '%s': not acquired: %w", owner, ErrInvalidOperation)
	}
	if owner != l.owner {
		return fmt.Errorf("release by '%s': owned by '%s': %w", owner, l.owner, ErrAccessDenied)
	}
	l.held = false
	l.owner = ""
	return nil
}

// Owner reports the current owner identity and whether the list is
// acquired. Always permitted, to any caller, for diagnostics.
func (l *OwnedList[T]) Owner() (string, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.owner, l.held
}

// Status reports whether the list is currently acquired. Always permitted.
func (l *OwnedList[T]) Status() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.held
}

// guard enforces the ownership gate. Callers must hold l.mu.
func (l *OwnedList[T]) guard(op, owner string) error {
	if l.held && owner != l.owner {
		return fmt.Errorf("%s by '%s': owned by '%s': %w", op, owner, l.owner, ErrAccessDenied)
	}
	return nil
}

// Append adds v at the end on behalf of owner.
func (l *OwnedList[T]) Append(owner string, v T) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.guard("append", owner); err != nil {
		return err
	}
	l.items = append(l.items, v)
	return nil
}

// Extend appends every value in vs, in order, on behalf of owner.
func (l *OwnedList[T]) Extend(owner string, vs ...T) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.guard("extend", owner); err != nil {
		return err
	}
	l.items = append(l.items, vs...)
	return nil
}

// At returns the element at index i on behalf of owner.
func (l *OwnedList[T]) At(owner string, i int) (T, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	var zero T
	if err := l.guard("index", owner); err != nil {
		return zero, err
	}
	if i < 0 || i >= len(l.items) {
		return zero, fmt.Errorf("index %d out of range [0,%d): %w", i, len(l.items), ErrIndexOrKeyNotFound)
	}
	return l.items[i], nil
}

// IndexOf returns the index of the first element equal to v on behalf of
// owner. A miss fails with ErrIndexOrKeyNotFound.
func (l *OwnedList[T]) IndexOf(owner string, v T) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.guard("index of", owner); err != nil {
		return 0, err
	}
	i := slices.Index(l.items, v)
	if i < 0 {
		return 0, fmt.Errorf("'%v': %w", v, ErrIndexOrKeyNotFound)
	}
	return i, nil
}

// DeleteAt removes the element at index i on behalf of owner.
func (l *OwnedList[T]) DeleteAt(owner string, i int) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.guard("delete at", owner); err != nil {
		return err
	}
	if i < 0 || i >= len(l.items) {
		return fmt.Errorf("index %d out of range [0,%d): %w", i, len(l.items), ErrIndexOrKeyNotFound)
	}
	l.items = slices.Delete(l.items, i, i+1)
	return nil
}

// Values returns an iteration snapshot on behalf of owner.
func (l *OwnedList[T]) Values(owner string) ([]T, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.guard("iterate", owner); err != nil {
		return nil, err
	}
	return slices.Clone(l.items), nil
}

// Len reports the number of elements. Always permitted.
func (l *OwnedList[T]) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.items)
}

// Contains reports whether v is present. Always permitted.
func (l *OwnedList[T]) Contains(v T) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return slices.Contains(l.items, v)
}

// Reversed returns a new unlocked OwnedList with the elements in reverse
// order. Always permitted: the result is a fresh list with no owner.
func (l *OwnedList[T]) Reversed() *OwnedList[T] {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := slices.Clone(l.items)
	slices.Reverse(out)
	return &OwnedList[T]{items: out}
}

// Repeat returns a new unlocked OwnedList holding n copies of l's
// elements. Always permitted. n <= 0 yields an empty list.
func (l *OwnedList[T]) Repeat(n int) *OwnedList[T] {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]T, 0, len(l.items)*max(n, 0))
	for range max(n, 0) {
		out = append(out, l.items...)
	}
	return &OwnedList[T]{items: out}
}

// Concat returns a new unlocked OwnedList holding the elements of l
// followed by the elements of other. Always permitted.
func (l *OwnedList[T]) Concat(other *OwnedList[T]) *OwnedList[T] {
	l.mu.Lock()
	a := slices.Clone(l.items)
	l.mu.Unlock()
	other.mu.Lock()
	b := slices.Clone(other.items)
	other.mu.Unlock()
	return &OwnedList[T]{items: append(a, b...)}
}

package tether

import "sync"

// Latest is a single-slot holder for a frequently changing value.
// Long-lived frame callbacks read the cell instead of capturing the
// value directly, so swapping in a new accessor never requires
// restarting the callback that uses it. Thread-safe.
type Latest[T any] struct {
	mu sync.RWMutex
	v  T
}

// NewLatest creates a cell holding v.
func NewLatest[T any](v T) *Latest[T] {
	return &Latest[T]{v: v}
}

// Set replaces the held value.
func (l *Latest[T]) Set(v T) {
	l.mu.Lock()
	l.v = v
	l.mu.Unlock()
}

// Get returns the most recently set value.
func (l *Latest[T]) Get() T {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.v
}

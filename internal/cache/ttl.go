package cache

import (
	"sync"
	"time"
)

// TTL is a single-value cache with an explicit time-to-live and an
// injected clock, so expiry is testable without sleeping. It replaces
// ad-hoc module-level "value + timestamp" globals: the owner constructs
// it, the TTL is visible, and nothing hides in process-wide state.
type TTL[T any] struct {
	mu        sync.RWMutex
	value     T
	set       bool
	expiresAt time.Time
	ttl       time.Duration
	now       func() time.Time
}

// NewTTL builds a cache with the given lifetime. now may be nil, in
// which case time.Now is used.
func NewTTL[T any](ttl time.Duration, now func() time.Time) *TTL[T] {
	if now == nil {
		now = time.Now
	}
	return &TTL[T]{ttl: ttl, now: now}
}

// Get returns the cached value if it is present and not expired.
func (c *TTL[T]) Get() (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.set || c.now().After(c.expiresAt) {
		var zero T
		return zero, false
	}
	return c.value, true
}

// Set stores a value and restarts its lifetime.
func (c *TTL[T]) Set(v T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.value = v
	c.set = true
	c.expiresAt = c.now().Add(c.ttl)
}

// Invalidate drops the cached value immediately.
func (c *TTL[T]) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	var zero T
	c.value = zero
	c.set = false
}

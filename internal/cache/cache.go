// Package cache stores rendered analysis responses keyed by a digest of the
// configuration that produced them.
package cache

import (
	"context"
	"sync"
	"time"
)

// Repository is a string key/value store.
type Repository interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key string, value string) error
}

type entry struct {
	value   string
	expires time.Time
}

func (e entry) expired(now time.Time) bool {
	return !e.expires.IsZero() && !now.Before(e.expires)
}

// Memory keeps entries in process. Entries older than the ttl are treated
// as misses and dropped.
type Memory struct {
	mu   sync.RWMutex
	data map[string]entry
	ttl  time.Duration
	now  func() time.Time
}

// NewMemory creates an empty in-process cache. A zero ttl keeps entries
// for the lifetime of the process.
func NewMemory(ttl time.Duration) *Memory {
	return &Memory{
		data: make(map[string]entry),
		ttl:  ttl,
		now:  time.Now,
	}
}

// Get returns the value stored under key unless it has expired.
func (m *Memory) Get(_ context.Context, key string) (string, bool) {
	m.mu.RLock()
	e, ok := m.data[key]
	m.mu.RUnlock()
	if !ok {
		return "", false
	}

	if e.expired(m.now()) {
		m.mu.Lock()
		// Another writer may have refreshed the entry since the read.
		if current, ok := m.data[key]; ok && current.expired(m.now()) {
			delete(m.data, key)
		}
		m.mu.Unlock()
		return "", false
	}
	return e.value, true
}

// Set stores value under key and drops any expired entries.
func (m *Memory) Set(_ context.Context, key string, value string) error {
	now := m.now()

	m.mu.Lock()
	defer m.mu.Unlock()

	for k, e := range m.data {
		if e.expired(now) {
			delete(m.data, k)
		}
	}

	e := entry{value: value}
	if m.ttl > 0 {
		e.expires = now.Add(m.ttl)
	}
	m.data[key] = e
	return nil
}

// Len returns the number of unexpired entries.
func (m *Memory) Len() int {
	now := m.now()

	m.mu.RLock()
	defer m.mu.RUnlock()

	n := 0
	for _, e := range m.data {
		if !e.expired(now) {
			n++
		}
	}
	return n
}

// Nop never stores anything.
type Nop struct{}

// Get always misses.
func (Nop) Get(context.Context, string) (string, bool) { return "", false }

// Set discards the value.
func (Nop) Set(context.Context, string, string) error { return nil }

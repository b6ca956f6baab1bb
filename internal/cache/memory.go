package cache

import (
	"context"
	"sync"
	"time"
)

const (
	// DefaultMaxEntries caps a MemoryCache unless WithMaxEntries overrides it
	DefaultMaxEntries = 10000
	sweepInterval     = time.Minute
)

type entry struct {
	value   string
	expires time.Time // zero means no expiry
}

func (e entry) expired(now time.Time) bool {
	return !e.expires.IsZero() && !now.Before(e.expires)
}

// MemoryCache is an in-process Cache guarded by a mutex. A background janitor
// drops expired entries, and Set evicts when the cache is full.
type MemoryCache struct {
	mu         sync.Mutex
	data       map[string]entry
	maxEntries int
	now        func() time.Time

	stopSweep chan struct{}
	stopOnce  sync.Once
}

// MemoryOption configures a MemoryCache
type MemoryOption func(*MemoryCache)

// WithMaxEntries bounds the number of stored entries; n <= 0 means unbounded
func WithMaxEntries(n int) MemoryOption {
	return func(m *MemoryCache) {
		m.maxEntries = n
	}
}

func NewMemoryCache(opts ...MemoryOption) *MemoryCache {
	m := &MemoryCache{
		data:       make(map[string]entry),
		maxEntries: DefaultMaxEntries,
		now:        time.Now,
		stopSweep:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	go m.sweepLoop()
	return m
}

func (m *MemoryCache) sweepLoop() {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.Sweep()
		case <-m.stopSweep:
			return
		}
	}
}

// Sweep removes every expired entry and reports how many were dropped
func (m *MemoryCache) Sweep() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sweepLocked(m.now())
}

func (m *MemoryCache) sweepLocked(now time.Time) int {
	removed := 0
	for k, e := range m.data {
		if e.expired(now) {
			delete(m.data, k)
			removed++
		}
	}
	return removed
}

// evictLocked makes room for one new entry: expired entries go first, then the
// entry closest to expiry. Entries without expiry are evicted last.
func (m *MemoryCache) evictLocked(now time.Time) {
	if m.sweepLocked(now) > 0 && len(m.data) < m.maxEntries {
		return
	}
	for len(m.data) >= m.maxEntries {
		var victim string
		var soonest time.Time
		found := false
		for k, e := range m.data {
			if !found || soonerThan(e.expires, soonest) {
				victim, soonest, found = k, e.expires, true
			}
		}
		delete(m.data, victim)
	}
}

// soonerThan orders expiry times with zero (never) after every real deadline
func soonerThan(a, b time.Time) bool {
	switch {
	case a.IsZero():
		return false
	case b.IsZero():
		return true
	default:
		return a.Before(b)
	}
}

// SetClock overrides the time source (tests)
func (m *MemoryCache) SetClock(now func() time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = now
}

func (m *MemoryCache) Get(_ context.Context, key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.data[key]
	if !ok {
		return "", false
	}
	if e.expired(m.now()) {
		delete(m.data, key)
		return "", false
	}
	return e.value, true
}

func (m *MemoryCache) Set(_ context.Context, key string, value string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	if _, exists := m.data[key]; !exists && m.maxEntries > 0 && len(m.data) >= m.maxEntries {
		m.evictLocked(now)
	}

	e := entry{value: value}
	if ttl > 0 {
		e.expires = now.Add(ttl)
	}
	m.data[key] = e
	return nil
}

// Len counts stored entries, including expired ones the janitor has not swept yet
func (m *MemoryCache) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.data)
}

// Close stops the janitor. The cache stays usable.
func (m *MemoryCache) Close() error {
	m.stopOnce.Do(func() {
		close(m.stopSweep)
	})
	return nil
}

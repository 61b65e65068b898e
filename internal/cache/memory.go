package cache

import (
	"context"
	"sync"
	"time"
)

type entry struct {
	value   []byte
	expires time.Time
}

// Memory is a process-local cache with per-entry expiry. It is safe for
// concurrent use.
type Memory struct {
	mu         sync.Mutex
	entries    map[string]entry
	ttl        time.Duration
	maxEntries int
	now        func() time.Time
}

// NewMemory returns a cache whose entries live for ttl. A positive
// maxEntries bounds the size; the entry closest to expiry is evicted first.
func NewMemory(ttl time.Duration, maxEntries int) *Memory {
	return &Memory{
		entries:    make(map[string]entry),
		ttl:        ttl,
		maxEntries: maxEntries,
		now:        time.Now,
	}
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[key]
	if !ok {
		return nil, false, nil
	}
	if !m.now().Before(e.expires) {
		delete(m.entries, key)
		return nil, false, nil
	}
	return append([]byte(nil), e.value...), true, nil
}

func (m *Memory) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	if _, exists := m.entries[key]; !exists && m.maxEntries > 0 && len(m.entries) >= m.maxEntries {
		m.evict(now)
	}
	m.entries[key] = entry{value: append([]byte(nil), value...), expires: now.Add(m.ttl)}
	return nil
}

// evict drops expired entries, or the entry closest to expiry when none
// have expired. Callers hold mu.
func (m *Memory) evict(now time.Time) {
	var oldestKey string
	var oldest time.Time
	removed := false
	for key, e := range m.entries {
		if !now.Before(e.expires) {
			delete(m.entries, key)
			removed = true
			continue
		}
		if oldestKey == "" || e.expires.Before(oldest) {
			oldestKey, oldest = key, e.expires
		}
	}
	if !removed && oldestKey != "" {
		delete(m.entries, oldestKey)
	}
}

// Len returns the number of stored entries, including expired ones not yet
// collected.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

func (m *Memory) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = make(map[string]entry)
	return nil
}

package mem

import (
	"sync"
	"time"
)

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// Store is a mutex-guarded in-memory map with per-entry TTL, used for chat
// sessions keyed by Telegram chat ID. Reads of expired entries delete them
// lazily; Sweep exists for a periodic janitor.
type Store[K comparable, V any] struct {
	mu   sync.RWMutex
	ttl  time.Duration
	data map[K]entry[V]
}

func NewStore[K comparable, V any](ttl time.Duration) *Store[K, V] {
	return &Store[K, V]{
		ttl:  ttl,
		data: make(map[K]entry[V]),
	}
}

func (s *Store[K, V]) Put(key K, value V) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = entry[V]{
		value:     value,
		expiresAt: time.Now().Add(s.ttl),
	}
}

func (s *Store[K, V]) Get(key K) (V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero V
	e, ok := s.data[key]
	if !ok {
		return zero, false
	}
	if time.Now().After(e.expiresAt) {
		delete(s.data, key)
		return zero, false
	}
	return e.value, true
}

// Touch refreshes the TTL of an existing entry.
func (s *Store[K, V]) Touch(key K) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.data[key]; ok {
		e.expiresAt = time.Now().Add(s.ttl)
		s.data[key] = e
	}
}

func (s *Store[K, V]) Delete(key K) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
}

// Sweep removes every expired entry and reports how many were dropped.
func (s *Store[K, V]) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	removed := 0
	for k, e := range s.data {
		if now.After(e.expiresAt) {
			delete(s.data, k)
			removed++
		}
	}
	return removed
}

func (s *Store[K, V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

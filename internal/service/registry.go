package service

import "sync"

// Registry is a concurrency-safe key/value cache filled on first use.
type Registry[K comparable, V any] struct {
	mu      sync.RWMutex
	entries map[K]V
}

func NewRegistry[K comparable, V any]() *Registry[K, V] {
	return &Registry[K, V]{
		entries: make(map[K]V),
	}
}

// GetOrCreate returns the cached value for key, building it with create on a
// miss. A create error is returned as is and nothing is cached.
func (r *Registry[K, V]) GetOrCreate(key K, create func(K) (V, error)) (V, error) {
	r.mu.RLock()
	v, ok := r.entries[key]
	r.mu.RUnlock()
	if ok {
		return v, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if v, ok = r.entries[key]; ok {
		return v, nil
	}

	v, err := create(key)
	if err != nil {
		var zero V
		return zero, err
	}
	r.entries[key] = v

	return v, nil
}

func (r *Registry[K, V]) Get(key K) (V, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.entries[key]
	return v, ok
}

func (r *Registry[K, V]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.entries)
}

func (r *Registry[K, V]) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = make(map[K]V)
}

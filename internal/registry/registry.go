// Package registry provides the session-scoped shared state the host exposes
// to scenes. Values live in memory only and disappear with the session.
package registry

import (
	"sort"
	"sync"
)

// Registry is a string key/value store shared by the scenes of one session.
// The zero value is not usable; call New.
type Registry struct {
	mu     sync.RWMutex
	values map[string]string
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		values: make(map[string]string),
	}
}

// Get returns the value stored under key and whether it was present.
func (r *Registry) Get(key string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.values[key]
	return v, ok
}

// Set stores value under key, overwriting any previous value.
func (r *Registry) Set(key, value string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.values[key] = value
}

// Delete removes key. Deleting a missing key is a no-op.
func (r *Registry) Delete(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.values, key)
}

// Keys returns all stored keys, sorted.
func (r *Registry) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]string, 0, len(r.values))
	for k := range r.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

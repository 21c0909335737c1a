package uniqueid

import (
	"fmt"
	"sort"
	"sync"
)

// Registry tracks issued ids and guarantees uniqueness within itself.
// Thread-safe for concurrent access.
type Registry struct {
	gen *Generator
	ids map[string]struct{}
	mu  sync.Mutex
}

// NewRegistry creates a Registry that mints new ids with gen. A nil gen
// falls back to a default Generator.
func NewRegistry(gen *Generator) *Registry {
	if gen == nil {
		gen = New()
	}
	return &Registry{
		gen: gen,
		ids: make(map[string]struct{}),
	}
}

// Claim records an externally supplied id.
// Returns ErrEmptyID for the empty string and ErrIDTaken when the id is
// already registered.
func (r *Registry) Claim(id string) error {
	if id == "" {
		return ErrEmptyID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.ids[id]; taken {
		return fmt.Errorf("%w: %s", ErrIDTaken, id)
	}
	r.ids[id] = struct{}{}
	return nil
}

// Next generates ids until one is unclaimed, claims it, and returns it.
func (r *Registry) Next() string {
	r.mu.Lock()
	defer r.mu.Unlock()

	for {
		id := r.gen.NewID()
		if _, taken := r.ids[id]; taken {
			continue
		}
		r.ids[id] = struct{}{}
		return id
	}
}

// Release forgets an id, making it claimable again. Releasing an unknown
// id is a no-op.
func (r *Registry) Release(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.ids, id)
}

// Has reports whether the id is registered.
func (r *Registry) Has(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, taken := r.ids[id]
	return taken
}

// Len returns the number of registered ids.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.ids)
}

// IDs returns all registered ids, sorted.
func (r *Registry) IDs() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := make([]string, 0, len(r.ids))
	for id := range r.ids {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

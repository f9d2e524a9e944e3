package cart

import "sync"

// Registry hands out the per-user session stores. Explicit session objects
// instead of ambient globals; one store per user id.
type Registry struct {
	backend Backend

	mu     sync.Mutex
	stores map[string]*Store
}

func NewRegistry(b Backend) *Registry {
	return &Registry{
		backend: b,
		stores:  make(map[string]*Store),
	}
}

// For returns the store for the given user, creating it on first use.
func (r *Registry) For(userID string) *Store {
	r.mu.Lock()
	defer r.mu.Unlock()

	store, ok := r.stores[userID]
	if !ok {
		store = NewStore(userID, r.backend)
		r.stores[userID] = store
	}
	return store
}

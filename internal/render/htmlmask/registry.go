package htmlmask

import "sync"

// Registry remembers which money inputs, by element id, already carry a mask.
// A page keeps one Registry for its lifetime so fragments swapped in later do
// not bind the same input twice.
type Registry struct {
	mu  sync.Mutex
	ids map[string]struct{}
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{ids: make(map[string]struct{})}
}

// Bind marks id as bound and reports whether this call bound it.
// An empty id is never recorded and always binds.
func (r *Registry) Bind(id string) bool {
	if id == "" {
		return true
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.ids[id]; ok {
		return false
	}
	r.ids[id] = struct{}{}
	return true
}

// Bound reports whether id has been bound.
func (r *Registry) Bound(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.ids[id]
	return ok
}

// Len returns the number of ids bound so far.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.ids)
}

package bindings

import "sync/atomic"

// Store holds the current graph behind an atomically swapped pointer.
// Readers get a consistent snapshot without locking; writers replace the
// whole graph at once, never mutating one a reader may hold.
type Store struct {
	current atomic.Pointer[Graph]
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// Snapshot returns the current graph, or nil when none has been published.
// The returned graph must be treated as read-only.
func (s *Store) Snapshot() *Graph {
	return s.current.Load()
}

// Replace publishes g as the current graph.
func (s *Store) Replace(g *Graph) {
	s.current.Store(g)
}

// Clear drops the current graph.
func (s *Store) Clear() {
	s.current.Store(nil)
}

// BindingByID resolves a map-qualified action id against the current graph.
func (s *Store) BindingByID(id string) (*ActionBinding, bool) {
	g := s.current.Load()
	if g == nil {
		return nil, false
	}
	return g.BindingByID(id)
}

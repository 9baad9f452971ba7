// ABOUTME: Bidirectional mapping between application states and vertex IDs
// ABOUTME: Provides the de-duplication table that makes vertices canonical

package graph

// namespace is a bijection between application states and live VertexIDs.
// IDs are assigned sequentially, so the reverse direction is a dense slice
// indexed by VertexID. Entries are added exactly when a vertex is created
// and are only dropped or renumbered during reachability pruning.
type namespace[T comparable] struct {
	ids    map[T]VertexID
	states []T // indexed by VertexID
}

func newNamespace[T comparable]() *namespace[T] {
	return &namespace[T]{ids: make(map[T]VertexID)}
}

// get returns the VertexID for state, if known. No side effect.
func (ns *namespace[T]) get(state T) (VertexID, bool) {
	id, ok := ns.ids[state]
	return id, ok
}

// getOrInsert returns the VertexID for state, allocating the next dense ID
// if the state is new. The second result reports whether an allocation
// happened; when it did, the caller must append the matching vertex record
// so the arena stays aligned with the namespace.
func (ns *namespace[T]) getOrInsert(state T) (VertexID, bool) {
	if id, ok := ns.ids[state]; ok {
		return id, false
	}
	id := VertexID(len(ns.states))
	ns.ids[state] = id
	ns.states = append(ns.states, state)
	return id, true
}

// label returns the canonical state for a live VertexID.
func (ns *namespace[T]) label(id VertexID) T {
	return ns.states[id]
}

func (ns *namespace[T]) len() int {
	return len(ns.states)
}

// remap rewrites the namespace after compaction. idMap maps old VertexIDs
// to new ones, with noVertex marking dropped vertices; kept is the number
// of surviving vertices.
func (ns *namespace[T]) remap(idMap []VertexID, kept int) {
	states := make([]T, kept)
	for old, state := range ns.states {
		newID := idMap[old]
		if newID == noVertex {
			delete(ns.ids, state)
			continue
		}
		states[newID] = state
		ns.ids[state] = newID
	}
	ns.states = states
}

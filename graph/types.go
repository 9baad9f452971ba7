// ABOUTME: Core identifier and storage types for the search graph arena
// ABOUTME: Defines VertexID, EdgeID, TargetKind, and the raw vertex/edge records

package graph

// VertexID is a dense, zero-based identifier for a vertex. IDs are unique
// only within a single Graph instance and are reassigned by
// RetainReachableFrom; any VertexID obtained before a prune must be
// discarded afterwards.
type VertexID int

// EdgeID is a dense, zero-based identifier for an edge. The same staleness
// rules apply as for VertexID.
type EdgeID int

// Sentinels for "absent" entries in the collector's renumbering tables.
const (
	noVertex VertexID = -1
	noEdge   EdgeID   = -1
)

// TargetKind describes the resolution state of an edge's target.
type TargetKind uint8

const (
	// TargetUnexpanded means the edge's destination is not yet known. The
	// edge exists only as an intent to traverse.
	TargetUnexpanded TargetKind = iota
	// TargetExpanded means the destination is a concrete vertex, and that
	// vertex's parent list holds a back-reference to this edge.
	TargetExpanded
	// TargetCycle means the destination is a concrete vertex that was
	// already able to reach this edge's source when the edge was expanded.
	// No back-reference is installed in the target's parent list, so that
	// parent bookkeeping stays acyclic for traversal-history consumers.
	TargetCycle
)

func (k TargetKind) String() string {
	switch k {
	case TargetUnexpanded:
		return "unexpanded"
	case TargetExpanded:
		return "expanded"
	case TargetCycle:
		return "cycle"
	}
	return "unknown"
}

// vertex is the arena record for a single canonical state. Vertices do not
// store their own ID; it is positional.
type vertex[S any] struct {
	data     S
	parents  []EdgeID // incoming edges, in attachment order
	children []EdgeID // outgoing edges, in insertion order
}

// arc is the arena record for a single directed edge. target is only
// meaningful when kind is not TargetUnexpanded.
type arc[A any] struct {
	data   A
	source VertexID
	kind   TargetKind
	target VertexID
}

// ABOUTME: Read-only cursor types for navigating the graph
// ABOUTME: Node, Edge, ChildList, ParentList, and their iterators

package graph

// Node is an immutable handle to a graph vertex. It pairs a graph reference
// with a VertexID and can be copied and shared freely; multiple Nodes into
// the same graph coexist safely as long as no mutable cursor is in use.
//
// Data returns a pointer into the arena for zero-copy access; treat it as
// read-only unless the payload type provides its own synchronization.
type Node[T comparable, S, A any] struct {
	graph *Graph[T, S, A]
	id    VertexID
}

// ID returns the vertex's identifier within its graph. The ID is stable
// across ordinary growth but is reassigned by pruning.
func (n Node[T, S, A]) ID() VertexID {
	return n.id
}

// State returns the canonical state that addresses this vertex. Graphs that
// project multiple equal states onto one vertex consistently return the
// single stored value, regardless of which copy was used for lookup.
func (n Node[T, S, A]) State() T {
	return n.graph.states.label(n.id)
}

// Data returns the vertex payload.
func (n Node[T, S, A]) Data() *S {
	return &n.graph.vertexAt(n.id).data
}

// IsLeaf reports whether this vertex has no outgoing edges, expanded or
// otherwise.
func (n Node[T, S, A]) IsLeaf() bool {
	return len(n.graph.vertexAt(n.id).children) == 0
}

// IsRoot reports whether this vertex has no incoming edges.
func (n Node[T, S, A]) IsRoot() bool {
	return len(n.graph.vertexAt(n.id).parents) == 0
}

// Children returns a traversible list of outgoing edges.
func (n Node[T, S, A]) Children() ChildList[T, S, A] {
	return ChildList[T, S, A]{graph: n.graph, id: n.id}
}

// Parents returns a traversible list of incoming edges.
func (n Node[T, S, A]) Parents() ParentList[T, S, A] {
	return ParentList[T, S, A]{graph: n.graph, id: n.id}
}

// ChildList is a read-only view of a vertex's outgoing edges, in insertion
// order.
type ChildList[T comparable, S, A any] struct {
	graph *Graph[T, S, A]
	id    VertexID
}

// Len returns the number of outgoing edges.
func (cl ChildList[T, S, A]) Len() int {
	return len(cl.graph.vertexAt(cl.id).children)
}

// IsEmpty reports whether there are no outgoing edges.
func (cl ChildList[T, S, A]) IsEmpty() bool {
	return cl.Len() == 0
}

// Source returns a handle for the vertex these edges originate from.
func (cl ChildList[T, S, A]) Source() Node[T, S, A] {
	return Node[T, S, A]{graph: cl.graph, id: cl.id}
}

// Edge returns a handle for the i'th outgoing edge. Indexing out of bounds
// panics; it is a contract violation, not a recoverable condition.
func (cl ChildList[T, S, A]) Edge(i int) Edge[T, S, A] {
	return Edge[T, S, A]{graph: cl.graph, id: cl.graph.vertexAt(cl.id).children[i]}
}

// Iter returns an iterator over the edges in insertion order. The iteration
// is finite and can be restarted by calling Iter again.
func (cl ChildList[T, S, A]) Iter() *EdgeIter[T, S, A] {
	return &EdgeIter[T, S, A]{graph: cl.graph, ids: cl.graph.vertexAt(cl.id).children}
}

// ParentList is a read-only view of a vertex's incoming edges, in
// attachment order. Cycle edges pointing at this vertex do not appear here.
type ParentList[T comparable, S, A any] struct {
	graph *Graph[T, S, A]
	id    VertexID
}

// Len returns the number of incoming edges.
func (pl ParentList[T, S, A]) Len() int {
	return len(pl.graph.vertexAt(pl.id).parents)
}

// IsEmpty reports whether there are no incoming edges.
func (pl ParentList[T, S, A]) IsEmpty() bool {
	return pl.Len() == 0
}

// Target returns a handle for the vertex these edges point to.
func (pl ParentList[T, S, A]) Target() Node[T, S, A] {
	return Node[T, S, A]{graph: pl.graph, id: pl.id}
}

// Edge returns a handle for the i'th incoming edge. Indexing out of bounds
// panics.
func (pl ParentList[T, S, A]) Edge(i int) Edge[T, S, A] {
	return Edge[T, S, A]{graph: pl.graph, id: pl.graph.vertexAt(pl.id).parents[i]}
}

// Iter returns an iterator over the edges in attachment order.
func (pl ParentList[T, S, A]) Iter() *EdgeIter[T, S, A] {
	return &EdgeIter[T, S, A]{graph: pl.graph, ids: pl.graph.vertexAt(pl.id).parents}
}

// EdgeIter walks a fixed edge list in order. It is invalidated, like every
// cursor, by pruning; re-derive it from the owning Node to restart.
type EdgeIter[T comparable, S, A any] struct {
	graph *Graph[T, S, A]
	ids   []EdgeID
	pos   int
}

// Next returns the next edge, or false when the iteration is exhausted.
func (it *EdgeIter[T, S, A]) Next() (Edge[T, S, A], bool) {
	if it.pos >= len(it.ids) {
		return Edge[T, S, A]{}, false
	}
	e := Edge[T, S, A]{graph: it.graph, id: it.ids[it.pos]}
	it.pos++
	return e, true
}

// Edge is an immutable handle to a graph edge.
type Edge[T comparable, S, A any] struct {
	graph *Graph[T, S, A]
	id    EdgeID
}

// ID returns the edge's identifier within its graph. The ID is stable
// across ordinary growth but is reassigned by pruning.
func (e Edge[T, S, A]) ID() EdgeID {
	return e.id
}

// Data returns the edge payload.
func (e Edge[T, S, A]) Data() *A {
	return &e.graph.arcAt(e.id).data
}

// Source returns a handle for this edge's source vertex, which is always
// known.
func (e Edge[T, S, A]) Source() Node[T, S, A] {
	return Node[T, S, A]{graph: e.graph, id: e.graph.arcAt(e.id).source}
}

// Target returns the resolution state of this edge's destination and, when
// the kind is TargetExpanded or TargetCycle, a handle for the destination
// vertex. For TargetUnexpanded the node is the zero value and must not be
// used.
func (e Edge[T, S, A]) Target() (TargetKind, Node[T, S, A]) {
	a := e.graph.arcAt(e.id)
	if a.kind == TargetUnexpanded {
		return TargetUnexpanded, Node[T, S, A]{}
	}
	return a.kind, Node[T, S, A]{graph: e.graph, id: a.target}
}

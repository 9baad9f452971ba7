// ABOUTME: Mutable cursor types for editing graph data and topology
// ABOUTME: MutNode, MutEdge, child/parent lists, and the edge expander

package graph

import "github.com/sirupsen/logrus"

// MutNode is a mutable handle to a graph vertex. It supports everything
// Node does, plus payload mutation and topology growth. At most one mutable
// cursor (or chain of cursors derived from it) may be in use at a time;
// see the package comment for the exclusivity contract.
type MutNode[T comparable, S, A any] struct {
	graph *Graph[T, S, A]
	id    VertexID
}

// ID returns the vertex's identifier within its graph.
func (n MutNode[T, S, A]) ID() VertexID {
	return n.id
}

// State returns the canonical state that addresses this vertex.
func (n MutNode[T, S, A]) State() T {
	return n.graph.states.label(n.id)
}

// Data returns the vertex payload for reading or writing.
func (n MutNode[T, S, A]) Data() *S {
	return &n.graph.vertexAt(n.id).data
}

// IsLeaf reports whether this vertex has no outgoing edges.
func (n MutNode[T, S, A]) IsLeaf() bool {
	return len(n.graph.vertexAt(n.id).children) == 0
}

// IsRoot reports whether this vertex has no incoming edges.
func (n MutNode[T, S, A]) IsRoot() bool {
	return len(n.graph.vertexAt(n.id).parents) == 0
}

// Node returns the read-only handle for this vertex.
func (n MutNode[T, S, A]) Node() Node[T, S, A] {
	return Node[T, S, A]{graph: n.graph, id: n.id}
}

// Children returns a read-only list of outgoing edges.
func (n MutNode[T, S, A]) Children() ChildList[T, S, A] {
	return ChildList[T, S, A]{graph: n.graph, id: n.id}
}

// ChildrenMut returns a mutable list of outgoing edges.
func (n MutNode[T, S, A]) ChildrenMut() MutChildList[T, S, A] {
	return MutChildList[T, S, A]{graph: n.graph, id: n.id}
}

// Parents returns a read-only list of incoming edges.
func (n MutNode[T, S, A]) Parents() ParentList[T, S, A] {
	return ParentList[T, S, A]{graph: n.graph, id: n.id}
}

// ParentsMut returns a mutable list of incoming edges.
func (n MutNode[T, S, A]) ParentsMut() MutParentList[T, S, A] {
	return MutParentList[T, S, A]{graph: n.graph, id: n.id}
}

// RetainReachable prunes the underlying graph, keeping only components
// reachable from this vertex. Afterwards the handle addresses the same
// logical vertex under its new ID (always 0, since this vertex is the sole
// root of the BFS renumbering); every other ID and cursor is invalidated.
func (n *MutNode[T, S, A]) RetainReachable() {
	n.graph.retainReachableFromIDs([]VertexID{n.id})
	n.id = 0
}

// MutChildList is a mutable view of a vertex's outgoing edges, supporting
// edge insertion.
type MutChildList[T comparable, S, A any] struct {
	graph *Graph[T, S, A]
	id    VertexID
}

// Len returns the number of outgoing edges.
func (cl MutChildList[T, S, A]) Len() int {
	return len(cl.graph.vertexAt(cl.id).children)
}

// IsEmpty reports whether there are no outgoing edges.
func (cl MutChildList[T, S, A]) IsEmpty() bool {
	return cl.Len() == 0
}

// Edge returns a read-only handle for the i'th outgoing edge.
func (cl MutChildList[T, S, A]) Edge(i int) Edge[T, S, A] {
	return Edge[T, S, A]{graph: cl.graph, id: cl.graph.vertexAt(cl.id).children[i]}
}

// EdgeMut returns a mutable handle for the i'th outgoing edge.
func (cl MutChildList[T, S, A]) EdgeMut(i int) MutEdge[T, S, A] {
	return MutEdge[T, S, A]{graph: cl.graph, id: cl.graph.vertexAt(cl.id).children[i]}
}

// Source returns a read-only handle for the vertex these edges originate
// from.
func (cl MutChildList[T, S, A]) Source() Node[T, S, A] {
	return Node[T, S, A]{graph: cl.graph, id: cl.id}
}

// SourceMut returns a mutable handle for the vertex these edges originate
// from.
func (cl MutChildList[T, S, A]) SourceMut() MutNode[T, S, A] {
	return MutNode[T, S, A]{graph: cl.graph, id: cl.id}
}

// AddChild inserts a pre-expanded edge to the vertex canonicalizing
// childState, creating that vertex (with dataFn, which may be nil) if the
// state is novel. The edge is appended to this vertex's child list and the
// target's parent list. Returns a mutable handle for the new edge.
func (cl MutChildList[T, S, A]) AddChild(childState T, dataFn func(Node[T, S, A]) S, edgeData A) MutEdge[T, S, A] {
	targetID := cl.graph.ensureVertex(childState, dataFn)
	edgeID := cl.graph.addArc(edgeData, cl.id, TargetExpanded, targetID)
	return MutEdge[T, S, A]{graph: cl.graph, id: edgeID}
}

// AddUnexpanded appends an outgoing edge whose destination is not yet
// known. The edge carries its payload immediately; its target is resolved
// later through the expander obtained from MutEdge.Expander.
func (cl MutChildList[T, S, A]) AddUnexpanded(edgeData A) MutEdge[T, S, A] {
	edgeID := cl.graph.addArc(edgeData, cl.id, TargetUnexpanded, noVertex)
	return MutEdge[T, S, A]{graph: cl.graph, id: edgeID}
}

// MutParentList is a mutable view of a vertex's incoming edges, supporting
// parent insertion.
type MutParentList[T comparable, S, A any] struct {
	graph *Graph[T, S, A]
	id    VertexID
}

// Len returns the number of incoming edges.
func (pl MutParentList[T, S, A]) Len() int {
	return len(pl.graph.vertexAt(pl.id).parents)
}

// IsEmpty reports whether there are no incoming edges.
func (pl MutParentList[T, S, A]) IsEmpty() bool {
	return pl.Len() == 0
}

// Edge returns a read-only handle for the i'th incoming edge.
func (pl MutParentList[T, S, A]) Edge(i int) Edge[T, S, A] {
	return Edge[T, S, A]{graph: pl.graph, id: pl.graph.vertexAt(pl.id).parents[i]}
}

// EdgeMut returns a mutable handle for the i'th incoming edge.
func (pl MutParentList[T, S, A]) EdgeMut(i int) MutEdge[T, S, A] {
	return MutEdge[T, S, A]{graph: pl.graph, id: pl.graph.vertexAt(pl.id).parents[i]}
}

// Target returns a read-only handle for the vertex these edges point to.
func (pl MutParentList[T, S, A]) Target() Node[T, S, A] {
	return Node[T, S, A]{graph: pl.graph, id: pl.id}
}

// TargetMut returns a mutable handle for the vertex these edges point to.
func (pl MutParentList[T, S, A]) TargetMut() MutNode[T, S, A] {
	return MutNode[T, S, A]{graph: pl.graph, id: pl.id}
}

// AddParent inserts a pre-expanded edge from the vertex canonicalizing
// parentState to this vertex, creating the parent vertex (with dataFn,
// which may be nil) if the state is novel. Returns a mutable handle for
// the new edge.
func (pl MutParentList[T, S, A]) AddParent(parentState T, dataFn func(Node[T, S, A]) S, edgeData A) MutEdge[T, S, A] {
	sourceID := pl.graph.ensureVertex(parentState, dataFn)
	edgeID := pl.graph.addArc(edgeData, sourceID, TargetExpanded, pl.id)
	return MutEdge[T, S, A]{graph: pl.graph, id: edgeID}
}

// MutEdge is a mutable handle to a graph edge.
type MutEdge[T comparable, S, A any] struct {
	graph *Graph[T, S, A]
	id    EdgeID
}

// ID returns the edge's identifier within its graph.
func (e MutEdge[T, S, A]) ID() EdgeID {
	return e.id
}

// Data returns the edge payload for reading or writing.
func (e MutEdge[T, S, A]) Data() *A {
	return &e.graph.arcAt(e.id).data
}

// Edge returns the read-only handle for this edge.
func (e MutEdge[T, S, A]) Edge() Edge[T, S, A] {
	return Edge[T, S, A]{graph: e.graph, id: e.id}
}

// Source returns a read-only handle for this edge's source vertex.
func (e MutEdge[T, S, A]) Source() Node[T, S, A] {
	return Node[T, S, A]{graph: e.graph, id: e.graph.arcAt(e.id).source}
}

// SourceMut returns a mutable handle for this edge's source vertex.
func (e MutEdge[T, S, A]) SourceMut() MutNode[T, S, A] {
	return MutNode[T, S, A]{graph: e.graph, id: e.graph.arcAt(e.id).source}
}

// Target returns the resolution state of this edge's destination and, when
// resolved, a read-only handle for the destination vertex.
func (e MutEdge[T, S, A]) Target() (TargetKind, Node[T, S, A]) {
	return Edge[T, S, A]{graph: e.graph, id: e.id}.Target()
}

// TargetMut returns the resolution state of this edge's destination and,
// when resolved, a mutable handle for the destination vertex. For an
// unexpanded edge the node is the zero value; use Expander to resolve it.
func (e MutEdge[T, S, A]) TargetMut() (TargetKind, MutNode[T, S, A]) {
	a := e.graph.arcAt(e.id)
	if a.kind == TargetUnexpanded {
		return TargetUnexpanded, MutNode[T, S, A]{}
	}
	return a.kind, MutNode[T, S, A]{graph: e.graph, id: a.target}
}

// Expander returns the expander for this edge, or false if the target has
// already been resolved.
func (e MutEdge[T, S, A]) Expander() (EdgeExpander[T, S, A], bool) {
	if e.graph.arcAt(e.id).kind != TargetUnexpanded {
		return EdgeExpander[T, S, A]{}, false
	}
	return EdgeExpander[T, S, A]{graph: e.graph, id: e.id}, true
}

// EdgeExpander resolves the target of an unexpanded edge.
type EdgeExpander[T comparable, S, A any] struct {
	graph *Graph[T, S, A]
	id    EdgeID
}

// Edge returns a read-only handle for the edge being expanded.
func (x EdgeExpander[T, S, A]) Edge() Edge[T, S, A] {
	return Edge[T, S, A]{graph: x.graph, id: x.id}
}

// Expand resolves the edge's target to the vertex canonicalizing state,
// creating that vertex (with dataFn, which may be nil) if the state is
// novel.
//
// If the resolved target can already reach this edge's source along
// expanded edges, the edge is classified TargetCycle and no parent
// back-reference is installed on the target; otherwise it becomes
// TargetExpanded and the back-reference is appended. The cycle check is a
// depth-first search bounded by the expanded subgraph reachable from the
// target. Returns a mutable handle for the now-resolved edge; the expander
// must not be reused after this call.
func (x EdgeExpander[T, S, A]) Expand(state T, dataFn func(Node[T, S, A]) S) MutEdge[T, S, A] {
	targetID, created := x.graph.states.getOrInsert(state)
	if created {
		x.graph.addVertex(*new(S))
		if dataFn != nil {
			x.graph.vertices[targetID].data = dataFn(Node[T, S, A]{graph: x.graph, id: targetID})
		}
	}
	a := x.graph.arcAt(x.id)
	// A freshly created vertex has no outgoing edges, so it cannot close a
	// cycle back to the source.
	if !created && x.graph.pathExists(targetID, a.source) {
		a.kind = TargetCycle
		a.target = targetID
		x.graph.log.WithFields(logrus.Fields{
			"edge":   x.id,
			"source": a.source,
			"target": targetID,
		}).Trace("classified edge as cycle")
	} else {
		a.kind = TargetExpanded
		a.target = targetID
		v := x.graph.vertexAt(targetID)
		v.parents = append(v.parents, x.id)
	}
	return MutEdge[T, S, A]{graph: x.graph, id: x.id}
}

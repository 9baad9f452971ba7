// ABOUTME: Append-only view allowing many live references alongside growth
// ABOUTME: NodeRef/EdgeRef tokens stay valid because growth never renumbers

package graph

// View is an editable window over a graph that hands out plain NodeRef and
// EdgeRef tokens instead of cursors. Because ordinary growth is append-only
// and never renumbers IDs, refs taken from a View stay valid across
// AppendNode and AppendEdge calls, so callers can hold many of them while
// still growing the graph. A View deliberately exposes no pruning
// operation; pruning the underlying graph through any other handle
// invalidates the View and all refs taken from it.
//
// A View holds the graph's exclusive borrow, like a mutable cursor:
// payload mutation and appends through it are not synchronized with
// anything else.
type View[T comparable, S, A any] struct {
	graph *Graph[T, S, A]
}

// NodeRef is a token for a vertex, only meaningful with the View (or
// graph) it came from.
type NodeRef struct {
	id VertexID
}

// EdgeRef is a token for an edge, only meaningful with the View (or graph)
// it came from.
type EdgeRef struct {
	id EdgeID
}

// ViewOf opens a view over the graph. The caller must not use any other
// mutable handle into the graph while the view is in use.
func ViewOf[T comparable, S, A any](g *Graph[T, S, A]) View[T, S, A] {
	return View[T, S, A]{graph: g}
}

// ViewOfNode opens a view at a node, absorbing the node's borrow. Returns
// the view and the node's ref.
func ViewOfNode[T comparable, S, A any](node MutNode[T, S, A]) (View[T, S, A], NodeRef) {
	return View[T, S, A]{graph: node.graph}, NodeRef{id: node.id}
}

// AppendNode resolves or creates the vertex canonicalizing state and
// returns its ref. Like AddRoot, the data argument is discarded when the
// state is already known.
func (v View[T, S, A]) AppendNode(state T, data S) NodeRef {
	id, created := v.graph.states.getOrInsert(state)
	if created {
		v.graph.addVertex(data)
	}
	return NodeRef{id: id}
}

// AppendEdge inserts a pre-expanded edge between two referenced vertices
// and returns its ref. Existing refs remain valid.
func (v View[T, S, A]) AppendEdge(source, target NodeRef, data A) EdgeRef {
	return EdgeRef{id: v.graph.addArc(data, source.id, TargetExpanded, target.id)}
}

// FindNode returns the ref for a known state.
func (v View[T, S, A]) FindNode(state T) (NodeRef, bool) {
	id, ok := v.graph.states.get(state)
	return NodeRef{id: id}, ok
}

// NodeState returns the canonical state of a referenced vertex.
func (v View[T, S, A]) NodeState(ref NodeRef) T {
	return v.graph.states.label(ref.id)
}

// NodeData returns the payload of a referenced vertex for reading or
// writing.
func (v View[T, S, A]) NodeData(ref NodeRef) *S {
	return &v.graph.vertexAt(ref.id).data
}

// EdgeData returns the payload of a referenced edge for reading or
// writing.
func (v View[T, S, A]) EdgeData(ref EdgeRef) *A {
	return &v.graph.arcAt(ref.id).data
}

// ChildCount returns the number of outgoing edges of a referenced vertex.
func (v View[T, S, A]) ChildCount(ref NodeRef) int {
	return len(v.graph.vertexAt(ref.id).children)
}

// Child returns the ref of the i'th outgoing edge.
func (v View[T, S, A]) Child(ref NodeRef, i int) EdgeRef {
	return EdgeRef{id: v.graph.vertexAt(ref.id).children[i]}
}

// ParentCount returns the number of incoming edges of a referenced vertex.
func (v View[T, S, A]) ParentCount(ref NodeRef) int {
	return len(v.graph.vertexAt(ref.id).parents)
}

// Parent returns the ref of the i'th incoming edge.
func (v View[T, S, A]) Parent(ref NodeRef, i int) EdgeRef {
	return EdgeRef{id: v.graph.vertexAt(ref.id).parents[i]}
}

// EdgeSource returns the ref of an edge's source vertex.
func (v View[T, S, A]) EdgeSource(ref EdgeRef) NodeRef {
	return NodeRef{id: v.graph.arcAt(ref.id).source}
}

// EdgeTarget returns the resolution state of an edge and, when resolved,
// the ref of its target vertex.
func (v View[T, S, A]) EdgeTarget(ref EdgeRef) (TargetKind, NodeRef) {
	a := v.graph.arcAt(ref.id)
	if a.kind == TargetUnexpanded {
		return TargetUnexpanded, NodeRef{}
	}
	return a.kind, NodeRef{id: a.target}
}

// Node converts a ref into a read-only cursor.
func (v View[T, S, A]) Node(ref NodeRef) Node[T, S, A] {
	return Node[T, S, A]{graph: v.graph, id: ref.id}
}

// Edge converts a ref into a read-only cursor.
func (v View[T, S, A]) Edge(ref EdgeRef) Edge[T, S, A] {
	return Edge[T, S, A]{graph: v.graph, id: ref.id}
}

// IntoNode closes the view, releasing its borrow back to a mutable cursor
// for the referenced vertex. The view must not be used afterwards.
func (v View[T, S, A]) IntoNode(ref NodeRef) MutNode[T, S, A] {
	return MutNode[T, S, A]{graph: v.graph, id: ref.id}
}

// IntoEdge closes the view, releasing its borrow back to a mutable cursor
// for the referenced edge. The view must not be used afterwards.
func (v View[T, S, A]) IntoEdge(ref EdgeRef) MutEdge[T, S, A] {
	return MutEdge[T, S, A]{graph: v.graph, id: ref.id}
}

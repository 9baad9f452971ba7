// ABOUTME: Traversal history recording the edges followed during local search
// ABOUTME: Push/pop of steps, head inspection, and in-order iteration

package graph

// Path tracks the route followed while performing local search: a sequence
// of (vertex, edge) steps from a starting vertex, plus a head. The head is
// always exactly one of a resolved vertex or an unexpanded edge (when a
// traversal followed an edge whose target is not yet known).
//
// A Path borrows the graph exclusively, like a mutable cursor. It is a
// passive holder with no terminal state; it is consumed, not finished.
// Pruning the graph invalidates the Path along with every other cursor.
type Path[T comparable, S, A any] struct {
	graph *Graph[T, S, A]
	steps []pathStep
	head  pathHead
}

// pathStep is one recorded traversal: the vertex the move started from and
// the edge that was followed.
type pathStep struct {
	vertex VertexID
	edge   EdgeID
}

type pathHead struct {
	expanded bool
	vertex   VertexID // valid when expanded
	edge     EdgeID   // valid when !expanded
}

// Traversal is a selector's decision: follow a child edge, follow a parent
// edge, or stay put. The zero value means no move.
type Traversal struct {
	list   ListKind
	index  int
	follow bool
}

// NoMove is the Traversal that leaves the head unchanged.
var NoMove = Traversal{}

// FollowChild selects the i'th outgoing edge of the head vertex.
func FollowChild(i int) Traversal {
	return Traversal{list: ChildEdges, index: i, follow: true}
}

// FollowParent selects the i'th incoming edge of the head vertex.
func FollowParent(i int) Traversal {
	return Traversal{list: ParentEdges, index: i, follow: true}
}

// NewPath starts a traversal history at the given vertex. The node handle
// is absorbed; the path takes over its exclusive borrow of the graph.
func NewPath[T comparable, S, A any](node MutNode[T, S, A]) *Path[T, S, A] {
	return &Path[T, S, A]{
		graph: node.graph,
		head:  pathHead{expanded: true, vertex: node.id},
	}
}

// Len returns the number of elements in the path. The head always counts,
// so the length is at least 1.
func (p *Path[T, S, A]) Len() int {
	return len(p.steps) + 1
}

// IsHeadExpanded reports whether the head resolves to a vertex.
func (p *Path[T, S, A]) IsHeadExpanded() bool {
	return p.head.expanded
}

// Head returns a read-only handle for the head vertex, or false if the
// head is an unexpanded edge.
func (p *Path[T, S, A]) Head() (Node[T, S, A], bool) {
	if !p.head.expanded {
		return Node[T, S, A]{}, false
	}
	return Node[T, S, A]{graph: p.graph, id: p.head.vertex}, true
}

// HeadEdge returns a read-only handle for the unexpanded edge at the head,
// or false if the head is a vertex.
func (p *Path[T, S, A]) HeadEdge() (Edge[T, S, A], bool) {
	if p.head.expanded {
		return Edge[T, S, A]{}, false
	}
	return Edge[T, S, A]{graph: p.graph, id: p.head.edge}, true
}

// HeadNodeMut consumes the path's borrow and returns a mutable handle for
// the head vertex, or false if the head is an unexpanded edge. The path
// must not be used afterwards.
func (p *Path[T, S, A]) HeadNodeMut() (MutNode[T, S, A], bool) {
	if !p.head.expanded {
		return MutNode[T, S, A]{}, false
	}
	return MutNode[T, S, A]{graph: p.graph, id: p.head.vertex}, true
}

// HeadEdgeMut consumes the path's borrow and returns a mutable handle for
// the unexpanded head edge, or false if the head is a vertex. The path
// must not be used afterwards.
func (p *Path[T, S, A]) HeadEdgeMut() (MutEdge[T, S, A], bool) {
	if p.head.expanded {
		return MutEdge[T, S, A]{}, false
	}
	return MutEdge[T, S, A]{graph: p.graph, id: p.head.edge}, true
}

// Push grows the path by consulting select with a read-only view of the
// head vertex. Returning FollowChild(i) or FollowParent(i) records the
// chosen edge and moves the head to the edge's other endpoint: the target
// for a child move (or the unexpanded edge itself when the target is not
// yet known), the source for a parent move. Returning NoMove leaves the
// path unchanged.
//
// The traversed edge and true are returned on a move; false with a nil
// error means the selector declined to move. Errors are *BoundsError for
// an out-of-range index, ErrUnexpandedHead when the head is not a vertex,
// and *SelectionError wrapping whatever the selector returned.
func (p *Path[T, S, A]) Push(selectFn func(Node[T, S, A]) (Traversal, error)) (Edge[T, S, A], bool, error) {
	if !p.head.expanded {
		return Edge[T, S, A]{}, false, ErrUnexpandedHead
	}
	headID := p.head.vertex
	node := Node[T, S, A]{graph: p.graph, id: headID}
	tr, err := selectFn(node)
	if err != nil {
		return Edge[T, S, A]{}, false, &SelectionError{Err: err}
	}
	if !tr.follow {
		return Edge[T, S, A]{}, false, nil
	}

	switch tr.list {
	case ChildEdges:
		children := node.Children()
		if tr.index < 0 || tr.index >= children.Len() {
			return Edge[T, S, A]{}, false, &BoundsError{List: ChildEdges, Requested: tr.index, Count: children.Len()}
		}
		edge := children.Edge(tr.index)
		p.steps = append(p.steps, pathStep{vertex: headID, edge: edge.id})
		switch kind, target := edge.Target(); kind {
		case TargetUnexpanded:
			p.head = pathHead{expanded: false, edge: edge.id}
		case TargetExpanded, TargetCycle:
			p.head = pathHead{expanded: true, vertex: target.id}
		}
		return edge, true, nil
	default:
		parents := node.Parents()
		if tr.index < 0 || tr.index >= parents.Len() {
			return Edge[T, S, A]{}, false, &BoundsError{List: ParentEdges, Requested: tr.index, Count: parents.Len()}
		}
		edge := parents.Edge(tr.index)
		p.steps = append(p.steps, pathStep{vertex: headID, edge: edge.id})
		// A parent edge's source is always known, so the head stays
		// resolved.
		p.head = pathHead{expanded: true, vertex: edge.Source().id}
		return edge, true, nil
	}
}

// Pop removes the most recently pushed step, restoring the head to the
// vertex the step started from, and returns the removed edge. Returns
// false without effect if there is no history.
func (p *Path[T, S, A]) Pop() (Edge[T, S, A], bool) {
	if len(p.steps) == 0 {
		return Edge[T, S, A]{}, false
	}
	step := p.steps[len(p.steps)-1]
	p.steps = p.steps[:len(p.steps)-1]
	p.head = pathHead{expanded: true, vertex: step.vertex}
	return Edge[T, S, A]{graph: p.graph, id: step.edge}, true
}

// Item returns the i'th path element in traversal order; the last element
// (i == Len()-1) is the head. Returns false if i is out of range.
func (p *Path[T, S, A]) Item(i int) (PathItem[T, S, A], bool) {
	if i < 0 || i > len(p.steps) {
		return PathItem[T, S, A]{}, false
	}
	if i == len(p.steps) {
		return p.headItem(), true
	}
	step := p.steps[i]
	return PathItem[T, S, A]{
		kind: pathItemStep,
		node: Node[T, S, A]{graph: p.graph, id: step.vertex},
		edge: Edge[T, S, A]{graph: p.graph, id: step.edge},
	}, true
}

func (p *Path[T, S, A]) headItem() PathItem[T, S, A] {
	if p.head.expanded {
		return PathItem[T, S, A]{
			kind: pathItemHeadNode,
			node: Node[T, S, A]{graph: p.graph, id: p.head.vertex},
		}
	}
	return PathItem[T, S, A]{
		kind: pathItemHeadEdge,
		edge: Edge[T, S, A]{graph: p.graph, id: p.head.edge},
	}
}

// Iter returns an iterator over path elements in traversal order, ending
// with the head. Restart by calling Iter again.
func (p *Path[T, S, A]) Iter() *PathIter[T, S, A] {
	return &PathIter[T, S, A]{path: p}
}

// PathIter walks a Path oldest-first; the final element is the head.
type PathIter[T comparable, S, A any] struct {
	path      *Path[T, S, A]
	pos       int
	exhausted bool
}

// Next returns the next path element, or false when iteration is done.
func (it *PathIter[T, S, A]) Next() (PathItem[T, S, A], bool) {
	if it.pos >= len(it.path.steps) {
		if it.exhausted {
			return PathItem[T, S, A]{}, false
		}
		it.exhausted = true
		return it.path.headItem(), true
	}
	item, _ := it.path.Item(it.pos)
	it.pos++
	return item, true
}

type pathItemKind uint8

const (
	pathItemStep pathItemKind = iota
	pathItemHeadNode
	pathItemHeadEdge
)

// PathItem is one element of a path: a recorded (vertex, edge) step, or
// the head (which resolves to a vertex or to an unexpanded edge).
type PathItem[T comparable, S, A any] struct {
	kind pathItemKind
	node Node[T, S, A]
	edge Edge[T, S, A]
}

// IsHead reports whether this element is the path head.
func (it PathItem[T, S, A]) IsHead() bool {
	return it.kind != pathItemStep
}

// Node returns the element's vertex handle. It is absent only for an
// unexpanded head.
func (it PathItem[T, S, A]) Node() (Node[T, S, A], bool) {
	if it.kind == pathItemHeadEdge {
		return Node[T, S, A]{}, false
	}
	return it.node, true
}

// Edge returns the element's edge handle: the traversed edge for a step,
// the unresolved edge for an unexpanded head. An expanded head has no
// edge.
func (it PathItem[T, S, A]) Edge() (Edge[T, S, A], bool) {
	if it.kind == pathItemHeadNode {
		return Edge[T, S, A]{}, false
	}
	return it.edge, true
}

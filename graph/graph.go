// ABOUTME: Graph arena owning vertices, edges, and the state namespace
// ABOUTME: Provides construction, growth, lookup, and reachability pruning

// Package graph implements a de-duplicating, incrementally built directed
// graph for state-space search.
//
// A Graph is parameterized by a comparable state type T, a vertex payload
// type S, and an edge payload type A. Every distinct state owns exactly one
// vertex; inserting an edge toward a state that has been seen before reuses
// the existing vertex. Graph contents are examined and modified through
// lightweight cursor types (Node, Edge, MutNode, MutEdge and friends) that
// pair a graph reference with a dense ID.
//
// Concurrency: a Graph may be shared across goroutines for read-only access
// (through Node, Edge, ChildList, ParentList) provided T, S, and A are safe
// to read concurrently. There is no built-in support for concurrent
// mutation: AddRoot, AddEdge, RetainReachableFrom, and every Mut* cursor
// require exclusive access, enforced by caller discipline or an external
// lock. While any mutable cursor is in use, no other cursor into the same
// graph may be used.
package graph

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Config carries optional construction settings for a Graph.
type Config struct {
	// Logger receives debug-level instrumentation (prune summaries, cycle
	// classifications). If nil, logging is discarded.
	Logger *logrus.Logger
}

// Graph owns two growable arenas (vertices indexed by VertexID, edges
// indexed by EdgeID) and the namespace that de-duplicates states. Ordinary
// growth is append-only and never renumbers existing IDs; pruning renumbers
// everything.
type Graph[T comparable, S, A any] struct {
	states   *namespace[T]
	vertices []vertex[S]
	arcs     []arc[A]
	log      *logrus.Logger
}

// New creates an empty graph with no vertices or edges.
func New[T comparable, S, A any]() *Graph[T, S, A] {
	return NewWithConfig[T, S, A](Config{})
}

// NewWithConfig creates an empty graph with the given settings.
func NewWithConfig[T comparable, S, A any](cfg Config) *Graph[T, S, A] {
	log := cfg.Logger
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}
	return &Graph[T, S, A]{
		states: newNamespace[T](),
		log:    log,
	}
}

// vertexAt returns the arena record for id.
func (g *Graph[T, S, A]) vertexAt(id VertexID) *vertex[S] {
	return &g.vertices[id]
}

// arcAt returns the arena record for id.
func (g *Graph[T, S, A]) arcAt(id EdgeID) *arc[A] {
	return &g.arcs[id]
}

// addVertex appends a new vertex with the given data and no edges. The
// caller is responsible for having allocated the matching namespace entry
// first, so that IDs stay aligned.
func (g *Graph[T, S, A]) addVertex(data S) VertexID {
	g.vertices = append(g.vertices, vertex[S]{data: data})
	return VertexID(len(g.vertices) - 1)
}

// addArc appends a new edge. The edge is pushed onto the source's child
// list, and onto the target's parent list iff kind is TargetExpanded.
func (g *Graph[T, S, A]) addArc(data A, source VertexID, kind TargetKind, target VertexID) EdgeID {
	id := EdgeID(len(g.arcs))
	g.arcs = append(g.arcs, arc[A]{data: data, source: source, kind: kind, target: target})
	if kind == TargetExpanded {
		g.vertexAt(target).parents = append(g.vertexAt(target).parents, id)
	}
	g.vertexAt(source).children = append(g.vertexAt(source).children, id)
	return id
}

// ensureVertex resolves state to a vertex, creating one if the state is
// novel. dataFn is invoked only on creation; it receives a read-only cursor
// to the not-yet-populated vertex and returns its payload. A nil dataFn
// leaves the payload at its zero value.
func (g *Graph[T, S, A]) ensureVertex(state T, dataFn func(Node[T, S, A]) S) VertexID {
	id, created := g.states.getOrInsert(state)
	if created {
		g.addVertex(*new(S))
		if dataFn != nil {
			g.vertices[id].data = dataFn(Node[T, S, A]{graph: g, id: id})
		}
	}
	return id
}

// pathExists reports whether target is reachable from source by following
// expanded edges only; cycle and unexpanded edges are not traversed. It is
// a bounded depth-first search: cost is proportional to the size of the
// already-expanded subgraph reachable from source, not amortized O(1).
func (g *Graph[T, S, A]) pathExists(source, target VertexID) bool {
	visited := make(map[VertexID]bool)
	frontier := []VertexID{source}
	for len(frontier) > 0 {
		id := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]
		if id == target {
			return true
		}
		if visited[id] {
			continue
		}
		visited[id] = true
		for _, arcID := range g.vertexAt(id).children {
			a := g.arcAt(arcID)
			if a.kind == TargetExpanded {
				frontier = append(frontier, a.target)
			}
		}
	}
	return false
}

// AddRoot adds a vertex with no edges for the given state and data,
// returning a mutable handle to it.
//
// If state is already known, the existing vertex is returned and data is
// discarded: callers must not rely on the payload being applied on a
// repeat call. As a result the returned handle refers to a parentless
// vertex only when state was novel.
func (g *Graph[T, S, A]) AddRoot(state T, data S) MutNode[T, S, A] {
	id, created := g.states.getOrInsert(state)
	if created {
		g.addVertex(data)
	}
	return MutNode[T, S, A]{graph: g, id: id}
}

// AddEdge inserts a pre-expanded edge from sourceState to targetState,
// resolving or creating vertices for both endpoints. sourceDataFn and
// targetDataFn are invoked only for newly created endpoints (nil leaves the
// payload zero). The new edge is appended to the source's child list and
// the target's parent list. Returns a mutable handle to the new edge.
func (g *Graph[T, S, A]) AddEdge(
	sourceState T, sourceDataFn func(Node[T, S, A]) S,
	targetState T, targetDataFn func(Node[T, S, A]) S,
	edgeData A,
) MutEdge[T, S, A] {
	sourceID := g.ensureVertex(sourceState, sourceDataFn)
	targetID := g.ensureVertex(targetState, targetDataFn)
	edgeID := g.addArc(edgeData, sourceID, TargetExpanded, targetID)
	return MutEdge[T, S, A]{graph: g, id: edgeID}
}

// FindNode returns a read-only handle for the vertex canonicalizing state,
// if one exists. No side effect.
func (g *Graph[T, S, A]) FindNode(state T) (Node[T, S, A], bool) {
	id, ok := g.states.get(state)
	if !ok {
		return Node[T, S, A]{}, false
	}
	return Node[T, S, A]{graph: g, id: id}, true
}

// FindNodeMut returns a mutable handle for the vertex canonicalizing
// state, if one exists.
func (g *Graph[T, S, A]) FindNodeMut(state T) (MutNode[T, S, A], bool) {
	id, ok := g.states.get(state)
	if !ok {
		return MutNode[T, S, A]{}, false
	}
	return MutNode[T, S, A]{graph: g, id: id}, true
}

// VertexCount returns the number of live vertices. Growth never leaves
// stale slots and pruning compacts eagerly, so this is always a true live
// count.
func (g *Graph[T, S, A]) VertexCount() int {
	return len(g.vertices)
}

// EdgeCount returns the number of live edges.
func (g *Graph[T, S, A]) EdgeCount() int {
	return len(g.arcs)
}

// RetainReachableFrom prunes the graph, keeping only components reachable
// from the given root states by resolved edges. Root states that are not
// known are silently ignored.
//
// After this call every previously issued VertexID, EdgeID, cursor, view,
// and path into this graph is invalid and must be discarded: survivors are
// renumbered densely in BFS discovery order from the roots.
func (g *Graph[T, S, A]) RetainReachableFrom(roots ...T) {
	ids := make([]VertexID, 0, len(roots))
	for _, root := range roots {
		if id, ok := g.states.get(root); ok {
			ids = append(ids, id)
		}
	}
	g.retainReachableFromIDs(ids)
}

func (g *Graph[T, S, A]) retainReachableFromIDs(roots []VertexID) {
	before := len(g.vertices)
	beforeArcs := len(g.arcs)
	retainReachable(g, roots)
	g.log.WithFields(logrus.Fields{
		"roots":          len(roots),
		"verticesBefore": before,
		"verticesAfter":  len(g.vertices),
		"edgesBefore":    beforeArcs,
		"edgesAfter":     len(g.arcs),
	}).Debug("pruned unreachable graph components")
}

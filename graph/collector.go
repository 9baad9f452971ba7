// ABOUTME: Mark-compact garbage collector for reachability pruning
// ABOUTME: BFS mark with eager renumbering, then in-place arena compaction

package graph

// collector holds the state of one mark-compact pass. Running time and
// memory are linear in graph size; the costly part is rebuilding the state
// namespace afterwards.
type collector[T comparable, S, A any] struct {
	graph          *Graph[T, S, A]
	markedVertices int
	markedArcs     int
	vertexIDMap    []VertexID // old ID -> new ID, noVertex if unreachable
	arcIDMap       []EdgeID   // old ID -> new ID, noEdge if unreachable
	frontier       []VertexID // BFS queue of old IDs
}

// retainReachable prunes graph so that only components reachable from roots
// survive, compacting both arenas and renumbering survivors in BFS
// discovery order.
func retainReachable[T comparable, S, A any](g *Graph[T, S, A], roots []VertexID) {
	c := newCollector(g)
	c.mark(roots)
	c.sweep()
}

func newCollector[T comparable, S, A any](g *Graph[T, S, A]) *collector[T, S, A] {
	vertexIDMap := make([]VertexID, len(g.vertices))
	for i := range vertexIDMap {
		vertexIDMap[i] = noVertex
	}
	arcIDMap := make([]EdgeID, len(g.arcs))
	for i := range arcIDMap {
		arcIDMap[i] = noEdge
	}
	return &collector[T, S, A]{graph: g, vertexIDMap: vertexIDMap, arcIDMap: arcIDMap}
}

// remapVertex assigns old the next dense new ID if it does not have one
// yet. New IDs are handed out in order of first encounter, which makes the
// final numbering BFS discovery order and keeps sibling vertices adjacent
// after compaction.
func (c *collector[T, S, A]) remapVertex(old VertexID) VertexID {
	if newID := c.vertexIDMap[old]; newID != noVertex {
		return newID
	}
	newID := VertexID(c.markedVertices)
	c.vertexIDMap[old] = newID
	c.markedVertices++
	return newID
}

func (c *collector[T, S, A]) remapArc(old EdgeID) EdgeID {
	if newID := c.arcIDMap[old]; newID != noEdge {
		return newID
	}
	newID := EdgeID(c.markedArcs)
	c.arcIDMap[old] = newID
	c.markedArcs++
	return newID
}

// mark traverses components reachable from roots breadth-first, building
// the old->new ID maps. As side effects, the children lists of visited
// vertices and the source fields of visited arcs are rewritten to the new
// numbering; parent lists and arc targets are left for sweep.
//
// Resolved targets of both expanded and cycle edges are traversed, so a
// surviving cycle edge can never dangle. Unexpanded edges are renumbered
// but contribute no vertex to visit.
func (c *collector[T, S, A]) mark(roots []VertexID) {
	for _, id := range roots {
		// Duplicate roots get one mapping and one visit.
		if c.vertexIDMap[id] == noVertex {
			c.remapVertex(id)
			c.frontier = append(c.frontier, id)
		}
	}
	for len(c.frontier) > 0 {
		id := c.frontier[0]
		c.frontier = c.frontier[1:]
		newID := c.vertexIDMap[id]
		v := c.graph.vertexAt(id)
		for i, arcID := range v.children {
			a := c.graph.arcAt(arcID)
			a.source = newID
			if a.kind != TargetUnexpanded && c.vertexIDMap[a.target] == noVertex {
				c.remapVertex(a.target)
				c.frontier = append(c.frontier, a.target)
			}
			v.children[i] = c.remapArc(arcID)
		}
	}
}

// sweep relocates marked vertices and arcs to their new slots, drops
// everything unmarked, filters and renumbers parent lists, rewrites
// resolved arc targets, and rebuilds the namespace. Must run after mark.
func (c *collector[T, S, A]) sweep() {
	g := c.graph

	g.vertices = permuteCompact(g.vertices, c.markedVertices, func(old int) (int, bool) {
		newID := c.vertexIDMap[old]
		return int(newID), newID != noVertex
	})
	for i := range g.vertices {
		v := &g.vertices[i]
		kept := 0
		for _, parentID := range v.parents {
			if newID := c.arcIDMap[parentID]; newID != noEdge {
				v.parents[kept] = newID
				kept++
			}
		}
		v.parents = v.parents[:kept]
	}

	g.arcs = permuteCompact(g.arcs, c.markedArcs, func(old int) (int, bool) {
		newID := c.arcIDMap[old]
		return int(newID), newID != noEdge
	})
	for i := range g.arcs {
		a := &g.arcs[i]
		if a.kind != TargetUnexpanded {
			a.target = c.vertexIDMap[a.target]
		}
	}

	g.states.remap(c.vertexIDMap, c.markedVertices)
}

// permuteCompact relocates data[i] to slot newIndex(i) for every index the
// function keeps, dropping the rest. kept is the number of surviving
// elements; the permutation must be a bijection onto [0, kept). Stable in
// the sense that the mapping fully determines the result. Linear in
// len(data).
func permuteCompact[E any](data []E, kept int, newIndex func(int) (int, bool)) []E {
	out := make([]E, kept)
	for i := range data {
		if j, ok := newIndex(i); ok {
			out[j] = data[i]
		}
	}
	return out
}

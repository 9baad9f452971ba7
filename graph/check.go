// ABOUTME: Structural integrity checker for debugging and test assertions
// ABOUTME: Validates back-reference symmetry, ID bounds, and the state bijection

package graph

import (
	"fmt"

	"github.com/pkg/errors"
)

// Check validates the internal consistency of a graph. It verifies that
// every edge ID stored in a child or parent list is in bounds, that child
// lists agree with edge sources, that parent lists contain exactly the
// expanded edges targeting their vertex, and that the state namespace is a
// bijection onto the vertex arena. It returns the first violation found,
// or nil for a consistent graph.
//
// Check walks every vertex and edge; it is meant for tests and debugging,
// not hot paths.
func Check[T comparable, S, A any](g *Graph[T, S, A]) error {
	if got, want := g.states.len(), len(g.vertices); got != want {
		return errors.Errorf("namespace has %d states but arena has %d vertices", got, want)
	}

	for i := range g.arcs {
		a := &g.arcs[i]
		if a.source < 0 || int(a.source) >= len(g.vertices) {
			return errors.Errorf("edge %d: source %d out of bounds", i, a.source)
		}
		switch a.kind {
		case TargetUnexpanded:
			// target is meaningless here
		case TargetExpanded, TargetCycle:
			if a.target < 0 || int(a.target) >= len(g.vertices) {
				return errors.Errorf("edge %d: %s target %d out of bounds", i, a.kind, a.target)
			}
		default:
			return errors.Errorf("edge %d: unknown target kind %d", i, uint8(a.kind))
		}
	}

	for vid := range g.vertices {
		v := &g.vertices[vid]
		if err := checkChildren(g, VertexID(vid), v); err != nil {
			return errors.Wrapf(err, "vertex %d", vid)
		}
		if err := checkParents(g, VertexID(vid), v); err != nil {
			return errors.Wrapf(err, "vertex %d", vid)
		}
	}

	// Every state must map to a distinct in-bounds vertex whose reverse
	// label is the same state.
	seen := make(map[VertexID]bool, g.states.len())
	for state, vid := range g.states.ids {
		if vid < 0 || int(vid) >= len(g.vertices) {
			return errors.Errorf("state %v maps to out-of-bounds vertex %d", state, vid)
		}
		if seen[vid] {
			return errors.Errorf("vertex %d reached by more than one state", vid)
		}
		seen[vid] = true
		if label := g.states.label(vid); label != state {
			return errors.Errorf("state %v maps to vertex %d whose label is %v", state, vid, label)
		}
	}
	return nil
}

func checkChildren[T comparable, S, A any](g *Graph[T, S, A], vid VertexID, v *vertex[S]) error {
	for _, eid := range v.children {
		if eid < 0 || int(eid) >= len(g.arcs) {
			return fmt.Errorf("child edge %d out of bounds", eid)
		}
		if src := g.arcs[eid].source; src != vid {
			return fmt.Errorf("child edge %d has source %d", eid, src)
		}
	}
	return nil
}

func checkParents[T comparable, S, A any](g *Graph[T, S, A], vid VertexID, v *vertex[S]) error {
	for _, eid := range v.parents {
		if eid < 0 || int(eid) >= len(g.arcs) {
			return fmt.Errorf("parent edge %d out of bounds", eid)
		}
		a := &g.arcs[eid]
		if a.kind != TargetExpanded {
			return fmt.Errorf("parent edge %d is %s, want expanded", eid, a.kind)
		}
		if a.target != vid {
			return fmt.Errorf("parent edge %d has target %d", eid, a.target)
		}
	}
	// Count expanded edges targeting vid and compare against the parent
	// list length; cycle edges never appear in parent lists.
	want := 0
	for i := range g.arcs {
		if g.arcs[i].kind == TargetExpanded && g.arcs[i].target == vid {
			want++
		}
	}
	if got := len(v.parents); got != want {
		return fmt.Errorf("parent list has %d edges, %d expanded edges target this vertex", got, want)
	}
	return nil
}

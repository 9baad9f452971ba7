// ABOUTME: Integration tests for the complete searchgraph system
// ABOUTME: Drives a lazy state-space exploration end to end with pruning

package searchgraph_test

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prateek/searchgraph/graph"
)

// gridState is a position in a tiny 3x3 grid world. Moves go right and
// down, plus a wrap from the bottom-right corner back to the origin, which
// the expansion step must classify as a cycle.
type gridState struct {
	x, y int
}

type gridStats struct {
	visits int
}

func gridMoves(s gridState) []gridState {
	var out []gridState
	if s.x < 2 {
		out = append(out, gridState{s.x + 1, s.y})
	}
	if s.y < 2 {
		out = append(out, gridState{s.x, s.y + 1})
	}
	if s.x == 2 && s.y == 2 {
		out = append(out, gridState{0, 0})
	}
	return out
}

// explore expands the whole grid breadth-first through lazy edges.
func explore(t *testing.T, g *graph.Graph[gridState, gridStats, string]) {
	t.Helper()
	root := g.AddRoot(gridState{0, 0}, gridStats{visits: 1})
	frontier := []gridState{root.State()}
	seen := map[gridState]bool{root.State(): true}

	for len(frontier) > 0 {
		state := frontier[0]
		frontier = frontier[1:]

		node, ok := g.FindNodeMut(state)
		require.True(t, ok)
		for _, next := range gridMoves(state) {
			pending := node.ChildrenMut().AddUnexpanded("move")
			x, ok := pending.Expander()
			require.True(t, ok)
			resolved := x.Expand(next, func(graph.Node[gridState, gridStats, string]) gridStats {
				return gridStats{visits: 1}
			})
			kind, _ := resolved.Target()
			if kind == graph.TargetExpanded && !seen[next] {
				seen[next] = true
				frontier = append(frontier, next)
			}
		}
	}
}

func TestLazyExplorationDeduplicates(t *testing.T) {
	g := graph.New[gridState, gridStats, string]()
	explore(t, g)

	// 9 grid cells, one vertex each no matter how many moves reach them.
	assert.Equal(t, 9, g.VertexCount())
	// 2 moves from interior cells, fewer at the edges, plus the wrap.
	assert.Equal(t, 13, g.EdgeCount())
	require.NoError(t, graph.Check(g))

	// The wrap-around edge resolved as a cycle, so the origin is still
	// the only parentless vertex.
	origin, ok := g.FindNode(gridState{0, 0})
	require.True(t, ok)
	assert.True(t, origin.IsRoot())

	corner, ok := g.FindNode(gridState{2, 2})
	require.True(t, ok)
	require.Equal(t, 1, corner.Children().Len())
	kind, target := corner.Children().Edge(0).Target()
	assert.Equal(t, graph.TargetCycle, kind)
	assert.Equal(t, origin.ID(), target.ID())
}

func TestPathTracksExploration(t *testing.T) {
	g := graph.New[gridState, gridStats, string]()
	explore(t, g)

	start, ok := g.FindNodeMut(gridState{0, 0})
	require.True(t, ok)
	p := graph.NewPath(start)

	// Walk the main diagonal by always taking the "down" move, which is
	// the second child of interior cells.
	for i := 0; i < 2; i++ {
		_, moved, err := p.Push(func(n graph.Node[gridState, gridStats, string]) (graph.Traversal, error) {
			return graph.FollowChild(n.Children().Len() - 1), nil
		})
		require.NoError(t, err)
		require.True(t, moved)
	}

	head, ok := p.Head()
	require.True(t, ok)
	assert.Equal(t, gridState{0, 2}, head.State())
	assert.Equal(t, 3, p.Len())

	// Backtrack fully.
	_, ok = p.Pop()
	require.True(t, ok)
	_, ok = p.Pop()
	require.True(t, ok)
	head, ok = p.Head()
	require.True(t, ok)
	assert.Equal(t, gridState{0, 0}, head.State())
}

func TestPruneMidExploration(t *testing.T) {
	g := graph.New[gridState, gridStats, string]()
	explore(t, g)

	// Grow an abandoned branch off the grid, then commit to the cell
	// right of the origin and discard what the search no longer needs.
	abandoned := g.AddRoot(gridState{5, 5}, gridStats{})
	abandoned.ChildrenMut().AddChild(gridState{6, 5}, nil, "abandoned")

	g.RetainReachableFrom(gridState{1, 0})

	require.NoError(t, graph.Check(g))
	_, ok := g.FindNode(gridState{5, 5})
	assert.False(t, ok)
	_, ok = g.FindNode(gridState{6, 5})
	assert.False(t, ok)

	// The wrap edge leads mark back to the origin, so the whole grid
	// stays alive even when pruning from an interior cell.
	assert.Equal(t, 9, g.VertexCount())
	assert.Equal(t, 13, g.EdgeCount())

	newRoot, ok := g.FindNode(gridState{1, 0})
	require.True(t, ok)
	assert.Equal(t, graph.VertexID(0), newRoot.ID())

	// The cycle edge survived; its target follows renumbering.
	corner, ok := g.FindNode(gridState{2, 2})
	require.True(t, ok)
	kind, target := corner.Children().Edge(0).Target()
	assert.Equal(t, graph.TargetCycle, kind)
	assert.Equal(t, gridState{0, 0}, target.State())

	// Exploration can resume on the compacted graph.
	node, ok := g.FindNodeMut(gridState{1, 0})
	require.True(t, ok)
	node.ChildrenMut().AddChild(gridState{-1, -1}, nil, "off-grid")
	require.NoError(t, graph.Check(g))
}

func TestPruneLogsSummary(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	g := graph.NewWithConfig[gridState, gridStats, string](graph.Config{Logger: logger})
	explore(t, g)
	g.RetainReachableFrom(gridState{0, 0})

	var entry *logrus.Entry
	for _, e := range hook.AllEntries() {
		if e.Message == "pruned unreachable graph components" {
			entry = e
		}
	}
	require.NotNil(t, entry, "expected a prune summary at debug level")
	assert.Equal(t, logrus.DebugLevel, entry.Level)
	assert.Equal(t, 9, entry.Data["verticesBefore"])
	assert.Equal(t, 9, entry.Data["verticesAfter"])
}

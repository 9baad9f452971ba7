// ABOUTME: Spike to measure mark-compact pruning performance on large graphs
// ABOUTME: Validates linear scaling of build, expansion, and prune phases

package main

import (
	"fmt"
	"math/rand"
	"runtime"
	"time"

	"github.com/prateek/searchgraph/graph"
)

// buildRandom grows a graph of n vertices where each vertex lazily expands
// up to branching edges toward random lower-numbered states, then sprays
// extra long-range edges that tend to resolve as cycles.
func buildRandom(n, branching int, rng *rand.Rand) *graph.Graph[int, int, int] {
	g := graph.New[int, int, int]()
	g.AddRoot(0, 0)

	for state := 1; state < n; state++ {
		parent, _ := g.FindNodeMut(rng.Intn(state))
		pending := parent.ChildrenMut().AddUnexpanded(state)
		x, _ := pending.Expander()
		x.Expand(state, nil)

		node, _ := g.FindNodeMut(state)
		for i := 1; i < branching && rng.Intn(2) == 0; i++ {
			pending := node.ChildrenMut().AddUnexpanded(-state)
			x, _ := pending.Expander()
			x.Expand(rng.Intn(state+1), nil)
		}
	}
	return g
}

func memUsage() uint64 {
	var m runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&m)
	return m.Alloc
}

func main() {
	rng := rand.New(rand.NewSource(42))

	fmt.Println("Mark-compact collector performance spike")
	fmt.Println("========================================")

	for _, n := range []int{1_000, 10_000, 100_000, 500_000} {
		before := memUsage()

		start := time.Now()
		g := buildRandom(n, 4, rng)
		buildTime := time.Since(start)

		vertices := g.VertexCount()
		edges := g.EdgeCount()

		// Prune from a mid-numbered root so a sizable share of the graph
		// is dropped.
		start = time.Now()
		g.RetainReachableFrom(n / 2)
		pruneTime := time.Since(start)

		after := memUsage()

		fmt.Printf("\nn=%d: %d vertices, %d edges\n", n, vertices, edges)
		fmt.Printf("  build: %v (%.0f edges/ms)\n",
			buildTime, float64(edges)/float64(buildTime.Milliseconds()+1))
		fmt.Printf("  prune: %v -> %d vertices, %d edges survive\n",
			pruneTime, g.VertexCount(), g.EdgeCount())
		fmt.Printf("  prune rate: %.0f vertices/ms\n",
			float64(vertices)/float64(pruneTime.Milliseconds()+1))
		fmt.Printf("  memory delta: %.1f MB\n", float64(after-before)/(1<<20))

		if err := graph.Check(g); err != nil {
			fmt.Printf("  INTEGRITY FAILURE: %v\n", err)
		}
	}

	fmt.Println("\nExpected: both phases scale linearly with graph size")
}

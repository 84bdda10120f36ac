package rewire

import (
	"fmt"

	"github.com/katalvlaran/smallworld/core"
)

const methodRewire = "Rewire"

// Rewire mutates g in place, replacing each lower-endpoint-owned edge
// with probability p as described in the package documentation. All
// validation happens before any mutation; on error the graph is
// untouched.
//
// The graph is assumed to use contiguous ids 0..n-1 (as produced by
// lattice.Ring); candidate targets are drawn from that range.
//
// Deterministic for a fixed src: vertices are visited in ascending id
// order and each vertex's neighbor list is snapshotted (sorted) before
// any decision for that vertex, so edges rewired earlier in the pass
// never change the draw sequence of a later snapshot.
//
// Complexity: O(n·k) expected; each rewired edge adds a geometrically
// distributed number of extra draws.
func Rewire(g *core.Graph, p float64, src Source) error {
	if g == nil {
		return ErrGraphNil
	}
	if src == nil {
		return ErrNilSource
	}
	if p < minProbability || p > maxProbability {
		return fmt.Errorf("%s: p=%v: %w", methodRewire, p, ErrInvalidProbability)
	}

	n := g.VertexCount()
	for _, i := range g.VertexIDs() {
		// Snapshot before any decision for i: rewiring earlier vertices
		// may already have changed i's adjacency, and rewiring i's own
		// edges must not feed back into this iteration.
		snapshot, err := g.NeighborIDs(i)
		if err != nil {
			return fmt.Errorf("%s: NeighborIDs(%d): %w", methodRewire, i, err)
		}

		for _, nbr := range snapshot {
			// The lower-indexed endpoint owns the edge; higher-indexed
			// partners skip it so each undirected edge is considered
			// exactly once per pass.
			if nbr <= i {
				continue
			}
			if src.Float64() >= p {
				continue
			}

			// Rejection-sample a new target: not i, not currently
			// adjacent to i. Unbounded; see the package doc for the
			// termination boundary condition.
			target := src.Intn(n)
			for target == i || g.HasEdge(i, target) {
				target = src.Intn(n)
			}

			g.DeleteEdge(i, nbr)
			if err := g.AddEdge(i, target, 0); err != nil {
				return fmt.Errorf("%s: AddEdge(%d→%d): %w", methodRewire, i, target, err)
			}
		}
	}

	return nil
}

package analyze

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/smallworld/core"
)

// ErrGraphNil is returned if a nil graph pointer is passed.
var ErrGraphNil = errors.New("analyze: graph is nil")

// AveragePathLength returns the mean unweighted shortest-path distance
// over all reachable ordered vertex pairs of g, or 0 when no pair is
// reachable (no edges, or fewer than two vertices).
//
// Implementation: one BFS per source vertex. A vertex's distance is
// accumulated exactly once, at the moment it is first discovered, so
// each reachable ordered pair (s, t), s ≠ t, contributes exactly once
// to both the running total and the pair count.
//
// Complexity: O(V·(V+E))
func AveragePathLength(g *core.Graph) (float64, error) {
	if g == nil {
		return 0, ErrGraphNil
	}

	var total, pairs int64
	for _, s := range g.VertexIDs() {
		sum, reached, err := bfsAccumulate(g, s)
		if err != nil {
			return 0, err
		}
		total += sum
		pairs += reached
	}

	if pairs == 0 {
		return 0, nil
	}

	return float64(total) / float64(pairs), nil
}

// bfsAccumulate runs a single-source BFS from s and returns the sum of
// distances to every vertex reached, together with the number reached.
func bfsAccumulate(g *core.Graph, s int) (total, reached int64, err error) {
	dist := map[int]int{s: 0}
	queue := []int{s}

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		d := dist[curr]

		nbrs, nerr := g.NeighborIDs(curr)
		if nerr != nil {
			return 0, 0, fmt.Errorf("analyze: NeighborIDs(%d): %w", curr, nerr)
		}
		for _, nbr := range nbrs {
			if _, seen := dist[nbr]; seen {
				continue
			}
			dist[nbr] = d + 1
			queue = append(queue, nbr)
			total += int64(d + 1)
			reached++
		}
	}

	return total, reached, nil
}

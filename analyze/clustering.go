package analyze

import (
	"fmt"

	"github.com/katalvlaran/smallworld/core"
)

// minClusteringDegree is the smallest degree for which a local
// clustering coefficient is defined (a single neighbor has no pairs).
const minClusteringDegree = 2

// AverageClustering returns the arithmetic mean of the local clustering
// coefficients of all vertices with degree ≥ 2, or 0 when no such
// vertex exists.
//
// The local coefficient of v is actual/possible, where possible is
// k·(k-1)/2 for degree k and actual counts the edges present between
// distinct neighbors of v. Each neighbor-pair edge is counted once by
// an ordering rule: scanning neighbor nbr's own adjacency, an edge to
// nn contributes only when nn is also a neighbor of v and nn > nbr.
//
// Complexity: O(Σ deg²)
func AverageClustering(g *core.Graph) (float64, error) {
	if g == nil {
		return 0, ErrGraphNil
	}

	var sum float64
	count := 0
	for _, v := range g.VertexIDs() {
		nbrs, err := g.NeighborIDs(v)
		if err != nil {
			return 0, fmt.Errorf("analyze: NeighborIDs(%d): %w", v, err)
		}
		k := len(nbrs)
		if k < minClusteringDegree {
			continue
		}

		nbrSet := make(map[int]struct{}, k)
		for _, nbr := range nbrs {
			nbrSet[nbr] = struct{}{}
		}

		actual := 0
		for _, nbr := range nbrs {
			second, err := g.NeighborIDs(nbr)
			if err != nil {
				return 0, fmt.Errorf("analyze: NeighborIDs(%d): %w", nbr, err)
			}
			for _, nn := range second {
				if nn <= nbr {
					continue
				}
				if _, ok := nbrSet[nn]; ok {
					actual++
				}
			}
		}

		possible := float64(k*(k-1)) / 2
		sum += float64(actual) / possible
		count++
	}

	if count == 0 {
		return 0, nil
	}

	return sum / float64(count), nil
}

package lattice

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/smallworld/core"
)

// Sentinel errors for ring-lattice construction.
var (
	// ErrOddDegree indicates the requested degree k is not even.
	ErrOddDegree = errors.New("lattice: degree must be even")

	// ErrBadSize indicates n < 3 or n ≤ k.
	ErrBadSize = errors.New("lattice: size must satisfy n ≥ 3 and n > k")
)

const (
	methodRing  = "Ring"
	minVertices = 3
)

// Ring builds the k-regular ring lattice on n vertices labeled 0..n-1:
// each vertex i is connected to (i±offset) mod n for offset 1..k/2.
//
// Each physical edge is encountered from both endpoints' perspectives
// over the full loop; core.Graph.AddEdge is idempotent, so the second
// insertion only rewrites the same weight. The construction must not
// assume edges arrive exactly once per pair.
//
// Validation happens before any mutation: k must be even
// (ErrOddDegree), and n ≥ 3 with n > k (ErrBadSize).
//
// Complexity: O(n·k)
func Ring(n, k int) (*core.Graph, error) {
	if k%2 != 0 {
		return nil, fmt.Errorf("%s: k=%d: %w", methodRing, k, ErrOddDegree)
	}
	if n < minVertices || n <= k {
		return nil, fmt.Errorf("%s: n=%d, k=%d: %w", methodRing, n, k, ErrBadSize)
	}

	g := core.NewGraph()

	// Vertices first, in ascending index order.
	for i := 0; i < n; i++ {
		if err := g.AddVertex(i); err != nil {
			return nil, fmt.Errorf("%s: AddVertex(%d): %w", methodRing, i, err)
		}
	}

	// Connect each vertex to its k/2 nearest neighbors on each side.
	half := k / 2
	for i := 0; i < n; i++ {
		for offset := -half; offset <= half; offset++ {
			if offset == 0 {
				continue
			}
			j := ((i+offset)%n + n) % n
			if err := g.AddEdge(i, j, 0); err != nil {
				return nil, fmt.Errorf("%s: AddEdge(%d→%d): %w", methodRing, i, j, err)
			}
		}
	}

	return g, nil
}

package analyze_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/smallworld/analyze"
	"github.com/katalvlaran/smallworld/core"
	"github.com/katalvlaran/smallworld/lattice"
)

// complete builds K_m on ids 0..m-1.
func complete(t *testing.T, m int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for u := 0; u < m; u++ {
		for v := u + 1; v < m; v++ {
			require.NoError(t, g.AddEdge(u, v, 0))
		}
	}
	return g
}

// isolated builds m vertices and no edges.
func isolated(t *testing.T, m int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := 0; i < m; i++ {
		require.NoError(t, g.AddVertex(i))
	}
	return g
}

func TestAveragePathLength_NilGraph(t *testing.T) {
	_, err := analyze.AveragePathLength(nil)
	assert.ErrorIs(t, err, analyze.ErrGraphNil)
}

func TestAverageClustering_NilGraph(t *testing.T) {
	_, err := analyze.AverageClustering(nil)
	assert.ErrorIs(t, err, analyze.ErrGraphNil)
}

// TestAveragePathLength_Hexagon pins the analytical mean geodesic
// distance of the 6-cycle: per source the distances are 1,2,3,2,1,
// so the mean over reachable pairs is 9/5.
func TestAveragePathLength_Hexagon(t *testing.T) {
	g, err := lattice.Ring(6, 2)
	require.NoError(t, err)

	l, err := analyze.AveragePathLength(g)
	require.NoError(t, err)
	assert.InDelta(t, 1.8, l, 1e-12)
}

// TestAveragePathLength_CompleteGraph: every pair at distance 1.
func TestAveragePathLength_CompleteGraph(t *testing.T) {
	l, err := analyze.AveragePathLength(complete(t, 5))
	require.NoError(t, err)
	assert.InDelta(t, 1.0, l, 1e-12)
}

// TestAveragePathLength_Path pins a hand-enumerable asymmetric case:
// on the path 0-1-2 the six ordered pairs sum to 8.
func TestAveragePathLength_Path(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(0, 1, 0))
	require.NoError(t, g.AddEdge(1, 2, 0))

	l, err := analyze.AveragePathLength(g)
	require.NoError(t, err)
	assert.InDelta(t, 8.0/6.0, l, 1e-12)
}

// TestAveragePathLength_Disconnected: unreachable pairs are excluded,
// not scored as infinite. Two disjoint triangles average to exactly 1.
func TestAveragePathLength_Disconnected(t *testing.T) {
	g := core.NewGraph()
	for _, tri := range [][3]int{{0, 1, 2}, {10, 11, 12}} {
		require.NoError(t, g.AddEdge(tri[0], tri[1], 0))
		require.NoError(t, g.AddEdge(tri[1], tri[2], 0))
		require.NoError(t, g.AddEdge(tri[2], tri[0], 0))
	}

	l, err := analyze.AveragePathLength(g)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, l, 1e-12)
}

// TestAveragePathLength_NoPairs: isolated vertices (and the trivial
// one-vertex graph) yield 0.
func TestAveragePathLength_NoPairs(t *testing.T) {
	for _, m := range []int{1, 5} {
		l, err := analyze.AveragePathLength(isolated(t, m))
		require.NoError(t, err)
		assert.Zero(t, l)
	}
}

// TestAverageClustering_CompleteGraph: K_m (m ≥ 3) has coefficient
// exactly 1.
func TestAverageClustering_CompleteGraph(t *testing.T) {
	for _, m := range []int{3, 4, 7} {
		c, err := analyze.AverageClustering(complete(t, m))
		require.NoError(t, err)
		assert.Equalf(t, 1.0, c, "K_%d", m)
	}
}

// TestAverageClustering_Hexagon: a 6-cycle has no triangles.
func TestAverageClustering_Hexagon(t *testing.T) {
	g, err := lattice.Ring(6, 2)
	require.NoError(t, err)

	c, err := analyze.AverageClustering(g)
	require.NoError(t, err)
	assert.Zero(t, c)
}

// TestAverageClustering_RingK4: in Ring(10, 4) each vertex's four
// neighbors span 3 of the 6 possible pairs, giving exactly 0.5, which
// is strictly inside (0, 1) as the ring-lattice scenario requires.
func TestAverageClustering_RingK4(t *testing.T) {
	g, err := lattice.Ring(10, 4)
	require.NoError(t, err)

	c, err := analyze.AverageClustering(g)
	require.NoError(t, err)
	assert.Greater(t, c, 0.0)
	assert.Less(t, c, 1.0)
	assert.InDelta(t, 0.5, c, 1e-12)
}

// TestAverageClustering_LowDegreeExcluded: vertices with fewer than two
// neighbors are left out of both sum and count. A triangle with a
// pendant vertex still averages 1.
func TestAverageClustering_LowDegreeExcluded(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(0, 1, 0))
	require.NoError(t, g.AddEdge(1, 2, 0))
	require.NoError(t, g.AddEdge(2, 0, 0))
	// Pendant: degree 1, no pairs.
	require.NoError(t, g.AddEdge(0, 3, 0))

	c, err := analyze.AverageClustering(g)
	require.NoError(t, err)

	// Vertex 0 now has neighbors {1,2,3} with one connected pair out of
	// three; vertices 1 and 2 stay fully clustered; vertex 3 is excluded.
	want := (1.0/3.0 + 1.0 + 1.0) / 3.0
	assert.InDelta(t, want, c, 1e-12)
}

// TestAverageClustering_NoEligibleVertex: no vertex of degree ≥ 2 → 0.
func TestAverageClustering_NoEligibleVertex(t *testing.T) {
	c, err := analyze.AverageClustering(isolated(t, 4))
	require.NoError(t, err)
	assert.Zero(t, c)

	// A single edge: both endpoints have degree 1.
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(0, 1, 0))
	c, err = analyze.AverageClustering(g)
	require.NoError(t, err)
	assert.Zero(t, c)
}

// TestStatistics_IgnoreWeights: non-zero weights must not change either
// statistic. Both are structural.
func TestStatistics_IgnoreWeights(t *testing.T) {
	g := complete(t, 4)
	require.NoError(t, g.AddEdge(0, 1, 99))

	l, err := analyze.AveragePathLength(g)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, l, 1e-12)

	c, err := analyze.AverageClustering(g)
	require.NoError(t, err)
	assert.Equal(t, 1.0, c)
}

func ExampleAveragePathLength() {
	g, _ := lattice.Ring(6, 2)
	l, _ := analyze.AveragePathLength(g)
	c, _ := analyze.AverageClustering(g)
	fmt.Printf("L = %.2f, C = %.2f\n", l, c)

	// Output:
	// L = 1.80, C = 0.00
}

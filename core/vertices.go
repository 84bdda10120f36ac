// Vertex lifecycle and queries.
//
// Determinism: VertexIDs returns ids sorted ascending, so callers that
// iterate vertices draw from an injected random source in a stable order.
package core

import "sort"

// AddVertex inserts a new isolated vertex with the given id.
//
// Policy: inserting an id that already exists fails with
// ErrDuplicateVertex rather than silently no-oping. Builders in this
// module generate ids they know to be fresh, so a duplicate always
// signals caller error.
//
// Complexity: O(1)
func (g *Graph) AddVertex(id int) error {
	if _, exists := g.adj[id]; exists {
		return ErrDuplicateVertex
	}
	g.adj[id] = make(map[int]int64)

	return nil
}

// HasVertex reports whether the graph contains a vertex with the given id.
// Complexity: O(1)
func (g *Graph) HasVertex(id int) bool {
	_, ok := g.adj[id]
	return ok
}

// VertexIDs returns all vertex ids in ascending order.
// Complexity: O(V log V)
func (g *Graph) VertexIDs() []int {
	ids := make([]int, 0, len(g.adj))
	for id := range g.adj {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	return ids
}

// VertexCount returns the number of vertices.
// Complexity: O(1)
func (g *Graph) VertexCount() int {
	return len(g.adj)
}

// Degree returns the number of neighbors of id, or ErrVertexNotFound
// if the vertex is absent.
// Complexity: O(1)
func (g *Graph) Degree(id int) (int, error) {
	nbrs, ok := g.adj[id]
	if !ok {
		return 0, ErrVertexNotFound
	}

	return len(nbrs), nil
}

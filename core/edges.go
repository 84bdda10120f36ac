// Edge mutation and adjacency queries.
//
// Invariant maintained by every method here: for any present edge (u,v),
// adj[u][v] and adj[v][u] both exist with equal weight, and both are
// written or deleted in the same call.
package core

import "sort"

// AddEdge records the undirected edge (u,v) with the given weight,
// auto-creating either endpoint if missing. Re-adding an existing edge
// overwrites its weight symmetrically; there are never parallel edges.
// A self-loop (u == v) fails with ErrSelfLoop.
//
// Complexity: O(1)
func (g *Graph) AddEdge(u, v int, weight int64) error {
	if u == v {
		return ErrSelfLoop
	}
	g.ensureVertex(u)
	g.ensureVertex(v)
	g.adj[u][v] = weight
	g.adj[v][u] = weight

	return nil
}

// DeleteEdge removes both directions of edge (u,v). Absent vertices or an
// absent edge make this a no-op, not an error.
//
// Complexity: O(1)
func (g *Graph) DeleteEdge(u, v int) {
	if _, ok := g.adj[u]; !ok {
		return
	}
	if _, ok := g.adj[v]; !ok {
		return
	}
	delete(g.adj[u], v)
	delete(g.adj[v], u)
}

// HasEdge reports whether the edge (u,v) is present.
// Complexity: O(1)
func (g *Graph) HasEdge(u, v int) bool {
	nbrs, ok := g.adj[u]
	if !ok {
		return false
	}
	_, ok = nbrs[v]

	return ok
}

// Weight returns the weight of edge (u,v), or ErrEdgeNotFound if either
// vertex or the edge is absent.
// Complexity: O(1)
func (g *Graph) Weight(u, v int) (int64, error) {
	nbrs, ok := g.adj[u]
	if !ok {
		return 0, ErrEdgeNotFound
	}
	w, ok := nbrs[v]
	if !ok {
		return 0, ErrEdgeNotFound
	}

	return w, nil
}

// NeighborIDs returns the ids adjacent to id in ascending order, or
// ErrVertexNotFound if the vertex is absent. The returned slice is a
// snapshot: later mutation of the graph does not affect it.
//
// Complexity: O(deg log deg)
func (g *Graph) NeighborIDs(id int) ([]int, error) {
	nbrs, ok := g.adj[id]
	if !ok {
		return nil, ErrVertexNotFound
	}
	ids := make([]int, 0, len(nbrs))
	for nbr := range nbrs {
		ids = append(ids, nbr)
	}
	sort.Ints(ids)

	return ids, nil
}

// EdgeCount returns the number of undirected edges.
// Complexity: O(V)
func (g *Graph) EdgeCount() int {
	total := 0
	for _, nbrs := range g.adj {
		total += len(nbrs)
	}

	// Each undirected edge is stored twice.
	return total / 2
}

// ensureVertex inserts id as an isolated vertex when absent.
func (g *Graph) ensureVertex(id int) {
	if _, ok := g.adj[id]; !ok {
		g.adj[id] = make(map[int]int64)
	}
}

// This file declares the Graph type, its sentinel errors, and the
// NewGraph constructor.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrDuplicateVertex indicates AddVertex was called with an id that
	// already exists in the graph.
	ErrDuplicateVertex = errors.New("core: duplicate vertex id")

	// ErrSelfLoop indicates an edge from a vertex to itself was requested.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")
)

// Graph is an undirected simple graph over integer-labeled vertices.
//
// Adjacency is held in an arena keyed by vertex id: adj[u][v] is the
// weight of edge (u,v). The symmetric entry adj[v][u] always exists with
// the same weight; both are written and deleted together. A vertex with
// no neighbors owns an empty (non-nil) inner map.
type Graph struct {
	adj map[int]map[int]int64
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{adj: make(map[int]map[int]int64)}
}

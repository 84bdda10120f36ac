// Package core provides the undirected in-memory Graph the rest of the
// module is built on.
//
// What:
//
//   - Vertices are identified by plain ints; adjacency is an arena of
//     maps (vertex id → neighbor id → weight) with no vertex-to-vertex
//     pointers and no separate Edge entity.
//   - Every edge is stored in both directions and mutated in both
//     directions together, so undirected symmetry always holds.
//   - Self-loops and parallel edges are rejected; weights default to 0
//     and are carried on the edge record but ignored by traversals.
//
// Determinism:
//
//   - VertexIDs and NeighborIDs enumerate in ascending id order. Any
//     algorithm that walks the graph and consumes a seeded random
//     source reproduces exactly, independent of map iteration order.
//
// Concurrency:
//
//   - A Graph is owned by a single goroutine; there is no internal
//     locking. Run concurrent trials on separate Graph instances.
//
// Errors:
//
//   - ErrDuplicateVertex: AddVertex with an id already present.
//   - ErrSelfLoop: AddEdge from a vertex to itself.
//   - ErrVertexNotFound: query against an absent vertex.
//   - ErrEdgeNotFound: Weight lookup for an absent edge.
package core

// Package lattice constructs the regular ring lattice that seeds a
// Watts–Strogatz small-world graph.
//
// What:
//
//   - Ring(n, k) builds a graph of n vertices labeled 0..n-1 where each
//     vertex is connected to its k/2 nearest neighbors on each side of
//     the ring, yielding a k-regular graph.
//
// Determinism:
//
//   - Vertices are inserted in ascending index order and edges emitted
//     in a stable i-then-offset order. The same (n, k) always produces
//     an identical graph.
//
// Errors:
//
//   - ErrOddDegree: k is odd (k/2 neighbors per side requires even k).
//   - ErrBadSize: n < 3 or n ≤ k.
package lattice

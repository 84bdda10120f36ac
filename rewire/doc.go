// Package rewire applies the Watts–Strogatz stochastic rewiring pass to
// a ring lattice (or any graph with contiguous ids 0..n-1).
//
// What:
//
//   - Rewire(g, p, src) visits vertices in ascending id order. Each
//     undirected edge is owned by its lower-indexed endpoint i and is
//     considered exactly once, from i's snapshot of its neighbors.
//   - With probability p the owned edge (i, nbr) is replaced: a new
//     target is drawn uniformly from [0, n) and redrawn until it is
//     neither i itself nor a current neighbor of i, then (i, nbr) is
//     deleted and (i, target) added.
//
// Model fidelity:
//
//   - Only the owning endpoint's degree is conserved by a rewire (one
//     edge out, one in); the partner's degree drifts. That asymmetry is
//     part of the classical model and is reproduced, not corrected.
//   - The rejection loop is deliberately unbounded. It can only fail to
//     terminate when vertex i is already adjacent to all n-1 other
//     vertices, leaving no valid target; with the degrees a valid ring
//     lattice produces this does not arise. The boundary condition is
//     documented here rather than guarded.
//
// Determinism:
//
//   - All randomness flows through the injected Source. Visiting order
//     and neighbor snapshots are sorted, so a fixed seed reproduces the
//     exact same graph. Never uses process-global random state.
//
// Errors:
//
//   - ErrGraphNil: nil graph.
//   - ErrNilSource: nil random source.
//   - ErrInvalidProbability: p outside [0, 1].
package rewire

// Package smallworld builds and measures Watts–Strogatz small-world
// graphs: start from a k-regular ring lattice, rewire each edge with
// probability p, then quantify the result with two structural
// statistics: average shortest-path length and clustering coefficient.
//
// What lives where:
//
//	core/    — the undirected Graph itself: an integer-id adjacency arena
//	lattice/ — Ring(n, k): the initial k-nearest-neighbor ring lattice
//	rewire/  — Rewire(g, p, src): the stochastic rewiring pass
//	analyze/ — AveragePathLength (BFS from every vertex) and AverageClustering
//	sweep/   — repeat build→rewire→measure across p values and trials
//
// Typical use:
//
//	g, err := lattice.Ring(1000, 10)
//	if err != nil { ... }
//	if err := rewire.Rewire(g, 0.01, rand.New(rand.NewSource(42))); err != nil { ... }
//	l, _ := analyze.AveragePathLength(g)
//	c, _ := analyze.AverageClustering(g)
//
// Determinism is a first-class concern: every stochastic step consumes
// an injected random source, graph enumeration order is sorted, and the
// same seed always reproduces the same graph and the same statistics.
//
// Graphs are not goroutine-safe; each trial owns its Graph for the full
// construct→rewire→measure lifecycle. Trials themselves are independent
// and parallelize freely; see sweep.Run.
package smallworld

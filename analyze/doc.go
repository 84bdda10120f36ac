// Package analyze computes the two structural statistics that
// characterize small-world graphs: average shortest-path length and
// average clustering coefficient.
//
// What:
//
//   - AveragePathLength runs an unweighted BFS from every vertex and
//     averages the distance over all reachable ordered (source, target)
//     pairs. Each unordered pair is counted once in each direction; the
//     factor cancels in the mean. Unreachable pairs contribute nothing,
//     so disconnected graphs yield the average over reachable pairs,
//     never infinity.
//   - AverageClustering computes, for every vertex with at least two
//     neighbors, the fraction of its neighbor pairs that are themselves
//     connected, and averages those local coefficients. Vertices of
//     degree < 2 are excluded from both sum and count, not scored 0.
//
// Both return 0 on a graph with no contributing pairs or vertices
// (isolated vertices, n ≤ 1). Edge weights are ignored: the statistics
// in scope are purely structural.
//
// Complexity:
//
//   - AveragePathLength: O(V·(V+E)) time, O(V) space per source.
//   - AverageClustering: O(Σ deg²) time, O(max deg) space.
//
// Errors:
//
//   - ErrGraphNil: nil graph pointer.
package analyze

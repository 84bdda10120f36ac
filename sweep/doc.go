// Package sweep orchestrates repeated small-world trials across a set
// of rewiring probabilities and hands back the resulting data series.
//
// What:
//
//   - Run builds, for every p in Config.PValues and every trial, a
//     fresh ring lattice, rewires it with probability p, measures
//     average path length and clustering coefficient, and averages the
//     two statistics over the trials of each p. The output is one Point
//     per p, in input order, ready for an external presentation
//     collaborator. No rendering, file output, or value formatting
//     happens here.
//
// Concurrency:
//
//   - Trials are embarrassingly parallel: each owns an exclusive Graph
//     for its whole construct→rewire→measure lifecycle, so no locking
//     is involved. Run fans trials out over a bounded worker pool
//     (WithWorkers, default runtime.NumCPU()) and honors context
//     cancellation between tasks.
//
// Determinism:
//
//   - Every trial derives its own random source from the base seed
//     (WithSeed) plus its position in the sweep, and per-trial results
//     are reduced in a fixed order. Equal seeds give bit-identical
//     output regardless of worker count or scheduling.
//
// Logging:
//
//   - Silent by default. Supply WithLogger to observe progress; see
//     DefaultLogger for a ready-made colorized slog handler.
//
// Errors:
//
//   - ErrBadTrials, ErrNoProbabilities, plus lattice.ErrOddDegree,
//     lattice.ErrBadSize and rewire.ErrInvalidProbability re-used for
//     eager config validation. All surface before any trial starts.
package sweep

package sweep

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"sync/atomic"

	"github.com/katalvlaran/smallworld/analyze"
	"github.com/katalvlaran/smallworld/lattice"
	"github.com/katalvlaran/smallworld/rewire"
)

const methodRun = "Run"

// trialResult carries one trial's measurements back to the reducer.
type trialResult struct {
	pathLen    float64
	clustering float64
}

// task addresses one trial within the sweep grid.
type task struct {
	pIdx  int
	trial int
}

// Run executes the full sweep described by cfg and returns one Point
// per probability, in cfg.PValues order. See the package documentation
// for the concurrency and determinism contract.
//
// Validation is eager: a bad N/K/p/Trials combination is rejected
// before any trial starts, re-using the lattice and rewire sentinels.
//
// Complexity: O(len(PValues) · Trials · N·(N+E)) dominated by the
// path-length analyzer, spread over the worker pool.
func Run(ctx context.Context, cfg Config, opts ...Option) ([]Point, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	// Per-trial slots: written by exactly one worker each, reduced in a
	// fixed order afterwards so float accumulation is scheduling-proof.
	results := make([][]trialResult, len(cfg.PValues))
	for i := range results {
		results[i] = make([]trialResult, cfg.Trials)
	}

	tasks := make(chan task)
	var (
		wg       sync.WaitGroup
		errOnce  sync.Once
		firstErr error
		failed   atomic.Bool
	)
	fail := func(err error) {
		failed.Store(true)
		errOnce.Do(func() { firstErr = err })
	}

	for w := 0; w < o.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for tk := range tasks {
				res, err := runTrial(cfg, cfg.PValues[tk.pIdx], trialSeed(o.seed, tk.pIdx, tk.trial))
				if err != nil {
					fail(err)
					continue
				}
				results[tk.pIdx][tk.trial] = res
			}
		}()
	}

	// Feed the grid; stop early on cancellation or first failure.
feed:
	for pIdx := range cfg.PValues {
		for trial := 0; trial < cfg.Trials; trial++ {
			if failed.Load() {
				break feed
			}
			select {
			case <-ctx.Done():
				fail(ctx.Err())
				break feed
			case tasks <- task{pIdx: pIdx, trial: trial}:
			}
		}
	}
	close(tasks)
	wg.Wait()

	if firstErr != nil {
		return nil, fmt.Errorf("%s: %w", methodRun, firstErr)
	}

	// Sequential reduce in PValues order.
	points := make([]Point, len(cfg.PValues))
	for pIdx, p := range cfg.PValues {
		var sumL, sumC float64
		for _, res := range results[pIdx] {
			sumL += res.pathLen
			sumC += res.clustering
		}
		points[pIdx] = Point{
			P:          p,
			PathLen:    sumL / float64(cfg.Trials),
			Clustering: sumC / float64(cfg.Trials),
		}
		o.logger.Info("probability measured",
			"p", p,
			"avg_path_length", points[pIdx].PathLen,
			"clustering", points[pIdx].Clustering,
			"trials", cfg.Trials,
		)
	}

	return points, nil
}

// runTrial owns one graph for its whole lifecycle: build, rewire,
// measure. Nothing here is shared with other trials.
func runTrial(cfg Config, p float64, seed int64) (trialResult, error) {
	g, err := lattice.Ring(cfg.N, cfg.K)
	if err != nil {
		return trialResult{}, err
	}
	if err := rewire.Rewire(g, p, rand.New(rand.NewSource(seed))); err != nil {
		return trialResult{}, err
	}

	l, err := analyze.AveragePathLength(g)
	if err != nil {
		return trialResult{}, err
	}
	c, err := analyze.AverageClustering(g)
	if err != nil {
		return trialResult{}, err
	}

	return trialResult{pathLen: l, clustering: c}, nil
}

// validate applies all configuration checks before any work starts.
// Shape errors re-use the lattice sentinels so callers branch on one
// error set module-wide.
func validate(cfg Config) error {
	if cfg.K%2 != 0 {
		return fmt.Errorf("%s: k=%d: %w", methodRun, cfg.K, lattice.ErrOddDegree)
	}
	if cfg.N < 3 || cfg.N <= cfg.K {
		return fmt.Errorf("%s: n=%d, k=%d: %w", methodRun, cfg.N, cfg.K, lattice.ErrBadSize)
	}
	if cfg.Trials < 1 {
		return fmt.Errorf("%s: trials=%d: %w", methodRun, cfg.Trials, ErrBadTrials)
	}
	if len(cfg.PValues) == 0 {
		return fmt.Errorf("%s: %w", methodRun, ErrNoProbabilities)
	}
	for _, p := range cfg.PValues {
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%v: %w", methodRun, p, rewire.ErrInvalidProbability)
		}
	}

	return nil
}

// trialSeed derives an independent seed for one trial slot. The odd
// multipliers keep distinct (pIdx, trial) pairs on distinct streams for
// any realistic sweep size.
func trialSeed(base int64, pIdx, trial int) int64 {
	return base + int64(pIdx)*0x9E3779B1 + int64(trial)*0x85EBCA77
}

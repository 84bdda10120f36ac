// Configuration, options, and result types for sweep runs.
package sweep

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"runtime"

	"github.com/lmittmann/tint"
)

// Sentinel errors for sweep configuration.
var (
	// ErrBadTrials indicates Config.Trials < 1.
	ErrBadTrials = errors.New("sweep: trials must be ≥ 1")

	// ErrNoProbabilities indicates Config.PValues is empty.
	ErrNoProbabilities = errors.New("sweep: no probability values")
)

// Config describes one full sweep: graph shape, probe probabilities,
// and how many independent trials to average per probability.
type Config struct {
	// N is the vertex count of each generated lattice.
	N int

	// K is the initial even degree of each vertex.
	K int

	// PValues are the rewiring probabilities to probe, each in [0,1].
	// Results are returned in this order.
	PValues []float64

	// Trials is the number of independent graphs built and measured
	// per probability.
	Trials int
}

// Point is one element of the output series: the rewiring probability
// and the two statistics averaged over Config.Trials trials.
type Point struct {
	P          float64
	PathLen    float64
	Clustering float64
}

// DefaultPValues returns the customary log-spaced probe set covering
// the small-world transition, from fully regular (0) to fully random (1).
func DefaultPValues() []float64 {
	return []float64{0, 0.00001, 0.000032, 0.0001, 0.00032, 0.001, 0.0032, 0.01, 0.032, 0.1, 0.32, 1}
}

// Option configures Run via functional arguments.
type Option func(*options)

// options aggregates all sweep knobs; resolved once per Run.
type options struct {
	logger  *slog.Logger
	workers int
	seed    int64
}

const defaultSeed = 1

// defaultOptions: silent logger, one worker per CPU, seed 1.
func defaultOptions() options {
	return options{
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		workers: runtime.NumCPU(),
		seed:    defaultSeed,
	}
}

// WithLogger sets the logger used for progress reporting. A nil logger
// keeps the silent default.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithWorkers bounds the number of concurrent trials. Values below 1
// keep the default (runtime.NumCPU()).
func WithWorkers(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.workers = n
		}
	}
}

// WithSeed fixes the base seed every trial's random source derives
// from. Equal seeds reproduce the sweep exactly.
func WithSeed(seed int64) Option {
	return func(o *options) { o.seed = seed }
}

// DefaultLogger returns a colorized slog logger writing to stderr,
// suitable for interactive sweep runs.
func DefaultLogger() *slog.Logger {
	return slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      slog.LevelInfo,
		TimeFormat: "15:04:05",
	}))
}

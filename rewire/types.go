// Sentinel errors and the injected randomness capability.
package rewire

import "errors"

// Sentinel errors for the rewiring pass.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("rewire: graph is nil")

	// ErrNilSource is returned if no random source is supplied.
	ErrNilSource = errors.New("rewire: random source is nil")

	// ErrInvalidProbability is returned when p lies outside [0,1].
	ErrInvalidProbability = errors.New("rewire: probability out of range")
)

// Probability domain bounds.
const (
	minProbability = 0.0
	maxProbability = 1.0
)

// Source is the randomness capability consumed by Rewire: one uniform
// float in [0,1) per owned edge, plus uniform ints in [0,n) for
// candidate targets. *math/rand.Rand satisfies Source; so does any
// seeded stub in tests. Keeping the dependency explicit makes trials
// independently reproducible and safe to run in parallel.
type Source interface {
	// Float64 returns a uniform value in [0,1).
	Float64() float64

	// Intn returns a uniform value in [0,n). Panics if n <= 0,
	// matching math/rand semantics.
	Intn(n int) int
}

package lotto

import (
	"math/rand/v2"
)

// Source picks a uniformly random index in [0, n). *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

// defaultSource uses the package-level generator of math/rand/v2, which is
// safe for concurrent use and seeded by the runtime.
type defaultSource struct{}

func (defaultSource) IntN(n int) int {
	// #nosec G404 -- ticket numbers are not a security boundary
	return rand.IntN(n)
}

// DefaultSource returns the process-wide random source.
func DefaultSource() Source {
	return defaultSource{}
}

// NewSeededSource returns a reproducible source. The returned value is not
// safe for concurrent use.
func NewSeededSource(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

package gacha

import (
	"math/rand/v2"
	"sync"
)

// RandomSource supplies uniform integers. IntN returns a value in [0, n) and is only
// called with n > 0.
type RandomSource interface {
	IntN(n int) int
}

// runtimeSource uses the runtime-seeded global generator, which is safe for concurrent use.
type runtimeSource struct{}

func (runtimeSource) IntN(n int) int { return rand.IntN(n) }

// DefaultSource returns the nondeterministic, goroutine-safe source used in production.
func DefaultSource() RandomSource { return runtimeSource{} }

// seededSource is a replayable PCG stream (tests, simulations, RNG_SEED deployments).
type seededSource struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewSeededSource returns a deterministic source. Two sources built from the same seed
// produce the same sequence.
func NewSeededSource(seed uint64) RandomSource {
	return &seededSource{r: rand.New(rand.NewPCG(seed, 0))}
}

func (s *seededSource) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.IntN(n)
}

// uniform returns an integer in [lo, hi] inclusive.
func uniform(rng RandomSource, lo, hi int) int {
	return lo + rng.IntN(hi-lo+1)
}

// choice picks a uniformly random element of a non-empty list.
func choice(rng RandomSource, items []int) int {
	return items[rng.IntN(len(items))]
}

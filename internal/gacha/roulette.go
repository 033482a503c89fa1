package gacha

import (
	"fmt"

	"github.com/osse101/WishBot_Go/internal/domain"
)

// drawRoulette picks an index with probability proportional to its weight. The roll is
// taken from [0, min(total, cutoff)), so once the running sum reaches cutoff the index
// holding it always wins. A zero total yields the first index.
func (e *Engine) drawRoulette(weights []int, cutoff int) (int, error) {
	total := 0
	for _, w := range weights {
		if w < 0 {
			return 0, fmt.Errorf("%w: weights must be non-negative, got %d", domain.ErrIllegalArgument, w)
		}
		total += w
	}
	if len(weights) == 0 {
		return 0, fmt.Errorf("%w: no roulette weights", domain.ErrIllegalArgument)
	}
	if total == 0 {
		return 0, nil
	}

	roll := e.rng.IntN(min(total, cutoff))
	sum := 0
	for i, w := range weights {
		sum += w
		if roll < sum {
			return i, nil
		}
	}
	return len(weights) - 1, nil
}

package gacha

import "github.com/osse101/WishBot_Go/internal/domain"

// fallbackPull picks a non-featured item, balancing the two sub-pools so a long drought
// in one of them raises its odds. Only the winning pool's pity is reset.
func (e *Engine) fallbackPull(state *domain.PlayerBannerState, banner *BannerConfig, pool *BannerPool, rarity int) (int, error) {
	pool1, pool2 := pool.Fallback(rarity)

	switch {
	case len(pool1) == 0 && len(pool2) == 0:
		return choice(e.rng, emptyPoolDefault(rarity)), nil
	case len(pool1) == 0:
		return choice(e.rng, pool2), nil
	case len(pool2) == 0:
		return choice(e.rng, pool1), nil
	}

	pb1, err := banner.PoolBalanceWeight(rarity, state.PoolPity(rarity, Pool1))
	if err != nil {
		return 0, err
	}
	pb2, err := banner.PoolBalanceWeight(rarity, state.PoolPity(rarity, Pool2))
	if err != nil {
		return 0, err
	}

	// larger weight goes first so it owns the cutoff; ties favour pool 1
	var chosen int
	if pb1 >= pb2 {
		idx, err := e.drawRoulette([]int{pb1, pb2}, RouletteCutoff)
		if err != nil {
			return 0, err
		}
		chosen = Pool1 + idx
	} else {
		idx, err := e.drawRoulette([]int{pb2, pb1}, RouletteCutoff)
		if err != nil {
			return 0, err
		}
		chosen = Pool2 - idx
	}

	state.SetPoolPity(rarity, chosen, 0)
	if chosen == Pool1 {
		return choice(e.rng, pool1), nil
	}
	return choice(e.rng, pool2), nil
}

package gacha

import (
	"fmt"

	"github.com/osse101/WishBot_Go/internal/domain"
)

// Outcome labels how a 4 or 5 star pull was resolved.
type Outcome string

const (
	OutcomeFiller    Outcome = ""
	OutcomeFeatured  Outcome = "featured"
	OutcomeOffBanner Outcome = "off_banner"
	OutcomeFate      Outcome = "fate"
)

// Pull is one resolved draw.
type Pull struct {
	ItemID  int
	Rarity  int
	Outcome Outcome
}

// Engine resolves pulls. It performs no I/O and holds no per-player state, so one Engine
// can serve every player as long as its RandomSource is safe for concurrent use.
type Engine struct {
	rng RandomSource
}

// NewEngine creates an engine drawing from rng. A nil rng selects DefaultSource.
func NewEngine(rng RandomSource) *Engine {
	if rng == nil {
		rng = DefaultSource()
	}
	return &Engine{rng: rng}
}

// BannerInfo returns the state tracked for the banner type. Unknown types share the
// standard state.
func BannerInfo(info *domain.PlayerGachaInfo, t domain.BannerType) *domain.PlayerBannerState {
	switch t {
	case domain.BannerTypeWeapon:
		return &info.EventWeaponBanner
	case domain.BannerTypeCharacter:
		return &info.EventCharacterBanner
	default:
		return &info.StandardBanner
	}
}

// DoPulls draws times items (1 or 10) from banner and returns their item ids in order.
func (e *Engine) DoPulls(info *domain.PlayerGachaInfo, banner *BannerConfig, times int) ([]int, error) {
	pulls, err := e.Draw(info, banner, times)
	if err != nil {
		return nil, err
	}
	ids := make([]int, len(pulls))
	for i, p := range pulls {
		ids[i] = p.ItemID
	}
	return ids, nil
}

// Draw is DoPulls with rarity and outcome attached to every item. The player's state is
// only written back once the whole batch resolved; on error info is left untouched.
func (e *Engine) Draw(info *domain.PlayerGachaInfo, banner *BannerConfig, times int) ([]Pull, error) {
	if times != PullsSingle && times != PullsTen {
		return nil, fmt.Errorf("%w: %d (must be %d or %d)", domain.ErrInvalidTimes, times, PullsSingle, PullsTen)
	}
	if info == nil || banner == nil {
		return nil, fmt.Errorf("%w: nil gacha info or banner", domain.ErrIllegalArgument)
	}

	target := BannerInfo(info, banner.Type)
	state := *target
	pool := NewBannerPool(banner)

	state.TotalPulls += times
	pulls := make([]Pull, 0, times)
	for i := 0; i < times; i++ {
		p, err := e.pullOnce(&state, banner, &pool)
		if err != nil {
			return nil, err
		}
		pulls = append(pulls, p)
	}

	*target = state
	return pulls, nil
}

func (e *Engine) pullOnce(state *domain.PlayerBannerState, banner *BannerConfig, pool *BannerPool) (Pull, error) {
	state.IncPityAll()

	w5, err := banner.Weight(Rarity5, state.Pity5)
	if err != nil {
		return Pull{}, err
	}
	w4, err := banner.Weight(Rarity4, state.Pity4)
	if err != nil {
		return Pull{}, err
	}

	// highest rarity first so the hard cutoff lands on it
	idx, err := e.drawRoulette([]int{w5, w4, FillerWeight}, RouletteCutoff)
	if err != nil {
		return Pull{}, err
	}

	switch rarity := Rarity5 - idx; rarity {
	case Rarity5:
		state.Pity5 = 0
		return e.rarePull(state, banner, pool, Rarity5)
	case Rarity4:
		state.Pity4 = 0
		return e.rarePull(state, banner, pool, Rarity4)
	default:
		if len(banner.FallbackItems3) == 0 {
			return Pull{}, fmt.Errorf("%w: banner has no 3-star items", domain.ErrIllegalArgument)
		}
		return Pull{ItemID: choice(e.rng, banner.FallbackItems3), Rarity: Rarity3}, nil
	}
}

// rarePull resolves a 4 or 5 star: fate override, then featured roll, then the fallback pools.
func (e *Engine) rarePull(state *domain.PlayerBannerState, banner *BannerConfig, pool *BannerPool, rarity int) (Pull, error) {
	chance, err := banner.EventChance(rarity)
	if err != nil {
		return Pull{}, err
	}

	epitomized := banner.HasEpitomized() && rarity == Rarity5 && state.WishItemID != 0
	fateReached := state.FailedChosenItemPulls >= banner.WishMaxProgress
	lostLast := state.FailedFeatured(rarity) >= 1
	wonRoll := uniform(e.rng, 1, EventChanceMax) <= chance

	pull := Pull{Rarity: rarity}
	featured := pool.RateUp(rarity)

	switch {
	case epitomized && fateReached:
		state.SetFailedFeatured(rarity, 0)
		pull.ItemID = state.WishItemID
		pull.Outcome = OutcomeFate
	case (lostLast || wonRoll) && len(featured) > 0:
		pull.ItemID = choice(e.rng, featured)
		pull.Outcome = OutcomeFeatured
		state.SetFailedFeatured(rarity, 0)
	default:
		state.SetFailedFeatured(rarity, state.FailedFeatured(rarity)+1)
		id, err := e.fallbackPull(state, banner, pool, rarity)
		if err != nil {
			return Pull{}, err
		}
		pull.ItemID = id
		pull.Outcome = OutcomeOffBanner
	}

	if epitomized {
		if pull.ItemID == state.WishItemID {
			state.FailedChosenItemPulls = 0
		} else {
			state.FailedChosenItemPulls++
		}
	}
	return pull, nil
}

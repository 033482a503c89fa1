package wish

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/osse101/WishBot_Go/internal/domain"
	"github.com/osse101/WishBot_Go/internal/gacha"
)

// SimulationParams controls one Monte Carlo run.
type SimulationParams struct {
	Trials        int `json:"trials" validate:"required,min=1,max=100000"`
	PullsPerTrial int `json:"pulls" validate:"required,min=1,max=2000"`
	// WishItemID sets the epitomized target on weapon banners.
	WishItemID int `json:"wish_item_id,omitempty"`
}

// Stats summarizes one metric across trials.
type Stats struct {
	Mean   float64 `json:"mean"`
	Var    float64 `json:"variance"`
	StdDev float64 `json:"stddev"`
	P50    float64 `json:"p50"`
	P90    float64 `json:"p90"`
	P99    float64 `json:"p99"`
}

// SimulationStats is the outcome of Simulate. FirstFiveStar only covers trials that
// produced a 5-star.
type SimulationStats struct {
	Trials        int   `json:"trials"`
	PullsPerTrial int   `json:"pulls_per_trial"`
	FiveStars     Stats `json:"five_stars"`
	FourStars     Stats `json:"four_stars"`
	Featured5     Stats `json:"featured_five_stars"`
	FirstFiveStar Stats `json:"first_five_star"`
}

// Simulate runs the real engine from a fresh player state in every trial, using ten-pulls
// and finishing with single pulls. ctx is checked between trials.
func Simulate(ctx context.Context, cfg *gacha.BannerConfig, params SimulationParams, rng gacha.RandomSource) (*SimulationStats, error) {
	if params.Trials < 1 || params.Trials > MaxSimulationTrials {
		return nil, fmt.Errorf("%w: trials must be in [1,%d]", domain.ErrInvalidInput, MaxSimulationTrials)
	}
	if params.PullsPerTrial < 1 || params.PullsPerTrial > MaxSimulationPulls {
		return nil, fmt.Errorf("%w: pulls must be in [1,%d]", domain.ErrInvalidInput, MaxSimulationPulls)
	}
	if params.WishItemID != 0 && (!cfg.HasEpitomized() || !cfg.IsRateUp(gacha.Rarity5, params.WishItemID)) {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidWishTarget, params.WishItemID)
	}

	engine := gacha.NewEngine(rng)
	fives := make([]int, params.Trials)
	fours := make([]int, params.Trials)
	featured := make([]int, params.Trials)
	var firsts []int

	for t := 0; t < params.Trials; t++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		info := domain.NewPlayerGachaInfo()
		gacha.BannerInfo(info, cfg.Type).WishItemID = params.WishItemID

		drawn, first := 0, 0
		for drawn < params.PullsPerTrial {
			times := gacha.PullsTen
			if params.PullsPerTrial-drawn < gacha.PullsTen {
				times = gacha.PullsSingle
			}
			pulls, err := engine.Draw(info, cfg, times)
			if err != nil {
				return nil, err
			}
			for _, p := range pulls {
				drawn++
				switch p.Rarity {
				case gacha.Rarity5:
					fives[t]++
					if p.Outcome != gacha.OutcomeOffBanner {
						featured[t]++
					}
					if first == 0 {
						first = drawn
					}
				case gacha.Rarity4:
					fours[t]++
				}
			}
		}
		if first > 0 {
			firsts = append(firsts, first)
		}
	}

	return &SimulationStats{
		Trials:        params.Trials,
		PullsPerTrial: params.PullsPerTrial,
		FiveStars:     calcStats(fives),
		FourStars:     calcStats(fours),
		Featured5:     calcStats(featured),
		FirstFiveStar: calcStats(firsts),
	}, nil
}

// calcStats computes mean, population variance and interpolated percentiles.
func calcStats(xs []int) Stats {
	n := len(xs)
	if n == 0 {
		return Stats{}
	}

	var sum float64
	for _, v := range xs {
		sum += float64(v)
	}
	mean := sum / float64(n)

	var acc float64
	for _, v := range xs {
		d := float64(v) - mean
		acc += d * d
	}
	variance := acc / float64(n)

	sorted := append([]int(nil), xs...)
	sort.Ints(sorted)
	percentile := func(p float64) float64 {
		if n == 1 {
			return float64(sorted[0])
		}
		pos := p * float64(n-1)
		i := int(math.Floor(pos))
		if i+1 >= n {
			return float64(sorted[n-1])
		}
		f := pos - float64(i)
		return float64(sorted[i])*(1-f) + float64(sorted[i+1])*f
	}

	return Stats{
		Mean:   mean,
		Var:    variance,
		StdDev: math.Sqrt(variance),
		P50:    percentile(0.50),
		P90:    percentile(0.90),
		P99:    percentile(0.99),
	}
}

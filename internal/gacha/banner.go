package gacha

import (
	"fmt"

	"github.com/osse101/WishBot_Go/internal/domain"
)

// BannerConfig describes the odds and item lists of one banner. Values are built once by
// the banner catalog and shared read-only by every draw on that banner.
type BannerConfig struct {
	Type domain.BannerType

	Weights4 Curve
	Weights5 Curve

	RateUpItems4 []int
	RateUpItems5 []int

	FallbackItems3      []int
	FallbackItems4Pool1 []int
	FallbackItems4Pool2 []int
	FallbackItems5Pool1 []int
	FallbackItems5Pool2 []int

	PoolBalanceWeights4 Curve
	PoolBalanceWeights5 Curve

	// EventChance4 and EventChance5 are percentages in [0, 100].
	EventChance4 int
	EventChance5 int

	// WishMaxProgress is the number of fate points that forces the wish item.
	WishMaxProgress int

	AutoStripRateUpFromFallback bool
}

// Weight returns the rarity weight at the given pity.
func (b *BannerConfig) Weight(rarity, pity int) (int, error) {
	switch rarity {
	case Rarity4:
		return Lerp(pity, b.Weights4), nil
	case Rarity5:
		return Lerp(pity, b.Weights5), nil
	}
	return 0, fmt.Errorf("%w: rarity %d has no weight curve", domain.ErrIllegalArgument, rarity)
}

// EventChance returns the featured percentage for the rarity.
func (b *BannerConfig) EventChance(rarity int) (int, error) {
	switch rarity {
	case Rarity4:
		return b.EventChance4, nil
	case Rarity5:
		return b.EventChance5, nil
	}
	return 0, fmt.Errorf("%w: rarity %d has no event chance", domain.ErrIllegalArgument, rarity)
}

// PoolBalanceWeight returns the sub-pool balancing weight at the given sub-pool pity.
func (b *BannerConfig) PoolBalanceWeight(rarity, pity int) (int, error) {
	switch rarity {
	case Rarity4:
		return Lerp(pity, b.PoolBalanceWeights4), nil
	case Rarity5:
		return Lerp(pity, b.PoolBalanceWeights5), nil
	}
	return 0, fmt.Errorf("%w: rarity %d has no pool balance curve", domain.ErrIllegalArgument, rarity)
}

// HasEpitomized reports whether the banner offers the fate point path.
func (b *BannerConfig) HasEpitomized() bool {
	return b.Type == domain.BannerTypeWeapon
}

// RateUpItems returns the featured list for rarity 4 or 5.
func (b *BannerConfig) RateUpItems(rarity int) []int {
	if rarity == Rarity5 {
		return b.RateUpItems5
	}
	return b.RateUpItems4
}

// IsRateUp reports whether itemID is featured at the given rarity.
func (b *BannerConfig) IsRateUp(rarity, itemID int) bool {
	for _, id := range b.RateUpItems(rarity) {
		if id == itemID {
			return true
		}
	}
	return false
}

// DefaultBannerConfig returns the reference game's odds for a banner type. Every call
// returns fresh slices. Unknown types get the standard table.
func DefaultBannerConfig(t domain.BannerType) *BannerConfig {
	cfg := &BannerConfig{
		Type:                        t,
		Weights4:                    Curve{{1, 510}, {8, 510}, {10, 10000}},
		Weights5:                    Curve{{1, 75}, {73, 150}, {90, 10000}},
		FallbackItems3:              DefaultFallbackItems3(),
		FallbackItems4Pool1:         DefaultFallbackItems4Pool1(),
		FallbackItems4Pool2:         DefaultFallbackItems4Pool2(),
		FallbackItems5Pool1:         DefaultFallbackItems5Pool1(),
		FallbackItems5Pool2:         DefaultFallbackItems5Pool2(),
		PoolBalanceWeights4:         Curve{{1, 255}, {17, 255}, {21, 10455}},
		PoolBalanceWeights5:         Curve{{1, 30}, {147, 150}, {181, 10230}},
		EventChance4:                50,
		EventChance5:                50,
		AutoStripRateUpFromFallback: true,
	}

	switch t {
	case domain.BannerTypeWeapon:
		cfg.Weights4 = Curve{{1, 600}, {7, 600}, {10, 10000}}
		cfg.Weights5 = Curve{{1, 100}, {62, 100}, {73, 7800}, {80, 10000}}
		cfg.EventChance4 = 75
		cfg.EventChance5 = 75
		cfg.WishMaxProgress = 2
	case domain.BannerTypeCharacter:
		// character banners use the standard odds table
	default:
		cfg.Type = domain.BannerTypeStandard
	}
	return cfg
}

package gacha

// BannerPool is the per-session view of a banner's item lists. Fallback pools have
// featured items removed when the banner asks for it, so fallback draws never hand out a
// rate-up item.
type BannerPool struct {
	RateUp4 []int
	RateUp5 []int

	Fallback4Pool1 []int
	Fallback4Pool2 []int
	Fallback5Pool1 []int
	Fallback5Pool2 []int
}

// NewBannerPool derives the session pools from cfg. Nothing in the result aliases cfg.
func NewBannerPool(cfg *BannerConfig) BannerPool {
	p := BannerPool{
		RateUp4: copyInts(cfg.RateUpItems4),
		RateUp5: copyInts(cfg.RateUpItems5),
	}

	if cfg.AutoStripRateUpFromFallback {
		p.Fallback4Pool1 = without(cfg.FallbackItems4Pool1, cfg.RateUpItems4)
		p.Fallback4Pool2 = without(cfg.FallbackItems4Pool2, cfg.RateUpItems4)
		p.Fallback5Pool1 = without(cfg.FallbackItems5Pool1, cfg.RateUpItems5)
		p.Fallback5Pool2 = without(cfg.FallbackItems5Pool2, cfg.RateUpItems5)
		return p
	}

	p.Fallback4Pool1 = copyInts(cfg.FallbackItems4Pool1)
	p.Fallback4Pool2 = copyInts(cfg.FallbackItems4Pool2)
	p.Fallback5Pool1 = copyInts(cfg.FallbackItems5Pool1)
	p.Fallback5Pool2 = copyInts(cfg.FallbackItems5Pool2)
	return p
}

// RateUp returns the featured list for rarity 4 or 5.
func (p *BannerPool) RateUp(rarity int) []int {
	if rarity == Rarity5 {
		return p.RateUp5
	}
	return p.RateUp4
}

// Fallback returns both sub-pools for rarity 4 or 5.
func (p *BannerPool) Fallback(rarity int) (pool1, pool2 []int) {
	if rarity == Rarity5 {
		return p.Fallback5Pool1, p.Fallback5Pool2
	}
	return p.Fallback4Pool1, p.Fallback4Pool2
}

func copyInts(src []int) []int {
	if len(src) == 0 {
		return []int{}
	}
	return append([]int(nil), src...)
}

// without returns src minus every id in exclude, keeping order.
func without(src, exclude []int) []int {
	if len(exclude) == 0 {
		return copyInts(src)
	}
	drop := make(map[int]struct{}, len(exclude))
	for _, id := range exclude {
		drop[id] = struct{}{}
	}
	out := make([]int, 0, len(src))
	for _, id := range src {
		if _, ok := drop[id]; !ok {
			out = append(out, id)
		}
	}
	return out
}

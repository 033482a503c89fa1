package banner

import (
	"fmt"
	"strings"
	"time"

	"github.com/osse101/WishBot_Go/internal/domain"
	"github.com/osse101/WishBot_Go/internal/gacha"
)

// Definition is the on-disk shape of one banner. Every odds field is optional and falls
// back to the reference defaults for the banner type.
type Definition struct {
	ID         string `yaml:"id"`
	Title      string `yaml:"title"`
	BannerType string `yaml:"banner_type"`
	GachaType  int    `yaml:"gacha_type"`
	ScheduleID int    `yaml:"schedule_id"`
	BeginTime  string `yaml:"begin_time"`
	EndTime    string `yaml:"end_time"`

	RateUpItems5 []int `yaml:"rate_up_items5"`
	RateUpItems4 []int `yaml:"rate_up_items4"`

	Weights4            gacha.Curve `yaml:"weights4"`
	Weights5            gacha.Curve `yaml:"weights5"`
	PoolBalanceWeights4 gacha.Curve `yaml:"pool_balance_weights4"`
	PoolBalanceWeights5 gacha.Curve `yaml:"pool_balance_weights5"`

	EventChance4    *int `yaml:"event_chance4"`
	EventChance5    *int `yaml:"event_chance5"`
	WishMaxProgress *int `yaml:"wish_max_progress"`

	FallbackItems3      []int `yaml:"fallback_items3"`
	FallbackItems4Pool1 []int `yaml:"fallback_items4_pool1"`
	FallbackItems4Pool2 []int `yaml:"fallback_items4_pool2"`
	FallbackItems5Pool1 []int `yaml:"fallback_items5_pool1"`
	FallbackItems5Pool2 []int `yaml:"fallback_items5_pool2"`

	AutoStripRateUpFromFallback *bool `yaml:"auto_strip_rate_up_from_fallback"`
}

// Config merges the definition over the defaults of its banner type.
func (d *Definition) Config() (*gacha.BannerConfig, error) {
	bt, err := domain.ParseBannerType(d.BannerType)
	if err != nil {
		return nil, err
	}
	cfg := gacha.DefaultBannerConfig(bt)

	cfg.RateUpItems4 = cloneInts(d.RateUpItems4)
	cfg.RateUpItems5 = cloneInts(d.RateUpItems5)

	overrideCurve(&cfg.Weights4, d.Weights4)
	overrideCurve(&cfg.Weights5, d.Weights5)
	overrideCurve(&cfg.PoolBalanceWeights4, d.PoolBalanceWeights4)
	overrideCurve(&cfg.PoolBalanceWeights5, d.PoolBalanceWeights5)

	overrideList(&cfg.FallbackItems3, d.FallbackItems3)
	overrideList(&cfg.FallbackItems4Pool1, d.FallbackItems4Pool1)
	overrideList(&cfg.FallbackItems4Pool2, d.FallbackItems4Pool2)
	overrideList(&cfg.FallbackItems5Pool1, d.FallbackItems5Pool1)
	overrideList(&cfg.FallbackItems5Pool2, d.FallbackItems5Pool2)

	if d.EventChance4 != nil {
		cfg.EventChance4 = *d.EventChance4
	}
	if d.EventChance5 != nil {
		cfg.EventChance5 = *d.EventChance5
	}
	if d.WishMaxProgress != nil {
		cfg.WishMaxProgress = *d.WishMaxProgress
	}
	if d.AutoStripRateUpFromFallback != nil {
		cfg.AutoStripRateUpFromFallback = *d.AutoStripRateUpFromFallback
	}
	return cfg, nil
}

// Validate checks semantic constraints of the definition and of the merged odds, and
// reports every problem at once.
func (d *Definition) Validate() error {
	var errs []string

	if strings.TrimSpace(d.ID) == "" {
		errs = append(errs, "id is required")
	}

	begin, err := parseTime(d.BeginTime)
	if err != nil {
		errs = append(errs, "begin_time must be RFC3339")
	}
	end, err := parseTime(d.EndTime)
	if err != nil {
		errs = append(errs, "end_time must be RFC3339")
	}
	if begin != nil && end != nil && !end.After(*begin) {
		errs = append(errs, "end_time must be after begin_time")
	}

	cfg, err := d.Config()
	if err != nil {
		errs = append(errs, "banner_type must be one of: standard, character, weapon")
	} else {
		errs = append(errs, validateConfig(cfg)...)
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: banner %q: %s", domain.ErrInvalidInput, d.ID, strings.Join(errs, "; "))
	}
	return nil
}

func validateConfig(cfg *gacha.BannerConfig) []string {
	var errs []string

	curves := []struct {
		name  string
		curve gacha.Curve
	}{
		{"weights4", cfg.Weights4},
		{"weights5", cfg.Weights5},
		{"pool_balance_weights4", cfg.PoolBalanceWeights4},
		{"pool_balance_weights5", cfg.PoolBalanceWeights5},
	}
	for _, c := range curves {
		if err := c.curve.Validate(); err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", c.name, err))
		}
	}

	if cfg.EventChance4 < 0 || cfg.EventChance4 > gacha.EventChanceMax {
		errs = append(errs, "event_chance4 must be in [0,100]")
	}
	if cfg.EventChance5 < 0 || cfg.EventChance5 > gacha.EventChanceMax {
		errs = append(errs, "event_chance5 must be in [0,100]")
	}
	if len(cfg.FallbackItems3) == 0 {
		errs = append(errs, "fallback_items3 must not be empty")
	}
	if cfg.HasEpitomized() && cfg.WishMaxProgress <= 0 {
		errs = append(errs, "wish_max_progress must be >= 1 for weapon banners")
	}
	if cfg.WishMaxProgress < 0 {
		errs = append(errs, "wish_max_progress must be >= 0")
	}

	lists := [][]int{
		cfg.RateUpItems4, cfg.RateUpItems5, cfg.FallbackItems3,
		cfg.FallbackItems4Pool1, cfg.FallbackItems4Pool2,
		cfg.FallbackItems5Pool1, cfg.FallbackItems5Pool2,
	}
	for _, list := range lists {
		for _, id := range list {
			if id <= 0 {
				errs = append(errs, fmt.Sprintf("item id %d must be positive", id))
			}
		}
	}
	return errs
}

func parseTime(s string) (*time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func overrideCurve(dst *gacha.Curve, src gacha.Curve) {
	if len(src) > 0 {
		*dst = src.Clone()
	}
}

// overrideList replaces dst when the field was present in YAML; an explicit empty list
// empties the pool.
func overrideList(dst *[]int, src []int) {
	if src != nil {
		*dst = cloneInts(src)
	}
}

func cloneInts(src []int) []int {
	if src == nil {
		return nil
	}
	return append([]int{}, src...)
}

package gacha

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/WishBot_Go/internal/domain"
)

func TestLerp(t *testing.T) {
	standard5 := Curve{{1, 60}, {73, 60}, {90, 10000}}
	weapon5 := Curve{{1, 100}, {62, 100}, {73, 7800}, {80, 10000}}

	tests := []struct {
		name   string
		pity   int
		points Curve
		want   int
	}{
		{"below first point clamps", 0, standard5, 60},
		{"on first point", 1, standard5, 60},
		{"flat segment", 50, standard5, 60},
		{"on interior point", 73, standard5, 60},
		{"first step of soft pity", 74, standard5, 644},
		{"hard pity", 90, standard5, 10000},
		{"beyond last point clamps", 150, standard5, 10000},
		{"weapon ramp start", 63, weapon5, 800},
		{"weapon second ramp", 76, weapon5, 8742},
		{"weapon exact threshold", 73, weapon5, 7800},
		{"empty curve", 10, nil, 0},
		{"decreasing segment floors toward negative infinity", 1, Curve{{0, 100}, {3, 0}}, 66},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Lerp(tt.pity, tt.points))
		})
	}
}

func TestLerp_MonotonicOnValidCurves(t *testing.T) {
	for _, bt := range []domain.BannerType{domain.BannerTypeStandard, domain.BannerTypeCharacter, domain.BannerTypeWeapon} {
		cfg := DefaultBannerConfig(bt)
		for _, c := range []Curve{cfg.Weights4, cfg.Weights5, cfg.PoolBalanceWeights4, cfg.PoolBalanceWeights5} {
			prev := Lerp(0, c)
			for pity := 1; pity <= 200; pity++ {
				w := Lerp(pity, c)
				assert.GreaterOrEqual(t, w, prev, "weight dropped at pity %d on %s", pity, bt)
				prev = w
			}
		}
	}
}

func TestCurve_Validate(t *testing.T) {
	t.Run("accepts defaults", func(t *testing.T) {
		cfg := DefaultBannerConfig(domain.BannerTypeWeapon)
		assert.NoError(t, cfg.Weights5.Validate())
		assert.NoError(t, cfg.PoolBalanceWeights4.Validate())
	})

	cases := map[string]Curve{
		"empty":              {},
		"negative weight":    {{1, -5}, {10, 100}},
		"repeated threshold": {{1, 10}, {1, 20}},
		"decreasing weight":  {{1, 100}, {10, 50}},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			err := c.Validate()
			assert.True(t, errors.Is(err, domain.ErrIllegalArgument), "got %v", err)
		})
	}
}

func TestCurve_Clone(t *testing.T) {
	c := Curve{{1, 10}, {2, 20}}
	cp := c.Clone()
	cp[0].Weight = 99
	assert.Equal(t, 10, c[0].Weight)
	assert.Nil(t, Curve(nil).Clone())
}

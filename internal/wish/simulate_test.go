package wish

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/WishBot_Go/internal/domain"
	"github.com/osse101/WishBot_Go/internal/gacha"
)

func TestCalcStats(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, Stats{}, calcStats(nil))
	})

	t.Run("single value", func(t *testing.T) {
		s := calcStats([]int{4})
		assert.Equal(t, 4.0, s.Mean)
		assert.Equal(t, 0.0, s.Var)
		assert.Equal(t, 4.0, s.P99)
	})

	t.Run("interpolated percentiles", func(t *testing.T) {
		s := calcStats([]int{5, 1, 4, 2, 3})
		assert.Equal(t, 3.0, s.Mean)
		assert.Equal(t, 2.0, s.Var)
		assert.InDelta(t, 1.41421356, s.StdDev, 1e-6)
		assert.Equal(t, 3.0, s.P50)
		assert.InDelta(t, 4.6, s.P90, 1e-9)
		assert.InDelta(t, 4.96, s.P99, 1e-9)
	})
}

func TestSimulate_Validation(t *testing.T) {
	cfg := gacha.DefaultBannerConfig(domain.BannerTypeCharacter)
	weapon := gacha.DefaultBannerConfig(domain.BannerTypeWeapon)
	weapon.RateUpItems5 = []int{15502, 11501}

	tests := []struct {
		name    string
		cfg     *gacha.BannerConfig
		params  SimulationParams
		wantErr error
	}{
		{"no trials", cfg, SimulationParams{Trials: 0, PullsPerTrial: 10}, domain.ErrInvalidInput},
		{"too many trials", cfg, SimulationParams{Trials: MaxSimulationTrials + 1, PullsPerTrial: 10}, domain.ErrInvalidInput},
		{"no pulls", cfg, SimulationParams{Trials: 1, PullsPerTrial: 0}, domain.ErrInvalidInput},
		{"too many pulls", cfg, SimulationParams{Trials: 1, PullsPerTrial: MaxSimulationPulls + 1}, domain.ErrInvalidInput},
		{"target on character banner", cfg, SimulationParams{Trials: 1, PullsPerTrial: 1, WishItemID: 1022}, domain.ErrInvalidWishTarget},
		{"target not featured", weapon, SimulationParams{Trials: 1, PullsPerTrial: 1, WishItemID: 99}, domain.ErrInvalidWishTarget},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Simulate(context.Background(), tt.cfg, tt.params, gacha.NewSeededSource(1))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSimulate_HardPityBoundsFirstFiveStar(t *testing.T) {
	cfg := gacha.DefaultBannerConfig(domain.BannerTypeStandard)
	stats, err := Simulate(context.Background(), cfg, SimulationParams{Trials: 200, PullsPerTrial: 90}, gacha.NewSeededSource(3))
	require.NoError(t, err)

	assert.Equal(t, 200, stats.Trials)
	assert.GreaterOrEqual(t, stats.FiveStars.Mean, 1.0, "hard pity guarantees a 5-star within 90")
	assert.LessOrEqual(t, stats.FirstFiveStar.P99, 90.0)
	assert.GreaterOrEqual(t, stats.FourStars.Mean, 8.0, "4-star hard pity every 10 pulls")
}

func TestSimulate_MaxSourceIsExact(t *testing.T) {
	cfg := gacha.DefaultBannerConfig(domain.BannerTypeStandard)
	stats, err := Simulate(context.Background(), cfg, SimulationParams{Trials: 3, PullsPerTrial: 95}, maxSource{})
	require.NoError(t, err)

	assert.Equal(t, 1.0, stats.FiveStars.Mean)
	assert.Equal(t, 0.0, stats.FiveStars.Var)
	assert.Equal(t, 90.0, stats.FirstFiveStar.Mean)
	assert.Equal(t, 9.0, stats.FourStars.Mean)
}

func TestSimulate_EpitomizedTarget(t *testing.T) {
	cfg := gacha.DefaultBannerConfig(domain.BannerTypeWeapon)
	cfg.RateUpItems5 = []int{15502, 11501}
	stats, err := Simulate(context.Background(), cfg, SimulationParams{Trials: 100, PullsPerTrial: 240, WishItemID: 15502}, gacha.NewSeededSource(9))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, stats.Featured5.Mean, 1.0)
	assert.LessOrEqual(t, stats.Featured5.Mean, stats.FiveStars.Mean)
}

func TestSimulate_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	stats, err := Simulate(ctx, gacha.DefaultBannerConfig(domain.BannerTypeStandard),
		SimulationParams{Trials: MaxSimulationTrials, PullsPerTrial: MaxSimulationPulls}, gacha.NewSeededSource(1))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, stats)
}

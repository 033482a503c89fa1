package wish

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/osse101/WishBot_Go/internal/banner"
	"github.com/osse101/WishBot_Go/internal/concurrency"
	"github.com/osse101/WishBot_Go/internal/domain"
	"github.com/osse101/WishBot_Go/internal/gacha"
	"github.com/osse101/WishBot_Go/internal/logger"
	"github.com/osse101/WishBot_Go/internal/metrics"
	"github.com/osse101/WishBot_Go/internal/repository"
)

// Service defines the interface for wish operations
type Service interface {
	Pull(ctx context.Context, playerID, bannerID string, times int) (*domain.PullResult, error)
	SetWishTarget(ctx context.Context, playerID, bannerID string, itemID int) (*domain.PlayerBannerState, error)
	GetInfo(ctx context.Context, playerID string) (*domain.PlayerGachaInfo, error)
	GetHistory(ctx context.Context, playerID string, bannerType domain.BannerType, limit int) ([]domain.WishRecord, error)
	ListBanners(ctx context.Context) []domain.BannerSummary
	Simulate(ctx context.Context, bannerID string, params SimulationParams, seed uint64) (*SimulationStats, error)
	CacheStats() CacheStats
	Shutdown(ctx context.Context) error
}

// BannerCatalog is the subset of the banner catalog the service reads.
type BannerCatalog interface {
	Get(id string) (*banner.Banner, error)
	List() []*banner.Banner
}

type service struct {
	repo    repository.Wish
	banners BannerCatalog
	engine  *gacha.Engine
	locks   *concurrency.LockManager
	cache   *playerCache
	now     func() time.Time

	mu      sync.Mutex
	closing bool
	wg      sync.WaitGroup // in-flight writes, drained by Shutdown
}

// NewService creates a new wish service
func NewService(repo repository.Wish, banners BannerCatalog, engine *gacha.Engine, cacheSize int, cacheTTL time.Duration) Service {
	return &service{
		repo:    repo,
		banners: banners,
		engine:  engine,
		locks:   concurrency.NewLockManager(),
		cache:   newPlayerCache(cacheSize, cacheTTL),
		now:     time.Now,
	}
}

// Pull draws times items for the player and persists the new state with its history.
// Nothing is stored unless the whole batch resolved.
func (s *service) Pull(ctx context.Context, playerID, bannerID string, times int) (*domain.PullResult, error) {
	if !s.begin() {
		return nil, domain.ErrShuttingDown
	}
	defer s.wg.Done()

	log := logger.FromContext(ctx)
	start := time.Now()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return nil, domain.ErrPlayerIDRequired
	}
	if times != gacha.PullsSingle && times != gacha.PullsTen {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidTimes, times)
	}

	b, err := s.banners.Get(bannerID)
	if err != nil {
		return nil, err
	}
	now := s.now()
	if !b.ActiveAt(now) {
		return nil, fmt.Errorf("%w: %s", domain.ErrBannerInactive, b.ID)
	}

	unlock, err := s.locks.Lock(ctx, playerID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	info, err := s.loadInfo(ctx, playerID)
	if err != nil {
		return nil, err
	}

	resetStaleTarget(gacha.BannerInfo(info, b.Config.Type), b.Config)

	pulls, err := s.engine.Draw(info, b.Config, times)
	if err != nil {
		return nil, fmt.Errorf("banner %s: %w", b.ID, err)
	}

	records := make([]domain.WishRecord, len(pulls))
	items := make([]domain.PulledItem, len(pulls))
	for i, p := range pulls {
		records[i] = domain.WishRecord{
			PlayerID:   playerID,
			BannerID:   b.ID,
			BannerType: b.Config.Type,
			ItemID:     p.ItemID,
			Rarity:     p.Rarity,
			PulledAt:   now.UTC(),
		}
		items[i] = domain.PulledItem{ItemID: p.ItemID, Rarity: p.Rarity}
	}

	if err := s.repo.SaveWithHistory(ctx, playerID, info, records); err != nil {
		s.cache.Invalidate(playerID)
		metrics.RecordStoreError(metrics.OperationSave)
		log.Error(LogMsgSaveFailed, "player_id", playerID, "banner_id", b.ID, "error", err)
		return nil, err
	}
	s.cache.Set(playerID, info)

	bannerType := string(b.Config.Type)
	for _, p := range pulls {
		metrics.RecordItem(bannerType, p.Rarity, string(p.Outcome))
	}
	metrics.WishPullDuration.WithLabelValues(bannerType).Observe(time.Since(start).Seconds())

	state := *gacha.BannerInfo(info, b.Config.Type)
	log.Info(LogMsgPullCompleted,
		"player_id", playerID,
		"banner_id", b.ID,
		"times", times,
		"rarities", rarities(pulls),
		"pity5", state.Pity5,
		"total_pulls", state.TotalPulls)

	return &domain.PullResult{
		PlayerID:   playerID,
		BannerID:   b.ID,
		BannerType: b.Config.Type,
		Items:      items,
		State:      state,
	}, nil
}

// SetWishTarget picks the epitomized item of a weapon banner. itemID 0 clears the target.
// Changing the target forfeits accumulated fate points.
func (s *service) SetWishTarget(ctx context.Context, playerID, bannerID string, itemID int) (*domain.PlayerBannerState, error) {
	if !s.begin() {
		return nil, domain.ErrShuttingDown
	}
	defer s.wg.Done()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return nil, domain.ErrPlayerIDRequired
	}

	b, err := s.banners.Get(bannerID)
	if err != nil {
		return nil, err
	}
	if !b.Config.HasEpitomized() {
		return nil, fmt.Errorf("%w: %s", domain.ErrEpitomizedDisabled, b.ID)
	}
	if itemID != 0 && !b.Config.IsRateUp(gacha.Rarity5, itemID) {
		return nil, fmt.Errorf("%w: %d is not a featured 5-star of %s", domain.ErrInvalidWishTarget, itemID, b.ID)
	}

	unlock, err := s.locks.Lock(ctx, playerID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	info, err := s.loadInfo(ctx, playerID)
	if err != nil {
		return nil, err
	}

	st := gacha.BannerInfo(info, b.Config.Type)
	if st.WishItemID != itemID {
		st.WishItemID = itemID
		st.FailedChosenItemPulls = 0
	}

	if err := s.repo.SaveGachaInfo(ctx, playerID, info); err != nil {
		s.cache.Invalidate(playerID)
		metrics.RecordStoreError(metrics.OperationSave)
		return nil, err
	}
	s.cache.Set(playerID, info)

	logger.FromContext(ctx).Info(LogMsgWishTargetSet, "player_id", playerID, "banner_id", b.ID, "item_id", itemID)
	out := *st
	return &out, nil
}

// GetInfo returns the player's counters for every banner type.
func (s *service) GetInfo(ctx context.Context, playerID string) (*domain.PlayerGachaInfo, error) {
	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return nil, domain.ErrPlayerIDRequired
	}
	return s.loadInfo(ctx, playerID)
}

// GetHistory returns the player's newest wish records.
func (s *service) GetHistory(ctx context.Context, playerID string, bannerType domain.BannerType, limit int) ([]domain.WishRecord, error) {
	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return nil, domain.ErrPlayerIDRequired
	}
	if bannerType != "" {
		bt, err := domain.ParseBannerType(string(bannerType))
		if err != nil {
			return nil, err
		}
		bannerType = bt
	}
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	limit = min(limit, MaxHistoryLimit)

	records, err := s.repo.GetHistory(ctx, playerID, bannerType, limit)
	if err != nil {
		metrics.RecordStoreError(metrics.OperationLoad)
		return nil, err
	}
	return records, nil
}

// ListBanners describes every loaded banner.
func (s *service) ListBanners(_ context.Context) []domain.BannerSummary {
	now := s.now()
	list := s.banners.List()
	out := make([]domain.BannerSummary, 0, len(list))
	for _, b := range list {
		out = append(out, b.Summary(now))
	}
	return out
}

// Simulate runs a Monte Carlo estimate of a banner's odds. A zero seed draws from the
// nondeterministic source.
func (s *service) Simulate(ctx context.Context, bannerID string, params SimulationParams, seed uint64) (*SimulationStats, error) {
	b, err := s.banners.Get(bannerID)
	if err != nil {
		return nil, err
	}

	rng := gacha.DefaultSource()
	if seed != 0 {
		rng = gacha.NewSeededSource(seed)
	}
	stats, err := Simulate(ctx, b.Config, params, rng)
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgSimulationDone,
		"banner_id", b.ID, "trials", params.Trials, "pulls", params.PullsPerTrial, "mean_five_stars", stats.FiveStars.Mean)
	return stats, nil
}

func (s *service) CacheStats() CacheStats {
	return s.cache.Stats()
}

// Shutdown rejects new writes and waits for in-flight ones to finish or ctx to expire.
func (s *service) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	s.closing = true
	s.mu.Unlock()

	log := logger.FromContext(ctx)
	log.Info(LogMsgShutdownWaiting)

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		s.cache.Clear()
		log.Info(LogMsgShutdownCompleted)
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// begin registers an in-flight write unless shutdown has started.
func (s *service) begin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closing {
		return false
	}
	s.wg.Add(1)
	return true
}

// resetStaleTarget drops a wish target the banner does not feature. Targets are stored per
// banner type, so one picked on an earlier weapon banner would otherwise carry its fate
// points over.
func resetStaleTarget(state *domain.PlayerBannerState, cfg *gacha.BannerConfig) {
	if state.WishItemID == 0 || cfg.IsRateUp(gacha.Rarity5, state.WishItemID) {
		return
	}
	state.WishItemID = 0
	state.FailedChosenItemPulls = 0
}

// loadInfo returns a private copy of the player's info, from cache when possible.
func (s *service) loadInfo(ctx context.Context, playerID string) (*domain.PlayerGachaInfo, error) {
	if info, ok := s.cache.Get(playerID); ok {
		logger.FromContext(ctx).Debug(LogMsgCacheHit, "player_id", playerID)
		return info, nil
	}

	info, err := s.repo.GetGachaInfo(ctx, playerID)
	if err != nil {
		metrics.RecordStoreError(metrics.OperationLoad)
		return nil, err
	}
	logger.FromContext(ctx).Debug(LogMsgStateLoaded, "player_id", playerID)

	info = info.Clone()
	s.cache.Set(playerID, info)
	return info, nil
}

func rarities(pulls []gacha.Pull) []int {
	out := make([]int, len(pulls))
	for i, p := range pulls {
		out[i] = p.Rarity
	}
	return out
}

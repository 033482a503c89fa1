// Package memory is a process-local repository.Wish used by tests and the memory backend.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/WishBot_Go/internal/domain"
)

// WishStore keeps state and history in maps guarded by one mutex.
type WishStore struct {
	mu      sync.RWMutex
	info    map[string]domain.PlayerGachaInfo
	history map[string][]domain.WishRecord
}

// NewWishStore creates an empty store.
func NewWishStore() *WishStore {
	return &WishStore{
		info:    make(map[string]domain.PlayerGachaInfo),
		history: make(map[string][]domain.WishRecord),
	}
}

// Ping always succeeds.
func (s *WishStore) Ping(context.Context) error { return nil }

// GetGachaInfo returns a copy of the stored counters or a zero value.
func (s *WishStore) GetGachaInfo(_ context.Context, playerID string) (*domain.PlayerGachaInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	info, ok := s.info[playerID]
	if !ok {
		return domain.NewPlayerGachaInfo(), nil
	}
	return &info, nil
}

// SaveGachaInfo stores a copy of info.
func (s *WishStore) SaveGachaInfo(_ context.Context, playerID string, info *domain.PlayerGachaInfo) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.info[playerID] = *info
	return nil
}

// AppendHistory appends records to their players' logs.
func (s *WishStore) AppendHistory(_ context.Context, records []domain.WishRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.appendLocked(records)
	return nil
}

// SaveWithHistory stores state and history under one lock.
func (s *WishStore) SaveWithHistory(_ context.Context, playerID string, info *domain.PlayerGachaInfo, records []domain.WishRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.info[playerID] = *info
	s.appendLocked(records)
	return nil
}

// GetHistory returns the newest records first.
func (s *WishStore) GetHistory(_ context.Context, playerID string, bannerType domain.BannerType, limit int) ([]domain.WishRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	log := s.history[playerID]
	out := make([]domain.WishRecord, 0, min(limit, len(log)))
	for i := len(log) - 1; i >= 0 && len(out) < limit; i-- {
		if bannerType == "" || log[i].BannerType == bannerType {
			out = append(out, log[i])
		}
	}
	return out, nil
}

func (s *WishStore) appendLocked(records []domain.WishRecord) {
	now := time.Now().UTC()
	for _, rec := range records {
		if rec.PulledAt.IsZero() {
			rec.PulledAt = now
		}
		s.history[rec.PlayerID] = append(s.history[rec.PlayerID], rec)
	}
}

package repository

import (
	"context"

	"github.com/osse101/WishBot_Go/internal/domain"
)

// Wish defines the data access required by the wish service
type Wish interface {
	// GetGachaInfo returns a zero-initialized value for players never seen before.
	GetGachaInfo(ctx context.Context, playerID string) (*domain.PlayerGachaInfo, error)
	SaveGachaInfo(ctx context.Context, playerID string, info *domain.PlayerGachaInfo) error

	AppendHistory(ctx context.Context, records []domain.WishRecord) error
	// GetHistory returns newest records first. An empty bannerType matches every type.
	GetHistory(ctx context.Context, playerID string, bannerType domain.BannerType, limit int) ([]domain.WishRecord, error)

	// SaveWithHistory stores the state and appends the records atomically.
	SaveWithHistory(ctx context.Context, playerID string, info *domain.PlayerGachaInfo, records []domain.WishRecord) error

	Ping(ctx context.Context) error
}

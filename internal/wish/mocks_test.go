package wish

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/WishBot_Go/internal/domain"
)

// MockRepository implements repository.Wish for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetGachaInfo(ctx context.Context, playerID string) (*domain.PlayerGachaInfo, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PlayerGachaInfo), args.Error(1)
}

func (m *MockRepository) SaveGachaInfo(ctx context.Context, playerID string, info *domain.PlayerGachaInfo) error {
	args := m.Called(ctx, playerID, info)
	return args.Error(0)
}

func (m *MockRepository) AppendHistory(ctx context.Context, records []domain.WishRecord) error {
	args := m.Called(ctx, records)
	return args.Error(0)
}

func (m *MockRepository) GetHistory(ctx context.Context, playerID string, bannerType domain.BannerType, limit int) ([]domain.WishRecord, error) {
	args := m.Called(ctx, playerID, bannerType, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WishRecord), args.Error(1)
}

func (m *MockRepository) SaveWithHistory(ctx context.Context, playerID string, info *domain.PlayerGachaInfo, records []domain.WishRecord) error {
	args := m.Called(ctx, playerID, info, records)
	return args.Error(0)
}

func (m *MockRepository) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// maxSource always rolls the top of the range.
type maxSource struct{}

func (maxSource) IntN(n int) int { return n - 1 }

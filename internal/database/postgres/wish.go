package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/WishBot_Go/internal/domain"
)

// WishRepository implements repository.Wish for PostgreSQL
type WishRepository struct {
	db *pgxpool.Pool
}

// NewWishRepository creates a new WishRepository
func NewWishRepository(db *pgxpool.Pool) *WishRepository {
	return &WishRepository{db: db}
}

// Ping checks database connectivity
func (r *WishRepository) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}

// GetGachaInfo loads a player's counters. Unknown players get a zero value.
func (r *WishRepository) GetGachaInfo(ctx context.Context, playerID string) (*domain.PlayerGachaInfo, error) {
	var raw []byte
	err := r.db.QueryRow(ctx, queryGetGachaInfo, playerID).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.NewPlayerGachaInfo(), nil
		}
		return nil, fmt.Errorf("%w: failed to get gacha info: %w", domain.ErrDatabaseError, err)
	}

	info := domain.NewPlayerGachaInfo()
	if err := json.Unmarshal(raw, info); err != nil {
		return nil, fmt.Errorf("%w: failed to decode gacha info: %w", domain.ErrDatabaseError, err)
	}
	return info, nil
}

// SaveGachaInfo upserts a player's counters
func (r *WishRepository) SaveGachaInfo(ctx context.Context, playerID string, info *domain.PlayerGachaInfo) error {
	raw, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("failed to encode gacha info: %w", err)
	}
	if _, err := r.db.Exec(ctx, queryUpsertGachaInfo, playerID, raw); err != nil {
		return fmt.Errorf("%w: failed to save gacha info: %w", domain.ErrDatabaseError, err)
	}
	return nil
}

// AppendHistory bulk-inserts wish records
func (r *WishRepository) AppendHistory(ctx context.Context, records []domain.WishRecord) error {
	if len(records) == 0 {
		return nil
	}
	if _, err := r.db.CopyFrom(ctx, wishHistoryTable, wishHistoryColumns, historyRows(records)); err != nil {
		return fmt.Errorf("%w: failed to append wish history: %w", domain.ErrDatabaseError, err)
	}
	return nil
}

// GetHistory returns the newest records first
func (r *WishRepository) GetHistory(ctx context.Context, playerID string, bannerType domain.BannerType, limit int) ([]domain.WishRecord, error) {
	rows, err := r.db.Query(ctx, queryGetHistory, playerID, string(bannerType), limit)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get wish history: %w", domain.ErrDatabaseError, err)
	}
	defer rows.Close()

	records := make([]domain.WishRecord, 0, limit)
	for rows.Next() {
		var (
			rec        domain.WishRecord
			bannerType string
			pulledAt   time.Time
		)
		if err := rows.Scan(&rec.PlayerID, &rec.BannerID, &bannerType, &rec.ItemID, &rec.Rarity, &pulledAt); err != nil {
			return nil, fmt.Errorf("%w: failed to scan wish history: %w", domain.ErrDatabaseError, err)
		}
		rec.BannerType = domain.BannerType(bannerType)
		rec.PulledAt = pulledAt.UTC()
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: failed to read wish history: %w", domain.ErrDatabaseError, err)
	}
	return records, nil
}

// SaveWithHistory stores state and history in one transaction
func (r *WishRepository) SaveWithHistory(ctx context.Context, playerID string, info *domain.PlayerGachaInfo, records []domain.WishRecord) error {
	raw, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("failed to encode gacha info: %w", err)
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%w: failed to begin transaction: %w", domain.ErrDatabaseError, err)
	}
	defer SafeRollback(ctx, tx)

	if _, err := tx.Exec(ctx, queryUpsertGachaInfo, playerID, raw); err != nil {
		return fmt.Errorf("%w: failed to save gacha info: %w", domain.ErrDatabaseError, err)
	}
	if len(records) > 0 {
		if _, err := tx.CopyFrom(ctx, wishHistoryTable, wishHistoryColumns, historyRows(records)); err != nil {
			return fmt.Errorf("%w: failed to append wish history: %w", domain.ErrDatabaseError, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%w: failed to commit transaction: %w", domain.ErrDatabaseError, err)
	}
	return nil
}

func historyRows(records []domain.WishRecord) pgx.CopyFromSource {
	rows := make([][]any, len(records))
	for i, rec := range records {
		pulledAt := rec.PulledAt
		if pulledAt.IsZero() {
			pulledAt = time.Now().UTC()
		}
		rows[i] = []any{rec.PlayerID, rec.BannerID, string(rec.BannerType), rec.ItemID, rec.Rarity, pulledAt}
	}
	return pgx.CopyFromRows(rows)
}

// Package sqlite stores wish state in a local SQLite file for the CLI and single-node deployments.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver.

	"github.com/osse101/WishBot_Go/internal/domain"
	"github.com/osse101/WishBot_Go/internal/logger"
)

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

// WishStore implements repository.Wish on SQLite
type WishStore struct {
	db *sql.DB
}

// Open opens or creates the database at path and applies migrations.
func Open(path string) (*WishStore, error) {
	if path != MemoryPath {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, err
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// one writer; also keeps a :memory: database on a single connection
	db.SetMaxOpenConns(1)

	s := &WishStore{db: db}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: migrate sqlite: %w", domain.ErrDatabaseError, err)
	}
	return s, nil
}

// Close closes the underlying database.
func (s *WishStore) Close() error {
	return s.db.Close()
}

func (s *WishStore) migrate() error {
	stmts := []string{
		`PRAGMA journal_mode = WAL;`,
		`CREATE TABLE IF NOT EXISTS player_gacha_info (
			player_id TEXT PRIMARY KEY,
			info TEXT NOT NULL,
			updated_at TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS wish_history (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			player_id TEXT NOT NULL,
			banner_id TEXT NOT NULL,
			banner_type TEXT NOT NULL,
			item_id INTEGER NOT NULL,
			rarity INTEGER NOT NULL CHECK (rarity BETWEEN 3 AND 5),
			pulled_at TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_wish_history_player_type ON wish_history(player_id, banner_type, id);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// Ping checks the database handle.
func (s *WishStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// GetGachaInfo loads a player's counters. Unknown players get a zero value.
func (s *WishStore) GetGachaInfo(ctx context.Context, playerID string) (*domain.PlayerGachaInfo, error) {
	var raw string
	err := s.db.QueryRowContext(ctx, `SELECT info FROM player_gacha_info WHERE player_id = ?`, playerID).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NewPlayerGachaInfo(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get gacha info: %w", domain.ErrDatabaseError, err)
	}

	info := domain.NewPlayerGachaInfo()
	if err := json.Unmarshal([]byte(raw), info); err != nil {
		return nil, fmt.Errorf("%w: failed to decode gacha info: %w", domain.ErrDatabaseError, err)
	}
	return info, nil
}

// SaveGachaInfo upserts a player's counters.
func (s *WishStore) SaveGachaInfo(ctx context.Context, playerID string, info *domain.PlayerGachaInfo) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		return upsertInfo(ctx, tx, playerID, info)
	})
}

// AppendHistory inserts wish records.
func (s *WishStore) AppendHistory(ctx context.Context, records []domain.WishRecord) error {
	if len(records) == 0 {
		return nil
	}
	return s.inTx(ctx, func(tx *sql.Tx) error {
		return insertHistory(ctx, tx, records)
	})
}

// SaveWithHistory stores state and history in one transaction.
func (s *WishStore) SaveWithHistory(ctx context.Context, playerID string, info *domain.PlayerGachaInfo, records []domain.WishRecord) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		if err := upsertInfo(ctx, tx, playerID, info); err != nil {
			return err
		}
		return insertHistory(ctx, tx, records)
	})
}

// GetHistory returns the newest records first.
func (s *WishStore) GetHistory(ctx context.Context, playerID string, bannerType domain.BannerType, limit int) ([]domain.WishRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT player_id, banner_id, banner_type, item_id, rarity, pulled_at
		 FROM wish_history
		 WHERE player_id = ? AND (? = '' OR banner_type = ?)
		 ORDER BY id DESC
		 LIMIT ?`,
		playerID, string(bannerType), string(bannerType), limit)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get wish history: %w", domain.ErrDatabaseError, err)
	}
	defer rows.Close()

	var records []domain.WishRecord
	for rows.Next() {
		var (
			rec      domain.WishRecord
			bt       string
			pulledAt string
		)
		if err := rows.Scan(&rec.PlayerID, &rec.BannerID, &bt, &rec.ItemID, &rec.Rarity, &pulledAt); err != nil {
			return nil, fmt.Errorf("%w: failed to scan wish history: %w", domain.ErrDatabaseError, err)
		}
		rec.BannerType = domain.BannerType(bt)
		if rec.PulledAt, err = time.Parse(time.RFC3339Nano, pulledAt); err != nil {
			return nil, fmt.Errorf("%w: bad pulled_at %q: %w", domain.ErrDatabaseError, pulledAt, err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: failed to read wish history: %w", domain.ErrDatabaseError, err)
	}
	return records, nil
}

func (s *WishStore) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to begin transaction: %w", domain.ErrDatabaseError, err)
	}
	if err := fn(tx); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			logger.FromContext(ctx).Error("Failed to rollback transaction", "error", rerr)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: failed to commit transaction: %w", domain.ErrDatabaseError, err)
	}
	return nil
}

func upsertInfo(ctx context.Context, tx *sql.Tx, playerID string, info *domain.PlayerGachaInfo) error {
	raw, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("failed to encode gacha info: %w", err)
	}
	_, err = tx.ExecContext(ctx,
		`INSERT INTO player_gacha_info (player_id, info, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(player_id) DO UPDATE SET info = excluded.info, updated_at = excluded.updated_at`,
		playerID, string(raw), time.Now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("%w: failed to save gacha info: %w", domain.ErrDatabaseError, err)
	}
	return nil
}

func insertHistory(ctx context.Context, tx *sql.Tx, records []domain.WishRecord) error {
	if len(records) == 0 {
		return nil
	}
	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO wish_history (player_id, banner_id, banner_type, item_id, rarity, pulled_at) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("%w: failed to prepare history insert: %w", domain.ErrDatabaseError, err)
	}
	defer stmt.Close()

	for _, rec := range records {
		pulledAt := rec.PulledAt
		if pulledAt.IsZero() {
			pulledAt = time.Now()
		}
		if _, err := stmt.ExecContext(ctx, rec.PlayerID, rec.BannerID, string(rec.BannerType), rec.ItemID, rec.Rarity,
			pulledAt.UTC().Format(time.RFC3339Nano)); err != nil {
			return fmt.Errorf("%w: failed to append wish history: %w", domain.ErrDatabaseError, err)
		}
	}
	return nil
}

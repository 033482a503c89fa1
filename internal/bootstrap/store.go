package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/osse101/WishBot_Go/internal/config"
	"github.com/osse101/WishBot_Go/internal/database"
	"github.com/osse101/WishBot_Go/internal/database/memory"
	"github.com/osse101/WishBot_Go/internal/database/postgres"
	"github.com/osse101/WishBot_Go/internal/database/sqlite"
	"github.com/osse101/WishBot_Go/internal/repository"
)

const (
	dbMaxConnIdleTime = 5 * time.Minute
	dbMaxConnLifetime = 30 * time.Minute
)

// Store is the opened persistence backend and its release function
type Store struct {
	Wish  repository.Wish
	Close func() error
}

// OpenStore connects the backend named by STORAGE_BACKEND. Postgres is migrated
// to the latest schema before use.
func OpenStore(ctx context.Context, cfg *config.Config) (*Store, error) {
	switch cfg.StorageBackend {
	case config.StorageBackendPostgres:
		pool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, dbMaxConnIdleTime, dbMaxConnLifetime)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := database.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
		slog.Info(LogMsgStoreOpened, "backend", cfg.StorageBackend, "host", cfg.DBHost, "name", cfg.DBName)
		return &Store{
			Wish:  postgres.NewWishRepository(pool),
			Close: func() error { pool.Close(); return nil },
		}, nil

	case config.StorageBackendSQLite:
		st, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite store: %w", err)
		}
		slog.Info(LogMsgStoreOpened, "backend", cfg.StorageBackend, "path", cfg.SQLitePath)
		return &Store{Wish: st, Close: st.Close}, nil

	case config.StorageBackendMemory:
		slog.Warn(LogMsgStoreOpened, "backend", cfg.StorageBackend, "note", "state is lost on restart")
		return &Store{Wish: memory.NewWishStore(), Close: func() error { return nil }}, nil
	}
	return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
}

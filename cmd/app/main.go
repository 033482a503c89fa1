package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/WishBot_Go/internal/banner"
	"github.com/osse101/WishBot_Go/internal/bootstrap"
	"github.com/osse101/WishBot_Go/internal/config"
	"github.com/osse101/WishBot_Go/internal/gacha"
	"github.com/osse101/WishBot_Go/internal/server"
	"github.com/osse101/WishBot_Go/internal/wish"

	_ "github.com/osse101/WishBot_Go/docs"
)

// @title WishBot API
// @version 1.0
// @description Gacha wish draws with pity, featured guarantees and fate points.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}
	bootstrap.SetupLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := bootstrap.OpenStore(ctx, cfg)
	if err != nil {
		slog.Error("Failed to open store", "error", err)
		os.Exit(1)
	}

	catalog := banner.NewCatalog()
	if cfg.BannerDir != "" {
		err = catalog.Load(cfg.BannerDir)
	} else {
		err = catalog.LoadFS(banner.Defaults())
	}
	if err != nil {
		slog.Error("Failed to load banners", "dir", cfg.BannerDir, "error", err)
		_ = store.Close()
		os.Exit(1)
	}
	slog.Info(bootstrap.LogMsgBannersLoaded, "count", catalog.Len(), "dir", cfg.BannerDir)

	rng := gacha.DefaultSource()
	if cfg.RNGSeed != 0 {
		slog.Warn(bootstrap.LogMsgSeededRNG, "seed", cfg.RNGSeed)
		rng = gacha.NewSeededSource(cfg.RNGSeed)
	}

	wishService := wish.NewService(store.Wish, catalog, gacha.NewEngine(rng), cfg.PlayerCacheSize, cfg.PlayerCacheTTL)

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		Store:          store.Wish,
		Banners:        catalog,
		WishService:    wishService,
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil {
			slog.Error("Server failed", "error", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, srv, store)
}

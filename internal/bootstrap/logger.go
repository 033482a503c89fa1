package bootstrap

import (
	"log/slog"

	"github.com/osse101/WishBot_Go/internal/config"
	"github.com/osse101/WishBot_Go/internal/logger"
)

// SetupLogger initializes the default slog logger from the app configuration and
// reports any non-fatal configuration warnings.
func SetupLogger(cfg *config.Config) *slog.Logger {
	// Source locations only in dev
	addSource := cfg.Environment == "dev" || cfg.Environment == "development"

	log := logger.InitLogger(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		addSource,
	))

	log.Info(LogMsgStartingWishBot,
		"environment", cfg.Environment,
		"log_level", cfg.LogLevel,
		"version", cfg.Version)
	log.Debug(LogMsgConfigurationLoaded,
		"storage_backend", cfg.StorageBackend,
		"db_host", cfg.DBHost,
		"db_name", cfg.DBName,
		"port", cfg.Port,
		"banner_dir", cfg.BannerDir)

	for _, w := range cfg.Warnings() {
		log.Warn(LogMsgConfigWarning, "warning", w)
	}
	return log
}

package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	EnvSchemaVersion string `env:"ENV_SCHEMA_VERSION"`

	Port        int    `env:"PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"text"`
	Environment string `env:"ENVIRONMENT" envDefault:"dev"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"wishbot"`
	Version     string `env:"VERSION" envDefault:"dev"`
	APIKey      string `env:"API_KEY"` // API key for authentication

	TrustedProxies []string `env:"TRUSTED_PROXIES" envSeparator:","`

	StorageBackend string `env:"STORAGE_BACKEND" envDefault:"postgres"`
	DBUser         string `env:"DB_USER" envDefault:"postgres"`
	DBPassword     string `env:"DB_PASSWORD" envDefault:"postgres"`
	DBHost         string `env:"DB_HOST" envDefault:"localhost"`
	DBPort         string `env:"DB_PORT" envDefault:"5432"`
	DBName         string `env:"DB_NAME" envDefault:"wishbot"`
	DBMaxConns     int    `env:"DB_MAX_CONNS" envDefault:"20"`
	SQLitePath     string `env:"SQLITE_PATH" envDefault:"wishbot.db"`

	BannerDir       string        `env:"BANNER_DIR"` // empty uses the built-in banners
	PlayerCacheSize int           `env:"PLAYER_CACHE_SIZE" envDefault:"1024"`
	PlayerCacheTTL  time.Duration `env:"PLAYER_CACHE_TTL" envDefault:"10m"`
	RNGSeed         uint64        `env:"RNG_SEED" envDefault:"0"` // 0 = nondeterministic
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"15s"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("invalid environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports every configuration problem at once
func (c *Config) Validate() error {
	var errs []error

	if c.APIKey == "" {
		errs = append(errs, errors.New("API_KEY environment variable must be set for security"))
	}
	if c.Port < 1 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT must be in [1,65535], got %d", c.Port))
	}
	if c.EnvSchemaVersion != "" && c.EnvSchemaVersion != ExpectedEnvSchemaVersion {
		errs = append(errs, fmt.Errorf("ENV_SCHEMA_VERSION mismatch: expected %s, got %s - your .env file may be outdated",
			ExpectedEnvSchemaVersion, c.EnvSchemaVersion))
	}

	switch c.StorageBackend {
	case StorageBackendPostgres:
		if c.DBMaxConns < 1 {
			errs = append(errs, fmt.Errorf("DB_MAX_CONNS must be positive, got %d", c.DBMaxConns))
		}
	case StorageBackendSQLite:
		if c.SQLitePath == "" {
			errs = append(errs, errors.New("SQLITE_PATH must be set for the sqlite backend"))
		}
	case StorageBackendMemory:
	default:
		errs = append(errs, fmt.Errorf("STORAGE_BACKEND must be one of %s, %s, %s; got %q",
			StorageBackendPostgres, StorageBackendSQLite, StorageBackendMemory, c.StorageBackend))
	}

	if c.PlayerCacheSize < 0 {
		errs = append(errs, fmt.Errorf("PLAYER_CACHE_SIZE must not be negative, got %d", c.PlayerCacheSize))
	}

	return errors.Join(errs...)
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     c.DBHost + ":" + c.DBPort,
		Path:     c.DBName,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWarnings(t *testing.T) {
	t.Run("clean config", func(t *testing.T) {
		cfg := &Config{EnvSchemaVersion: ExpectedEnvSchemaVersion, StorageBackend: StorageBackendPostgres, APIKey: "k", DBPassword: "secret"}
		assert.Empty(t, cfg.Warnings())
	})

	t.Run("missing schema version", func(t *testing.T) {
		cfg := &Config{StorageBackend: StorageBackendSQLite, APIKey: "k"}
		warnings := cfg.Warnings()
		assert.Len(t, warnings, 1)
		assert.Contains(t, warnings[0], "ENV_SCHEMA_VERSION is not set")
	})

	t.Run("insecure example values", func(t *testing.T) {
		cfg := &Config{
			EnvSchemaVersion: ExpectedEnvSchemaVersion,
			StorageBackend:   StorageBackendPostgres,
			DBPassword:       exampleDBPassword,
			APIKey:           exampleAPIKey,
		}
		warnings := cfg.Warnings()
		if assert.Len(t, warnings, 2, "Should have 2 warnings") {
			assert.Contains(t, warnings[0], "DB_PASSWORD")
			assert.Contains(t, warnings[1], "API_KEY")
		}
	})

	t.Run("example db password ignored off postgres", func(t *testing.T) {
		cfg := &Config{EnvSchemaVersion: ExpectedEnvSchemaVersion, StorageBackend: StorageBackendSQLite, DBPassword: exampleDBPassword, APIKey: "k"}
		assert.Empty(t, cfg.Warnings())
	})

	t.Run("memory backend", func(t *testing.T) {
		cfg := &Config{EnvSchemaVersion: ExpectedEnvSchemaVersion, StorageBackend: StorageBackendMemory, APIKey: "k"}
		assert.Len(t, cfg.Warnings(), 1)
	})
}

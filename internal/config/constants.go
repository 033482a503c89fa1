package config

import "time"

// ExpectedEnvSchemaVersion is the .env layout this build understands
const ExpectedEnvSchemaVersion = "1.0"

// Storage backends
const (
	StorageBackendPostgres = "postgres"
	StorageBackendSQLite   = "sqlite"
	StorageBackendMemory   = "memory"
)

// Defaults shared with the CLI
const (
	DefaultPort            = 8080
	DefaultSQLitePath      = "wishbot.db"
	DefaultShutdownTimeout = 15 * time.Second
)

// Example values shipped in .env.example
const (
	exampleDBPassword = "change_this_secure_password"
	exampleAPIKey     = "generate_with_openssl_rand_hex_32"
)

package config

// Warnings returns non-fatal issues, like example secrets left in place
func (c *Config) Warnings() []string {
	var warnings []string

	if c.EnvSchemaVersion == "" {
		warnings = append(warnings, "ENV_SCHEMA_VERSION is not set - please update your .env file to include this field (expected: "+ExpectedEnvSchemaVersion+")")
	}

	if c.StorageBackend == StorageBackendPostgres && c.DBPassword == exampleDBPassword {
		warnings = append(warnings, "DB_PASSWORD appears to be using the example value - please use a secure password")
	}

	if c.APIKey == exampleAPIKey {
		warnings = append(warnings, "API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32")
	}

	if c.StorageBackend == StorageBackendMemory {
		warnings = append(warnings, "STORAGE_BACKEND=memory keeps wish state in process memory only")
	}

	return warnings
}

// Package config provides configuration management for the vault
// organization server.
//
// Configuration is loaded from an optional YAML file and overridden by
// environment variables, and every attribute tracks where its value came
// from (default, file, or env) for the config show command.
//
// # Key Configuration Options
//
//   - DATABASE_URL: database connection (env only)
//   - VAULTORG_CONFIG_PATH: directory containing vaultorg.yml
//   - VAULTORG_FLAG_FILE: feature flag file path
//   - VAULTORG_LOG_LEVEL: set to "debug" for SQL query logging
package config

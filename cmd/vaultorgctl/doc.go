// Package main provides vaultorgctl, the CLI for the vaultorg collection
// access server.
//
// The server resolves which vault collections and ciphers an organization
// member may see and edit, under both the legacy access-all permission model
// and the flexible per-collection grant model.
//
// # Quick Start
//
//	# Run database migrations
//	vaultorgctl db migrate
//
//	# Start the server
//	vaultorgctl server
//
// # Environment Variables
//
//   - DATABASE_URL: PostgreSQL connection string
//   - VAULTORG_JWT_SECRET: HMAC secret for API bearer tokens
//   - VAULTORG_CONFIG_PATH: Config directory (default: /etc/vaultorg/config)
//   - VAULTORG_FLAG_FILE: Feature flag file path
//   - VAULTORG_LOG_LEVEL: Log level (debug enables SQL logging)
//   - PORT: Server port (default: 8000)
package main

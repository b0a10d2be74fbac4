// Package db embeds the SQL migrations so production builds can run them
// without shipping the migration files separately.
package db

import "embed"

// Migrations holds the SQL migration files under db/migrations.
//
//go:embed migrations
var Migrations embed.FS

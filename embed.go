// Package orgdash exposes build-time embedded assets shared by the
// subcommands, currently the SQL migrations applied by the migrate command.
package orgdash

import "embed"

// Migrations holds the goose SQL migrations for the PostgreSQL backend.
//
//go:embed migrations/*.sql
var Migrations embed.FS

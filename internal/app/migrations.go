package app

import (
	"embed"
	"io/fs"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// MigrationsFS exposes the embedded migration files to other entrypoints.
func MigrationsFS() fs.FS { return migrationsFS }

// Package taxtoken holds assets shared by the binaries of the module.
package taxtoken

import "embed"

// Migrations contains the goose SQL migrations of the postgres storage.
//
//go:embed migrations/*.sql
var Migrations embed.FS

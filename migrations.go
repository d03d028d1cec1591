// Package marketplace holds assets embedded into the binaries of this module.
package marketplace

import "embed"

// Migrations contains the goose SQL migrations under migrations/.
//
//go:embed migrations/*.sql
var Migrations embed.FS

// Package migrations embeds the versioned SQL schema files.
package migrations

import "embed"

// FS holds one directory per database engine, each with NNN_name.sql files.
//
//go:embed sqlite/*.sql
var FS embed.FS

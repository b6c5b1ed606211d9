package migrations

import "embed"

// FS embeds the schema migration files in this directory so the binary
// can migrate its own database on startup.
//
//go:embed *.sql
var FS embed.FS

// Version is the schema version the application expects.
const Version = 1

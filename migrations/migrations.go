// AngelaMos | 2026
// migrations.go

// Package migrations embeds the SQL schema so the binary can bring a fresh
// database up to date on start.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS

// Package migrations embeds the PostgreSQL schema migrations so the binary can run them
// without a migrations directory next to it.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS

// Package migrations embeds the schema migration files so the server can
// apply them at startup without shipping loose SQL alongside the binary.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS

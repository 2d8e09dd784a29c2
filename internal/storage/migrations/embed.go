// Package migrations embeds the goose migrations that bootstrap the slots
// table of the record store.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS

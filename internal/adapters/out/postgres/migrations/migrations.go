// Package migrations embeds the goose SQL migrations of the record store.
package migrations

import "embed"

// FS holds the *.sql files, applied in file name order.
//
//go:embed *.sql
var FS embed.FS

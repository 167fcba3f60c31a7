// Package migrations embeds the SQL files run by golang-migrate at startup.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS

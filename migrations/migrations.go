// Package migrations embeds the SQL schema migrations so they can be
// applied at startup and from the integration test suite.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS

// Package maike embeds the database migrations shipped with the service.
package maike

import "embed"

// Migrations holds the goose SQL migrations under migrations/.
//
//go:embed migrations/*.sql
var Migrations embed.FS

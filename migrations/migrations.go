// Package migrations embeds the schema DDL applied at startup when the
// Postgres backend is selected. The schema is a single table, so the
// statements are idempotent and run directly instead of through a migration
// framework.
package migrations

import _ "embed"

//go:embed 001_create_users.sql
var CreateUsers string

// Statements returns the DDL to apply, in order.
func Statements() []string {
	return []string{CreateUsers}
}

// Package migrations provides embedded SQL migration files.
package migrations

import (
	"database/sql"
	"fmt"

	_ "embed"
)

//go:embed sql/001_initial.sql
var InitialSQL string

// Apply runs all migrations against the database. Statements are written to
// be idempotent, so Apply is safe to call on every startup.
func Apply(db *sql.DB) error {
	if _, err := db.Exec(InitialSQL); err != nil {
		return fmt.Errorf("apply initial schema: %w", err)
	}
	return nil
}

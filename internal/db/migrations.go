package db

import (
	"database/sql"
	"fmt"
)

// migrations is a list of SQL statements applied in order after schema creation.
// Each migration must be idempotent. Append new migrations at the end.
var migrations = []string{
	// Migration 1: listing is always newest first.
	`CREATE INDEX IF NOT EXISTS idx_items_created_at ON items(created_at DESC)`,
	// Migration 2: ownership lookups.
	`CREATE INDEX IF NOT EXISTS idx_items_user_id ON items(user_id)`,
	// Migration 3: exact-match filters.
	`CREATE INDEX IF NOT EXISTS idx_items_category_status ON items(category, status)`,
}

// Migrate ensures the schema and then applies the migrations.
func Migrate(db *sql.DB) error {
	if err := EnsureSchema(db); err != nil {
		return err
	}

	for i, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return fmt.Errorf("running migration %d: %w", i+1, err)
		}
	}

	return nil
}

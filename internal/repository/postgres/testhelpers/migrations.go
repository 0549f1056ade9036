package testhelpers

import (
	"database/sql"
	"fmt"

	"github.com/smart-jordan/migrations"
)

// ApplyMigrations applies all embedded .up.sql migrations
func ApplyMigrations(db *sql.DB) error {
	list, err := migrations.Up()
	if err != nil {
		return err
	}

	for _, m := range list {
		if _, err := db.Exec(m.SQL); err != nil {
			return fmt.Errorf("apply migration %s: %w", m.Name, err)
		}
	}

	return nil
}

// Package migrate applies embedded SQL migrations on startup.
package migrate

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"

	"github.com/Yurisurdi/flats/migrations"
)

// Up runs all pending migrations from the embedded filesystem against db.
// dir selects the migration set (migrations.RecordsDir or migrations.MediaDir).
func Up(ctx context.Context, db *sql.DB, dir string) error {
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, dir)
}

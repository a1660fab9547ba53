package postgres

import (
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// RunMigrations aplica las migraciones pendientes del directorio indicado
// usando goose sobre el driver pgx (database/sql).
func RunMigrations(dsn, dir string) error {
	db, err := goose.OpenDBWithDriver("pgx", dsn)
	if err != nil {
		return fmt.Errorf("abrir conexión de migraciones: %w", err)
	}
	defer func() { _ = db.Close() }()

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("aplicar migraciones: %w", err)
	}
	return nil
}

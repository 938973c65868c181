package db

import (
	"errors"
	"log/slog"

	"candidate-assistance/internal/pkg/errs"
	"candidate-assistance/migrations"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

// Migrate applies the embedded migrations. dsn must use the pgx5:// scheme.
// Down rolls every migration back instead.
func Migrate(dsn string, down bool) error {
	src, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return errs.Wrap(err, "failed to open embedded migrations")
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, dsn)
	if err != nil {
		return errs.Wrap(err, "failed to create migrate instance")
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if srcErr != nil || dbErr != nil {
			slog.Warn("failed to close migrate instance", "source_error", srcErr, "db_error", dbErr)
		}
	}()

	if down {
		err = m.Down()
	} else {
		err = m.Up()
	}
	if err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			slog.Info("no migrations to run")
			return nil
		}
		return errs.Wrap(err, "failed to run migrations")
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return errs.Wrap(err, "failed to read migration version")
	}
	slog.Info("migrations completed successfully", "version", version, "dirty", dirty)
	return nil
}

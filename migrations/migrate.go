package migrations

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/R-a-dio/tracklog/config"
	rerrors "github.com/R-a-dio/tracklog/errors"
	"github.com/R-a-dio/tracklog/migrations/mysql"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/rs/zerolog"
)

// New returns a migrate instance for the configured storage provider
func New(ctx context.Context, cfg config.Config) (*migrate.Migrate, error) {
	const op rerrors.Op = "migrations/New"

	var err error
	var files source.Driver
	var driver database.Driver

	storageName := cfg.Conf().Providers.Storage
	switch storageName {
	case "mariadb":
		files, driver, err = mysql.New(ctx, cfg)
	default:
		return nil, rerrors.E(op, rerrors.NoMigrations, rerrors.Info(storageName))
	}

	if err != nil {
		return nil, rerrors.E(op, err)
	}

	m, err := migrate.NewWithInstance(
		"iofs", files,
		"mysql", driver,
	)
	if err != nil {
		return nil, rerrors.E(op, err)
	}
	m.Log = migrateLog{zerolog.Ctx(ctx)}
	return m, nil
}

// Up applies all pending migrations, having nothing to apply is not an error
func Up(ctx context.Context, cfg config.Config) error {
	const op rerrors.Op = "migrations/Up"

	m, err := New(ctx, cfg)
	if err != nil {
		return rerrors.E(op, err)
	}
	defer m.Close()

	err = m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		return nil
	}
	if err != nil {
		return rerrors.E(op, err)
	}

	v, _, _ := m.Version()
	zerolog.Ctx(ctx).Info().Uint("version", v).Msg("applied migrations")
	return nil
}

// CheckVersion returns an error if the database is not on the latest version
func CheckVersion(ctx context.Context, cfg config.Config) error {
	const op rerrors.Op = "migrations/CheckVersion"

	m, err := New(ctx, cfg)
	if err != nil {
		return rerrors.E(op, err)
	}
	defer m.Close()

	current, dirty, err := m.Version()
	if err != nil {
		return rerrors.E(op, err)
	}
	if dirty {
		return rerrors.E(op, rerrors.Info("database is dirty"))
	}

	latest, err := Latest()
	if err != nil {
		return rerrors.E(op, err)
	}
	if current != latest {
		return rerrors.E(op, rerrors.Info(fmt.Sprintf("database at version %d, latest is %d", current, latest)))
	}
	return nil
}

// Migration is a single embedded migration
type Migration struct {
	Version    uint
	Identifier string
	Up         bool
	Down       bool
}

func (m Migration) Pretty() string {
	var dirs string
	if m.Up {
		dirs += "up"
	}
	if m.Down {
		if dirs != "" {
			dirs += "/"
		}
		dirs += "down"
	}
	return fmt.Sprintf("%04d %s (%s)", m.Version, m.Identifier, dirs)
}

// List returns all embedded migrations ordered by version
func List() ([]Migration, error) {
	src, err := mysql.Source()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	var res []Migration
	version, err := src.First()
	for err == nil {
		m := Migration{Version: version}
		if r, ident, err := src.ReadUp(version); err == nil {
			r.Close()
			m.Up, m.Identifier = true, ident
		}
		if r, ident, err := src.ReadDown(version); err == nil {
			r.Close()
			m.Down, m.Identifier = true, ident
		}
		res = append(res, m)

		version, err = src.Next(version)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	return res, nil
}

// Latest returns the highest version of the embedded migrations
func Latest() (uint, error) {
	migr, err := List()
	if err != nil {
		return 0, err
	}
	if len(migr) == 0 {
		return 0, rerrors.E(rerrors.NoMigrations)
	}
	return migr[len(migr)-1].Version, nil
}

// migrateLog implements migrate.Logger with zerolog
type migrateLog struct {
	logger *zerolog.Logger
}

func (ml migrateLog) Printf(format string, v ...any) {
	ml.logger.Debug().Msgf(format, v...)
}

func (ml migrateLog) Verbose() bool {
	return ml.logger.GetLevel() <= zerolog.DebugLevel
}

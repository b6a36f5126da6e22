package sqlstore

import (
	"context"
	"embed"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"

	"github.com/breeew/datas-api/pkg/sqlstore"
)

//go:embed migrations/*/*.sql
var migrations embed.FS

func dialectOf(driver string) (goose.Dialect, string, error) {
	switch driver {
	case sqlstore.DriverPostgres:
		return goose.DialectPostgres, "migrations/postgres", nil
	case sqlstore.DriverSqlite:
		return goose.DialectSQLite3, "migrations/sqlite", nil
	default:
		return "", "", fmt.Errorf("no migrations for driver %q", driver)
	}
}

// Migrator applies the embedded schema migrations of the provider's driver
// against its master pool.
func (p *Provider) Migrator() (*goose.Provider, error) {
	dialect, dir, err := dialectOf(p.Driver())
	if err != nil {
		return nil, err
	}
	fsys, err := fs.Sub(migrations, dir)
	if err != nil {
		return nil, fmt.Errorf("migrations fs: %w", err)
	}
	return goose.NewProvider(dialect, p.GetMaster().DB, fsys)
}

// Migrate brings the schema up to date.
func (p *Provider) Migrate(ctx context.Context) ([]*goose.MigrationResult, error) {
	m, err := p.Migrator()
	if err != nil {
		return nil, err
	}
	res, err := m.Up(ctx)
	if err != nil {
		return res, fmt.Errorf("goose up: %w", err)
	}
	return res, nil
}

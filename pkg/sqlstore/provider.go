package sqlstore

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

const (
	DriverPostgres = "postgres"
	DriverSqlite   = "sqlite"
)

type ConnectConfig struct {
	Driver          string
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// SqlProvider owns the master pool and the optional read replicas.
type SqlProvider struct {
	driver   string
	master   *sqlx.DB
	replicas []*sqlx.DB
	builder  sq.StatementBuilderType
}

func SetupProvider(ctx context.Context, m ConnectConfig, s ...ConnectConfig) (*SqlProvider, error) {
	if m.Driver == "" {
		m.Driver = DriverPostgres
	}

	p := &SqlProvider{
		driver:  m.Driver,
		builder: sq.StatementBuilder.PlaceholderFormat(placeholder(m.Driver)),
	}

	master, err := connect(ctx, m)
	if err != nil {
		return nil, fmt.Errorf("connect master: %w", err)
	}
	p.master = master

	for i, c := range s {
		if c.Driver == "" {
			c.Driver = m.Driver
		}
		if c.Driver != m.Driver {
			p.Close()
			return nil, fmt.Errorf("replica %d: driver %q differs from master driver %q", i, c.Driver, m.Driver)
		}
		replica, err := connect(ctx, c)
		if err != nil {
			p.Close()
			return nil, fmt.Errorf("connect replica %d: %w", i, err)
		}
		p.replicas = append(p.replicas, replica)
	}
	return p, nil
}

func connect(ctx context.Context, c ConnectConfig) (*sqlx.DB, error) {
	if c.Driver != DriverPostgres && c.Driver != DriverSqlite {
		return nil, fmt.Errorf("unsupported driver %q", c.Driver)
	}
	db, err := sqlx.Open(c.Driver, c.DSN)
	if err != nil {
		return nil, err
	}

	if c.MaxOpenConns == 0 && c.Driver == DriverSqlite {
		// sqlite allows a single writer
		c.MaxOpenConns = 1
	}
	if c.MaxOpenConns > 0 {
		db.SetMaxOpenConns(c.MaxOpenConns)
	}
	if c.MaxIdleConns > 0 {
		db.SetMaxIdleConns(c.MaxIdleConns)
	}
	if c.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(c.ConnMaxLifetime)
	}

	if err = db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func placeholder(driver string) sq.PlaceholderFormat {
	if driver == DriverPostgres {
		return sq.Dollar
	}
	return sq.Question
}

func (p *SqlProvider) Driver() string {
	return p.driver
}

// Builder returns a squirrel statement builder using the driver's placeholder format.
func (p *SqlProvider) Builder() sq.StatementBuilderType {
	return p.builder
}

func (p *SqlProvider) GetMaster() *sqlx.DB {
	return p.master
}

// GetReplica returns a random replica, or the master when none is configured.
func (p *SqlProvider) GetReplica() *sqlx.DB {
	if len(p.replicas) == 0 {
		return p.master
	}
	return p.replicas[rand.Intn(len(p.replicas))]
}

func (p *SqlProvider) Ping(ctx context.Context) error {
	return p.master.PingContext(ctx)
}

func (p *SqlProvider) Close() error {
	var errs []error
	if p.master != nil {
		errs = append(errs, p.master.Close())
	}
	for _, r := range p.replicas {
		errs = append(errs, r.Close())
	}
	return errors.Join(errs...)
}

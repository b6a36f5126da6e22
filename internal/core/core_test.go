package core

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/breeew/datas-api/pkg/sqlstore"
)

func sqliteConfig(t *testing.T) CoreConfig {
	cfg := CoreConfig{
		Log: Log{Level: "error"},
		Database: DBConfig{
			Driver:      sqlstore.DriverSqlite,
			DSN:         filepath.Join(t.TempDir(), "core.db"),
			AutoMigrate: true,
		},
	}
	cfg.SetDefaults()
	return cfg
}

func TestSetupCoreAutoMigrate(t *testing.T) {
	core, err := SetupCore(context.Background(), sqliteConfig(t))
	require.NoError(t, err)
	defer core.Close()

	total, err := core.Store().DataStore().Total(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
	assert.NotNil(t, core.HttpEngine())

	families, err := core.Metrics().Registry().Gather()
	require.NoError(t, err)
	var names []string
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "go_sql_open_connections")
}

func TestSetupCoreBadDriver(t *testing.T) {
	cfg := sqliteConfig(t)
	cfg.Database.Driver = "oracle"

	_, err := SetupCore(context.Background(), cfg)
	assert.ErrorContains(t, err, "unsupported driver")
}

func TestUseLimiter(t *testing.T) {
	core := &Core{limiter: newLimiterPool()}

	l := core.UseLimiter("127.0.0.1", 2)
	assert.True(t, l.Allow())
	assert.True(t, l.Allow())
	assert.False(t, l.Allow())

	assert.Same(t, l, core.UseLimiter("127.0.0.1", 2))
	assert.True(t, core.UseLimiter("10.0.0.1", 2).Allow())
}

func TestUseLimiterEvictsIdle(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	pool := newLimiterPool()
	pool.now = func() time.Time { return now }
	core := &Core{limiter: pool}

	first := core.UseLimiter("127.0.0.1", 1)
	assert.False(t, first.Allow() && first.Allow())
	core.UseLimiter("10.0.0.1", 1)
	assert.Equal(t, 2, pool.size())

	now = now.Add(5 * time.Minute)
	core.UseLimiter("10.0.0.1", 1)

	now = now.Add(limiterIdleTTL)
	core.UseLimiter("10.0.0.2", 1)
	assert.Equal(t, 2, pool.size())

	again := core.UseLimiter("127.0.0.1", 1)
	assert.NotSame(t, first, again)
	assert.True(t, again.Allow())
}

package sqlstore

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/breeew/datas-api/pkg/sqlstore"
	"github.com/breeew/datas-api/pkg/types"
)

func setupTestProvider(t *testing.T) *Provider {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "datas.db") + "?_pragma=busy_timeout(5000)"
	p, err := Setup(context.Background(), sqlstore.ConnectConfig{Driver: sqlstore.DriverSqlite, DSN: dsn})
	require.NoError(t, err)
	t.Cleanup(func() { p.Close() })

	_, err = p.Migrate(context.Background())
	require.NoError(t, err)
	return p
}

func sampleData() types.Data {
	return types.Data{
		EntryNumber: "A1",
		Objective:   "test",
		Message:     "hi",
		Schedule:    "mon",
		DateTime:    "2024-01-01",
		Sender:      "bob",
	}
}

func TestDataCRUD(t *testing.T) {
	ctx := context.Background()
	s := setupTestProvider(t).DataStore()

	id, err := s.Create(ctx, sampleData())
	require.NoError(t, err)
	assert.Greater(t, id, int64(0))

	got, err := s.Get(ctx, id)
	require.NoError(t, err)
	want := sampleData()
	want.DataID = id
	assert.Equal(t, want, *got)

	update := sampleData()
	update.EntryNumber = "A2"
	update.Message = ""
	n, err := s.Update(ctx, id, update)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	got, err = s.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "A2", got.EntryNumber)
	assert.Equal(t, "", got.Message)
	assert.Equal(t, id, got.DataID)

	n, err = s.Delete(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	_, err = s.Get(ctx, id)
	assert.ErrorIs(t, err, sql.ErrNoRows)

	n, err = s.Delete(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}

func TestDataCreateIgnoresID(t *testing.T) {
	ctx := context.Background()
	s := setupTestProvider(t).DataStore()

	d := sampleData()
	d.DataID = 999
	id, err := s.Create(ctx, d)
	require.NoError(t, err)
	assert.NotEqual(t, int64(999), id)
}

func TestDataUpdateMissing(t *testing.T) {
	s := setupTestProvider(t).DataStore()

	n, err := s.Update(context.Background(), 42, sampleData())
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}

func TestDataListOrderAndTotal(t *testing.T) {
	ctx := context.Background()
	s := setupTestProvider(t).DataStore()

	list, err := s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	var ids []int64
	for _, entry := range []string{"E1", "E2", "E3"} {
		d := sampleData()
		d.EntryNumber = entry
		id, err := s.Create(ctx, d)
		require.NoError(t, err)
		ids = append(ids, id)
	}

	list, err = s.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	for i, d := range list {
		assert.Equal(t, ids[i], d.DataID)
	}
	assert.Equal(t, "E3", list[2].EntryNumber)

	total, err := s.Total(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
}

func TestMigrateIsIdempotent(t *testing.T) {
	p := setupTestProvider(t)

	res, err := p.Migrate(context.Background())
	require.NoError(t, err)
	assert.Empty(t, res)

	m, err := p.Migrator()
	require.NoError(t, err)
	version, err := m.GetDBVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)
}

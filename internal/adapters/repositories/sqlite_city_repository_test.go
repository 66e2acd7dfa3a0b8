package repositories

import (
	"context"
	"path/filepath"
	"testing"
	"trainer-market-service/internal/config"
	"trainer-market-service/internal/domain"
	"trainer-market-service/internal/platform/db"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSqliteSeedAndListRoundTrip(t *testing.T) {
	ctx := context.Background()

	sqlDB, err := db.OpenSQLite(ctx, filepath.Join(t.TempDir(), "app.db"))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, InitSchema(ctx, sqlDB))
	// schema creation is repeatable
	require.NoError(t, InitSchema(ctx, sqlDB))

	want, err := EmbeddedCities()
	require.NoError(t, err)
	require.NoError(t, SeedCities(ctx, sqlDB, want))
	// reseeding replaces rows instead of duplicating them
	require.NoError(t, SeedCities(ctx, sqlDB, want))

	got, err := NewSqliteCityRepository(sqlDB).ListCities(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSqliteReseedReplacesTable(t *testing.T) {
	ctx := context.Background()

	sqlDB, err := db.OpenSQLite(ctx, filepath.Join(t.TempDir(), "app.db"))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })
	require.NoError(t, InitSchema(ctx, sqlDB))

	all, err := EmbeddedCities()
	require.NoError(t, err)
	require.NoError(t, SeedCities(ctx, sqlDB, all))

	smaller := []domain.CityRecord{all[7], all[0]}
	require.NoError(t, SeedCities(ctx, sqlDB, smaller))

	ds, err := LoadDataset(ctx, NewSqliteCityRepository(sqlDB))
	require.NoError(t, err)
	require.Equal(t, 2, ds.Len())
	assert.Equal(t, "Greer", ds.Records()[0].City)
	assert.Equal(t, "Cary", ds.Records()[1].City)
}

func TestSqliteSeedRejectsInvalidRecords(t *testing.T) {
	ctx := context.Background()

	sqlDB, err := db.OpenSQLite(ctx, filepath.Join(t.TempDir(), "app.db"))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })
	require.NoError(t, InitSchema(ctx, sqlDB))

	recs, err := EmbeddedCities()
	require.NoError(t, err)
	recs[0].Gyms = -5

	err = SeedCities(ctx, sqlDB, recs)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid city record")

	got, err := NewSqliteCityRepository(sqlDB).ListCities(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSqliteNilDB(t *testing.T) {
	ctx := context.Background()

	assert.Error(t, InitSchema(ctx, nil))
	assert.Error(t, SeedCities(ctx, nil, nil))

	_, err := NewSqliteCityRepository(nil).ListCities(ctx)
	assert.Error(t, err)
}

func TestOpenSqliteDriver(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "app.db")

	sqlDB, err := db.OpenSQLite(ctx, path)
	require.NoError(t, err)
	require.NoError(t, InitSchema(ctx, sqlDB))
	recs, err := EmbeddedCities()
	require.NoError(t, err)
	require.NoError(t, SeedCities(ctx, sqlDB, recs))
	require.NoError(t, sqlDB.Close())

	repo, closeRepo, err := Open(ctx, config.StoreConfig{Driver: config.DriverSQLite, SQLitePath: path})
	require.NoError(t, err)
	defer closeRepo()

	ds, err := LoadDataset(ctx, repo)
	require.NoError(t, err)
	assert.Equal(t, 13, ds.Len())
	assert.Equal(t, "Brentwood", ds.Records()[12].City)
}

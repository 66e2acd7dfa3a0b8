package repositories

import (
	"context"
	"testing"
	"trainer-market-service/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticCityRepositoryReturnsCopies(t *testing.T) {
	repo, err := NewEmbeddedCityRepository()
	require.NoError(t, err)

	first, err := repo.ListCities(context.Background())
	require.NoError(t, err)
	first[0].City = "Mutated"

	second, err := repo.ListCities(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Cary", second[0].City)
}

func TestStaticCityRepositoryHonoursCancellation(t *testing.T) {
	repo, err := NewEmbeddedCityRepository()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = repo.ListCities(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestOpenStaticAndLoadDataset(t *testing.T) {
	ctx := context.Background()

	repo, closeRepo, err := Open(ctx, config.StoreConfig{Driver: config.DriverStatic})
	require.NoError(t, err)
	defer closeRepo()

	ds, err := LoadDataset(ctx, repo)
	require.NoError(t, err)
	assert.Equal(t, 13, ds.Len())
	assert.Equal(t, []string{"NC", "SC", "TN"}, ds.States())
}

func TestOpenUnknownDriver(t *testing.T) {
	_, closeRepo, err := Open(context.Background(), config.StoreConfig{Driver: "mongo"})
	require.Error(t, err)
	require.NotNil(t, closeRepo)
	closeRepo()
}

func TestLoadDatasetRejectsEmptyAndInvalid(t *testing.T) {
	ctx := context.Background()

	_, err := LoadDataset(ctx, NewStaticCityRepository(nil))
	assert.ErrorContains(t, err, "no cities")

	recs, err := EmbeddedCities()
	require.NoError(t, err)
	recs[2].CrimeIndex = 120

	_, err = LoadDataset(ctx, NewStaticCityRepository(recs))
	assert.ErrorContains(t, err, "invalid city record")
}

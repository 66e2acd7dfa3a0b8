package repositories

import (
	"context"
	"errors"
	"testing"
	"trainer-market-service/internal/domain"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cityColumnNames = []string{
	"position", "city", "state", "gyms", "trainers", "trainer_density",
	"boutique_gyms", "big_box_gyms", "community_gyms", "rentable_venues",
	"violent_crime_per_1k", "property_crime_per_1k", "crime_index",
	"biden_pct", "trump_pct", "mayor",
}

func cityRows(recs []domain.CityRecord) *pgxmock.Rows {
	rows := pgxmock.NewRows(cityColumnNames)
	for i, r := range recs {
		rows.AddRow(cityArgs(i+1, r)...)
	}
	return rows
}

func TestPostgresInitSchema(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS cities").
		WillReturnResult(pgxmock.NewResult("CREATE", 0))

	err = NewPostgresCityRepository(mock).InitSchema(context.Background())
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresSeedCities(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	recs, err := EmbeddedCities()
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM cities").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	for i, r := range recs {
		mock.ExpectExec("INSERT INTO cities").
			WithArgs(cityArgs(i+1, r)...).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
	}
	mock.ExpectCommit()

	err = NewPostgresCityRepository(mock).SeedCities(context.Background(), recs)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresReseedClearsTableFirst(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	all, err := EmbeddedCities()
	require.NoError(t, err)
	smaller := []domain.CityRecord{all[7]}

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM cities").
		WillReturnResult(pgxmock.NewResult("DELETE", 13))
	mock.ExpectExec("INSERT INTO cities").
		WithArgs(cityArgs(1, smaller[0])...).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	err = NewPostgresCityRepository(mock).SeedCities(context.Background(), smaller)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresSeedCitiesClearErrorAborts(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	recs, err := EmbeddedCities()
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM cities").
		WillReturnError(errors.New("permission denied"))
	mock.ExpectRollback()

	err = NewPostgresCityRepository(mock).SeedCities(context.Background(), recs)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "clear table")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresSeedCitiesRollsBackOnError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	recs, err := EmbeddedCities()
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM cities").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	mock.ExpectExec("INSERT INTO cities").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec("INSERT INTO cities").
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	err = NewPostgresCityRepository(mock).SeedCities(context.Background(), recs)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Apex, NC")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresSeedCitiesValidatesBeforeWriting(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	recs, err := EmbeddedCities()
	require.NoError(t, err)
	recs[3].CrimeIndex = 101

	err = NewPostgresCityRepository(mock).SeedCities(context.Background(), recs)
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrInvalidRecord.Error())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresListCities(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	want, err := EmbeddedCities()
	require.NoError(t, err)

	mock.ExpectQuery("SELECT (.+) FROM cities ORDER BY position, city").
		WillReturnRows(cityRows(want))

	got, err := NewPostgresCityRepository(mock).ListCities(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresListCitiesQueryError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("SELECT (.+) FROM cities").
		WillReturnError(errors.New("relation \"cities\" does not exist"))

	_, err = NewPostgresCityRepository(mock).ListCities(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "query cities table")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresNilPool(t *testing.T) {
	repo := NewPostgresCityRepository(nil)
	ctx := context.Background()

	assert.Error(t, repo.InitSchema(ctx))
	assert.Error(t, repo.SeedCities(ctx, nil))
	_, err := repo.ListCities(ctx)
	assert.Error(t, err)
}

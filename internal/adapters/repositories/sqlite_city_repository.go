package repositories

import (
	"context"
	"database/sql"
	"trainer-market-service/internal/domain"
	"trainer-market-service/internal/platform/obs"

	"github.com/rotisserie/eris"
)

// SQLite-backed implementation of the CityRepository port.
type SqliteCityRepository struct{ DB *sql.DB }

func NewSqliteCityRepository(db *sql.DB) *SqliteCityRepository {
	return &SqliteCityRepository{DB: db}
}

// Return all cities stored in the database in dataset order.
func (s *SqliteCityRepository) ListCities(ctx context.Context) (_ []domain.CityRecord, err error) {
	defer obs.Time(ctx, "cities.sqlite.List")(&err)

	if s.DB == nil {
		return nil, eris.New("sqlite city repository: DB is nil")
	}

	query := `SELECT ` + cityColumns + ` FROM cities ORDER BY position, city;`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, eris.Wrap(err, "list cities: query cities table")
	}
	defer rows.Close()

	cities := make([]domain.CityRecord, 0, 16)
	for rows.Next() {
		r, err := scanCity(rows)
		if err != nil {
			return nil, eris.Wrap(err, "list cities: scan row")
		}
		cities = append(cities, r)
	}

	if err := rows.Err(); err != nil {
		return nil, eris.Wrap(err, "list cities: row iteration")
	}

	return cities, nil
}

package repositories

import (
	"context"
	"trainer-market-service/internal/domain"
	"trainer-market-service/internal/platform/db"
	"trainer-market-service/internal/platform/obs"

	"github.com/rotisserie/eris"
)

const postgresSchema = `
CREATE TABLE IF NOT EXISTS cities (
	position INTEGER NOT NULL,
	city TEXT NOT NULL,
	state TEXT NOT NULL,
	gyms INTEGER NOT NULL CHECK (gyms >= 0),
	trainers INTEGER NOT NULL CHECK (trainers >= 0),
	trainer_density DOUBLE PRECISION NOT NULL CHECK (trainer_density >= 0),
	boutique_gyms INTEGER NOT NULL CHECK (boutique_gyms >= 0),
	big_box_gyms INTEGER NOT NULL CHECK (big_box_gyms >= 0),
	community_gyms INTEGER NOT NULL CHECK (community_gyms >= 0),
	rentable_venues DOUBLE PRECISION NOT NULL CHECK (rentable_venues >= 0),
	violent_crime_per_1k DOUBLE PRECISION NOT NULL CHECK (violent_crime_per_1k >= 0),
	property_crime_per_1k DOUBLE PRECISION NOT NULL CHECK (property_crime_per_1k >= 0),
	crime_index INTEGER NOT NULL CHECK (crime_index BETWEEN 0 AND 100),
	biden_pct DOUBLE PRECISION NOT NULL,
	trump_pct DOUBLE PRECISION NOT NULL,
	mayor TEXT NOT NULL DEFAULT '',
	PRIMARY KEY (city, state)
);
CREATE INDEX IF NOT EXISTS idx_cities_position ON cities(position);
`

const postgresUpsertCity = `
INSERT INTO cities (` + cityColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
ON CONFLICT (city, state) DO UPDATE
SET position = EXCLUDED.position,
	gyms = EXCLUDED.gyms,
	trainers = EXCLUDED.trainers,
	trainer_density = EXCLUDED.trainer_density,
	boutique_gyms = EXCLUDED.boutique_gyms,
	big_box_gyms = EXCLUDED.big_box_gyms,
	community_gyms = EXCLUDED.community_gyms,
	rentable_venues = EXCLUDED.rentable_venues,
	violent_crime_per_1k = EXCLUDED.violent_crime_per_1k,
	property_crime_per_1k = EXCLUDED.property_crime_per_1k,
	crime_index = EXCLUDED.crime_index,
	biden_pct = EXCLUDED.biden_pct,
	trump_pct = EXCLUDED.trump_pct,
	mayor = EXCLUDED.mayor;
`

// Postgres-backed implementation of the CityRepository port.
type PostgresCityRepository struct {
	Pool db.Pool
}

func NewPostgresCityRepository(pool db.Pool) *PostgresCityRepository {
	return &PostgresCityRepository{Pool: pool}
}

// Create the cities table if it does not exist.
func (p *PostgresCityRepository) InitSchema(ctx context.Context) error {
	if p.Pool == nil {
		return eris.New("postgres init schema: pool is nil")
	}

	if _, err := p.Pool.Exec(ctx, postgresSchema); err != nil {
		return eris.Wrap(err, "postgres init schema: exec")
	}
	return nil
}

// Replace the table with records in one transaction. Records are validated first.
func (p *PostgresCityRepository) SeedCities(ctx context.Context, records []domain.CityRecord) (err error) {
	defer obs.Time(ctx, "cities.postgres.Seed")(&err)

	if p.Pool == nil {
		return eris.New("postgres seed cities: pool is nil")
	}

	if _, err := domain.NewDataset(records); err != nil {
		return eris.Wrap(err, "postgres seed cities")
	}

	tx, err := p.Pool.Begin(ctx)
	if err != nil {
		return eris.Wrap(err, "postgres seed cities: begin tx")
	}
	defer func() { _ = tx.Rollback(ctx) }()

	// A seed replaces the whole table so the store holds exactly records.
	if _, err := tx.Exec(ctx, `DELETE FROM cities`); err != nil {
		return eris.Wrap(err, "postgres seed cities: clear table")
	}

	for i, r := range records {
		if _, err := tx.Exec(ctx, postgresUpsertCity, cityArgs(i+1, r)...); err != nil {
			return eris.Wrapf(err, "postgres seed cities: upsert %s", r.Label())
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return eris.Wrap(err, "postgres seed cities: commit tx")
	}

	return nil
}

// Return all cities in dataset order.
func (p *PostgresCityRepository) ListCities(ctx context.Context) (_ []domain.CityRecord, err error) {
	defer obs.Time(ctx, "cities.postgres.List")(&err)

	if p.Pool == nil {
		return nil, eris.New("postgres city repository: pool is nil")
	}

	rows, err := p.Pool.Query(ctx, `SELECT `+cityColumns+` FROM cities ORDER BY position, city`)
	if err != nil {
		return nil, eris.Wrap(err, "postgres list cities: query cities table")
	}
	defer rows.Close()

	cities := make([]domain.CityRecord, 0, 16)
	for rows.Next() {
		r, err := scanCity(rows)
		if err != nil {
			return nil, eris.Wrap(err, "postgres list cities: scan row")
		}
		cities = append(cities, r)
	}

	if err := rows.Err(); err != nil {
		return nil, eris.Wrap(err, "postgres list cities: row iteration")
	}

	return cities, nil
}

package repositories

import (
	"context"
	"database/sql"
	"trainer-market-service/internal/domain"

	"github.com/rotisserie/eris"
)

// Column order shared by every SQL store. position keeps dataset order stable.
const cityColumns = `position, city, state, gyms, trainers, trainer_density,
	boutique_gyms, big_box_gyms, community_gyms, rentable_venues,
	violent_crime_per_1k, property_crime_per_1k, crime_index,
	biden_pct, trump_pct, mayor`

// Initialize the SQLite database schema.
func InitSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return eris.New("init schema: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return eris.Wrap(err, "init schema: begin tx")
	}
	defer func() { _ = tx.Rollback() }()

	createCitiesQuery := `
	CREATE TABLE IF NOT EXISTS cities (
		position INTEGER NOT NULL,
		city TEXT NOT NULL,
		state TEXT NOT NULL,
		gyms INTEGER NOT NULL CHECK (gyms >= 0),
		trainers INTEGER NOT NULL CHECK (trainers >= 0),
		trainer_density REAL NOT NULL CHECK (trainer_density >= 0),
		boutique_gyms INTEGER NOT NULL CHECK (boutique_gyms >= 0),
		big_box_gyms INTEGER NOT NULL CHECK (big_box_gyms >= 0),
		community_gyms INTEGER NOT NULL CHECK (community_gyms >= 0),
		rentable_venues REAL NOT NULL CHECK (rentable_venues >= 0),
		violent_crime_per_1k REAL NOT NULL CHECK (violent_crime_per_1k >= 0),
		property_crime_per_1k REAL NOT NULL CHECK (property_crime_per_1k >= 0),
		crime_index INTEGER NOT NULL CHECK (crime_index BETWEEN 0 AND 100),
		biden_pct REAL NOT NULL,
		trump_pct REAL NOT NULL,
		mayor TEXT NOT NULL DEFAULT '',
		PRIMARY KEY (city, state)
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_cities_position ON cities(position);
	`

	statements := []string{
		createCitiesQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return eris.Wrapf(err, "init schema: exec statement #%d", i+1)
		}
	}

	if err := tx.Commit(); err != nil {
		return eris.Wrap(err, "init schema: commit tx")
	}

	return nil
}

// Replace the contents of the cities table with records, in one transaction.
// Records are validated first so the store never holds rows the Dataset would reject.
func SeedCities(ctx context.Context, db *sql.DB, records []domain.CityRecord) error {
	if db == nil {
		return eris.New("seed cities: DB is nil")
	}

	if _, err := domain.NewDataset(records); err != nil {
		return eris.Wrap(err, "seed cities")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return eris.Wrap(err, "seed cities: begin tx")
	}
	defer func() { _ = tx.Rollback() }()

	// A seed replaces the whole table so the store holds exactly records.
	if _, err := tx.ExecContext(ctx, `DELETE FROM cities;`); err != nil {
		return eris.Wrap(err, "seed cities: clear table")
	}

	query := `
	INSERT OR REPLACE INTO cities (` + cityColumns + `)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
	`
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return eris.Wrap(err, "seed cities: prepare insert")
	}
	defer stmt.Close()

	for i, r := range records {
		if _, err := stmt.ExecContext(ctx, cityArgs(i+1, r)...); err != nil {
			return eris.Wrapf(err, "seed cities: insert %s", r.Label())
		}
	}

	if err := tx.Commit(); err != nil {
		return eris.Wrap(err, "seed cities: commit tx")
	}

	return nil
}

func cityArgs(position int, r domain.CityRecord) []any {
	return []any{
		position,
		r.City,
		r.State,
		r.Gyms,
		r.Trainers,
		r.TrainerDensity,
		r.BoutiqueGyms,
		r.BigBoxGyms,
		r.CommunityGyms,
		r.RentableVenues,
		r.ViolentCrimePer1k,
		r.PropertyCrimePer1k,
		r.CrimeIndex,
		r.BidenPct,
		r.TrumpPct,
		r.Mayor,
	}
}

// Shared by SQL stores: Scan target for one cities row.
type cityScanner interface {
	Scan(dest ...any) error
}

func scanCity(row cityScanner) (domain.CityRecord, error) {
	var (
		position int
		r        domain.CityRecord
	)
	err := row.Scan(
		&position,
		&r.City,
		&r.State,
		&r.Gyms,
		&r.Trainers,
		&r.TrainerDensity,
		&r.BoutiqueGyms,
		&r.BigBoxGyms,
		&r.CommunityGyms,
		&r.RentableVenues,
		&r.ViolentCrimePer1k,
		&r.PropertyCrimePer1k,
		&r.CrimeIndex,
		&r.BidenPct,
		&r.TrumpPct,
		&r.Mayor,
	)
	return r, err
}

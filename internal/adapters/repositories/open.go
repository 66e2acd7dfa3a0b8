package repositories

import (
	"context"
	"trainer-market-service/internal/config"
	"trainer-market-service/internal/domain"
	"trainer-market-service/internal/platform/db"
	"trainer-market-service/internal/ports"

	"github.com/rotisserie/eris"
)

// Open the CityRepository selected by cfg.Driver.
// The returned close func releases any database handle and is never nil.
func Open(ctx context.Context, cfg config.StoreConfig) (ports.CityRepository, func(), error) {
	noop := func() {}

	switch cfg.Driver {
	case config.DriverStatic, "":
		repo, err := NewEmbeddedCityRepository()
		if err != nil {
			return nil, noop, err
		}
		return repo, noop, nil

	case config.DriverSQLite:
		sqlDB, err := db.OpenSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, noop, err
		}
		return NewSqliteCityRepository(sqlDB), func() { _ = sqlDB.Close() }, nil

	case config.DriverPostgres:
		pool, err := db.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, noop, err
		}
		return NewPostgresCityRepository(pool), pool.Close, nil

	default:
		return nil, noop, eris.Errorf("open repository: unknown driver %q", cfg.Driver)
	}
}

// Load every record from repo and build the immutable Dataset.
func LoadDataset(ctx context.Context, repo ports.CityRepository) (domain.Dataset, error) {
	recs, err := repo.ListCities(ctx)
	if err != nil {
		return domain.Dataset{}, eris.Wrap(err, "load dataset")
	}

	if len(recs) == 0 {
		return domain.Dataset{}, eris.New("load dataset: repository returned no cities")
	}

	ds, err := domain.NewDataset(recs)
	if err != nil {
		return domain.Dataset{}, eris.Wrap(err, "load dataset")
	}

	return ds, nil
}

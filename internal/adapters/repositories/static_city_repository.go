package repositories

import (
	"context"
	"slices"
	"trainer-market-service/internal/domain"
)

// In-memory implementation of the CityRepository port backed by a literal table.
type StaticCityRepository struct {
	records []domain.CityRecord
}

func NewStaticCityRepository(records []domain.CityRecord) *StaticCityRepository {
	return &StaticCityRepository{records: slices.Clone(records)}
}

// Build a StaticCityRepository over the embedded market table.
func NewEmbeddedCityRepository() (*StaticCityRepository, error) {
	recs, err := EmbeddedCities()
	if err != nil {
		return nil, err
	}
	return NewStaticCityRepository(recs), nil
}

func (s *StaticCityRepository) ListCities(ctx context.Context) ([]domain.CityRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return slices.Clone(s.records), nil
}

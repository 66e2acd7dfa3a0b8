package ports

import (
	"context"
	"trainer-market-service/internal/domain"
)

// Port: a boundary for loading the raw city table from a data source.
// Implementations return raw records in display order; derived fields are left zero.
type CityRepository interface {
	// Retrieve every city record.
	ListCities(ctx context.Context) ([]domain.CityRecord, error)
}

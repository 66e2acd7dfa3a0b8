package services

import (
	"context"
	"slices"
	"trainer-market-service/internal/domain"
	"trainer-market-service/internal/platform/obs"
)

// Defaults of the interactive controls.
const (
	DefaultMaxTotalCrimePer1k = 20.0
	MinMaxTotalCrimePer1k     = 5.0
	MaxMaxTotalCrimePer1k     = 40.0
)

// View holds the data products of one interaction.
type View struct {
	All             []domain.CityRecord
	Filtered        []domain.CityRecord
	Recommendations []domain.CityRecord
	Matched         int
	Total           int
}

// Explorer runs the derive/filter/recommend cycle over one immutable Dataset.
// It holds no mutable state and is safe for concurrent use.
type Explorer struct {
	dataset         domain.Dataset
	recommendations []domain.CityRecord
}

// NewExplorer derives the table once to compute the recommendation list,
// which never changes for the lifetime of the Dataset.
func NewExplorer(ds domain.Dataset) *Explorer {
	recs := Recommend(Derive(ds.Records()))
	obs.RecommendedCities.Set(float64(len(recs)))

	return &Explorer{
		dataset:         ds,
		recommendations: recs,
	}
}

// Return the enriched full table in dataset order.
func (e *Explorer) Cities() []domain.CityRecord {
	return Derive(e.dataset.Records())
}

// Return the recommendation shortlist. The result is a copy.
func (e *Explorer) Recommendations() []domain.CityRecord {
	return slices.Clone(e.recommendations)
}

func (e *Explorer) States() []string { return e.dataset.States() }

func (e *Explorer) Summary() Summary { return Summarize(e.Cities()) }

// DefaultCriteria selects every state, the default crime threshold and any lean.
func (e *Explorer) DefaultCriteria() domain.FilterCriteria {
	return domain.NewFilterCriteria(e.dataset.States(), DefaultMaxTotalCrimePer1k, domain.LeanAny)
}

// View performs one synchronous recompute cycle for the given criteria.
// Fresh derived structures are produced on every call.
func (e *Explorer) View(ctx context.Context, criteria domain.FilterCriteria) View {
	defer obs.Time(ctx, "explorer.View")(nil)

	all := Derive(e.dataset.Records())
	filtered := Filter(all, criteria)
	obs.FilteredCities.Observe(float64(len(filtered)))

	return View{
		All:             all,
		Filtered:        filtered,
		Recommendations: e.Recommendations(),
		Matched:         len(filtered),
		Total:           len(all),
	}
}

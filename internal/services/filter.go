package services

import "trainer-market-service/internal/domain"

// Filter returns the records that satisfy every condition of the criteria:
// state is selected, total crime is at or below the threshold, and the lean
// matches the lean filter.
//
// Relative order is preserved and the input slice is left untouched.
// An empty state selection yields an empty, non-nil result.
func Filter(records []domain.CityRecord, criteria domain.FilterCriteria) []domain.CityRecord {
	out := make([]domain.CityRecord, 0, len(records))
	if len(criteria.States) == 0 {
		return out
	}

	for _, r := range records {
		if !criteria.HasState(r.State) {
			continue
		}
		if r.TotalCrimePer1k > criteria.MaxTotalCrimePer1k {
			continue
		}
		if !criteria.Lean.Matches(r.Lean) {
			continue
		}
		out = append(out, r)
	}

	return out
}

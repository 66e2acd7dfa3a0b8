package services

import "trainer-market-service/internal/domain"

// Fixed launch-market heuristic: safe city, moderate trainer competition.
const (
	MinCrimeIndex     = 50  // exclusive
	MinTrainerDensity = 5.0 // inclusive
	MaxTrainerDensity = 10.0
)

// Shown by callers when Recommend finds nothing. An empty list is a normal outcome.
const NoRecommendationsNotice = "No cities match all ideal criteria. Try relaxing filters or adjust the heuristic."

// Recommend applies the fixed heuristic to the full table.
//
// It deliberately takes no FilterCriteria: the shortlist is the same for every
// user selection so it can be compared against the filtered view.
// Results keep dataset order; no ranking is applied.
func Recommend(records []domain.CityRecord) []domain.CityRecord {
	out := make([]domain.CityRecord, 0, len(records))
	for _, r := range records {
		if IsRecommended(r) {
			out = append(out, r)
		}
	}
	return out
}

// IsRecommended reports whether a single record passes the heuristic.
func IsRecommended(r domain.CityRecord) bool {
	return r.CrimeIndex > MinCrimeIndex &&
		r.TrainerDensity >= MinTrainerDensity &&
		r.TrainerDensity <= MaxTrainerDensity
}

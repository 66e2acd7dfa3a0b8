package dto

import "trainer-market-service/internal/domain"

type CityResponse struct {
	City               string  `json:"city"`
	State              string  `json:"state"`
	Gyms               int     `json:"gyms"`
	Trainers           int     `json:"trainers"`
	TrainerDensity     float64 `json:"trainer_density"`
	BoutiqueGyms       int     `json:"boutique_gyms"`
	BigBoxGyms         int     `json:"big_box_gyms"`
	CommunityGyms      int     `json:"community_gyms"`
	RentableVenues     float64 `json:"rentable_venues"`
	ViolentCrimePer1k  float64 `json:"violent_crime_per_1k"`
	PropertyCrimePer1k float64 `json:"property_crime_per_1k"`
	CrimeIndex         int     `json:"crime_index"`
	BidenPct           float64 `json:"biden_pct"`
	TrumpPct           float64 `json:"trump_pct"`
	Mayor              string  `json:"mayor"`
	TotalCrimePer1k    float64 `json:"total_crime_per_1k"`
	GymDensity         float64 `json:"gym_density"`
	Lean               string  `json:"lean"`
}

type ListCitiesResponse struct {
	Cities []CityResponse `json:"cities"`
}

type StatesResponse struct {
	States []string `json:"states"`
}

type RecommendationsResponse struct {
	Recommendations []CityResponse `json:"recommendations"`
	Notice          string         `json:"notice,omitempty"`
}

type SummaryResponse struct {
	CityCount        int      `json:"city_count"`
	States           []string `json:"states"`
	MedianGyms       float64  `json:"median_gyms"`
	MedianTrainers   float64  `json:"median_trainers"`
	MedianCrimeIndex float64  `json:"median_crime_index"`
}

// Map records to responses; the result is never nil so it encodes as [].
func CitiesFromDomain(recs []domain.CityRecord) []CityResponse {
	out := make([]CityResponse, 0, len(recs))
	for _, r := range recs {
		out = append(out, CityFromDomain(r))
	}
	return out
}

func CityFromDomain(r domain.CityRecord) CityResponse {
	return CityResponse{
		City:               r.City,
		State:              r.State,
		Gyms:               r.Gyms,
		Trainers:           r.Trainers,
		TrainerDensity:     r.TrainerDensity,
		BoutiqueGyms:       r.BoutiqueGyms,
		BigBoxGyms:         r.BigBoxGyms,
		CommunityGyms:      r.CommunityGyms,
		RentableVenues:     r.RentableVenues,
		ViolentCrimePer1k:  r.ViolentCrimePer1k,
		PropertyCrimePer1k: r.PropertyCrimePer1k,
		CrimeIndex:         r.CrimeIndex,
		BidenPct:           r.BidenPct,
		TrumpPct:           r.TrumpPct,
		Mayor:              r.Mayor,
		TotalCrimePer1k:    r.TotalCrimePer1k,
		GymDensity:         r.GymDensity,
		Lean:               string(r.Lean),
	}
}

package services

import (
	"slices"
	"trainer-market-service/internal/domain"
)

// Headline metrics over the full table.
type Summary struct {
	CityCount        int
	States           []string
	MedianGyms       float64
	MedianTrainers   float64
	MedianCrimeIndex float64
}

// Summarize computes the headline metrics. States are listed in first-seen order.
func Summarize(records []domain.CityRecord) Summary {
	gyms := make([]float64, 0, len(records))
	trainers := make([]float64, 0, len(records))
	crime := make([]float64, 0, len(records))
	states := make([]string, 0, 4)

	for _, r := range records {
		gyms = append(gyms, float64(r.Gyms))
		trainers = append(trainers, float64(r.Trainers))
		crime = append(crime, float64(r.CrimeIndex))
		if !slices.Contains(states, r.State) {
			states = append(states, r.State)
		}
	}

	return Summary{
		CityCount:        len(records),
		States:           states,
		MedianGyms:       median(gyms),
		MedianTrainers:   median(trainers),
		MedianCrimeIndex: median(crime),
	}
}

// median sorts vals in place. Even counts average the two middle values; empty input is 0.
func median(vals []float64) float64 {
	n := len(vals)
	if n == 0 {
		return 0
	}

	slices.Sort(vals)
	if n%2 == 1 {
		return vals[n/2]
	}
	return (vals[n/2-1] + vals[n/2]) / 2
}

package services

import (
	"testing"
	"trainer-market-service/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestSummarizeMarketTable(t *testing.T) {
	s := Summarize(Derive(marketTable()))

	assert.Equal(t, 13, s.CityCount)
	assert.Equal(t, []string{"NC", "SC", "TN"}, s.States)
	assert.Equal(t, 65.0, s.MedianGyms)
	assert.Equal(t, 627.0, s.MedianTrainers)
	assert.Equal(t, 33.0, s.MedianCrimeIndex)
}

func TestSummarizeEvenCountAveragesMiddle(t *testing.T) {
	recs := []domain.CityRecord{
		{City: "A", State: "NC", Gyms: 10, Trainers: 1, CrimeIndex: 20},
		{City: "B", State: "SC", Gyms: 40, Trainers: 3, CrimeIndex: 10},
	}

	s := Summarize(recs)
	assert.Equal(t, 25.0, s.MedianGyms)
	assert.Equal(t, 2.0, s.MedianTrainers)
	assert.Equal(t, 15.0, s.MedianCrimeIndex)
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	assert.Zero(t, s.CityCount)
	assert.Empty(t, s.States)
	assert.Zero(t, s.MedianGyms)
}

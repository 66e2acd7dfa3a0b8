package services

import "trainer-market-service/internal/domain"

// GymDensityDivisor turns a gym count into the GymDensity proxy.
// It is a fixed placeholder, not a per-capita rate: no population data backs it.
const GymDensityDivisor = 10.0

// Derive returns a new slice where every record carries TotalCrimePer1k,
// GymDensity and Lean computed from its raw fields.
//
// The input is never mutated. Deriving an already derived slice recomputes
// the same values, so the operation is idempotent.
func Derive(records []domain.CityRecord) []domain.CityRecord {
	out := make([]domain.CityRecord, len(records))
	for i, r := range records {
		out[i] = DeriveRecord(r)
	}
	return out
}

// DeriveRecord fills the derived fields of a single record.
func DeriveRecord(r domain.CityRecord) domain.CityRecord {
	r.TotalCrimePer1k = r.ViolentCrimePer1k + r.PropertyCrimePer1k
	r.GymDensity = float64(r.Gyms) / GymDensityDivisor
	r.Lean = DeriveLean(r.BidenPct, r.TrumpPct)
	return r
}

// DeriveLean classifies by strict comparison; a tie is Republican-leaning.
func DeriveLean(bidenPct, trumpPct float64) domain.Lean {
	if bidenPct > trumpPct {
		return domain.LeanDemocratic
	}
	return domain.LeanRepublican
}

package domain

// Binary political classification of a city based on comparative vote share.
type Lean string

const (
	LeanDemocratic Lean = "Democratic-leaning"
	LeanRepublican Lean = "Republican-leaning"
)

// Represents one city row of the market table.
// Raw fields come from a static source and are validated when the Dataset is built.
// TotalCrimePer1k, GymDensity and Lean are derived fields: they are filled in by the
// derivation step and are never set independently of the raw fields.
type CityRecord struct {
	City               string  `validate:"required"`
	State              string  `validate:"required"`
	Gyms               int     `validate:"gte=0"`
	Trainers           int     `validate:"gte=0"`
	TrainerDensity     float64 `validate:"gte=0"` // trainers per 10k residents, supplied as-is
	BoutiqueGyms       int     `validate:"gte=0"`
	BigBoxGyms         int     `validate:"gte=0"`
	CommunityGyms      int     `validate:"gte=0"`
	RentableVenues     float64 `validate:"gte=0"`
	ViolentCrimePer1k  float64 `validate:"gte=0"`
	PropertyCrimePer1k float64 `validate:"gte=0"`
	CrimeIndex         int     `validate:"gte=0,lte=100"` // higher = safer
	BidenPct           float64 `validate:"gte=0,lte=100"`
	TrumpPct           float64 `validate:"gte=0,lte=100"`
	Mayor              string

	TotalCrimePer1k float64
	GymDensity      float64
	Lean            Lean
}

// Return the "City, ST" display label.
func (c CityRecord) Label() string { return c.City + ", " + c.State }

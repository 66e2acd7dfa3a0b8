package dto

// One filter interaction. Omitted fields take the control defaults:
// states -> every state, max_total_crime_per_1k -> 20.0, lean -> Any.
// An explicit empty states list is valid and matches nothing.
type ViewRequest struct {
	States             []string `json:"states"`
	MaxTotalCrimePer1k *float64 `json:"max_total_crime_per_1k" validate:"omitempty,gte=5,lte=40"`
	Lean               string   `json:"lean" validate:"omitempty,oneof=Any Democratic-leaning Republican-leaning"`
}

type ViewResponse struct {
	Matched         int            `json:"matched"`
	Total           int            `json:"total"`
	Cities          []CityResponse `json:"cities"`
	Recommendations []CityResponse `json:"recommendations"`
	Notice          string         `json:"notice,omitempty"`
}

package repositories

import (
	_ "embed"
	"os"
	"strings"
	"trainer-market-service/internal/domain"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

//go:embed data/cities.yaml
var embeddedCities []byte

type CitySeed struct {
	City               string  `yaml:"city"`
	State              string  `yaml:"state"`
	Gyms               int     `yaml:"gyms"`
	Trainers           int     `yaml:"trainers"`
	TrainerDensity     float64 `yaml:"trainer_density"`
	BoutiqueGyms       int     `yaml:"boutique_gyms"`
	BigBoxGyms         int     `yaml:"big_box_gyms"`
	CommunityGyms      int     `yaml:"community_gyms"`
	RentableVenues     float64 `yaml:"rentable_venues"`
	ViolentCrimePer1k  float64 `yaml:"violent_crime_per_1k"`
	PropertyCrimePer1k float64 `yaml:"property_crime_per_1k"`
	CrimeIndex         int     `yaml:"crime_index"`
	BidenPct           float64 `yaml:"biden_pct"`
	TrumpPct           float64 `yaml:"trump_pct"`
	Mayor              string  `yaml:"mayor"`
}

type seedFile struct {
	Cities []CitySeed `yaml:"cities"`
}

// Return the built-in market table.
func EmbeddedCities() ([]domain.CityRecord, error) {
	recs, err := ParseCitiesYAML(embeddedCities)
	if err != nil {
		return nil, eris.Wrap(err, "embedded cities")
	}
	return recs, nil
}

// Read a cities YAML file from disk.
func LoadCitiesYAML(path string) ([]domain.CityRecord, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "load cities: read %q", path)
	}
	return ParseCitiesYAML(b)
}

// Decode a cities YAML document into raw records.
// Only structural checks happen here; range validation is done by domain.NewDataset.
func ParseCitiesYAML(b []byte) ([]domain.CityRecord, error) {
	var f seedFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, eris.Wrap(err, "parse cities: decode yaml")
	}

	if len(f.Cities) == 0 {
		return nil, eris.New("parse cities: no cities in document")
	}

	out := make([]domain.CityRecord, 0, len(f.Cities))
	for i, s := range f.Cities {
		city := strings.TrimSpace(s.City)
		if city == "" {
			return nil, eris.Errorf("parse cities: item at index %d: city cannot be empty", i+1)
		}

		state := strings.TrimSpace(s.State)
		if state == "" {
			return nil, eris.Errorf("parse cities: item %q at index %d: state cannot be empty", city, i+1)
		}

		s.City, s.State = city, state
		out = append(out, s.toRecord())
	}

	return out, nil
}

func (s CitySeed) toRecord() domain.CityRecord {
	return domain.CityRecord{
		City:               s.City,
		State:              s.State,
		Gyms:               s.Gyms,
		Trainers:           s.Trainers,
		TrainerDensity:     s.TrainerDensity,
		BoutiqueGyms:       s.BoutiqueGyms,
		BigBoxGyms:         s.BigBoxGyms,
		CommunityGyms:      s.CommunityGyms,
		RentableVenues:     s.RentableVenues,
		ViolentCrimePer1k:  s.ViolentCrimePer1k,
		PropertyCrimePer1k: s.PropertyCrimePer1k,
		CrimeIndex:         s.CrimeIndex,
		BidenPct:           s.BidenPct,
		TrumpPct:           s.TrumpPct,
		Mayor:              strings.TrimSpace(s.Mayor),
	}
}

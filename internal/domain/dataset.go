package domain

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"trainer-market-service/internal/platform/validation"
)

// Returned (wrapped) when a record fails load-time validation.
var ErrInvalidRecord = errors.New("invalid city record")

// Immutable, ordered table of city records.
// Order is insertion order and is only used for default display order.
// A Dataset is built once at process start and only hands out copies.
type Dataset struct {
	records []CityRecord
}

// Validate records and build a Dataset.
// Records with negative counts, out-of-range percentages or a crime index
// outside 0..100 are rejected, as are duplicate (City, State) pairs.
func NewDataset(records []CityRecord) (Dataset, error) {
	seen := make(map[string]int, len(records))
	for i, r := range records {
		if verr := validation.ValidateStruct(r); verr != nil {
			return Dataset{}, fmt.Errorf("new dataset: record %d (%s): %w: %s", i+1, r.Label(), ErrInvalidRecord, verr.Error())
		}

		if strings.TrimSpace(r.City) == "" || strings.TrimSpace(r.State) == "" {
			return Dataset{}, fmt.Errorf("new dataset: record %d: %w: city and state must not be blank", i+1, ErrInvalidRecord)
		}

		key := r.Label()
		if prev, ok := seen[key]; ok {
			return Dataset{}, fmt.Errorf("new dataset: record %d duplicates record %d (%s): %w", i+1, prev, key, ErrInvalidRecord)
		}
		seen[key] = i + 1
	}

	return Dataset{records: slices.Clone(records)}, nil
}

// Return a copy of all records in dataset order.
func (d Dataset) Records() []CityRecord { return slices.Clone(d.records) }

func (d Dataset) Len() int { return len(d.records) }

// Return the distinct states in first-seen order.
func (d Dataset) States() []string {
	seen := make(map[string]struct{})
	out := make([]string, 0, 4)
	for _, r := range d.records {
		if _, ok := seen[r.State]; ok {
			continue
		}
		seen[r.State] = struct{}{}
		out = append(out, r.State)
	}
	return out
}

package domain

import (
	"fmt"
	"strings"
)

// Three-way political lean selection applied by the filter.
type LeanFilter string

const (
	LeanAny              LeanFilter = "Any"
	LeanFilterDemocratic LeanFilter = LeanFilter(LeanDemocratic)
	LeanFilterRepublican LeanFilter = LeanFilter(LeanRepublican)
)

// Parse user input into a LeanFilter. Empty input selects LeanAny.
// Matching is case-insensitive on the canonical values.
func ParseLeanFilter(s string) (LeanFilter, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return LeanAny, nil
	}

	for _, lf := range []LeanFilter{LeanAny, LeanFilterDemocratic, LeanFilterRepublican} {
		if strings.EqualFold(s, string(lf)) {
			return lf, nil
		}
	}

	return "", fmt.Errorf("parse lean filter: unknown value %q", s)
}

// Report whether a record's lean passes this filter.
func (f LeanFilter) Matches(l Lean) bool {
	return f == LeanAny || Lean(f) == l
}

// Ephemeral per-interaction filter selection.
// States is a set; an empty set matches nothing.
type FilterCriteria struct {
	States             map[string]struct{}
	MaxTotalCrimePer1k float64
	Lean               LeanFilter
}

// Build FilterCriteria from a list of state codes.
// Duplicate and surrounding-whitespace variants collapse to one entry.
func NewFilterCriteria(states []string, maxTotalCrimePer1k float64, lean LeanFilter) FilterCriteria {
	set := make(map[string]struct{}, len(states))
	for _, s := range states {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		set[s] = struct{}{}
	}

	if lean == "" {
		lean = LeanAny
	}

	return FilterCriteria{
		States:             set,
		MaxTotalCrimePer1k: maxTotalCrimePer1k,
		Lean:               lean,
	}
}

// Report whether the state is selected.
func (c FilterCriteria) HasState(state string) bool {
	_, ok := c.States[state]
	return ok
}

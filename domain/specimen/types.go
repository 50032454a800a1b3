// Package specimen holds the read-only specimen records the breeding engine consumes.
package specimen

import (
	"strings"

	"orchidbreed/domain/core"
)

// HybridSentinel marks specimens without a true species epithet (cultivated hybrids).
const HybridSentinel = "hybrid"

// SpecimenRef is a snapshot of a specimen record owned by the persistence layer.
// The engine reads it and never writes to it.
type SpecimenRef struct {
	ID      core.SpecimenID `json:"id" db:"id"`
	Name    string          `json:"name,omitempty" db:"name"`
	Genus   string          `json:"genus" db:"genus"`
	Species string          `json:"species" db:"species"`
	Notes   string          `json:"cultivation_notes,omitempty" db:"cultivation_notes"`
}

// IsHybrid reports whether the species field is the hybrid sentinel.
// Missing species epithets count as hybrids.
func (s SpecimenRef) IsHybrid() bool {
	return IsHybridSpecies(s.Species)
}

// DisplayName returns the name when present, else "Genus species".
func (s SpecimenRef) DisplayName() string {
	if name := strings.TrimSpace(s.Name); name != "" {
		return name
	}
	genus := strings.TrimSpace(s.Genus)
	species := strings.TrimSpace(s.Species)
	if species == "" {
		species = HybridSentinel
	}
	if genus == "" {
		return species
	}
	return genus + " " + species
}

// IsHybridSpecies reports whether a species value denotes the hybrid sentinel.
func IsHybridSpecies(species string) bool {
	s := strings.TrimSpace(species)
	return s == "" || strings.EqualFold(s, HybridSentinel)
}

// Filter narrows specimen listings. Empty fields match everything.
type Filter struct {
	Genera []string `json:"genera,omitempty"`
	Limit  int      `json:"limit,omitempty"`
}

// MatchesGenus reports whether a genus passes the filter (case-insensitive).
func (f Filter) MatchesGenus(genus string) bool {
	if len(f.Genera) == 0 {
		return true
	}
	for _, g := range f.Genera {
		if strings.EqualFold(strings.TrimSpace(g), strings.TrimSpace(genus)) {
			return true
		}
	}
	return false
}

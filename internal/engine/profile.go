package engine

import (
	"strings"

	"orchidbreed/domain/breeding"
	"orchidbreed/domain/specimen"
	"orchidbreed/internal/engine/reference"
)

// ProfileBuilder converts specimen records into genetic profiles.
type ProfileBuilder struct {
	ref       *reference.ReferenceData
	extractor NoteExtractor
}

// NewProfileBuilder creates a builder. A nil extractor uses the default keyword table.
func NewProfileBuilder(ref *reference.ReferenceData, extractor NoteExtractor) *ProfileBuilder {
	if extractor == nil {
		extractor = NewKeywordExtractor(DefaultKeywordTable())
	}
	return &ProfileBuilder{ref: ref, extractor: extractor}
}

// Build never fails: every field falls back to a safe default when data is missing.
func (b *ProfileBuilder) Build(s specimen.SpecimenRef) breeding.GeneticProfile {
	genus := strings.TrimSpace(s.Genus)
	species := strings.TrimSpace(s.Species)
	if specimen.IsHybridSpecies(species) {
		species = specimen.HybridSentinel
	}

	profile := breeding.GeneticProfile{
		Genus:         genus,
		Species:       species,
		Ploidy:        breeding.PloidyDiploid,
		Fertility:     breeding.FertilityFertile,
		BreedingGroup: breeding.GroupStandard,
		GrowthHabit:   b.ref.GrowthHabit(genus),
		Temperature:   b.ref.Temperature(genus),
	}
	if count, ok := b.ref.ChromosomeCount(genus); ok {
		profile.ChromosomeCount = &count
	}

	patch := b.extractor.Extract(s.Notes)
	if patch.Ploidy != nil {
		profile.Ploidy = *patch.Ploidy
	}
	if patch.Fertility != nil {
		profile.Fertility = *patch.Fertility
	}
	if patch.BreedingGroup != nil {
		profile.BreedingGroup = *patch.BreedingGroup
	}

	profile.BloomSeasons = breeding.SortSeasons(patch.BloomSeasons)
	if len(profile.BloomSeasons) == 0 {
		profile.BloomSeasons = []breeding.Season{breeding.SeasonYearRound}
	}
	profile.Barriers = breeding.SortBarriers(patch.Barriers)

	return profile
}

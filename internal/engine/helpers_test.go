package engine

import (
	"testing"

	"orchidbreed/domain/breeding"
	"orchidbreed/domain/core"
	"orchidbreed/domain/specimen"
	"orchidbreed/internal/engine/reference"

	"github.com/stretchr/testify/require"
)

func ref(id, genus, species, notes string) specimen.SpecimenRef {
	return specimen.SpecimenRef{
		ID:      core.SpecimenID(id),
		Name:    genus + " " + species,
		Genus:   genus,
		Species: species,
		Notes:   notes,
	}
}

func intPtr(v int) *int { return &v }

func baseProfile() breeding.GeneticProfile {
	return breeding.GeneticProfile{
		Genus:           "Cattleya",
		Species:         "labiata",
		ChromosomeCount: intPtr(40),
		Ploidy:          breeding.PloidyDiploid,
		Fertility:       breeding.FertilityFertile,
		BreedingGroup:   breeding.GroupStandard,
		GrowthHabit:     breeding.HabitSympodial,
		BloomSeasons:    []breeding.Season{breeding.SeasonFall},
		Temperature:     breeding.TempIntermediate,
	}
}

// syntheticReference has two mutually compatible genera with nothing in common.
func syntheticReference(t *testing.T) *reference.ReferenceData {
	t.Helper()
	rd, err := reference.New(reference.Tables{
		ChromosomeCounts: map[string]int{"Alpha": 20, "Beta": 60},
		Temperatures: map[string]breeding.Temperature{
			"Alpha": breeding.TempCool,
			"Beta":  breeding.TempWarm,
		},
		MonopodialGenera: []string{"Beta"},
		CompatibleGenera: map[string][]string{"Alpha": {"Alpha", "Beta"}},
		Timelines:        reference.DefaultTables().Timelines,
	})
	require.NoError(t, err)
	return rd
}

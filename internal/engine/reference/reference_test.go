package reference

import (
	"os"
	"path/filepath"
	"testing"

	"orchidbreed/domain/breeding"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLookups(t *testing.T) {
	rd := Default()

	count, ok := rd.ChromosomeCount("cattleya")
	assert.True(t, ok)
	assert.Equal(t, 40, count)

	_, ok = rd.ChromosomeCount("Unknownia")
	assert.False(t, ok)

	assert.Equal(t, breeding.TempWarm, rd.Temperature("Phalaenopsis"))
	assert.Equal(t, breeding.TempIntermediate, rd.Temperature("Unknownia"))

	assert.Equal(t, breeding.HabitMonopodial, rd.GrowthHabit("VANDA"))
	assert.Equal(t, breeding.HabitSympodial, rd.GrowthHabit("Cattleya"))

	assert.Equal(t, 1.2, rd.SuccessModifier("Cattleya"))
	assert.Equal(t, 1.0, rd.SuccessModifier("Unknownia"))
}

func TestPairLookupsAreUnordered(t *testing.T) {
	rd := Default()

	assert.Equal(t, rd.Affinity("Cattleya", "Laelia"), rd.Affinity("Laelia", "Cattleya"))
	assert.Equal(t, 0.9, rd.Affinity("laelia", "CATTLEYA"))
	assert.Equal(t, 0.0, rd.Affinity("Cattleya", "Paphiopedilum"))

	assert.True(t, rd.HasHistoricalSuccess("Brassavola", "Cattleya"))
	assert.True(t, rd.HasHistoricalSuccess("Cattleya", "Cattleya"))
	assert.False(t, rd.HasHistoricalSuccess("Cattleya", "Vanda"))
}

func TestCompatibleGeneraDefaultsToOwnGenus(t *testing.T) {
	rd := Default()

	assert.Equal(t, []string{"Masdevallia"}, rd.CompatibleGenera(" Masdevallia "))

	list := rd.CompatibleGenera("Cattleya")
	assert.Contains(t, list, "Laelia")
	list[0] = "mutated"
	assert.Equal(t, "Cattleya", rd.CompatibleGenera("Cattleya")[0], "callers must receive a copy")
}

func TestTimelinesAreMonotonicallyStricter(t *testing.T) {
	rd := Default()

	prev := rd.Timeline(breeding.DifficultyBeginner)
	assert.Equal(t, breeding.Timeline{
		PollinationWindowDays:       30,
		SeedDevelopmentMonths:       6,
		GerminationDays:             90,
		SeedlingEstablishmentMonths: 12,
		FirstFloweringYears:         3,
	}, prev)

	for _, tier := range breeding.Difficulties[1:] {
		tl := rd.Timeline(tier)
		assert.Less(t, tl.PollinationWindowDays, prev.PollinationWindowDays, tier)
		assert.Greater(t, tl.SeedDevelopmentMonths, prev.SeedDevelopmentMonths, tier)
		assert.Greater(t, tl.GerminationDays, prev.GerminationDays, tier)
		assert.Greater(t, tl.SeedlingEstablishmentMonths, prev.SeedlingEstablishmentMonths, tier)
		assert.Greater(t, tl.FirstFloweringYears, prev.FirstFloweringYears, tier)
		prev = tl
	}

	assert.Equal(t, 8, rd.Timeline(breeding.DifficultyResearchGrade).FirstFloweringYears)
}

func TestNewRejectsInvalidTables(t *testing.T) {
	tables := DefaultTables()
	tables.Temperatures["Cattleya"] = "tropical"
	_, err := New(tables)
	assert.Error(t, err)

	tables = DefaultTables()
	tables.IntergenericAffinity = append(tables.IntergenericAffinity, GenusPair{Genera: []string{"A", "B"}, Affinity: 1.5})
	_, err = New(tables)
	assert.Error(t, err)

	tables = DefaultTables()
	delete(tables.Timelines, breeding.DifficultyAdvanced)
	_, err = New(tables)
	assert.Error(t, err)
}

func TestParseOverridesOnlyNamedTables(t *testing.T) {
	doc := []byte(`
chromosome_counts:
  Cattleya: 80
historical_successes:
  - [Vanda, Cattleya]
timelines:
  beginner:
    pollination_window_days: 28
    seed_development_months: 6
    germination_days: 90
    seedling_establishment_months: 12
    first_flowering_years: 3
`)
	rd, err := Parse(doc)
	require.NoError(t, err)

	count, ok := rd.ChromosomeCount("Cattleya")
	assert.True(t, ok)
	assert.Equal(t, 80, count)

	_, ok = rd.ChromosomeCount("Laelia")
	assert.False(t, ok, "an overridden table replaces the default table")

	assert.True(t, rd.HasHistoricalSuccess("Cattleya", "Vanda"))
	assert.False(t, rd.HasHistoricalSuccess("Cattleya", "Laelia"))

	assert.Equal(t, breeding.TempWarm, rd.Temperature("Phalaenopsis"), "untouched tables keep defaults")
	assert.Equal(t, 28, rd.Timeline(breeding.DifficultyBeginner).PollinationWindowDays)
	assert.Equal(t, 7, rd.Timeline(breeding.DifficultyResearchGrade).PollinationWindowDays)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tables.yaml")
	require.NoError(t, os.WriteFile(path, []byte("success_modifiers:\n  Vanda: 2.0\n"), 0o600))

	rd, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2.0, rd.SuccessModifier("Vanda"))
	assert.Equal(t, 1.0, rd.SuccessModifier("Cattleya"))

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(path, []byte("chromosome_counts: [not, a, map]"), 0o600))
	_, err = LoadFile(path)
	assert.Error(t, err)
}

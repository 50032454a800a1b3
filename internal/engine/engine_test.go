package engine

import (
	"context"
	"fmt"
	"testing"
	"time"

	"orchidbreed/domain/breeding"
	"orchidbreed/domain/core"
	"orchidbreed/domain/specimen"
	"orchidbreed/internal/engine/reference"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSpecimens() []specimen.SpecimenRef {
	return []specimen.SpecimenRef{
		ref("s1", "Cattleya", "labiata", "Blooms in fall"),
		ref("s2", "Cattleya", "mossiae", "Spring and fall bloomer"),
		ref("s3", "Laelia", "anceps", "Compact, winter flowering, slow growing"),
		ref("s4", "Phalaenopsis", "", "Sterile triploid hybrid"),
		ref("s5", "Vanda", "coerulea", "Difficult and rare; tetraploid"),
		ref("s6", "Paphiopedilum", "hybrid", "semi-fertile, finicky"),
		ref("s7", "Unknownia", "novus", ""),
		ref("s8", "Cymbidium", "eburneum", "miniature, summer"),
	}
}

func TestAssessCattleyaSpeciesCross(t *testing.T) {
	e := NewEngine(reference.Default(), Options{})

	a := e.Assess(
		ref("a", "Cattleya", "labiata", "Reliable grower, blooms in fall"),
		ref("b", "Cattleya", "mossiae", "Flowers in fall"),
	)

	assert.Greater(t, a.CompatibilityScore, 80.0)
	assert.Contains(t, []breeding.CompatibilityLevel{breeding.LevelGood, breeding.LevelExcellent}, a.CompatibilityLevel)
	assert.Equal(t, breeding.VigorHigh, a.HybridVigor)
	assert.Contains(t, []breeding.Difficulty{breeding.DifficultyBeginner, breeding.DifficultyIntermediate}, a.BreedingDifficulty)
	assert.Equal(t, e.Reference().Timeline(a.BreedingDifficulty), a.EstimatedTimeline)
	assert.Equal(t, "good, species crosses typically maintain fertility", a.FertilityPrediction)
	assert.LessOrEqual(t, len(a.PotentialChallenges), 5)
	assert.LessOrEqual(t, len(a.BreedingAdvantages), 4)
	assert.False(t, a.HasNarrative())
}

func TestAssessBoundsAndSymmetry(t *testing.T) {
	e := NewEngine(reference.Default(), Options{})
	specimens := sampleSpecimens()

	for i := range specimens {
		for j := range specimens {
			if i == j {
				continue
			}
			ab := e.Assess(specimens[i], specimens[j])
			ba := e.Assess(specimens[j], specimens[i])
			name := fmt.Sprintf("%s x %s", specimens[i].ID, specimens[j].ID)

			assert.GreaterOrEqual(t, ab.CompatibilityScore, 0.0, name)
			assert.LessOrEqual(t, ab.CompatibilityScore, 100.0, name)
			assert.GreaterOrEqual(t, ab.SuccessProbability, 5.0, name)
			assert.LessOrEqual(t, ab.SuccessProbability, 95.0, name)

			assert.Equal(t, ab.CompatibilityScore, ba.CompatibilityScore, name)
			assert.Equal(t, ab.SuccessProbability, ba.SuccessProbability, name)
			assert.Equal(t, ab.CompatibilityLevel, ba.CompatibilityLevel, name)
			assert.Equal(t, ab.BreedingDifficulty, ba.BreedingDifficulty, name)
			assert.Equal(t, ab.PairKey(), ba.PairKey(), name)
		}
	}
}

func TestAssessIsIdempotent(t *testing.T) {
	e := NewEngine(reference.Default(), Options{})
	a, b := sampleSpecimens()[2], sampleSpecimens()[4]

	first := e.Assess(a, b)
	second := e.Assess(a, b)
	assert.Equal(t, first, second)
	assert.Equal(t, first.Fingerprint(), second.Fingerprint())

	enriched := first.WithNarrative("A promising but demanding cross.")
	assert.Equal(t, first.Fingerprint(), enriched.Fingerprint())
	assert.Empty(t, first.Narrative)
}

func TestFindPartners(t *testing.T) {
	e := NewEngine(reference.Default(), Options{})
	target := ref("t", "Cattleya", "labiata", "fall")
	pool := []specimen.SpecimenRef{
		target,
		ref("l1", "Laelia", "anceps", "winter"),
		ref("b1", "Brassavola", "nodosa", ""),
		ref("v1", "Vanda", "coerulea", ""),
		ref("c2", "Cattleya", "mossiae", "fall"),
		ref("c2", "Cattleya", "mossiae", "fall"),
		ref("p1", "Paphiopedilum", "insigne", ""),
	}

	matches, err := e.FindPartners(context.Background(), target, pool, PartnerQuery{})
	require.NoError(t, err)
	require.Len(t, matches, 3)

	ids := make([]core.SpecimenID, len(matches))
	for i, m := range matches {
		ids[i] = m.Specimen.ID
		assert.NotEqual(t, target.ID, m.Specimen.ID)
		assert.GreaterOrEqual(t, m.Assessment.CompatibilityScore, MinPartnerScore)
		assert.Equal(t, target.ID, m.Assessment.SpecimenA.ID)
		if i > 0 {
			assert.GreaterOrEqual(t, matches[i-1].Assessment.RankingScore(), m.Assessment.RankingScore())
		}
	}
	// all three rank equally here, so ids break the tie
	assert.Equal(t, []core.SpecimenID{"b1", "c2", "l1"}, ids)

	limited, err := e.FindPartners(context.Background(), target, pool, PartnerQuery{MaxResults: 1})
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, matches[0], limited[0])
}

func TestFindPartnersDropsLowScores(t *testing.T) {
	e := NewEngine(syntheticReference(t), Options{})
	target := ref("t", "Alpha", "prima", "blooms in winter")
	pool := []specimen.SpecimenRef{
		ref("weak", "Beta", "secunda", "sterile tetraploid, difficult, rare and slow growing, blooms in summer"),
		ref("ok", "Beta", "tertia", ""),
	}

	matches, err := e.FindPartners(context.Background(), target, pool, PartnerQuery{})
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, core.SpecimenID("ok"), matches[0].Specimen.ID)

	weak := e.Assess(target, pool[0])
	assert.Less(t, weak.CompatibilityScore, MinPartnerScore)
}

func TestFindPartnersSizeTraitFilter(t *testing.T) {
	e := NewEngine(reference.Default(), Options{})
	target := ref("t", "Cattleya", "labiata", "")
	pool := []specimen.SpecimenRef{
		ref("small", "Laelia", "pumila", "Compact plant"),
		ref("large", "Brassavola", "digbyana", "Large and vigorous"),
	}

	matches, err := e.FindPartners(context.Background(), target, pool, PartnerQuery{DesiredTraits: []string{"Compact", "fragrant"}})
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, core.SpecimenID("small"), matches[0].Specimen.ID)

	matches, err = e.FindPartners(context.Background(), target, pool, PartnerQuery{DesiredTraits: []string{"fragrant"}})
	require.NoError(t, err)
	assert.Len(t, matches, 2)
}

func TestCandidatesRespectPoolCap(t *testing.T) {
	e := NewEngine(reference.Default(), Options{PartnerPoolCap: 2})
	target := ref("t", "Cattleya", "labiata", "")
	var pool []specimen.SpecimenRef
	for i := 0; i < 5; i++ {
		pool = append(pool, ref(fmt.Sprintf("c%d", i), "cattleya", "x", ""))
	}

	assert.Len(t, e.Candidates(target, pool), 2)
}

func TestFindPartnersHonorsCancellation(t *testing.T) {
	e := NewEngine(reference.Default(), Options{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := e.FindPartners(ctx, ref("t", "Cattleya", "labiata", ""),
		[]specimen.SpecimenRef{ref("c", "Cattleya", "mossiae", "")}, PartnerQuery{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAnalyzeProgramRequiresTwoSpecimens(t *testing.T) {
	e := NewEngine(reference.Default(), Options{})

	_, err := e.AnalyzeProgram(context.Background(), nil)
	assert.True(t, core.IsInsufficientInputError(err))

	one := ref("a", "Cattleya", "labiata", "")
	_, err = e.AnalyzeProgram(context.Background(), []specimen.SpecimenRef{one, one})
	assert.True(t, core.IsInsufficientInputError(err), "duplicates count once")
}

func TestAnalyzeProgramRejectsOversizedPrograms(t *testing.T) {
	e := NewEngine(reference.Default(), Options{MaxProgramSpecimens: 3})

	_, err := e.AnalyzeProgram(context.Background(), sampleSpecimens()[:4])
	assert.True(t, core.IsProgramTooLargeError(err))
}

func TestAnalyzeProgramWithTwoSpecimens(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	e := NewEngine(reference.Default(), Options{Clock: func() time.Time { return now }})

	report, err := e.AnalyzeProgram(context.Background(), sampleSpecimens()[:2])
	require.NoError(t, err)

	assert.False(t, report.ID.String() == "")
	assert.Equal(t, now, report.GeneratedAt)
	assert.Equal(t, []core.SpecimenID{"s1", "s2"}, report.SpecimenIDs)
	assert.Equal(t, 2, report.Overview.TotalSpecimens)
	assert.Equal(t, 1, report.Overview.PairCount)
	require.Len(t, report.TopPairs, 1)
	assert.Equal(t, report.TopPairs[0].CompatibilityScore, report.Overview.MeanScore)
	assert.Equal(t, report.TopPairs[0].EstimatedTimeline, report.Timeline)
	assert.Equal(t, 0.0, report.Overview.ScoreStdDev)
}

func TestAnalyzeProgramAggregates(t *testing.T) {
	e := NewEngine(reference.Default(), Options{Workers: 3})
	specimens := sampleSpecimens()

	report, err := e.AnalyzeProgram(context.Background(), specimens)
	require.NoError(t, err)

	n := len(specimens)
	assert.Equal(t, n*(n-1)/2, report.Overview.PairCount)
	assert.Len(t, report.TopPairs, 10)
	for i := 1; i < len(report.TopPairs); i++ {
		assert.GreaterOrEqual(t, report.TopPairs[i-1].CompatibilityScore, report.TopPairs[i].CompatibilityScore)
	}
	assert.Equal(t, report.TopPairs[0].EstimatedTimeline, report.Timeline)
	assert.GreaterOrEqual(t, report.Overview.MeanScore, 0.0)
	assert.LessOrEqual(t, report.Overview.MeanScore, 100.0)

	d := report.Diversity
	assert.Equal(t, 7, d.DistinctGenera)
	assert.Equal(t, 8, d.DistinctSpecies)
	assert.Equal(t, 2, d.GenusHistogram["Cattleya"])
	assert.InDelta(t, 7.0/8.0, d.DiversityRatio, 1e-9)
	assert.Greater(t, d.ShannonIndex, 0.0)

	assert.NotEmpty(t, report.Resources.Space)
	require.GreaterOrEqual(t, len(report.Recommendations), 2)
	assert.Equal(t, programReminders, report.Recommendations[len(report.Recommendations)-2:])
}

func TestAnalyzeProgramSuggestsDiversity(t *testing.T) {
	e := NewEngine(reference.Default(), Options{})
	specimens := []specimen.SpecimenRef{
		ref("a", "Cattleya", "labiata", ""),
		ref("b", "cattleya", "mossiae", ""),
		ref("c", "Cattleya", "", ""),
	}

	report, err := e.AnalyzeProgram(context.Background(), specimens)
	require.NoError(t, err)

	assert.Equal(t, 1, report.Diversity.DistinctGenera)
	assert.Equal(t, map[string]int{"Cattleya": 3}, report.Diversity.GenusHistogram)
	assert.Equal(t, 0.0, report.Diversity.ShannonIndex)
	assert.Contains(t, report.Recommendations[0], "Only 1 genera")
	assert.Len(t, report.Recommendations, 5)
}

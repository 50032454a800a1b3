package engine

import (
	"testing"

	"orchidbreed/domain/breeding"
	"orchidbreed/internal/engine/reference"

	"github.com/stretchr/testify/assert"
)

func TestLevelThresholds(t *testing.T) {
	c := NewClassifier(reference.Default())

	tests := []struct {
		score float64
		want  breeding.CompatibilityLevel
	}{
		{100, breeding.LevelExcellent},
		{85, breeding.LevelExcellent},
		{84.99, breeding.LevelGood},
		{70, breeding.LevelGood},
		{50, breeding.LevelModerate},
		{30, breeding.LevelPoor},
		{29.99, breeding.LevelIncompatible},
		{0, breeding.LevelIncompatible},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, c.Level(tt.score), "score %v", tt.score)
	}
}

func TestDifficultyIsMonotonic(t *testing.T) {
	c := NewClassifier(reference.Default())

	p1 := baseProfile()
	p2 := baseProfile()
	p2.Species = "mossiae"

	steps := []func(){
		func() { p2.Genus = "Laelia" },
		func() { p2.Species = "hybrid" },
		func() { p2.ChromosomeCount = intPtr(60) },
		func() { p1.Fertility = breeding.FertilitySemiFertile },
		func() { p2.Fertility = breeding.FertilitySterile },
		func() { p1.Barriers = []breeding.Barrier{breeding.BarrierSlowGrowth} },
		func() {
			p2.Barriers = []breeding.Barrier{breeding.BarrierSlowGrowth, breeding.BarrierLimitedAvailability}
		},
		func() { p1.Barriers = append(p1.Barriers, breeding.BarrierDifficultCultivation) },
	}

	prevPoints := c.DifficultyPoints(p1, p2)
	prevTier := c.Difficulty(p1, p2)
	assert.Equal(t, breeding.DifficultyBeginner, prevTier)
	for i, step := range steps {
		step()
		points := c.DifficultyPoints(p1, p2)
		tier := c.Difficulty(p1, p2)
		assert.GreaterOrEqual(t, points, prevPoints, "step %d", i)
		assert.GreaterOrEqual(t, tier.Rank(), prevTier.Rank(), "step %d", i)
		prevPoints, prevTier = points, tier
	}
	// 1 +2 genus +1 hybrid +2 chromosomes +3 sterile +1.5 barriers
	assert.Equal(t, 10.5, prevPoints)
	assert.Equal(t, breeding.DifficultyResearchGrade, prevTier)
}

func TestDifficultyTiers(t *testing.T) {
	c := NewClassifier(reference.Default())
	p1 := baseProfile()
	p2 := baseProfile()

	assert.Equal(t, breeding.DifficultyBeginner, c.Difficulty(p1, p2))

	p2.Genus = "Laelia"
	assert.Equal(t, breeding.DifficultyIntermediate, c.Difficulty(p1, p2))

	p2.Fertility = breeding.FertilitySterile
	assert.Equal(t, breeding.DifficultyAdvanced, c.Difficulty(p1, p2))

	p2.ChromosomeCount = intPtr(30)
	assert.Equal(t, breeding.DifficultyExpertOnly, c.Difficulty(p1, p2))
}

func TestHybridVigor(t *testing.T) {
	c := NewClassifier(reference.Default())
	base := baseProfile()

	other := func(mod func(*breeding.GeneticProfile)) breeding.GeneticProfile {
		p := baseProfile()
		mod(&p)
		return p
	}

	assert.Equal(t, breeding.VigorExceptional, c.HybridVigor(base, other(func(p *breeding.GeneticProfile) { p.Genus = "Laelia" })))
	assert.Equal(t, breeding.VigorLow, c.HybridVigor(base, other(func(p *breeding.GeneticProfile) { p.Genus = "Vanda" })))
	assert.Equal(t, breeding.VigorHigh, c.HybridVigor(base, other(func(p *breeding.GeneticProfile) { p.Species = "mossiae" })))
	assert.Equal(t, breeding.VigorModerate, c.HybridVigor(base, other(func(p *breeding.GeneticProfile) { p.Species = "hybrid" })))
	assert.Equal(t, breeding.VigorLow, c.HybridVigor(base, base))
}

func TestBlendTemperatureMidpointsRoundHalfToEven(t *testing.T) {
	assert.Equal(t, breeding.TempCool, BlendTemperature(breeding.TempCool, breeding.TempIntermediate))
	assert.Equal(t, breeding.TempCool, BlendTemperature(breeding.TempIntermediate, breeding.TempCool))
	assert.Equal(t, breeding.TempWarm, BlendTemperature(breeding.TempIntermediate, breeding.TempWarm))
	assert.Equal(t, breeding.TempWarm, BlendTemperature(breeding.TempWarm, breeding.TempIntermediate))
	assert.Equal(t, breeding.TempIntermediate, BlendTemperature(breeding.TempCool, breeding.TempWarm))
	assert.Equal(t, breeding.TempCool, BlendTemperature(breeding.TempCool, breeding.TempCool))
}

func TestPredictedTraits(t *testing.T) {
	c := NewClassifier(reference.Default())

	p1 := baseProfile()
	p2 := baseProfile()
	p2.GrowthHabit = breeding.HabitMonopodial
	p2.Ploidy = breeding.PloidyTriploid
	p2.Fertility = breeding.FertilitySemiFertile
	p2.BreedingGroup = breeding.GroupMiniature
	p2.BloomSeasons = []breeding.Season{breeding.SeasonSpring, breeding.SeasonFall}

	traits := c.PredictedTraits(p1, p2, breeding.VigorHigh)
	assert.Equal(t, breeding.HabitSympodial, traits.GrowthHabit, "ties go to the first profile")
	assert.Equal(t, breeding.PloidyOutlookMostlySterile, traits.Ploidy)
	assert.Equal(t, breeding.FertilityOutlookModerate, traits.Fertility)
	assert.Equal(t, breeding.SizeCompactToStandard, traits.SizeCategory)
	assert.Equal(t, []breeding.Season{breeding.SeasonSpring, breeding.SeasonFall}, traits.BloomSeasons)
	assert.Equal(t, breeding.VigorHigh, traits.VigorExpectation)

	traits = c.PredictedTraits(p2, p1, breeding.VigorHigh)
	assert.Equal(t, breeding.HabitMonopodial, traits.GrowthHabit)

	p2.Ploidy = breeding.PloidyTetraploid
	p2.Fertility = breeding.FertilitySterile
	traits = c.PredictedTraits(p1, p2, breeding.VigorLow)
	assert.Equal(t, breeding.PloidyOutlookVariable, traits.Ploidy)
	assert.Equal(t, breeding.FertilityOutlookReduced, traits.Fertility)
}

func TestChallengesAndAdvantagesAreCapped(t *testing.T) {
	c := NewClassifier(reference.Default())

	p1 := baseProfile()
	p1.Fertility = breeding.FertilitySterile
	p1.Barriers = []breeding.Barrier{breeding.BarrierDifficultCultivation, breeding.BarrierSlowGrowth}
	p2 := baseProfile()
	p2.Genus = "Vanda"
	p2.ChromosomeCount = intPtr(60)
	p2.Temperature = breeding.TempWarm
	p2.Barriers = []breeding.Barrier{breeding.BarrierLimitedAvailability}

	challenges := c.Challenges(p1, p2)
	assert.Len(t, challenges, maxChallenges)
	assert.Contains(t, challenges[0], "Intergeneric")

	same := baseProfile()
	advantages := c.Advantages(same, same)
	assert.Len(t, advantages, maxAdvantages)
	assert.Empty(t, c.Challenges(same, same))
}

func TestFertilityPrediction(t *testing.T) {
	c := NewClassifier(reference.Default())
	p1 := baseProfile()
	p2 := baseProfile()

	assert.Equal(t, "excellent, intraspecific crosses maintain high fertility", c.FertilityPrediction(p1, p2))
	p2.Species = "mossiae"
	assert.Equal(t, "good, species crosses typically maintain fertility", c.FertilityPrediction(p1, p2))
	p2.Genus = "Laelia"
	assert.Equal(t, "variable, intergeneric hybrids may have reduced fertility", c.FertilityPrediction(p1, p2))
}

func TestCareRequirementsFollowBlendedTemperature(t *testing.T) {
	c := NewClassifier(reference.Default())
	p1 := baseProfile()
	p2 := baseProfile()
	p1.Temperature = breeding.TempCool
	p2.Temperature = breeding.TempWarm

	care := c.CareRequirements(p1, p2)
	assert.Contains(t, care.Temperature, "intermediate")
	assert.NotEmpty(t, care.Light)
	assert.NotEmpty(t, care.Humidity)
	assert.NotEmpty(t, care.Watering)
	assert.NotEmpty(t, care.Fertilizer)
	assert.NotEmpty(t, care.Potting)
}

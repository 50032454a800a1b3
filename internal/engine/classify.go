package engine

import (
	"fmt"
	"math"

	"orchidbreed/domain/breeding"
	"orchidbreed/internal/engine/reference"
)

const (
	maxChallenges = 5
	maxAdvantages = 4
)

const (
	fertilityIntergeneric  = "variable, intergeneric hybrids may have reduced fertility"
	fertilityInterspecific = "good, species crosses typically maintain fertility"
	fertilityIntraspecific = "excellent, intraspecific crosses maintain high fertility"
)

// Classifier turns scores and profiles into the enumerated and descriptive outputs.
type Classifier struct {
	ref *reference.ReferenceData
}

// NewClassifier creates a classifier over the given reference data.
func NewClassifier(ref *reference.ReferenceData) *Classifier {
	return &Classifier{ref: ref}
}

// Level maps a compatibility score onto a level.
func (c *Classifier) Level(score float64) breeding.CompatibilityLevel {
	switch {
	case score >= 85:
		return breeding.LevelExcellent
	case score >= 70:
		return breeding.LevelGood
	case score >= 50:
		return breeding.LevelModerate
	case score >= 30:
		return breeding.LevelPoor
	default:
		return breeding.LevelIncompatible
	}
}

// DifficultyPoints accumulates the raw difficulty total before tiering.
func (c *Classifier) DifficultyPoints(p1, p2 breeding.GeneticProfile) float64 {
	points := 1.0
	if !p1.SameGenus(p2) {
		points += 2
	}
	if p1.IsHybrid() || p2.IsHybrid() {
		points++
	}
	if diff, known := p1.ChromosomeDiff(p2); known && diff > 2 {
		points += 2
	}
	switch {
	case p1.Fertility == breeding.FertilitySterile || p2.Fertility == breeding.FertilitySterile:
		points += 3
	case p1.Fertility == breeding.FertilitySemiFertile || p2.Fertility == breeding.FertilitySemiFertile:
		points++
	}

	distinct := make(map[breeding.Barrier]bool)
	for _, b := range p1.Barriers {
		distinct[b] = true
	}
	for _, b := range p2.Barriers {
		distinct[b] = true
	}
	points += 0.5 * float64(len(distinct))

	return points
}

// Difficulty tiers the difficulty points.
func (c *Classifier) Difficulty(p1, p2 breeding.GeneticProfile) breeding.Difficulty {
	points := c.DifficultyPoints(p1, p2)
	switch {
	case points <= 2:
		return breeding.DifficultyBeginner
	case points <= 4:
		return breeding.DifficultyIntermediate
	case points <= 6:
		return breeding.DifficultyAdvanced
	case points <= 8:
		return breeding.DifficultyExpertOnly
	default:
		return breeding.DifficultyResearchGrade
	}
}

// HybridVigor estimates offspring vigor from taxonomic distance.
func (c *Classifier) HybridVigor(p1, p2 breeding.GeneticProfile) breeding.HybridVigor {
	if !p1.SameGenus(p2) {
		if c.ref.HasHistoricalSuccess(p1.Genus, p2.Genus) {
			return breeding.VigorExceptional
		}
		return breeding.VigorLow
	}
	if p1.IsHybrid() || p2.IsHybrid() {
		return breeding.VigorModerate
	}
	if !p1.SameSpecies(p2) {
		return breeding.VigorHigh
	}
	return breeding.VigorLow
}

// PredictedTraits combines the parents' traits into the expected offspring traits.
func (c *Classifier) PredictedTraits(p1, p2 breeding.GeneticProfile, vigor breeding.HybridVigor) breeding.PredictedTraits {
	traits := breeding.PredictedTraits{
		GrowthHabit:      dominant(p1.GrowthHabit, p2.GrowthHabit),
		Temperature:      BlendTemperature(p1.Temperature, p2.Temperature),
		BloomSeasons:     breeding.SortSeasons(append(append([]breeding.Season{}, p1.BloomSeasons...), p2.BloomSeasons...)),
		SizeCategory:     breeding.SizeStandard,
		VigorExpectation: vigor,
	}

	switch {
	case p1.Ploidy == breeding.PloidyDiploid && p2.Ploidy == breeding.PloidyDiploid:
		traits.Ploidy = breeding.PloidyOutlookDiploid
	case p1.Ploidy == breeding.PloidyTriploid || p2.Ploidy == breeding.PloidyTriploid:
		traits.Ploidy = breeding.PloidyOutlookMostlySterile
	default:
		traits.Ploidy = breeding.PloidyOutlookVariable
	}

	switch {
	case p1.Fertility == breeding.FertilityFertile && p2.Fertility == breeding.FertilityFertile:
		traits.Fertility = breeding.FertilityOutlookHigh
	case p1.Fertility == breeding.FertilitySterile || p2.Fertility == breeding.FertilitySterile:
		traits.Fertility = breeding.FertilityOutlookReduced
	default:
		traits.Fertility = breeding.FertilityOutlookModerate
	}

	if p1.BreedingGroup == breeding.GroupMiniature || p2.BreedingGroup == breeding.GroupMiniature {
		traits.SizeCategory = breeding.SizeCompactToStandard
	}

	return traits
}

// BlendTemperature returns the preference nearest the average of a and b on the
// cool=0, intermediate=1, warm=2 scale. Exact midpoints round half to even, so
// cool+intermediate gives cool and intermediate+warm gives warm.
func BlendTemperature(a, b breeding.Temperature) breeding.Temperature {
	avg := float64(a.Scale()+b.Scale()) / 2
	return breeding.TemperatureFromScale(int(math.RoundToEven(avg)))
}

// dominant picks the most frequent value; ties go to the first one seen.
func dominant[T comparable](values ...T) T {
	counts := make(map[T]int, len(values))
	best := values[0]
	for _, v := range values {
		counts[v]++
		if counts[v] > counts[best] {
			best = v
		}
	}
	return best
}

// Challenges lists what may go wrong with the cross, most serious first.
func (c *Classifier) Challenges(p1, p2 breeding.GeneticProfile) []string {
	out := make([]string, 0, maxChallenges)
	if !p1.SameGenus(p2) {
		out = append(out, fmt.Sprintf("Intergeneric cross (%s x %s) may give low seed viability", p1.Genus, p2.Genus))
	}
	if p1.Fertility != breeding.FertilityFertile || p2.Fertility != breeding.FertilityFertile {
		out = append(out, "Reduced fertility in one or both parents lowers pod set")
	}
	if diff, known := p1.ChromosomeDiff(p2); known && diff > 2 {
		out = append(out, fmt.Sprintf("Chromosome count mismatch (%d vs %d) may cause sterile offspring",
			*p1.ChromosomeCount, *p2.ChromosomeCount))
	}
	if p1.Temperature != p2.Temperature {
		out = append(out, fmt.Sprintf("Different temperature preferences (%s vs %s) complicate seedling culture",
			p1.Temperature, p2.Temperature))
	}
	for _, b := range breeding.SortBarriers(append(append([]breeding.Barrier{}, p1.Barriers...), p2.Barriers...)) {
		out = append(out, barrierChallenge(b))
	}
	if len(out) > maxChallenges {
		out = out[:maxChallenges]
	}
	return out
}

func barrierChallenge(b breeding.Barrier) string {
	switch b {
	case breeding.BarrierDifficultCultivation:
		return "Parent plants are difficult to keep in cultivation"
	case breeding.BarrierLimitedAvailability:
		return "Limited availability of parent material"
	case breeding.BarrierSlowGrowth:
		return "Slow growth extends the time to first flowering"
	default:
		return fmt.Sprintf("Breeding barrier: %s", b)
	}
}

// Advantages lists what favors the cross.
func (c *Classifier) Advantages(p1, p2 breeding.GeneticProfile) []string {
	out := make([]string, 0, maxAdvantages)
	if p1.SameGenus(p2) {
		out = append(out, "Same-genus crosses are generally reliable")
	}
	if p1.Fertility == breeding.FertilityFertile && p2.Fertility == breeding.FertilityFertile {
		out = append(out, "Both parents are fully fertile")
	}
	if c.ref.HasHistoricalSuccess(p1.Genus, p2.Genus) {
		out = append(out, fmt.Sprintf("%s x %s crosses have a record of success", p1.Genus, p2.Genus))
	}
	if p1.GrowthHabit == p2.GrowthHabit {
		out = append(out, fmt.Sprintf("Matching %s growth habit", p1.GrowthHabit))
	}
	if BlendTemperature(p1.Temperature, p2.Temperature) == breeding.TempIntermediate {
		out = append(out, "Offspring should tolerate intermediate temperatures")
	}
	if len(out) > maxAdvantages {
		out = out[:maxAdvantages]
	}
	return out
}

// CareRequirements fills the fixed care template; only temperature is computed.
func (c *Classifier) CareRequirements(p1, p2 breeding.GeneticProfile) breeding.CareRequirements {
	return breeding.CareRequirements{
		Temperature: temperatureGuidance(BlendTemperature(p1.Temperature, p2.Temperature)),
		Light:       "Bright, indirect light; shade seedlings from direct sun",
		Humidity:    "50-70% relative humidity with steady air movement",
		Watering:    "Keep seedlings evenly moist; let mature plants dry slightly between waterings",
		Fertilizer:  "Quarter-strength balanced fertilizer weekly during active growth",
		Potting:     "Deflask into fine bark or sphagnum community pots, then pot on yearly",
	}
}

func temperatureGuidance(t breeding.Temperature) string {
	switch t {
	case breeding.TempCool:
		return "cool: 10-24°C (50-75°F) with a distinct night drop"
	case breeding.TempWarm:
		return "warm: 18-32°C (65-90°F), nights not below 18°C"
	default:
		return "intermediate: 13-29°C (55-85°F)"
	}
}

// FertilityPrediction states the fertility outlook for the offspring.
func (c *Classifier) FertilityPrediction(p1, p2 breeding.GeneticProfile) string {
	switch {
	case !p1.SameGenus(p2):
		return fertilityIntergeneric
	case !p1.SameSpecies(p2):
		return fertilityInterspecific
	default:
		return fertilityIntraspecific
	}
}

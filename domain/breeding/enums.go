// Package breeding defines the value types produced by the breeding compatibility engine.
package breeding

// Ploidy is the number of chromosome-set copies.
type Ploidy string

const (
	PloidyDiploid    Ploidy = "diploid"
	PloidyTriploid   Ploidy = "triploid"
	PloidyTetraploid Ploidy = "tetraploid"
)

// Fertility describes whether a specimen sets viable seed.
type Fertility string

const (
	FertilityFertile     Fertility = "fertile"
	FertilitySemiFertile Fertility = "semi_fertile"
	FertilitySterile     Fertility = "sterile"
)

// BreedingGroup is inferred from cultivation notes.
type BreedingGroup string

const (
	GroupStandard  BreedingGroup = "standard"
	GroupMiniature BreedingGroup = "miniature"
	GroupSpecies   BreedingGroup = "species"
	GroupComplex   BreedingGroup = "complex"
)

// GrowthHabit is sympodial unless the genus is known to be monopodial.
type GrowthHabit string

const (
	HabitSympodial  GrowthHabit = "sympodial"
	HabitMonopodial GrowthHabit = "monopodial"
)

// Season is a blooming season. SeasonYearRound is used when notes name no season.
type Season string

const (
	SeasonSpring    Season = "spring"
	SeasonSummer    Season = "summer"
	SeasonFall      Season = "fall"
	SeasonWinter    Season = "winter"
	SeasonYearRound Season = "year_round"
)

// Temperature is a growing-temperature preference.
type Temperature string

const (
	TempCool         Temperature = "cool"
	TempIntermediate Temperature = "intermediate"
	TempWarm         Temperature = "warm"
)

// Scale maps the preference onto cool=0, intermediate=1, warm=2.
// Unknown values sit at intermediate.
func (t Temperature) Scale() int {
	switch t {
	case TempCool:
		return 0
	case TempWarm:
		return 2
	default:
		return 1
	}
}

// TemperatureFromScale is the inverse of Scale, clamped to the 0..2 range.
func TemperatureFromScale(v int) Temperature {
	switch {
	case v <= 0:
		return TempCool
	case v >= 2:
		return TempWarm
	default:
		return TempIntermediate
	}
}

// Barrier is a cultivation obstacle tag.
type Barrier string

const (
	BarrierDifficultCultivation Barrier = "difficult_cultivation"
	BarrierLimitedAvailability  Barrier = "limited_availability"
	BarrierSlowGrowth           Barrier = "slow_growth"
)

// CompatibilityLevel classifies a compatibility score.
type CompatibilityLevel string

const (
	LevelExcellent    CompatibilityLevel = "excellent"
	LevelGood         CompatibilityLevel = "good"
	LevelModerate     CompatibilityLevel = "moderate"
	LevelPoor         CompatibilityLevel = "poor"
	LevelIncompatible CompatibilityLevel = "incompatible"
)

// Difficulty is the breeding difficulty tier.
type Difficulty string

const (
	DifficultyBeginner      Difficulty = "beginner"
	DifficultyIntermediate  Difficulty = "intermediate"
	DifficultyAdvanced      Difficulty = "advanced"
	DifficultyExpertOnly    Difficulty = "expert_only"
	DifficultyResearchGrade Difficulty = "research_grade"
)

// Difficulties lists the tiers from easiest to hardest.
var Difficulties = []Difficulty{
	DifficultyBeginner,
	DifficultyIntermediate,
	DifficultyAdvanced,
	DifficultyExpertOnly,
	DifficultyResearchGrade,
}

// Rank returns the tier's position in Difficulties, or -1 when unknown.
func (d Difficulty) Rank() int {
	for i, tier := range Difficulties {
		if tier == d {
			return i
		}
	}
	return -1
}

// HybridVigor is the expected offspring vigor tier.
type HybridVigor string

const (
	VigorExceptional HybridVigor = "exceptional"
	VigorHigh        HybridVigor = "high"
	VigorModerate    HybridVigor = "moderate"
	VigorLow         HybridVigor = "low"
	VigorUnknown     HybridVigor = "unknown"
)

// PloidyOutlook is the predicted offspring ploidy.
type PloidyOutlook string

const (
	PloidyOutlookDiploid       PloidyOutlook = "diploid"
	PloidyOutlookMostlySterile PloidyOutlook = "mostly_sterile"
	PloidyOutlookVariable      PloidyOutlook = "variable"
)

// FertilityOutlook is the predicted offspring fertility.
type FertilityOutlook string

const (
	FertilityOutlookHigh     FertilityOutlook = "high_fertility"
	FertilityOutlookReduced  FertilityOutlook = "reduced_fertility"
	FertilityOutlookModerate FertilityOutlook = "moderate_fertility"
)

// SizeCategory is the predicted offspring size.
type SizeCategory string

const (
	SizeStandard          SizeCategory = "standard"
	SizeCompactToStandard SizeCategory = "compact_to_standard"
)

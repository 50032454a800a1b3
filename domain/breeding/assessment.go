package breeding

import (
	"fmt"
	"strings"

	"orchidbreed/domain/core"
	"orchidbreed/domain/specimen"
)

// Timeline holds the expected durations of a breeding attempt.
type Timeline struct {
	PollinationWindowDays       int `json:"pollination_window_days" yaml:"pollination_window_days"`
	SeedDevelopmentMonths       int `json:"seed_development_months" yaml:"seed_development_months"`
	GerminationDays             int `json:"germination_days" yaml:"germination_days"`
	SeedlingEstablishmentMonths int `json:"seedling_establishment_months" yaml:"seedling_establishment_months"`
	FirstFloweringYears         int `json:"first_flowering_years" yaml:"first_flowering_years"`
}

// PredictedTraits describes what a breeder should expect from the offspring.
type PredictedTraits struct {
	GrowthHabit      GrowthHabit      `json:"growth_habit"`
	Temperature      Temperature      `json:"temperature_preference"`
	Ploidy           PloidyOutlook    `json:"ploidy"`
	Fertility        FertilityOutlook `json:"fertility"`
	BloomSeasons     []Season         `json:"bloom_seasons"`
	SizeCategory     SizeCategory     `json:"size_category"`
	VigorExpectation HybridVigor      `json:"vigor_expectation"`
}

// CareRequirements is the fixed care template; only Temperature varies per pair.
type CareRequirements struct {
	Temperature string `json:"temperature"`
	Light       string `json:"light"`
	Humidity    string `json:"humidity"`
	Watering    string `json:"watering"`
	Fertilizer  string `json:"fertilizer"`
	Potting     string `json:"potting"`
}

// CompatibilityAssessment is the full analysis of one breeding pair.
// It is built once per query and never mutated afterwards.
type CompatibilityAssessment struct {
	SpecimenA           specimen.SpecimenRef `json:"specimen_a"`
	SpecimenB           specimen.SpecimenRef `json:"specimen_b"`
	CompatibilityScore  float64              `json:"compatibility_score"`
	SuccessProbability  float64              `json:"success_probability"`
	CompatibilityLevel  CompatibilityLevel   `json:"compatibility_level"`
	BreedingDifficulty  Difficulty           `json:"breeding_difficulty"`
	HybridVigor         HybridVigor          `json:"hybrid_vigor"`
	EstimatedTimeline   Timeline             `json:"estimated_timeline"`
	PredictedTraits     PredictedTraits      `json:"predicted_traits"`
	PotentialChallenges []string             `json:"potential_challenges"`
	BreedingAdvantages  []string             `json:"breeding_advantages"`
	CareRequirements    CareRequirements     `json:"care_requirements"`
	FertilityPrediction string               `json:"fertility_prediction"`
	Narrative           string               `json:"narrative,omitempty"`
}

// RankingScore weights compatibility and success probability for partner ranking.
func (a CompatibilityAssessment) RankingScore() float64 {
	return 0.6*a.CompatibilityScore + 0.4*a.SuccessProbability
}

// HasNarrative reports whether enrichment supplied a narrative.
func (a CompatibilityAssessment) HasNarrative() bool {
	return strings.TrimSpace(a.Narrative) != ""
}

// WithNarrative returns a copy carrying the narrative; the receiver is unchanged.
func (a CompatibilityAssessment) WithNarrative(text string) CompatibilityAssessment {
	out := a
	out.Narrative = strings.TrimSpace(text)
	return out
}

// PairKey identifies the pair independent of argument order.
func (a CompatibilityAssessment) PairKey() string {
	x, y := a.SpecimenA.ID.String(), a.SpecimenB.ID.String()
	if y < x {
		x, y = y, x
	}
	return x + "|" + y
}

// Fingerprint hashes the numeric and classification outputs. Narrative is excluded.
func (a CompatibilityAssessment) Fingerprint() core.Hash {
	return core.ComputeFieldsHash(map[string]interface{}{
		"pair":        a.PairKey(),
		"score":       fmt.Sprintf("%.6f", a.CompatibilityScore),
		"probability": fmt.Sprintf("%.6f", a.SuccessProbability),
		"level":       a.CompatibilityLevel,
		"difficulty":  a.BreedingDifficulty,
		"vigor":       a.HybridVigor,
		"timeline":    a.EstimatedTimeline,
		"traits":      fmt.Sprintf("%v", a.PredictedTraits),
		"challenges":  strings.Join(a.PotentialChallenges, "\n"),
		"advantages":  strings.Join(a.BreedingAdvantages, "\n"),
		"care":        a.CareRequirements,
		"fertility":   a.FertilityPrediction,
	})
}

// PartnerMatch pairs a candidate specimen with its assessment against the target.
type PartnerMatch struct {
	Specimen   specimen.SpecimenRef    `json:"specimen"`
	Assessment CompatibilityAssessment `json:"assessment"`
}

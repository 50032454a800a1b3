package ai

import (
	"fmt"
	"strings"

	"orchidbreed/domain/breeding"
)

// CompileNarrativeFragments converts an assessment into short prompt fragments that
// anchor the model to the computed result rather than to general orchid lore.
func CompileNarrativeFragments(a breeding.CompatibilityAssessment) []string {
	var out []string

	switch a.CompatibilityLevel {
	case breeding.LevelExcellent, breeding.LevelGood:
		out = append(out, "PRIORITY: The engine rates this cross favorably; explain why without overstating certainty.")
	case breeding.LevelPoor, breeding.LevelIncompatible:
		out = append(out, "CAUTION: The engine rates this cross poorly; lead with the obstacles.")
	}

	if len(a.PotentialChallenges) > 0 {
		out = append(out, "CHALLENGES: "+strings.Join(a.PotentialChallenges, "; ")+".")
	}
	if len(a.BreedingAdvantages) > 0 {
		out = append(out, "ADVANTAGES: "+strings.Join(a.BreedingAdvantages, "; ")+".")
	}

	if a.BreedingDifficulty.Rank() >= breeding.DifficultyExpertOnly.Rank() {
		out = append(out, "AUDIENCE: Recommend this only to growers with flasking experience.")
	}

	out = append(out, fmt.Sprintf("OFFSPRING: expect %s growth, %s temperatures, %s.",
		a.PredictedTraits.GrowthHabit, a.PredictedTraits.Temperature,
		strings.ReplaceAll(string(a.PredictedTraits.Fertility), "_", " ")))

	return out
}

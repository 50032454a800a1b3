package ai

import (
	"fmt"
	"strings"

	"orchidbreed/domain/breeding"
)

// NarrativePromptName is the template used for breeding narratives
const NarrativePromptName = "breeding_narrative"

const defaultNarrativePrompt = `You are an experienced orchid hybridizer writing for hobbyist breeders.

Summarize the proposed cross below in one paragraph of at most 120 words.
Mention what makes it promising, the main risk, and what the grower should expect.
Do not invent numbers; use only the figures given.

CROSS: {PARENT_A} x {PARENT_B}
COMPATIBILITY: {SCORE}/100 ({LEVEL}), success probability {PROBABILITY}%
DIFFICULTY: {DIFFICULTY}; HYBRID VIGOR: {VIGOR}
FIRST FLOWERING: about {FIRST_FLOWERING_YEARS} years after pollination

{GUIDANCE}`

// BuildNarrativeReplacements maps an assessment onto the narrative template placeholders
func BuildNarrativeReplacements(a breeding.CompatibilityAssessment) map[string]string {
	return map[string]string{
		"PARENT_A":              parentLabel(a.SpecimenA.DisplayName(), a.SpecimenA.Genus, a.SpecimenA.Species),
		"PARENT_B":              parentLabel(a.SpecimenB.DisplayName(), a.SpecimenB.Genus, a.SpecimenB.Species),
		"SCORE":                 fmt.Sprintf("%.1f", a.CompatibilityScore),
		"LEVEL":                 string(a.CompatibilityLevel),
		"PROBABILITY":           fmt.Sprintf("%.1f", a.SuccessProbability),
		"DIFFICULTY":            string(a.BreedingDifficulty),
		"VIGOR":                 string(a.HybridVigor),
		"FIRST_FLOWERING_YEARS": fmt.Sprintf("%d", a.EstimatedTimeline.FirstFloweringYears),
		"GUIDANCE":              strings.Join(CompileNarrativeFragments(a), "\n"),
	}
}

// RenderNarrativePrompt renders the narrative template for one assessment
func (pm *PromptManager) RenderNarrativePrompt(a breeding.CompatibilityAssessment) (string, error) {
	return pm.RenderPrompt(NarrativePromptName, BuildNarrativeReplacements(a))
}

func parentLabel(display, genus, species string) string {
	taxon := strings.TrimSpace(genus + " " + species)
	if display == "" || display == taxon {
		return taxon
	}
	return fmt.Sprintf("%s (%s)", display, taxon)
}

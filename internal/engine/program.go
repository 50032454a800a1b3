package engine

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"

	"orchidbreed/domain/breeding"
	"orchidbreed/domain/core"
	"orchidbreed/domain/specimen"
)

const (
	minProgramSpecimens = 2
	topPairCount        = 10
	highPotentialScore  = 70.0
	diverseGenusCount   = 5
)

var programResources = breeding.ResourceEstimate{
	Space:     "Greenhouse bench or light shelf with room for flasks, community pots and growing-on seedlings",
	Equipment: "Sterile flasking setup, pressure cooker, laminar flow or still-air box, labels and a log book",
	Time:      "Several hours a month for pollination, sowing and replating, plus daily seedling care",
	Skill:     "Sterile technique and seedling culture; intergeneric work benefits from prior flasking experience",
	Cost:      "Moderate: flasking media and consumables, plus bench space held for several years",
}

var programReminders = []string{
	"Record every pollination with date, pod and pollen parent, and flasking outcome",
	"Plan for a multi-year timeline: most crosses take 3 to 8 years from pollination to first flower",
}

// AnalyzeProgram assesses every unordered pair of specimens and aggregates the results.
// Duplicate ids are counted once.
func (e *Engine) AnalyzeProgram(ctx context.Context, specimens []specimen.SpecimenRef) (*breeding.ProgramReport, error) {
	unique := dedupeSpecimens(specimens)
	if len(unique) < minProgramSpecimens {
		return nil, core.NewInsufficientInputError(len(unique), minProgramSpecimens)
	}
	if len(unique) > e.opts.MaxProgramSpecimens {
		return nil, core.NewProgramTooLargeError(len(unique), e.opts.MaxProgramSpecimens)
	}

	jobs := make([]pairJob, 0, len(unique)*(len(unique)-1)/2)
	for i := 0; i < len(unique); i++ {
		for j := i + 1; j < len(unique); j++ {
			jobs = append(jobs, pairJob{a: unique[i], b: unique[j]})
		}
	}
	assessments, err := e.assessAll(ctx, jobs)
	if err != nil {
		return nil, err
	}

	overview, err := summarizeScores(assessments)
	if err != nil {
		return nil, err
	}
	overview.TotalSpecimens = len(unique)

	ranked := make([]breeding.CompatibilityAssessment, len(assessments))
	copy(ranked, assessments)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].CompatibilityScore > ranked[j].CompatibilityScore
	})
	if len(ranked) > topPairCount {
		ranked = ranked[:topPairCount]
	}

	ids := make([]core.SpecimenID, len(unique))
	for i, s := range unique {
		ids[i] = s.ID
	}

	diversity := measureDiversity(unique)
	return &breeding.ProgramReport{
		ID:              core.NewReportID(),
		GeneratedAt:     e.opts.Clock().UTC(),
		SpecimenIDs:     ids,
		Overview:        overview,
		TopPairs:        ranked,
		Diversity:       diversity,
		Timeline:        ranked[0].EstimatedTimeline,
		Resources:       programResources,
		Recommendations: recommend(overview, diversity),
	}, nil
}

func dedupeSpecimens(specimens []specimen.SpecimenRef) []specimen.SpecimenRef {
	seen := make(map[core.SpecimenID]bool, len(specimens))
	out := make([]specimen.SpecimenRef, 0, len(specimens))
	for _, s := range specimens {
		if seen[s.ID] {
			continue
		}
		seen[s.ID] = true
		out = append(out, s)
	}
	return out
}

func summarizeScores(assessments []breeding.CompatibilityAssessment) (breeding.ProgramOverview, error) {
	overview := breeding.ProgramOverview{PairCount: len(assessments)}

	scores := make(stats.Float64Data, len(assessments))
	for i, a := range assessments {
		scores[i] = a.CompatibilityScore
		if a.CompatibilityScore >= highPotentialScore {
			overview.HighPotentialPairs++
		}
		if a.BreedingDifficulty == breeding.DifficultyBeginner {
			overview.BeginnerPairs++
		}
	}

	var err error
	if overview.MeanScore, err = stats.Mean(scores); err != nil {
		return overview, fmt.Errorf("mean score: %w", err)
	}
	if overview.MedianScore, err = stats.Median(scores); err != nil {
		return overview, fmt.Errorf("median score: %w", err)
	}
	if overview.ScoreStdDev, err = stats.StandardDeviation(scores); err != nil {
		return overview, fmt.Errorf("score stddev: %w", err)
	}
	return overview, nil
}

// measureDiversity groups genera case-insensitively and labels each by its first spelling.
func measureDiversity(specimens []specimen.SpecimenRef) breeding.GeneticDiversity {
	labels := make(map[string]string)
	var order []string
	histogram := make(map[string]int)
	species := make(map[string]bool)

	for _, s := range specimens {
		genus := strings.TrimSpace(s.Genus)
		key := strings.ToLower(genus)
		if _, ok := labels[key]; !ok {
			labels[key] = genus
			order = append(order, key)
		}
		histogram[labels[key]]++

		epithet := strings.ToLower(strings.TrimSpace(s.Species))
		if specimen.IsHybridSpecies(epithet) {
			epithet = specimen.HybridSentinel
		}
		species[key+"|"+epithet] = true
	}

	proportions := make([]float64, len(order))
	for i, key := range order {
		proportions[i] = float64(histogram[labels[key]]) / float64(len(specimens))
	}

	return breeding.GeneticDiversity{
		DistinctGenera:  len(order),
		DistinctSpecies: len(species),
		GenusHistogram:  histogram,
		DiversityRatio:  float64(len(order)) / float64(len(specimens)),
		ShannonIndex:    stat.Entropy(proportions),
	}
}

func recommend(overview breeding.ProgramOverview, diversity breeding.GeneticDiversity) []string {
	var out []string
	if diversity.DistinctGenera < diverseGenusCount {
		out = append(out, fmt.Sprintf(
			"Only %d genera represented; add specimens from other compatible genera to broaden the program",
			diversity.DistinctGenera))
	}
	if overview.HighPotentialPairs > 0 {
		out = append(out, fmt.Sprintf("%d of %d pairs score 70 or higher; prioritize these crosses",
			overview.HighPotentialPairs, overview.PairCount))
	} else {
		out = append(out, "No pair scores 70 or higher; consider adding closer relatives")
	}
	if overview.BeginnerPairs > 0 {
		out = append(out, fmt.Sprintf("%d pairs are beginner-level and suit first attempts", overview.BeginnerPairs))
	} else {
		out = append(out, "No beginner-level pairs; expect to need flasking experience")
	}
	return append(out, programReminders...)
}

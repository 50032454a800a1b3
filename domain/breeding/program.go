package breeding

import (
	"time"

	"orchidbreed/domain/core"
)

// ProgramReport aggregates every pairwise assessment of a breeding program.
type ProgramReport struct {
	ID              core.ReportID             `json:"id"`
	GeneratedAt     time.Time                 `json:"generated_at"`
	SpecimenIDs     []core.SpecimenID         `json:"specimen_ids"`
	Overview        ProgramOverview           `json:"overview"`
	TopPairs        []CompatibilityAssessment `json:"top_pairs"`
	Diversity       GeneticDiversity          `json:"genetic_diversity"`
	Timeline        Timeline                  `json:"representative_timeline"`
	Resources       ResourceEstimate          `json:"resource_estimate"`
	Recommendations []string                  `json:"recommendations"`
}

// ProgramOverview summarizes the pair scores.
type ProgramOverview struct {
	TotalSpecimens     int     `json:"total_specimens"`
	PairCount          int     `json:"pair_count"`
	MeanScore          float64 `json:"mean_compatibility_score"`
	MedianScore        float64 `json:"median_compatibility_score"`
	ScoreStdDev        float64 `json:"compatibility_score_stddev"`
	HighPotentialPairs int     `json:"high_potential_pairs"`
	BeginnerPairs      int     `json:"beginner_pairs"`
}

// GeneticDiversity describes the taxonomic spread of a program.
type GeneticDiversity struct {
	DistinctGenera  int            `json:"distinct_genera"`
	DistinctSpecies int            `json:"distinct_species"`
	GenusHistogram  map[string]int `json:"genus_histogram"`
	DiversityRatio  float64        `json:"diversity_ratio"`
	ShannonIndex    float64        `json:"shannon_index"`
}

// ResourceEstimate is a fixed guidance template, independent of inputs.
type ResourceEstimate struct {
	Space     string `json:"space"`
	Equipment string `json:"equipment"`
	Time      string `json:"time"`
	Skill     string `json:"skill"`
	Cost      string `json:"cost"`
}

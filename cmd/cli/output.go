package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"orchidbreed/domain/breeding"
	"orchidbreed/internal/usage"
)

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printAssessment(w io.Writer, a *breeding.CompatibilityAssessment) {
	fmt.Fprintf(w, "%s x %s\n", a.SpecimenA.DisplayName(), a.SpecimenB.DisplayName())
	fmt.Fprintf(w, "Compatibility: %.1f (%s)\n", a.CompatibilityScore, a.CompatibilityLevel)
	fmt.Fprintf(w, "Success probability: %.1f%%\n", a.SuccessProbability)
	fmt.Fprintf(w, "Difficulty: %s\n", a.BreedingDifficulty)
	fmt.Fprintf(w, "Hybrid vigor: %s\n", a.HybridVigor)
	fmt.Fprintf(w, "First flowering in about %d years\n", a.EstimatedTimeline.FirstFloweringYears)
	fmt.Fprintf(w, "Fertility: %s\n", a.FertilityPrediction)
	printList(w, "Challenges", a.PotentialChallenges)
	printList(w, "Advantages", a.BreedingAdvantages)
	if a.HasNarrative() {
		fmt.Fprintf(w, "\n%s\n", a.Narrative)
	}
}

func printPartners(w io.Writer, target string, matches []breeding.PartnerMatch) {
	if len(matches) == 0 {
		fmt.Fprintf(w, "No partners scoring at least 30 found for %s\n", target)
		return
	}
	fmt.Fprintf(w, "%-4s %-32s %7s %9s  %s\n", "#", "Partner", "Score", "Success", "Difficulty")
	for i, m := range matches {
		fmt.Fprintf(w, "%-4d %-32s %7.1f %8.1f%%  %s\n",
			i+1, truncate(m.Specimen.DisplayName(), 32),
			m.Assessment.CompatibilityScore, m.Assessment.SuccessProbability, m.Assessment.BreedingDifficulty)
	}
}

func printProgram(w io.Writer, r *breeding.ProgramReport) {
	o := r.Overview
	fmt.Fprintf(w, "Program %s\n", r.ID)
	fmt.Fprintf(w, "Specimens: %d, pairs: %d\n", o.TotalSpecimens, o.PairCount)
	fmt.Fprintf(w, "Score mean %.1f, median %.1f, stddev %.1f\n", o.MeanScore, o.MedianScore, o.ScoreStdDev)
	fmt.Fprintf(w, "High-potential pairs: %d, beginner pairs: %d\n", o.HighPotentialPairs, o.BeginnerPairs)
	fmt.Fprintf(w, "Diversity: %d genera, %d species, Shannon index %.2f\n",
		r.Diversity.DistinctGenera, r.Diversity.DistinctSpecies, r.Diversity.ShannonIndex)

	fmt.Fprintln(w, "\nTop pairs:")
	for i, a := range r.TopPairs {
		fmt.Fprintf(w, "%2d. %s x %s  %.1f (%s)\n", i+1, a.SpecimenA.DisplayName(), a.SpecimenB.DisplayName(), a.CompatibilityScore, a.CompatibilityLevel)
	}
	printList(w, "Recommendations", r.Recommendations)
}

func printUsage(w io.Writer, s *usage.Summary) {
	fmt.Fprintf(w, "LLM usage since %s\n", s.Since.Format("2006-01-02 15:04 MST"))
	for _, p := range s.Providers {
		fmt.Fprintf(w, "  %-10s %8d tokens  %5d requests\n", p.Provider, p.TotalTokens, p.RequestCount)
	}
	fmt.Fprintf(w, "  %-10s %8d tokens  %5d requests\n", "total", s.TotalTokens, s.TotalRequests)
}

func printList(w io.Writer, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(w, "%s:\n", title)
	for _, item := range items {
		fmt.Fprintf(w, "  - %s\n", item)
	}
}

func truncate(s string, n int) string {
	if len([]rune(s)) <= n {
		return s
	}
	return strings.TrimSpace(string([]rune(s)[:n-1])) + "…"
}

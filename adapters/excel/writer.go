package excel

import (
	"fmt"
	"sort"

	"github.com/xuri/excelize/v2"

	"orchidbreed/domain/breeding"
)

// Sheet names of an exported program report
const (
	SheetOverview        = "Overview"
	SheetPairs           = "Pairs"
	SheetDiversity       = "Diversity"
	SheetRecommendations = "Recommendations"
)

// BuildReportWorkbook lays a program report out over four sheets
func BuildReportWorkbook(r *breeding.ProgramReport) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetOverview); err != nil {
		f.Close()
		return nil, err
	}
	for _, name := range []string{SheetPairs, SheetDiversity, SheetRecommendations} {
		if _, err := f.NewSheet(name); err != nil {
			f.Close()
			return nil, err
		}
	}

	o := r.Overview
	overview := [][]interface{}{
		{"Report ID", r.ID.String()},
		{"Generated At", r.GeneratedAt.Format("2006-01-02 15:04:05 MST")},
		{"Total Specimens", o.TotalSpecimens},
		{"Pairs Assessed", o.PairCount},
		{"Mean Score", o.MeanScore},
		{"Median Score", o.MedianScore},
		{"Score Std Dev", o.ScoreStdDev},
		{"High-Potential Pairs", o.HighPotentialPairs},
		{"Beginner Pairs", o.BeginnerPairs},
		{"Pollination Window (days)", r.Timeline.PollinationWindowDays},
		{"Seed Development (months)", r.Timeline.SeedDevelopmentMonths},
		{"Germination (days)", r.Timeline.GerminationDays},
		{"Seedling Establishment (months)", r.Timeline.SeedlingEstablishmentMonths},
		{"First Flowering (years)", r.Timeline.FirstFloweringYears},
		{"Space", r.Resources.Space},
		{"Equipment", r.Resources.Equipment},
		{"Time", r.Resources.Time},
		{"Skill", r.Resources.Skill},
		{"Cost", r.Resources.Cost},
	}

	pairs := [][]interface{}{{"Rank", "Parent A", "Parent B", "Score", "Success %", "Level", "Difficulty", "Hybrid Vigor"}}
	for i, a := range r.TopPairs {
		pairs = append(pairs, []interface{}{
			i + 1, a.SpecimenA.DisplayName(), a.SpecimenB.DisplayName(),
			a.CompatibilityScore, a.SuccessProbability,
			string(a.CompatibilityLevel), string(a.BreedingDifficulty), string(a.HybridVigor),
		})
	}

	d := r.Diversity
	diversity := [][]interface{}{
		{"Distinct Genera", d.DistinctGenera},
		{"Distinct Species", d.DistinctSpecies},
		{"Diversity Ratio", d.DiversityRatio},
		{"Shannon Index", d.ShannonIndex},
		{},
		{"Genus", "Specimens"},
	}
	genera := make([]string, 0, len(d.GenusHistogram))
	for g := range d.GenusHistogram {
		genera = append(genera, g)
	}
	sort.Strings(genera)
	for _, g := range genera {
		diversity = append(diversity, []interface{}{g, d.GenusHistogram[g]})
	}

	recommendations := make([][]interface{}, len(r.Recommendations))
	for i, rec := range r.Recommendations {
		recommendations[i] = []interface{}{rec}
	}

	for sheet, rows := range map[string][][]interface{}{
		SheetOverview:        overview,
		SheetPairs:           pairs,
		SheetDiversity:       diversity,
		SheetRecommendations: recommendations,
	} {
		if err := writeRows(f, sheet, rows); err != nil {
			f.Close()
			return nil, fmt.Errorf("write %s sheet: %w", sheet, err)
		}
	}
	return f, nil
}

// WriteReportXLSX exports a program report to path
func WriteReportXLSX(path string, r *breeding.ProgramReport) error {
	f, err := BuildReportWorkbook(r)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.SaveAs(path)
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for r, row := range rows {
		for c, v := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}
	return nil
}

package reference

import (
	"fmt"

	"orchidbreed/domain/breeding"
)

// DefaultTables returns the built-in orchid reference tables.
// Each call returns fresh maps, so callers may edit the result before passing it to New.
func DefaultTables() Tables {
	return Tables{
		ChromosomeCounts: map[string]int{
			"Cattleya":      40,
			"Laelia":        40,
			"Brassavola":    40,
			"Rhyncholaelia": 40,
			"Sophronitis":   40,
			"Encyclia":      40,
			"Epidendrum":    40,
			"Dendrobium":    38,
			"Phalaenopsis":  38,
			"Doritis":       38,
			"Vanda":         38,
			"Ascocentrum":   38,
			"Rhynchostylis": 38,
			"Aerides":       38,
			"Paphiopedilum": 26,
			"Phragmipedium": 22,
			"Cymbidium":     40,
			"Oncidium":      56,
			"Odontoglossum": 56,
			"Miltonia":      60,
			"Miltoniopsis":  56,
			"Brassia":       60,
			"Masdevallia":   42,
			"Dracula":       42,
			"Zygopetalum":   48,
			"Angraecum":     42,
		},
		Temperatures: map[string]breeding.Temperature{
			"Cattleya":      breeding.TempIntermediate,
			"Laelia":        breeding.TempIntermediate,
			"Brassavola":    breeding.TempWarm,
			"Rhyncholaelia": breeding.TempWarm,
			"Sophronitis":   breeding.TempCool,
			"Encyclia":      breeding.TempIntermediate,
			"Epidendrum":    breeding.TempIntermediate,
			"Dendrobium":    breeding.TempIntermediate,
			"Phalaenopsis":  breeding.TempWarm,
			"Doritis":       breeding.TempWarm,
			"Vanda":         breeding.TempWarm,
			"Ascocentrum":   breeding.TempWarm,
			"Rhynchostylis": breeding.TempWarm,
			"Aerides":       breeding.TempWarm,
			"Paphiopedilum": breeding.TempIntermediate,
			"Phragmipedium": breeding.TempIntermediate,
			"Cymbidium":     breeding.TempCool,
			"Oncidium":      breeding.TempIntermediate,
			"Odontoglossum": breeding.TempCool,
			"Miltonia":      breeding.TempIntermediate,
			"Miltoniopsis":  breeding.TempCool,
			"Brassia":       breeding.TempIntermediate,
			"Masdevallia":   breeding.TempCool,
			"Dracula":       breeding.TempCool,
			"Zygopetalum":   breeding.TempIntermediate,
			"Angraecum":     breeding.TempWarm,
		},
		MonopodialGenera: []string{
			"Phalaenopsis", "Doritis", "Vanda", "Ascocentrum", "Rhynchostylis",
			"Aerides", "Angraecum", "Aerangis", "Neofinetia",
		},
		SuccessModifiers: map[string]float64{
			"Cattleya":      1.2,
			"Laelia":        1.1,
			"Brassavola":    1.1,
			"Phalaenopsis":  1.3,
			"Dendrobium":    1.1,
			"Cymbidium":     1.1,
			"Oncidium":      1.0,
			"Vanda":         1.0,
			"Paphiopedilum": 0.7,
			"Phragmipedium": 0.8,
			"Masdevallia":   0.8,
			"Dracula":       0.6,
			"Angraecum":     0.8,
		},
		IntergenericAffinity: []GenusPair{
			{Genera: []string{"Cattleya", "Laelia"}, Affinity: 0.9},
			{Genera: []string{"Cattleya", "Brassavola"}, Affinity: 0.8},
			{Genera: []string{"Cattleya", "Rhyncholaelia"}, Affinity: 0.85},
			{Genera: []string{"Cattleya", "Sophronitis"}, Affinity: 0.75},
			{Genera: []string{"Cattleya", "Encyclia"}, Affinity: 0.5},
			{Genera: []string{"Cattleya", "Epidendrum"}, Affinity: 0.55},
			{Genera: []string{"Laelia", "Brassavola"}, Affinity: 0.7},
			{Genera: []string{"Laelia", "Sophronitis"}, Affinity: 0.7},
			{Genera: []string{"Brassavola", "Rhyncholaelia"}, Affinity: 0.6},
			{Genera: []string{"Phalaenopsis", "Doritis"}, Affinity: 0.9},
			{Genera: []string{"Phalaenopsis", "Vanda"}, Affinity: 0.4},
			{Genera: []string{"Vanda", "Ascocentrum"}, Affinity: 0.85},
			{Genera: []string{"Vanda", "Rhynchostylis"}, Affinity: 0.7},
			{Genera: []string{"Vanda", "Aerides"}, Affinity: 0.6},
			{Genera: []string{"Oncidium", "Odontoglossum"}, Affinity: 0.8},
			{Genera: []string{"Oncidium", "Miltonia"}, Affinity: 0.7},
			{Genera: []string{"Oncidium", "Brassia"}, Affinity: 0.75},
			{Genera: []string{"Odontoglossum", "Miltoniopsis"}, Affinity: 0.6},
			{Genera: []string{"Miltonia", "Brassia"}, Affinity: 0.6},
		},
		HistoricalSuccesses: [][]string{
			{"Cattleya", "Cattleya"},
			{"Cattleya", "Laelia"},
			{"Cattleya", "Brassavola"},
			{"Cattleya", "Rhyncholaelia"},
			{"Cattleya", "Sophronitis"},
			{"Phalaenopsis", "Phalaenopsis"},
			{"Phalaenopsis", "Doritis"},
			{"Vanda", "Ascocentrum"},
			{"Oncidium", "Odontoglossum"},
			{"Oncidium", "Miltonia"},
			{"Oncidium", "Brassia"},
			{"Dendrobium", "Dendrobium"},
			{"Paphiopedilum", "Paphiopedilum"},
			{"Cymbidium", "Cymbidium"},
		},
		CompatibleGenera: map[string][]string{
			"Cattleya":      {"Cattleya", "Laelia", "Brassavola", "Rhyncholaelia", "Sophronitis", "Encyclia", "Epidendrum"},
			"Laelia":        {"Laelia", "Cattleya", "Brassavola", "Sophronitis"},
			"Brassavola":    {"Brassavola", "Cattleya", "Laelia", "Rhyncholaelia"},
			"Rhyncholaelia": {"Rhyncholaelia", "Cattleya", "Brassavola"},
			"Sophronitis":   {"Sophronitis", "Cattleya", "Laelia"},
			"Phalaenopsis":  {"Phalaenopsis", "Doritis", "Vanda"},
			"Doritis":       {"Doritis", "Phalaenopsis"},
			"Vanda":         {"Vanda", "Ascocentrum", "Rhynchostylis", "Aerides", "Phalaenopsis"},
			"Ascocentrum":   {"Ascocentrum", "Vanda"},
			"Oncidium":      {"Oncidium", "Odontoglossum", "Miltonia", "Brassia"},
			"Odontoglossum": {"Odontoglossum", "Oncidium", "Miltoniopsis"},
			"Miltonia":      {"Miltonia", "Oncidium", "Brassia"},
			"Brassia":       {"Brassia", "Oncidium", "Miltonia"},
		},
		Timelines: map[breeding.Difficulty]breeding.Timeline{
			breeding.DifficultyBeginner:      {PollinationWindowDays: 30, SeedDevelopmentMonths: 6, GerminationDays: 90, SeedlingEstablishmentMonths: 12, FirstFloweringYears: 3},
			breeding.DifficultyIntermediate:  {PollinationWindowDays: 21, SeedDevelopmentMonths: 8, GerminationDays: 120, SeedlingEstablishmentMonths: 18, FirstFloweringYears: 4},
			breeding.DifficultyAdvanced:      {PollinationWindowDays: 14, SeedDevelopmentMonths: 10, GerminationDays: 150, SeedlingEstablishmentMonths: 24, FirstFloweringYears: 5},
			breeding.DifficultyExpertOnly:    {PollinationWindowDays: 10, SeedDevelopmentMonths: 12, GerminationDays: 180, SeedlingEstablishmentMonths: 30, FirstFloweringYears: 6},
			breeding.DifficultyResearchGrade: {PollinationWindowDays: 7, SeedDevelopmentMonths: 15, GerminationDays: 240, SeedlingEstablishmentMonths: 36, FirstFloweringYears: 8},
		},
	}
}

// Default builds ReferenceData from DefaultTables. The built-in tables are known valid.
func Default() *ReferenceData {
	rd, err := New(DefaultTables())
	if err != nil {
		panic(fmt.Sprintf("reference: invalid default tables: %v", err))
	}
	return rd
}

// Package reference holds the static lookup tables the breeding engine scores against.
//
// A ReferenceData value is built once at start-up (from the compiled-in defaults or a
// YAML file) and injected into the engine. It is read-only afterwards, so it can be
// shared by any number of goroutines without locking.
package reference

import (
	"fmt"
	"sort"
	"strings"

	"orchidbreed/domain/breeding"
)

// GenusPair is an unordered pair of genera as written in table sources.
type GenusPair struct {
	Genera   []string `yaml:"genera"`
	Affinity float64  `yaml:"affinity,omitempty"`
}

// Tables is the serializable form of the reference data.
type Tables struct {
	ChromosomeCounts     map[string]int                            `yaml:"chromosome_counts"`
	Temperatures         map[string]breeding.Temperature           `yaml:"temperatures"`
	MonopodialGenera     []string                                  `yaml:"monopodial_genera"`
	SuccessModifiers     map[string]float64                        `yaml:"success_modifiers"`
	IntergenericAffinity []GenusPair                               `yaml:"intergeneric_affinity"`
	HistoricalSuccesses  [][]string                                `yaml:"historical_successes"`
	CompatibleGenera     map[string][]string                       `yaml:"compatible_genera"`
	Timelines            map[breeding.Difficulty]breeding.Timeline `yaml:"timelines"`
}

// ReferenceData is the normalized, read-only lookup structure.
type ReferenceData struct {
	chromosomeCounts map[string]int
	temperatures     map[string]breeding.Temperature
	monopodial       map[string]bool
	modifiers        map[string]float64
	affinity         map[string]float64
	historical       map[string]bool
	compatible       map[string][]string
	timelines        map[breeding.Difficulty]breeding.Timeline
}

// New validates and normalizes tables. Genus keys are matched case-insensitively.
func New(t Tables) (*ReferenceData, error) {
	rd := &ReferenceData{
		chromosomeCounts: make(map[string]int, len(t.ChromosomeCounts)),
		temperatures:     make(map[string]breeding.Temperature, len(t.Temperatures)),
		monopodial:       make(map[string]bool, len(t.MonopodialGenera)),
		modifiers:        make(map[string]float64, len(t.SuccessModifiers)),
		affinity:         make(map[string]float64, len(t.IntergenericAffinity)),
		historical:       make(map[string]bool, len(t.HistoricalSuccesses)),
		compatible:       make(map[string][]string, len(t.CompatibleGenera)),
		timelines:        make(map[breeding.Difficulty]breeding.Timeline, len(t.Timelines)),
	}

	for genus, count := range t.ChromosomeCounts {
		if count <= 0 {
			return nil, fmt.Errorf("chromosome count for %s must be positive, got %d", genus, count)
		}
		rd.chromosomeCounts[normalize(genus)] = count
	}

	for genus, temp := range t.Temperatures {
		switch temp {
		case breeding.TempCool, breeding.TempIntermediate, breeding.TempWarm:
		default:
			return nil, fmt.Errorf("unknown temperature %q for %s", temp, genus)
		}
		rd.temperatures[normalize(genus)] = temp
	}

	for _, genus := range t.MonopodialGenera {
		rd.monopodial[normalize(genus)] = true
	}

	for genus, mod := range t.SuccessModifiers {
		if mod <= 0 {
			return nil, fmt.Errorf("success modifier for %s must be positive, got %v", genus, mod)
		}
		rd.modifiers[normalize(genus)] = mod
	}

	for _, pair := range t.IntergenericAffinity {
		if len(pair.Genera) != 2 {
			return nil, fmt.Errorf("affinity entry must name exactly two genera, got %v", pair.Genera)
		}
		if pair.Affinity < 0 || pair.Affinity > 1 {
			return nil, fmt.Errorf("affinity for %s x %s must be within [0,1], got %v",
				pair.Genera[0], pair.Genera[1], pair.Affinity)
		}
		rd.affinity[PairKey(pair.Genera[0], pair.Genera[1])] = pair.Affinity
	}

	for _, pair := range t.HistoricalSuccesses {
		if len(pair) != 2 {
			return nil, fmt.Errorf("historical success entry must name exactly two genera, got %v", pair)
		}
		rd.historical[PairKey(pair[0], pair[1])] = true
	}

	for genus, list := range t.CompatibleGenera {
		cp := make([]string, 0, len(list))
		for _, g := range list {
			if g = strings.TrimSpace(g); g != "" {
				cp = append(cp, g)
			}
		}
		rd.compatible[normalize(genus)] = cp
	}

	for _, tier := range breeding.Difficulties {
		tl, ok := t.Timelines[tier]
		if !ok {
			return nil, fmt.Errorf("missing timeline preset for %s", tier)
		}
		rd.timelines[tier] = tl
	}

	return rd, nil
}

// PairKey builds the order-independent lookup key for two genera.
func PairKey(a, b string) string {
	x, y := normalize(a), normalize(b)
	if y < x {
		x, y = y, x
	}
	return x + "|" + y
}

func normalize(genus string) string {
	return strings.ToLower(strings.TrimSpace(genus))
}

// ChromosomeCount returns the genus estimate, if known.
func (rd *ReferenceData) ChromosomeCount(genus string) (int, bool) {
	n, ok := rd.chromosomeCounts[normalize(genus)]
	return n, ok
}

// Temperature returns the genus preference, intermediate when unmapped.
func (rd *ReferenceData) Temperature(genus string) breeding.Temperature {
	if t, ok := rd.temperatures[normalize(genus)]; ok {
		return t
	}
	return breeding.TempIntermediate
}

// GrowthHabit returns monopodial for listed genera, sympodial otherwise.
func (rd *ReferenceData) GrowthHabit(genus string) breeding.GrowthHabit {
	if rd.monopodial[normalize(genus)] {
		return breeding.HabitMonopodial
	}
	return breeding.HabitSympodial
}

// SuccessModifier returns the genus breeding-success multiplier, 1.0 when unmapped.
func (rd *ReferenceData) SuccessModifier(genus string) float64 {
	if m, ok := rd.modifiers[normalize(genus)]; ok {
		return m
	}
	return 1.0
}

// Affinity returns the intergeneric affinity of an unordered pair, 0 when absent.
func (rd *ReferenceData) Affinity(a, b string) float64 {
	return rd.affinity[PairKey(a, b)]
}

// HasHistoricalSuccess reports whether the unordered pair has bred successfully before.
func (rd *ReferenceData) HasHistoricalSuccess(a, b string) bool {
	return rd.historical[PairKey(a, b)]
}

// CompatibleGenera returns the genera searched for partners of genus.
// Unmapped genera only search their own genus. The returned slice is a copy.
func (rd *ReferenceData) CompatibleGenera(genus string) []string {
	list, ok := rd.compatible[normalize(genus)]
	if !ok || len(list) == 0 {
		return []string{strings.TrimSpace(genus)}
	}
	out := make([]string, len(list))
	copy(out, list)
	return out
}

// Timeline returns the preset for a difficulty tier, falling back to research-grade.
func (rd *ReferenceData) Timeline(d breeding.Difficulty) breeding.Timeline {
	if tl, ok := rd.timelines[d]; ok {
		return tl
	}
	return rd.timelines[breeding.DifficultyResearchGrade]
}

// KnownGenera lists every genus mentioned by any per-genus table, sorted.
func (rd *ReferenceData) KnownGenera() []string {
	seen := make(map[string]bool)
	for g := range rd.chromosomeCounts {
		seen[g] = true
	}
	for g := range rd.temperatures {
		seen[g] = true
	}
	for g := range rd.modifiers {
		seen[g] = true
	}
	out := make([]string, 0, len(seen))
	for g := range seen {
		out = append(out, g)
	}
	sort.Strings(out)
	return out
}

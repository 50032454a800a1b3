package breeding

import (
	"sort"
	"strings"

	"orchidbreed/domain/specimen"
)

// GeneticProfile is the normalized view of a specimen used for scoring.
// It is derived on every call and never persisted.
type GeneticProfile struct {
	Genus           string        `json:"genus"`
	Species         string        `json:"species"`
	ChromosomeCount *int          `json:"chromosome_count,omitempty"`
	Ploidy          Ploidy        `json:"ploidy_level"`
	Fertility       Fertility     `json:"fertility_status"`
	BreedingGroup   BreedingGroup `json:"breeding_group"`
	GrowthHabit     GrowthHabit   `json:"growth_habit"`
	BloomSeasons    []Season      `json:"bloom_seasons"`
	Temperature     Temperature   `json:"temperature_preference"`
	Barriers        []Barrier     `json:"breeding_barriers,omitempty"`
}

// IsHybrid reports whether the species is the hybrid sentinel.
func (p GeneticProfile) IsHybrid() bool {
	return specimen.IsHybridSpecies(p.Species)
}

// SameGenus compares genera case-insensitively.
func (p GeneticProfile) SameGenus(other GeneticProfile) bool {
	return strings.EqualFold(p.Genus, other.Genus)
}

// SameSpecies compares species epithets case-insensitively.
func (p GeneticProfile) SameSpecies(other GeneticProfile) bool {
	return strings.EqualFold(strings.TrimSpace(p.Species), strings.TrimSpace(other.Species))
}

// ChromosomeDiff returns the absolute count difference and whether both counts are known.
func (p GeneticProfile) ChromosomeDiff(other GeneticProfile) (int, bool) {
	if p.ChromosomeCount == nil || other.ChromosomeCount == nil {
		return 0, false
	}
	diff := *p.ChromosomeCount - *other.ChromosomeCount
	if diff < 0 {
		diff = -diff
	}
	return diff, true
}

// SortSeasons returns a deduplicated copy in calendar order.
func SortSeasons(seasons []Season) []Season {
	order := map[Season]int{
		SeasonSpring:    0,
		SeasonSummer:    1,
		SeasonFall:      2,
		SeasonWinter:    3,
		SeasonYearRound: 4,
	}
	seen := make(map[Season]bool, len(seasons))
	out := make([]Season, 0, len(seasons))
	for _, s := range seasons {
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	sort.SliceStable(out, func(i, j int) bool {
		oi, iok := order[out[i]]
		oj, jok := order[out[j]]
		if !iok {
			oi = len(order)
		}
		if !jok {
			oj = len(order)
		}
		if oi != oj {
			return oi < oj
		}
		return out[i] < out[j]
	})
	return out
}

// SortBarriers returns a deduplicated, lexically ordered copy.
func SortBarriers(barriers []Barrier) []Barrier {
	seen := make(map[Barrier]bool, len(barriers))
	out := make([]Barrier, 0, len(barriers))
	for _, b := range barriers {
		if seen[b] {
			continue
		}
		seen[b] = true
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

package engine

import (
	"orchidbreed/domain/breeding"
	"orchidbreed/internal/engine/reference"
)

// barrierWeights are subtracted from the compatibility score once per tag per profile.
var barrierWeights = map[breeding.Barrier]float64{
	breeding.BarrierDifficultCultivation: 5,
	breeding.BarrierLimitedAvailability:  3,
	breeding.BarrierSlowGrowth:           2,
}

const unknownBarrierWeight = 1.0

// Scorer computes the numeric compatibility of two profiles.
type Scorer struct {
	ref *reference.ReferenceData
}

// NewScorer creates a scorer over the given reference data.
func NewScorer(ref *reference.ReferenceData) *Scorer {
	return &Scorer{ref: ref}
}

// Score returns the compatibility score in [0,100] and success probability in [5,95].
// Every term is symmetric in its arguments.
func (s *Scorer) Score(p1, p2 breeding.GeneticProfile) (float64, float64) {
	score := s.CompatibilityScore(p1, p2)
	return score, s.SuccessProbability(p1, p2, score)
}

// CompatibilityScore starts at 50 and adds the taxonomic, cytological and cultural terms.
func (s *Scorer) CompatibilityScore(p1, p2 breeding.GeneticProfile) float64 {
	score := 50.0

	// taxonomic relatedness
	if p1.SameGenus(p2) {
		score += 30
		switch {
		case p1.SameSpecies(p2):
			score += 15
		case !p1.IsHybrid() && !p2.IsHybrid():
			score += 10
		default:
			score += 5
		}
	} else {
		score += s.ref.Affinity(p1.Genus, p2.Genus) * 20
	}

	if diff, known := p1.ChromosomeDiff(p2); known {
		switch {
		case diff == 0:
			score += 15
		case diff <= 2:
			score += 5
		default:
			score -= 10
		}
	}

	if p1.Ploidy == p2.Ploidy {
		score += 10
	} else {
		score -= 5
	}

	fertile1 := p1.Fertility == breeding.FertilityFertile
	fertile2 := p2.Fertility == breeding.FertilityFertile
	switch {
	case fertile1 && fertile2:
		score += 10
	case fertile1 || fertile2:
		score += 5
	default:
		score -= 15
	}

	if p1.GrowthHabit == p2.GrowthHabit {
		score += 5
	}

	switch temperatureDistance(p1.Temperature, p2.Temperature) {
	case 0:
		score += 10
	case 1:
		score += 5
	default:
		score -= 5
	}

	score += 10 * seasonOverlap(p1.BloomSeasons, p2.BloomSeasons)

	if s.ref.HasHistoricalSuccess(p1.Genus, p2.Genus) {
		score += 15
	}

	score -= barrierPenalty(p1.Barriers) + barrierPenalty(p2.Barriers)

	return clamp(score, 0, 100)
}

// SuccessProbability derives the practical odds of a successful cross from the score.
func (s *Scorer) SuccessProbability(p1, p2 breeding.GeneticProfile, score float64) float64 {
	prob := score * 0.7

	if s.ref.HasHistoricalSuccess(p1.Genus, p2.Genus) {
		prob += 15
	}

	switch {
	case p1.Fertility == breeding.FertilitySterile || p2.Fertility == breeding.FertilitySterile:
		prob *= 0.1
	case p1.Fertility == breeding.FertilitySemiFertile || p2.Fertility == breeding.FertilitySemiFertile:
		prob *= 0.7
	}

	if p1.BreedingGroup == p2.BreedingGroup {
		prob += 5
	}

	prob *= (s.ref.SuccessModifier(p1.Genus) + s.ref.SuccessModifier(p2.Genus)) / 2

	return clamp(prob, 5, 95)
}

func temperatureDistance(a, b breeding.Temperature) int {
	d := a.Scale() - b.Scale()
	if d < 0 {
		d = -d
	}
	return d
}

// seasonOverlap is the Jaccard index of two season sets, 0 if either is empty.
func seasonOverlap(a, b []breeding.Season) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	union := make(map[breeding.Season]bool, len(a)+len(b))
	inA := make(map[breeding.Season]bool, len(a))
	for _, s := range a {
		inA[s] = true
		union[s] = true
	}
	intersection := 0
	counted := make(map[breeding.Season]bool, len(b))
	for _, s := range b {
		union[s] = true
		if inA[s] && !counted[s] {
			intersection++
			counted[s] = true
		}
	}
	return float64(intersection) / float64(len(union))
}

func barrierPenalty(barriers []breeding.Barrier) float64 {
	total := 0.0
	for _, b := range barriers {
		if w, ok := barrierWeights[b]; ok {
			total += w
		} else {
			total += unknownBarrierWeight
		}
	}
	return total
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

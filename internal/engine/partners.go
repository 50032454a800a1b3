package engine

import (
	"context"
	"sort"
	"strings"

	"orchidbreed/domain/breeding"
	"orchidbreed/domain/specimen"
)

// MinPartnerScore is the lowest compatibility score a partner search returns.
const MinPartnerScore = 30.0

// sizeTraits are the desired traits matched against cultivation notes.
var sizeTraits = map[string]bool{
	"compact":   true,
	"miniature": true,
	"small":     true,
	"dwarf":     true,
}

// PartnerQuery narrows a partner search.
type PartnerQuery struct {
	DesiredTraits []string
	MaxResults    int
}

// FindPartners ranks pool members as breeding partners for target.
func (e *Engine) FindPartners(ctx context.Context, target specimen.SpecimenRef, pool []specimen.SpecimenRef, q PartnerQuery) ([]breeding.PartnerMatch, error) {
	limit := q.MaxResults
	if limit <= 0 {
		limit = e.opts.MaxPartnerResults
	}

	candidates := e.Candidates(target, pool)
	candidates = filterBySize(candidates, q.DesiredTraits)

	jobs := make([]pairJob, len(candidates))
	for i, c := range candidates {
		jobs[i] = pairJob{a: target, b: c}
	}
	assessments, err := e.assessAll(ctx, jobs)
	if err != nil {
		return nil, err
	}

	matches := make([]breeding.PartnerMatch, 0, len(assessments))
	for i, a := range assessments {
		if a.CompatibilityScore < MinPartnerScore {
			continue
		}
		matches = append(matches, breeding.PartnerMatch{Specimen: candidates[i], Assessment: a})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		ri, rj := matches[i].Assessment.RankingScore(), matches[j].Assessment.RankingScore()
		if ri != rj {
			return ri > rj
		}
		return matches[i].Specimen.ID < matches[j].Specimen.ID
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches, nil
}

// Candidates filters pool to the target's compatible genera, drops the target
// and duplicate ids, and caps the result at PartnerPoolCap.
func (e *Engine) Candidates(target specimen.SpecimenRef, pool []specimen.SpecimenRef) []specimen.SpecimenRef {
	genera := make(map[string]bool)
	for _, g := range e.ref.CompatibleGenera(target.Genus) {
		genera[strings.ToLower(strings.TrimSpace(g))] = true
	}

	seen := map[string]bool{target.ID.String(): true}
	var out []specimen.SpecimenRef
	for _, s := range pool {
		if len(out) >= e.opts.PartnerPoolCap {
			break
		}
		if seen[s.ID.String()] {
			continue
		}
		if !genera[strings.ToLower(strings.TrimSpace(s.Genus))] {
			continue
		}
		seen[s.ID.String()] = true
		out = append(out, s)
	}
	return out
}

// filterBySize keeps candidates whose notes mention a requested size trait.
// Without a size trait in the request the candidates pass through unchanged.
func filterBySize(candidates []specimen.SpecimenRef, desired []string) []specimen.SpecimenRef {
	var wanted []string
	for _, t := range desired {
		t = strings.ToLower(strings.TrimSpace(t))
		if sizeTraits[t] {
			wanted = append(wanted, t)
		}
	}
	if len(wanted) == 0 {
		return candidates
	}

	var out []specimen.SpecimenRef
	for _, c := range candidates {
		if matchesAny(strings.ToLower(c.Notes), wanted) {
			out = append(out, c)
		}
	}
	return out
}

// Package memory provides in-process repositories used when no database is configured.
package memory

import (
	"context"
	"sort"
	"sync"

	"orchidbreed/domain/core"
	"orchidbreed/domain/specimen"
)

// SpecimenRepository implements ports.SpecimenRepository with an in-memory map
type SpecimenRepository struct {
	specimens map[core.SpecimenID]specimen.SpecimenRef
	order     []core.SpecimenID
	mu        sync.RWMutex
}

// NewSpecimenRepository creates a repository seeded with the given specimens
func NewSpecimenRepository(seed ...specimen.SpecimenRef) *SpecimenRepository {
	r := &SpecimenRepository{specimens: make(map[core.SpecimenID]specimen.SpecimenRef)}
	r.Import(seed)
	return r
}

// Import adds or replaces specimens by id. Insertion order is kept for listings.
func (r *SpecimenRepository) Import(specimens []specimen.SpecimenRef) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, s := range specimens {
		if _, exists := r.specimens[s.ID]; !exists {
			r.order = append(r.order, s.ID)
		}
		r.specimens[s.ID] = s
	}
	return len(r.specimens)
}

func (r *SpecimenRepository) GetSpecimen(ctx context.Context, id core.SpecimenID) (*specimen.SpecimenRef, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.specimens[id]
	if !ok {
		return nil, core.NewNotFoundError("specimen", id.String())
	}
	return &s, nil
}

func (r *SpecimenRepository) ListSpecimens(ctx context.Context, filter specimen.Filter) ([]specimen.SpecimenRef, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	results := make([]specimen.SpecimenRef, 0, len(r.order))
	for _, id := range r.order {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		s := r.specimens[id]
		if !filter.MatchesGenus(s.Genus) {
			continue
		}
		results = append(results, s)
		if filter.Limit > 0 && len(results) >= filter.Limit {
			break
		}
	}
	return results, nil
}

// Genera returns the distinct genera on file, sorted
func (r *SpecimenRepository) Genera() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]bool)
	var out []string
	for _, s := range r.specimens {
		if !seen[s.Genus] {
			seen[s.Genus] = true
			out = append(out, s.Genus)
		}
	}
	sort.Strings(out)
	return out
}

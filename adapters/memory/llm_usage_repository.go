package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"orchidbreed/models"
)

// LLMUsageRepository keeps usage records for the lifetime of the process
type LLMUsageRepository struct {
	records []models.LLMUsage
	nextID  int64
	mu      sync.Mutex
}

func NewLLMUsageRepository() *LLMUsageRepository {
	return &LLMUsageRepository{nextID: 1}
}

func (r *LLMUsageRepository) RecordUsage(ctx context.Context, usage *models.LLMUsage) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec := *usage
	rec.ID = r.nextID
	r.nextID++
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}
	usage.ID = rec.ID
	r.records = append(r.records, rec)
	return nil
}

// GetUsageByProvider aggregates records created at or after since, ordered by provider
func (r *LLMUsageRepository) GetUsageByProvider(ctx context.Context, since time.Time) ([]models.ProviderUsage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	byProvider := make(map[string]*models.ProviderUsage)
	for _, rec := range r.records {
		if rec.CreatedAt.Before(since) {
			continue
		}
		p, ok := byProvider[rec.Provider]
		if !ok {
			p = &models.ProviderUsage{Provider: rec.Provider}
			byProvider[rec.Provider] = p
		}
		p.TotalTokens += rec.TotalTokens
		p.RequestCount++
	}

	out := make([]models.ProviderUsage, 0, len(byProvider))
	for _, p := range byProvider {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Provider < out[j].Provider })
	return out, nil
}

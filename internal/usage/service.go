package usage

import (
	"context"
	"fmt"
	"time"

	"orchidbreed/internal"
	"orchidbreed/models"
	"orchidbreed/ports"
)

// Service reports LLM token usage recorded by narrative enrichment
type Service struct {
	repo   ports.LLMUsageRepository
	clock  func() time.Time
	logger *internal.Logger
}

// NewService creates a new usage service
func NewService(repo ports.LLMUsageRepository, logger *internal.Logger) *Service {
	return &Service{repo: repo, clock: time.Now, logger: logger.With("UsageService")}
}

// Summary aggregates usage over the trailing window
func (s *Service) Summary(ctx context.Context, window time.Duration) (*Summary, error) {
	if window <= 0 {
		return nil, fmt.Errorf("usage window must be positive, got %s", window)
	}

	now := s.clock().UTC()
	since := now.Add(-window)
	providers, err := s.repo.GetUsageByProvider(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("failed to load usage: %w", err)
	}
	if providers == nil {
		providers = []models.ProviderUsage{}
	}

	summary := &Summary{Since: since, Until: now, Providers: providers}
	for _, p := range providers {
		summary.TotalTokens += p.TotalTokens
		summary.TotalRequests += p.RequestCount
	}
	s.logger.Debug("usage since %s: %d tokens over %d requests", since.Format(time.RFC3339), summary.TotalTokens, summary.TotalRequests)
	return summary, nil
}

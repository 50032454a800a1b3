package ports

import (
	"context"
	"time"

	"orchidbreed/models"
)

// LLMUsageRepository records token usage of narrative enrichment
type LLMUsageRepository interface {
	RecordUsage(ctx context.Context, usage *models.LLMUsage) error
	GetUsageByProvider(ctx context.Context, since time.Time) ([]models.ProviderUsage, error)
}

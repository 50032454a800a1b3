package postgres

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"orchidbreed/models"
	"orchidbreed/ports"
)

// LLMUsageRepositoryImpl implements LLMUsageRepository for PostgreSQL
type LLMUsageRepositoryImpl struct {
	db *sqlx.DB
}

// NewLLMUsageRepository creates a new PostgreSQL LLM usage repository
func NewLLMUsageRepository(db *sqlx.DB) ports.LLMUsageRepository {
	return &LLMUsageRepositoryImpl{db: db}
}

// RecordUsage records LLM usage for an API call
func (r *LLMUsageRepositoryImpl) RecordUsage(ctx context.Context, usage *models.LLMUsage) error {
	if usage.CreatedAt.IsZero() {
		usage.CreatedAt = time.Now().UTC()
	}
	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO llm_usage (
			provider, model, operation_type,
			prompt_tokens, completion_tokens, total_tokens, created_at
		) VALUES (
			:provider, :model, :operation_type,
			:prompt_tokens, :completion_tokens, :total_tokens, :created_at
		)
	`, usage)
	return err
}

// GetUsageByProvider returns usage aggregated by provider since the given time
func (r *LLMUsageRepositoryImpl) GetUsageByProvider(ctx context.Context, since time.Time) ([]models.ProviderUsage, error) {
	var out []models.ProviderUsage
	err := r.db.SelectContext(ctx, &out, `
		SELECT provider, COALESCE(SUM(total_tokens), 0) AS total_tokens, COUNT(*) AS request_count
		FROM llm_usage
		WHERE created_at >= $1
		GROUP BY provider
		ORDER BY provider
	`, since)
	return out, err
}

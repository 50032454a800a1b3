package usage

import (
	"time"

	"orchidbreed/models"
)

// Summary is the token usage of a time window
type Summary struct {
	Since         time.Time              `json:"since"`
	Until         time.Time              `json:"until"`
	Providers     []models.ProviderUsage `json:"providers"`
	TotalTokens   int                    `json:"total_tokens"`
	TotalRequests int                    `json:"total_requests"`
}

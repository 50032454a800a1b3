package models

import (
	"time"
)

// LLMUsage represents a single LLM API call's token usage
type LLMUsage struct {
	ID               int64     `json:"id" db:"id"`
	Provider         string    `json:"provider" db:"provider"` // 'openai', 'gemini'
	Model            string    `json:"model" db:"model"`
	OperationType    string    `json:"operation_type" db:"operation_type"` // 'breeding_narrative'
	PromptTokens     int       `json:"prompt_tokens" db:"prompt_tokens"`
	CompletionTokens int       `json:"completion_tokens" db:"completion_tokens"`
	TotalTokens      int       `json:"total_tokens" db:"total_tokens"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
}

// ProviderUsage represents usage aggregated by provider
type ProviderUsage struct {
	Provider     string `json:"provider" db:"provider"`
	TotalTokens  int    `json:"total_tokens" db:"total_tokens"`
	RequestCount int    `json:"request_count" db:"request_count"`
}

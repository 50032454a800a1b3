package llm

import (
	"context"
	"errors"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"orchidbreed/ai"
	"orchidbreed/domain/breeding"
	"orchidbreed/domain/core"
	"orchidbreed/internal"
	"orchidbreed/models"
	"orchidbreed/ports"
)

const (
	defaultEnrichTimeout = 15 * time.Second
	usageRecordTimeout   = 2 * time.Second
	narrativeOperation   = "breeding_narrative"
)

var errEmptyNarrative = errors.New("provider returned an empty narrative")

// NarrativeEnricher asks an LLM for a prose summary of an assessment
type NarrativeEnricher struct {
	client    ports.LLMClient
	prompts   *ai.PromptManager
	model     string
	maxTokens int
	timeout   time.Duration
	logger    *internal.Logger
	usage     ports.LLMUsageRepository
}

// NewNarrativeEnricher creates an enricher. A non-positive timeout uses 15s.
func NewNarrativeEnricher(client ports.LLMClient, prompts *ai.PromptManager, config Config, logger *internal.Logger) *NarrativeEnricher {
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = defaultEnrichTimeout
	}
	return &NarrativeEnricher{
		client:    client,
		prompts:   prompts,
		model:     config.Model,
		maxTokens: config.MaxTokens,
		timeout:   timeout,
		logger:    logger.With("Enricher"),
	}
}

// WithUsageRepository records token usage of every successful call
func (e *NarrativeEnricher) WithUsageRepository(repo ports.LLMUsageRepository) *NarrativeEnricher {
	e.usage = repo
	return e
}

// Summarize makes a single bounded attempt; every failure is ErrEnrichmentUnavailable.
func (e *NarrativeEnricher) Summarize(ctx context.Context, a breeding.CompatibilityAssessment) (string, error) {
	prompt, err := e.prompts.RenderNarrativePrompt(a)
	if err != nil {
		return "", core.NewEnrichmentError(err)
	}

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	start := time.Now()
	resp, err := e.client.ChatCompletion(ctx, e.model, prompt, e.maxTokens)
	if err != nil {
		return "", core.NewEnrichmentError(err)
	}

	text := strings.TrimSpace(resp.Content)
	if text == "" {
		return "", core.NewEnrichmentError(errEmptyNarrative)
	}

	if resp.Usage != nil {
		e.logger.Debug("narrative for %s took %s (%d tokens)", a.PairKey(), time.Since(start).Round(time.Millisecond), resp.Usage.TotalTokens)
		e.recordUsage(ctx, resp.Usage)
	}
	return text, nil
}

func (e *NarrativeEnricher) recordUsage(ctx context.Context, u *ports.UsageData) {
	if e.usage == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), usageRecordTimeout)
	defer cancel()

	err := e.usage.RecordUsage(ctx, &models.LLMUsage{
		Provider:         u.Provider,
		Model:            u.Model,
		OperationType:    narrativeOperation,
		PromptTokens:     u.PromptTokens,
		CompletionTokens: u.CompletionTokens,
		TotalTokens:      u.TotalTokens,
	})
	if err != nil {
		e.logger.Warn("failed to record LLM usage: %v", err)
	}
}

// CachingEnricher memoizes narratives by assessment fingerprint. Failures are not cached.
type CachingEnricher struct {
	next  ports.Enricher
	cache *lru.Cache[core.Hash, string]
}

// NewCachingEnricher wraps next with an LRU cache of the given size
func NewCachingEnricher(next ports.Enricher, size int) (*CachingEnricher, error) {
	cache, err := lru.New[core.Hash, string](size)
	if err != nil {
		return nil, err
	}
	return &CachingEnricher{next: next, cache: cache}, nil
}

func (c *CachingEnricher) Summarize(ctx context.Context, a breeding.CompatibilityAssessment) (string, error) {
	key := a.Fingerprint()
	if text, ok := c.cache.Get(key); ok {
		return text, nil
	}
	text, err := c.next.Summarize(ctx, a)
	if err != nil {
		return "", err
	}
	c.cache.Add(key, text)
	return text, nil
}

// Len reports the number of cached narratives
func (c *CachingEnricher) Len() int {
	return c.cache.Len()
}

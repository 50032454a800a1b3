package container

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orchidbreed/adapters/llm"
	"orchidbreed/app"
	"orchidbreed/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		AI: config.AIConfig{Provider: config.ProviderNone},
		Engine: config.EngineConfig{
			Workers:             2,
			PartnerPoolCap:      50,
			PartnerMaxResults:   5,
			ProgramMaxSpecimens: 20,
		},
		LogLevel: "ERROR",
	}
}

func TestNewInMemory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "specimens.csv")
	require.NoError(t, os.WriteFile(path, []byte("id,genus,species\nc1,Cattleya,labiata\nc2,Cattleya,mossiae\n"), 0o644))

	cfg := testConfig()
	cfg.Data.SpecimensXLSX = path

	c, err := New(context.Background(), cfg)
	require.NoError(t, err)
	defer c.Shutdown(context.Background())

	assert.Nil(t, c.DB)
	assert.Nil(t, c.Enricher)
	assert.Equal(t, 5, c.Engine.Options().MaxPartnerResults)

	result, err := c.BreedingService.AssessPair(context.Background(), app.PairRequest{A: "c1", B: "c2", Enrich: true})
	require.NoError(t, err)
	assert.False(t, result.HasNarrative())
}

func TestNewWiresCachedEnricher(t *testing.T) {
	cfg := testConfig()
	cfg.AI = config.AIConfig{
		Provider:      config.ProviderOpenAI,
		APIKey:        "sk-test",
		Model:         "gpt-4o-mini",
		MaxTokens:     200,
		EnrichTimeout: time.Second,
		CacheSize:     8,
		PromptsDir:    t.TempDir(),
	}

	c, err := New(context.Background(), cfg)
	require.NoError(t, err)
	assert.NotNil(t, c.LLMClient)
	assert.IsType(t, &llm.CachingEnricher{}, c.Enricher)
	assert.True(t, c.BreedingService.EnrichmentEnabled())
}

func TestNewRejectsBadInputs(t *testing.T) {
	cfg := testConfig()
	cfg.Engine.ReferenceDataFile = filepath.Join(t.TempDir(), "missing.yaml")
	_, err := New(context.Background(), cfg)
	assert.Error(t, err)

	cfg = testConfig()
	cfg.Data.SpecimensXLSX = filepath.Join(t.TempDir(), "missing.xlsx")
	_, err = New(context.Background(), cfg)
	assert.Error(t, err)

	_, err = New(context.Background(), nil)
	assert.Error(t, err)
}

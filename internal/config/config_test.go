package config

import (
	"testing"
	"time"

	"orchidbreed/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"DATABASE_URL", "LLM_PROVIDER", "LLM_API_KEY", "ENRICH_TIMEOUT", "ENGINE_WORKERS", "PORT"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Empty(t, cfg.Database.URL)
	assert.Equal(t, ProviderNone, cfg.AI.Provider)
	assert.False(t, cfg.AI.Enabled())
	assert.Equal(t, 15*time.Second, cfg.AI.EnrichTimeout)
	assert.Equal(t, 256, cfg.AI.CacheSize)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 8, cfg.Engine.Workers)
	assert.Equal(t, 100, cfg.Engine.PartnerPoolCap)
	assert.Equal(t, 10, cfg.Engine.PartnerMaxResults)
	assert.Equal(t, 200, cfg.Engine.ProgramMaxSpecimens)
}

func TestLoadProviderRequiresKey(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "OpenAI")
	t.Setenv("LLM_API_KEY", "")

	_, err := Load()
	require.Error(t, err)
	assert.Equal(t, errors.CodeConfigInvalid, errors.GetCode(err))

	t.Setenv("LLM_API_KEY", "sk-test")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ProviderOpenAI, cfg.AI.Provider)
	assert.Equal(t, "gpt-4o-mini", cfg.AI.Model)
	assert.True(t, cfg.AI.Enabled())
}

func TestLoadRejectsUnknownProvider(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "carrier-pigeon")
	_, err := Load()
	assert.Error(t, err)
}

func TestLoadParsesOverrides(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "")
	t.Setenv("ENRICH_TIMEOUT", "2s")
	t.Setenv("ENGINE_WORKERS", "3")
	t.Setenv("PROGRAM_MAX_SPECIMENS", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, cfg.AI.EnrichTimeout)
	assert.Equal(t, 3, cfg.Engine.Workers)
	assert.Equal(t, 200, cfg.Engine.ProgramMaxSpecimens)
}

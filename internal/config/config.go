package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"orchidbreed/internal/errors"
)

// LLM providers accepted by LLM_PROVIDER
const (
	ProviderNone   = "none"
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// Config represents the complete application configuration
type Config struct {
	Database DatabaseConfig
	AI       AIConfig
	Server   ServerConfig
	Engine   EngineConfig
	Data     DataConfig
	LogLevel string
}

// DatabaseConfig holds database connection settings. An empty URL selects the in-memory store.
type DatabaseConfig struct {
	URL string
}

// AIConfig holds narrative enrichment settings
type AIConfig struct {
	Provider      string
	APIKey        string
	Model         string
	BaseURL       string
	Temperature   float64
	MaxTokens     int
	EnrichTimeout time.Duration
	CacheSize     int
	PromptsDir    string
}

// Enabled reports whether a narrative provider is configured
func (c AIConfig) Enabled() bool {
	return c.Provider != ProviderNone
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	GinMode string
}

// EngineConfig bounds the engine's fan-out
type EngineConfig struct {
	Workers             int
	PartnerPoolCap      int
	PartnerMaxResults   int
	ProgramMaxSpecimens int
	ReferenceDataFile   string
}

// DataConfig holds data import settings
type DataConfig struct {
	SpecimensXLSX string
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Database: DatabaseConfig{URL: os.Getenv("DATABASE_URL")},
		AI:       loadAIConfig(),
		Server:   loadServerConfig(),
		Engine:   loadEngineConfig(),
		Data:     DataConfig{SpecimensXLSX: getEnvOrDefault("SPECIMENS_XLSX", "")},
		LogLevel: getEnvOrDefault("LOG_LEVEL", "INFO"),
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func loadAIConfig() AIConfig {
	provider := strings.ToLower(getEnvOrDefault("LLM_PROVIDER", ProviderNone))

	defaultModel := ""
	switch provider {
	case ProviderOpenAI:
		defaultModel = "gpt-4o-mini"
	case ProviderGemini:
		defaultModel = "gemini-2.5-flash"
	}

	return AIConfig{
		Provider:      provider,
		APIKey:        os.Getenv("LLM_API_KEY"),
		Model:         getEnvOrDefault("LLM_MODEL", defaultModel),
		BaseURL:       getEnvOrDefault("LLM_BASE_URL", ""),
		Temperature:   getEnvFloatOrDefault("LLM_TEMPERATURE", 0.7),
		MaxTokens:     getEnvIntOrDefault("LLM_MAX_TOKENS", 400),
		EnrichTimeout: getEnvDurationOrDefault("ENRICH_TIMEOUT", 15*time.Second),
		CacheSize:     getEnvIntOrDefault("NARRATIVE_CACHE_SIZE", 256),
		PromptsDir:    getEnvOrDefault("PROMPTS_DIR", "./prompts"),
	}
}

func loadServerConfig() ServerConfig {
	return ServerConfig{
		Port:    getEnvOrDefault("PORT", "8080"),
		GinMode: getEnvOrDefault("GIN_MODE", "debug"),
	}
}

func loadEngineConfig() EngineConfig {
	return EngineConfig{
		Workers:             getEnvIntOrDefault("ENGINE_WORKERS", 8),
		PartnerPoolCap:      getEnvIntOrDefault("PARTNER_POOL_CAP", 100),
		PartnerMaxResults:   getEnvIntOrDefault("PARTNER_MAX_RESULTS", 10),
		ProgramMaxSpecimens: getEnvIntOrDefault("PROGRAM_MAX_SPECIMENS", 200),
		ReferenceDataFile:   getEnvOrDefault("REFERENCE_DATA_FILE", ""),
	}
}

func validateConfig(config *Config) error {
	switch config.AI.Provider {
	case ProviderNone:
	case ProviderOpenAI, ProviderGemini:
		if config.AI.APIKey == "" {
			return errors.ConfigInvalid("LLM_API_KEY is required when LLM_PROVIDER is " + config.AI.Provider)
		}
	default:
		return errors.ConfigInvalid("unknown LLM_PROVIDER " + strconv.Quote(config.AI.Provider))
	}
	if config.AI.EnrichTimeout <= 0 {
		return errors.ConfigInvalid("ENRICH_TIMEOUT must be positive")
	}
	if config.Engine.Workers <= 0 {
		return errors.ConfigInvalid("ENGINE_WORKERS must be positive")
	}
	if config.Engine.PartnerPoolCap <= 0 || config.Engine.PartnerMaxResults <= 0 {
		return errors.ConfigInvalid("partner search limits must be positive")
	}
	if config.Engine.ProgramMaxSpecimens < 2 {
		return errors.ConfigInvalid("PROGRAM_MAX_SPECIMENS must be at least 2")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

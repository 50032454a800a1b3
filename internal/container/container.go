package container

import (
	"context"
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"

	"orchidbreed/adapters/db/postgres/migrations"
	"orchidbreed/adapters/excel"
	"orchidbreed/adapters/llm"
	"orchidbreed/adapters/memory"
	"orchidbreed/adapters/postgres"
	"orchidbreed/ai"
	"orchidbreed/app"
	"orchidbreed/domain/specimen"
	"orchidbreed/internal"
	"orchidbreed/internal/config"
	"orchidbreed/internal/engine"
	"orchidbreed/internal/engine/reference"
	"orchidbreed/internal/errors"
	"orchidbreed/internal/usage"
	"orchidbreed/ports"
)

// Container holds all application dependencies and manages their lifecycle
type Container struct {
	Config *config.Config
	Logger *internal.Logger

	// Infrastructure; nil when running on the in-memory store
	DB *sqlx.DB

	Reference *reference.ReferenceData
	Engine    *engine.Engine

	// Repositories (data access layer)
	SpecimenRepo   ports.SpecimenRepository
	AssessmentRepo ports.AssessmentRepository
	UsageRepo      ports.LLMUsageRepository

	// Narrative enrichment; nil when LLM_PROVIDER is none
	LLMClient ports.LLMClient
	Enricher  ports.Enricher

	BreedingService *app.BreedingService
	UsageService    *usage.Service
}

// New creates a container and initializes every component
func New(ctx context.Context, cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	c := &Container{
		Config: cfg,
		Logger: internal.NewLogger("Container", internal.ParseLogLevel(cfg.LogLevel)),
	}

	if err := c.initEngine(); err != nil {
		return nil, fmt.Errorf("failed to initialize engine: %w", err)
	}
	if err := c.initRepositories(ctx); err != nil {
		c.Shutdown(ctx)
		return nil, fmt.Errorf("failed to initialize repositories: %w", err)
	}
	if err := c.initEnrichment(ctx); err != nil {
		c.Shutdown(ctx)
		return nil, fmt.Errorf("failed to initialize enrichment: %w", err)
	}

	c.BreedingService = app.NewBreedingService(c.Engine, c.SpecimenRepo, c.Logger).
		WithAssessmentRepository(c.AssessmentRepo)
	if c.Enricher != nil {
		c.BreedingService.WithEnricher(c.Enricher)
	}
	c.UsageService = usage.NewService(c.UsageRepo, c.Logger)

	c.Logger.Info("container initialized (database=%t, enrichment=%s)", c.DB != nil, cfg.AI.Provider)
	return c, nil
}

// initEngine loads reference data once; it is never mutated afterwards
func (c *Container) initEngine() error {
	ref := reference.Default()
	if path := c.Config.Engine.ReferenceDataFile; path != "" {
		loaded, err := reference.LoadFile(path)
		if err != nil {
			return errors.Wrapf(err, "failed to load reference data from %s", path)
		}
		ref = loaded
		c.Logger.Info("reference data loaded from %s", path)
	}
	c.Reference = ref

	ec := c.Config.Engine
	c.Engine = engine.NewEngine(ref, engine.Options{
		Workers:             ec.Workers,
		PartnerPoolCap:      ec.PartnerPoolCap,
		MaxPartnerResults:   ec.PartnerMaxResults,
		MaxProgramSpecimens: ec.ProgramMaxSpecimens,
	})
	return nil
}

// initRepositories selects postgres when DATABASE_URL is set and the in-memory store otherwise
func (c *Container) initRepositories(ctx context.Context) error {
	imported, err := c.readSpecimenFile()
	if err != nil {
		return err
	}

	if c.Config.Database.URL == "" {
		store := memory.NewSpecimenRepository(imported...)
		c.SpecimenRepo = store
		c.AssessmentRepo = memory.NewAssessmentRepository()
		c.UsageRepo = memory.NewLLMUsageRepository()
		c.Logger.Info("using in-memory store with %d specimens", len(imported))
		return nil
	}

	db, err := sqlx.Connect("postgres", c.Config.Database.URL)
	if err != nil {
		return errors.WithCode(errors.CodeDatabaseError, errors.Wrap(err, "failed to connect to database"))
	}
	c.DB = db

	if err := migrations.NewMigrator(db.DB, log.Writer()).Up(ctx); err != nil {
		return errors.WithCode(errors.CodeDatabaseError, errors.Wrap(err, "database migration failed"))
	}

	specimens := postgres.NewSpecimenRepository(db)
	if len(imported) > 0 {
		if err := specimens.UpsertSpecimens(ctx, imported); err != nil {
			return errors.WithCode(errors.CodeDatabaseError, errors.Wrap(err, "failed to import specimens"))
		}
		c.Logger.Info("imported %d specimens into the database", len(imported))
	}
	c.SpecimenRepo = specimens
	c.AssessmentRepo = postgres.NewAssessmentRepository(db)
	c.UsageRepo = postgres.NewLLMUsageRepository(db)
	return nil
}

func (c *Container) readSpecimenFile() ([]specimen.SpecimenRef, error) {
	path := c.Config.Data.SpecimensXLSX
	if path == "" {
		return nil, nil
	}
	specimens, err := excel.NewSpecimenReader(path).ReadSpecimens()
	if err != nil {
		return nil, errors.WithCode(errors.CodeInvalidInput, errors.Wrapf(err, "failed to read specimens from %s", path))
	}
	return specimens, nil
}

// initEnrichment wires the LLM client, the narrative enricher and its cache
func (c *Container) initEnrichment(ctx context.Context) error {
	aiCfg := c.Config.AI
	if !aiCfg.Enabled() {
		return nil
	}

	llmConfig := llm.Config{
		Provider:    aiCfg.Provider,
		Model:       aiCfg.Model,
		APIKey:      aiCfg.APIKey,
		BaseURL:     aiCfg.BaseURL,
		Temperature: aiCfg.Temperature,
		MaxTokens:   aiCfg.MaxTokens,
		Timeout:     aiCfg.EnrichTimeout,
	}
	client, err := llm.NewClient(ctx, llmConfig)
	if err != nil {
		return errors.WithCode(errors.CodeConfigInvalid, errors.Wrap(err, "failed to create LLM client"))
	}
	c.LLMClient = client

	var enricher ports.Enricher = llm.NewNarrativeEnricher(client, ai.NewPromptManager(aiCfg.PromptsDir), llmConfig, c.Logger).
		WithUsageRepository(c.UsageRepo)
	if aiCfg.CacheSize > 0 {
		cached, err := llm.NewCachingEnricher(enricher, aiCfg.CacheSize)
		if err != nil {
			return err
		}
		enricher = cached
	}
	c.Enricher = enricher
	return nil
}

// Shutdown gracefully shuts down all components
func (c *Container) Shutdown(ctx context.Context) error {
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}

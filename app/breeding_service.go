package app

import (
	"context"
	"time"

	"orchidbreed/domain/breeding"
	"orchidbreed/domain/core"
	"orchidbreed/domain/specimen"
	"orchidbreed/internal"
	"orchidbreed/internal/engine"
	"orchidbreed/internal/errors"
	"orchidbreed/ports"
)

// BreedingService resolves specimen ids, runs the engine and applies the optional
// enrichment and persistence steps around it
type BreedingService struct {
	engine      *engine.Engine
	specimens   ports.SpecimenRepository
	assessments ports.AssessmentRepository
	enricher    ports.Enricher
	logger      *internal.Logger
}

// PairRequest asks for one pairwise assessment
type PairRequest struct {
	A       core.SpecimenID
	B       core.SpecimenID
	Enrich  bool
	Persist bool
}

// PartnerRequest asks for ranked partners of one specimen
type PartnerRequest struct {
	ID            core.SpecimenID
	DesiredTraits []string
	MaxResults    int
}

// ProgramRequest asks for an all-pairs program analysis
type ProgramRequest struct {
	IDs     []core.SpecimenID
	Persist bool
}

// NewBreedingService creates a breeding service. Enrichment and persistence stay
// disabled until WithEnricher and WithAssessmentRepository are called.
func NewBreedingService(eng *engine.Engine, specimens ports.SpecimenRepository, logger *internal.Logger) *BreedingService {
	return &BreedingService{
		engine:    eng,
		specimens: specimens,
		logger:    logger.With("BreedingService"),
	}
}

// WithEnricher enables narrative enrichment
func (s *BreedingService) WithEnricher(e ports.Enricher) *BreedingService {
	s.enricher = e
	return s
}

// WithAssessmentRepository enables persistence of results
func (s *BreedingService) WithAssessmentRepository(r ports.AssessmentRepository) *BreedingService {
	s.assessments = r
	return s
}

// EnrichmentEnabled reports whether an enricher is configured
func (s *BreedingService) EnrichmentEnabled() bool {
	return s.enricher != nil
}

// AssessPair resolves both ids and returns their assessment. A narrative is attached
// when requested and available; enrichment failures never fail the call.
func (s *BreedingService) AssessPair(ctx context.Context, req PairRequest) (*breeding.CompatibilityAssessment, error) {
	a, err := s.lookup(ctx, req.A)
	if err != nil {
		return nil, err
	}
	b, err := s.lookup(ctx, req.B)
	if err != nil {
		return nil, err
	}
	if req.Persist && s.assessments == nil {
		return nil, errors.InvalidInput("persistence is not configured")
	}

	result := s.engine.Assess(*a, *b)
	if req.Enrich {
		result = s.enrich(ctx, result)
	}

	if req.Persist {
		if err := s.assessments.SaveAssessment(ctx, result); err != nil {
			return nil, errors.WithCode(errors.CodeDatabaseError, errors.Wrap(err, "failed to save assessment"))
		}
	}
	return &result, nil
}

// enrich attaches a narrative when the enricher succeeds and returns the input otherwise
func (s *BreedingService) enrich(ctx context.Context, a breeding.CompatibilityAssessment) breeding.CompatibilityAssessment {
	if s.enricher == nil {
		return a
	}
	start := time.Now()
	text, err := s.enricher.Summarize(ctx, a)
	if err != nil {
		s.logger.Warn("narrative omitted for %s: %v", a.PairKey(), err)
		return a
	}
	s.logger.Debug("narrative for %s in %s", a.PairKey(), time.Since(start).Round(time.Millisecond))
	return a.WithNarrative(text)
}

// FindPartners lists the specimens of the target's compatible genera and ranks them
func (s *BreedingService) FindPartners(ctx context.Context, req PartnerRequest) ([]breeding.PartnerMatch, error) {
	target, err := s.lookup(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if req.MaxResults < 0 {
		return nil, errors.InvalidInput("max results must not be negative")
	}

	pool, err := s.specimens.ListSpecimens(ctx, specimen.Filter{
		Genera: s.engine.Reference().CompatibleGenera(target.Genus),
		Limit:  s.engine.Options().PartnerPoolCap + 1,
	})
	if err != nil {
		return nil, errors.WithCode(errors.CodeDatabaseError, errors.Wrap(err, "failed to list candidate specimens"))
	}

	matches, err := s.engine.FindPartners(ctx, *target, pool, engine.PartnerQuery{
		DesiredTraits: req.DesiredTraits,
		MaxResults:    req.MaxResults,
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("%d partners for %s from a pool of %d", len(matches), target.DisplayName(), len(pool))
	return matches, nil
}

// AnalyzeProgram resolves every id and runs the all-pairs analysis. Size checks run
// before any lookup.
func (s *BreedingService) AnalyzeProgram(ctx context.Context, req ProgramRequest) (*breeding.ProgramReport, error) {
	ids := uniqueIDs(req.IDs)
	if len(ids) < 2 {
		return nil, core.NewInsufficientInputError(len(ids), 2)
	}
	if limit := s.engine.Options().MaxProgramSpecimens; len(ids) > limit {
		return nil, core.NewProgramTooLargeError(len(ids), limit)
	}
	if req.Persist && s.assessments == nil {
		return nil, errors.InvalidInput("persistence is not configured")
	}

	members := make([]specimen.SpecimenRef, 0, len(ids))
	for _, id := range ids {
		sp, err := s.lookup(ctx, id)
		if err != nil {
			return nil, err
		}
		members = append(members, *sp)
	}

	start := time.Now()
	report, err := s.engine.AnalyzeProgram(ctx, members)
	if err != nil {
		return nil, err
	}
	s.logger.Info("program %s: %d specimens, %d pairs in %s", report.ID, report.Overview.TotalSpecimens, report.Overview.PairCount, time.Since(start).Round(time.Millisecond))

	if req.Persist {
		if err := s.assessments.SaveReport(ctx, report); err != nil {
			return nil, errors.WithCode(errors.CodeDatabaseError, errors.Wrap(err, "failed to save program report"))
		}
	}
	return report, nil
}

// GetReport fetches a persisted program report
func (s *BreedingService) GetReport(ctx context.Context, id core.ReportID) (*breeding.ProgramReport, error) {
	if s.assessments == nil {
		return nil, errors.InvalidInput("persistence is not configured")
	}
	report, err := s.assessments.GetReport(ctx, id)
	if err != nil {
		if core.IsNotFoundError(err) {
			return nil, err
		}
		return nil, errors.WithCode(errors.CodeDatabaseError, errors.Wrap(err, "failed to load program report"))
	}
	return report, nil
}

func (s *BreedingService) lookup(ctx context.Context, id core.SpecimenID) (*specimen.SpecimenRef, error) {
	if id.String() == "" {
		return nil, errors.InvalidInput("specimen id is required")
	}
	sp, err := s.specimens.GetSpecimen(ctx, id)
	if err != nil {
		if core.IsNotFoundError(err) {
			return nil, err
		}
		return nil, errors.WithCode(errors.CodeDatabaseError, errors.Wrapf(err, "failed to load specimen %s", id))
	}
	return sp, nil
}

func uniqueIDs(ids []core.SpecimenID) []core.SpecimenID {
	seen := make(map[core.SpecimenID]bool, len(ids))
	out := make([]core.SpecimenID, 0, len(ids))
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

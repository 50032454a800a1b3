package engine

import (
	"time"

	"orchidbreed/domain/breeding"
	"orchidbreed/domain/specimen"
	"orchidbreed/internal/engine/reference"
)

// Options tunes the engine's bounded fan-out and guardrails.
type Options struct {
	Extractor           NoteExtractor
	Workers             int
	PartnerPoolCap      int
	MaxPartnerResults   int
	MaxProgramSpecimens int
	Clock               func() time.Time
}

// DefaultOptions returns the production defaults.
func DefaultOptions() Options {
	return Options{
		Workers:             8,
		PartnerPoolCap:      100,
		MaxPartnerResults:   10,
		MaxProgramSpecimens: 200,
		Clock:               time.Now,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Workers <= 0 {
		o.Workers = d.Workers
	}
	if o.PartnerPoolCap <= 0 {
		o.PartnerPoolCap = d.PartnerPoolCap
	}
	if o.MaxPartnerResults <= 0 {
		o.MaxPartnerResults = d.MaxPartnerResults
	}
	if o.MaxProgramSpecimens <= 0 {
		o.MaxProgramSpecimens = d.MaxProgramSpecimens
	}
	if o.Clock == nil {
		o.Clock = d.Clock
	}
	return o
}

// Engine runs the single-pair pipeline and the partner and program fan-outs on top of it.
// It holds no mutable state and is safe for concurrent use.
type Engine struct {
	ref        *reference.ReferenceData
	profiles   *ProfileBuilder
	scorer     *Scorer
	classifier *Classifier
	opts       Options
}

// NewEngine creates an engine over the given reference data.
func NewEngine(ref *reference.ReferenceData, opts Options) *Engine {
	opts = opts.withDefaults()
	return &Engine{
		ref:        ref,
		profiles:   NewProfileBuilder(ref, opts.Extractor),
		scorer:     NewScorer(ref),
		classifier: NewClassifier(ref),
		opts:       opts,
	}
}

// Reference exposes the read-only tables the engine was built with.
func (e *Engine) Reference() *reference.ReferenceData {
	return e.ref
}

// Options returns the effective options.
func (e *Engine) Options() Options {
	return e.opts
}

// BuildProfile derives the genetic profile of one specimen.
func (e *Engine) BuildProfile(s specimen.SpecimenRef) breeding.GeneticProfile {
	return e.profiles.Build(s)
}

// Assess computes the full compatibility assessment of a pair. It never fails.
func (e *Engine) Assess(a, b specimen.SpecimenRef) breeding.CompatibilityAssessment {
	p1 := e.profiles.Build(a)
	p2 := e.profiles.Build(b)

	score, probability := e.scorer.Score(p1, p2)
	difficulty := e.classifier.Difficulty(p1, p2)
	vigor := e.classifier.HybridVigor(p1, p2)

	return breeding.CompatibilityAssessment{
		SpecimenA:           a,
		SpecimenB:           b,
		CompatibilityScore:  score,
		SuccessProbability:  probability,
		CompatibilityLevel:  e.classifier.Level(score),
		BreedingDifficulty:  difficulty,
		HybridVigor:         vigor,
		EstimatedTimeline:   e.ref.Timeline(difficulty),
		PredictedTraits:     e.classifier.PredictedTraits(p1, p2, vigor),
		PotentialChallenges: e.classifier.Challenges(p1, p2),
		BreedingAdvantages:  e.classifier.Advantages(p1, p2),
		CareRequirements:    e.classifier.CareRequirements(p1, p2),
		FertilityPrediction: e.classifier.FertilityPrediction(p1, p2),
	}
}

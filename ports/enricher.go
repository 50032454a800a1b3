package ports

import (
	"context"

	"orchidbreed/domain/breeding"
)

// Enricher produces a prose summary of an assessment. Implementations bound the call
// in time and report any failure as core.ErrEnrichmentUnavailable.
type Enricher interface {
	Summarize(ctx context.Context, a breeding.CompatibilityAssessment) (string, error)
}

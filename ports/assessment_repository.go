package ports

import (
	"context"

	"orchidbreed/domain/breeding"
	"orchidbreed/domain/core"
)

// AssessmentRepository stores engine results on request
type AssessmentRepository interface {
	SaveAssessment(ctx context.Context, a breeding.CompatibilityAssessment) error
	SaveReport(ctx context.Context, r *breeding.ProgramReport) error
	// GetReport returns core.ErrReportNotFound when the id is unknown
	GetReport(ctx context.Context, id core.ReportID) (*breeding.ProgramReport, error)
}

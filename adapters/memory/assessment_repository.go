package memory

import (
	"context"
	"sync"

	"orchidbreed/domain/breeding"
	"orchidbreed/domain/core"
)

// AssessmentRepository implements ports.AssessmentRepository in memory.
// Assessments are keyed by fingerprint, so saving the same result twice is a no-op.
type AssessmentRepository struct {
	assessments map[core.Hash]breeding.CompatibilityAssessment
	reports     map[core.ReportID]breeding.ProgramReport
	mu          sync.RWMutex
}

func NewAssessmentRepository() *AssessmentRepository {
	return &AssessmentRepository{
		assessments: make(map[core.Hash]breeding.CompatibilityAssessment),
		reports:     make(map[core.ReportID]breeding.ProgramReport),
	}
}

func (r *AssessmentRepository) SaveAssessment(ctx context.Context, a breeding.CompatibilityAssessment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.assessments[a.Fingerprint()] = a
	return nil
}

func (r *AssessmentRepository) SaveReport(ctx context.Context, report *breeding.ProgramReport) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.reports[report.ID] = *report
	return nil
}

func (r *AssessmentRepository) GetReport(ctx context.Context, id core.ReportID) (*breeding.ProgramReport, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	report, ok := r.reports[id]
	if !ok {
		return nil, core.NewNotFoundError("program report", id.String())
	}
	return &report, nil
}

// AssessmentCount returns the number of distinct stored assessments
func (r *AssessmentRepository) AssessmentCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.assessments)
}

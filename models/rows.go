package models

import (
	"time"

	"orchidbreed/domain/breeding"
)

// AssessmentRow is one stored row of breeding_assessments
type AssessmentRow struct {
	ID                 int64                                   `db:"id"`
	Fingerprint        string                                  `db:"fingerprint"`
	SpecimenAID        string                                  `db:"specimen_a_id"`
	SpecimenBID        string                                  `db:"specimen_b_id"`
	CompatibilityScore float64                                 `db:"compatibility_score"`
	SuccessProbability float64                                 `db:"success_probability"`
	CompatibilityLevel string                                  `db:"compatibility_level"`
	BreedingDifficulty string                                  `db:"breeding_difficulty"`
	Payload            JSONB[breeding.CompatibilityAssessment] `db:"payload"`
	CreatedAt          time.Time                               `db:"created_at"`
}

// NewAssessmentRow flattens an assessment for storage
func NewAssessmentRow(a breeding.CompatibilityAssessment) AssessmentRow {
	return AssessmentRow{
		Fingerprint:        a.Fingerprint().String(),
		SpecimenAID:        a.SpecimenA.ID.String(),
		SpecimenBID:        a.SpecimenB.ID.String(),
		CompatibilityScore: a.CompatibilityScore,
		SuccessProbability: a.SuccessProbability,
		CompatibilityLevel: string(a.CompatibilityLevel),
		BreedingDifficulty: string(a.BreedingDifficulty),
		Payload:            JSONB[breeding.CompatibilityAssessment]{Data: a},
	}
}

// ReportRow is one stored row of program_reports
type ReportRow struct {
	ID            string                        `db:"id"`
	GeneratedAt   time.Time                     `db:"generated_at"`
	SpecimenCount int                           `db:"specimen_count"`
	MeanScore     float64                       `db:"mean_score"`
	Payload       JSONB[breeding.ProgramReport] `db:"payload"`
}

// NewReportRow flattens a program report for storage
func NewReportRow(r *breeding.ProgramReport) ReportRow {
	return ReportRow{
		ID:            r.ID.String(),
		GeneratedAt:   r.GeneratedAt,
		SpecimenCount: len(r.SpecimenIDs),
		MeanScore:     r.Overview.MeanScore,
		Payload:       JSONB[breeding.ProgramReport]{Data: *r},
	}
}

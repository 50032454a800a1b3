package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"orchidbreed/domain/breeding"
	"orchidbreed/domain/core"
	"orchidbreed/models"
	"orchidbreed/ports"
)

// AssessmentRepositoryImpl implements AssessmentRepository for PostgreSQL
type AssessmentRepositoryImpl struct {
	db *sqlx.DB
}

// NewAssessmentRepository creates a new PostgreSQL assessment repository
func NewAssessmentRepository(db *sqlx.DB) ports.AssessmentRepository {
	return &AssessmentRepositoryImpl{db: db}
}

// SaveAssessment stores an assessment keyed by its fingerprint; a later narrative replaces the payload
func (r *AssessmentRepositoryImpl) SaveAssessment(ctx context.Context, a breeding.CompatibilityAssessment) error {
	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO breeding_assessments (
			fingerprint, specimen_a_id, specimen_b_id, compatibility_score,
			success_probability, compatibility_level, breeding_difficulty, payload
		) VALUES (
			:fingerprint, :specimen_a_id, :specimen_b_id, :compatibility_score,
			:success_probability, :compatibility_level, :breeding_difficulty, :payload
		)
		ON CONFLICT (fingerprint) DO UPDATE SET payload = EXCLUDED.payload
	`, models.NewAssessmentRow(a))
	return err
}

// SaveReport stores a program report
func (r *AssessmentRepositoryImpl) SaveReport(ctx context.Context, report *breeding.ProgramReport) error {
	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO program_reports (id, generated_at, specimen_count, mean_score, payload)
		VALUES (:id, :generated_at, :specimen_count, :mean_score, :payload)
		ON CONFLICT (id) DO NOTHING
	`, models.NewReportRow(report))
	return err
}

// GetReport retrieves a program report by ID
func (r *AssessmentRepositoryImpl) GetReport(ctx context.Context, id core.ReportID) (*breeding.ProgramReport, error) {
	var row models.ReportRow
	err := r.db.GetContext(ctx, &row, `
		SELECT id, generated_at, specimen_count, mean_score, payload
		FROM program_reports
		WHERE id = $1
	`, id.String())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, core.NewNotFoundError("program report", id.String())
		}
		return nil, err
	}
	report := row.Payload.Data
	return &report, nil
}

package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"orchidbreed/domain/core"
	"orchidbreed/domain/specimen"
	"orchidbreed/ports"
)

// SpecimenRepositoryImpl implements SpecimenRepository for PostgreSQL
type SpecimenRepositoryImpl struct {
	db *sqlx.DB
}

// NewSpecimenRepository creates a new PostgreSQL specimen repository
func NewSpecimenRepository(db *sqlx.DB) *SpecimenRepositoryImpl {
	return &SpecimenRepositoryImpl{db: db}
}

var _ ports.SpecimenRepository = (*SpecimenRepositoryImpl)(nil)

// GetSpecimen retrieves a specimen by ID
func (r *SpecimenRepositoryImpl) GetSpecimen(ctx context.Context, id core.SpecimenID) (*specimen.SpecimenRef, error) {
	var s specimen.SpecimenRef
	err := r.db.GetContext(ctx, &s, `
		SELECT id, name, genus, species, cultivation_notes
		FROM specimens
		WHERE id = $1
	`, id.String())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, core.NewNotFoundError("specimen", id.String())
		}
		return nil, err
	}
	return &s, nil
}

// ListSpecimens returns specimens ordered by ID, optionally restricted to genera
func (r *SpecimenRepositoryImpl) ListSpecimens(ctx context.Context, filter specimen.Filter) ([]specimen.SpecimenRef, error) {
	query, args := buildListQuery(filter)

	var out []specimen.SpecimenRef
	if err := r.db.SelectContext(ctx, &out, query, args...); err != nil {
		return nil, err
	}
	return out, nil
}

// UpsertSpecimens inserts or replaces specimens in one transaction
func (r *SpecimenRepositoryImpl) UpsertSpecimens(ctx context.Context, specimens []specimen.SpecimenRef) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, s := range specimens {
		_, err := tx.NamedExecContext(ctx, `
			INSERT INTO specimens (id, name, genus, species, cultivation_notes)
			VALUES (:id, :name, :genus, :species, :cultivation_notes)
			ON CONFLICT (id) DO UPDATE SET
				name = EXCLUDED.name,
				genus = EXCLUDED.genus,
				species = EXCLUDED.species,
				cultivation_notes = EXCLUDED.cultivation_notes
		`, s)
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}

func buildListQuery(filter specimen.Filter) (string, []interface{}) {
	var b strings.Builder
	b.WriteString("SELECT id, name, genus, species, cultivation_notes FROM specimens")

	var args []interface{}
	if len(filter.Genera) > 0 {
		genera := make([]string, len(filter.Genera))
		for i, g := range filter.Genera {
			genera[i] = strings.ToLower(strings.TrimSpace(g))
		}
		args = append(args, pq.Array(genera))
		b.WriteString(" WHERE LOWER(genus) = ANY($1)")
	}

	b.WriteString(" ORDER BY id")
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		b.WriteString(" LIMIT $" + strconv.Itoa(len(args)))
	}
	return b.String(), args
}

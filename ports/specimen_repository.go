package ports

import (
	"context"

	"orchidbreed/domain/core"
	"orchidbreed/domain/specimen"
)

// SpecimenRepository is the read-only view of stored specimens
type SpecimenRepository interface {
	// GetSpecimen returns core.ErrSpecimenNotFound when the id is unknown
	GetSpecimen(ctx context.Context, id core.SpecimenID) (*specimen.SpecimenRef, error)
	ListSpecimens(ctx context.Context, filter specimen.Filter) ([]specimen.SpecimenRef, error)
}

package core

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ID represents a domain identifier
type ID string

// NewID creates a new unique identifier using UUID v7 for time-ordered generation
func NewID() ID {
	// Falls back to v4 if v7 fails
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return ID(id.String())
}

// String returns the string representation
func (id ID) String() string {
	return string(id)
}

// IsEmpty checks if the ID is empty
func (id ID) IsEmpty() bool {
	return id == ""
}

// Domain-specific ID types
type (
	SpecimenID ID
	ReportID   ID
)

// String conversions for domain IDs
func (id SpecimenID) String() string { return ID(id).String() }
func (id ReportID) String() string   { return ID(id).String() }

// NewReportID creates a fresh program report identifier
func NewReportID() ReportID {
	return ReportID(NewID())
}

// ParseSpecimenID parses a string into SpecimenID
func ParseSpecimenID(s string) (SpecimenID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("specimen ID cannot be empty")
	}
	return SpecimenID(s), nil
}

// ParseReportID parses a string into ReportID
func ParseReportID(s string) (ReportID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("report ID cannot be empty")
	}
	return ReportID(s), nil
}

package models

import (
	"testing"

	"orchidbreed/domain/breeding"
	"orchidbreed/domain/specimen"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONBRoundTripsThroughDriver(t *testing.T) {
	a := breeding.CompatibilityAssessment{
		SpecimenA:          specimen.SpecimenRef{ID: "a", Genus: "Cattleya"},
		SpecimenB:          specimen.SpecimenRef{ID: "b", Genus: "Laelia"},
		CompatibilityScore: 82.5,
		CompatibilityLevel: breeding.LevelGood,
	}
	row := NewAssessmentRow(a)
	assert.Equal(t, a.Fingerprint().String(), row.Fingerprint)
	assert.Equal(t, "good", row.CompatibilityLevel)

	raw, err := row.Payload.Value()
	require.NoError(t, err)

	var scanned JSONB[breeding.CompatibilityAssessment]
	require.NoError(t, scanned.Scan(raw))
	assert.Equal(t, a.CompatibilityScore, scanned.Data.CompatibilityScore)
	assert.Equal(t, a.SpecimenB.Genus, scanned.Data.SpecimenB.Genus)

	require.NoError(t, scanned.Scan(string(raw.([]byte))))
	assert.Equal(t, breeding.LevelGood, scanned.Data.CompatibilityLevel)
}

func TestJSONBScanEdgeCases(t *testing.T) {
	var j JSONB[map[string]int]
	require.NoError(t, j.Scan(nil))
	assert.Nil(t, j.Data)

	require.NoError(t, j.Scan([]byte{}))
	assert.Nil(t, j.Data)

	assert.Error(t, j.Scan(42))
	assert.Error(t, j.Scan([]byte("{not json")))
}

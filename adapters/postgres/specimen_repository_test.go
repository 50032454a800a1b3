package postgres

import (
	"testing"

	"orchidbreed/domain/specimen"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildListQuery(t *testing.T) {
	query, args := buildListQuery(specimen.Filter{})
	assert.Equal(t, "SELECT id, name, genus, species, cultivation_notes FROM specimens ORDER BY id", query)
	assert.Empty(t, args)

	query, args = buildListQuery(specimen.Filter{Genera: []string{" Cattleya", "LAELIA"}, Limit: 25})
	assert.Contains(t, query, "WHERE LOWER(genus) = ANY($1)")
	assert.Contains(t, query, "LIMIT $2")
	require.Len(t, args, 2)
	assert.Equal(t, pq.Array([]string{"cattleya", "laelia"}), args[0])
	assert.Equal(t, 25, args[1])

	query, args = buildListQuery(specimen.Filter{Limit: 5})
	assert.Contains(t, query, "LIMIT $1")
	assert.Equal(t, []interface{}{5}, args)
}

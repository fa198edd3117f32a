package queries_test

import (
	"testing"

	"kitchen/internal/core/application/usecases/queries"
	"kitchen/internal/core/domain/model/table"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetTablesQuery_Valid(t *testing.T) {
	query := queries.NewGetTablesQuery()
	require.NoError(t, query.Validate())
}

func TestNewGetAvailableTablesQuery_Valid(t *testing.T) {
	query, err := queries.NewGetAvailableTablesQuery(4)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
}

func TestNewGetAvailableTablesQuery_InvalidCapacity(t *testing.T) {
	for _, capacity := range []int{0, 1, 3, 5, 7, 9} {
		_, err := queries.NewGetAvailableTablesQuery(capacity)
		require.Error(t, err)
		assert.ErrorIs(t, err, table.ErrInvalidCapacity)
	}
}

func TestGetTablesQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetTablesQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetTablesQueryIsNotConstructed)
}

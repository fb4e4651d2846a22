package queries_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetProblemOrdersQuery_Valid(t *testing.T) {
	query := queries.NewGetProblemOrdersQuery()
	require.NoError(t, query.Validate())
}

func TestGetProblemOrdersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetProblemOrdersQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetProblemOrdersQueryIsNotConstructed)
}

package queries_test

import (
	"testing"

	"foodorder/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrderStatisticsQuery_Valid(t *testing.T) {
	query := queries.NewGetOrderStatisticsQuery()
	require.NoError(t, query.Validate())
}

func TestGetOrderStatisticsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetOrderStatisticsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrderStatisticsQueryIsNotConstructed)
}

package queries_test

import (
	"testing"
	"time"

	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetDailySummaryQuery_Valid(t *testing.T) {
	from := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)

	query, err := queries.NewGetDailySummaryQuery(from, to)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, from, query.From())
	assert.Equal(t, to, query.To())
}

func TestNewGetDailySummaryQuery_ZeroBounds(t *testing.T) {
	to := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)

	_, err := queries.NewGetDailySummaryQuery(time.Time{}, to)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = queries.NewGetDailySummaryQuery(to, time.Time{})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewGetDailySummaryQuery_InvertedWindow(t *testing.T) {
	from := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)

	_, err := queries.NewGetDailySummaryQuery(from, from)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestGetDailySummaryQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetDailySummaryQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetDailySummaryQueryIsNotConstructed)
}

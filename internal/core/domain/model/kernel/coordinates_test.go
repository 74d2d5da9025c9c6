package kernel_test

import (
	"testing"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCoordinates(t *testing.T) {
	t.Run("valid_point", func(t *testing.T) {
		point, err := kernel.NewCoordinates(31.2304, 121.4737)

		require.NoError(t, err)
		require.NoError(t, point.Validate())
		assert.InDelta(t, 31.2304, point.Lat(), 0.000001)
		assert.InDelta(t, 121.4737, point.Lng(), 0.000001)
	})

	t.Run("boundary_values_are_valid", func(t *testing.T) {
		for _, pair := range [][2]float64{
			{kernel.LatitudeMin, kernel.LongitudeMin},
			{kernel.LatitudeMax, kernel.LongitudeMax},
			{0, 0},
		} {
			_, err := kernel.NewCoordinates(pair[0], pair[1])
			require.NoError(t, err)
		}
	})

	t.Run("latitude_out_of_range", func(t *testing.T) {
		_, err := kernel.NewCoordinates(91, 0)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("longitude_out_of_range", func(t *testing.T) {
		_, err := kernel.NewCoordinates(0, -180.5)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestCoordinates_String(t *testing.T) {
	point, err := kernel.NewCoordinates(31.2304, 121.4737)
	require.NoError(t, err)

	assert.Equal(t, "31.230400,121.473700", point.String())
}

func TestCoordinates_Validate(t *testing.T) {
	t.Run("zero_value_is_invalid", func(t *testing.T) {
		var point kernel.Coordinates

		err := point.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrCoordinatesAreNotConstructed, err)
	})
}

func TestCoordinates_IsEqual(t *testing.T) {
	a, _ := kernel.NewCoordinates(10, 20)
	b, _ := kernel.NewCoordinates(10, 20)
	c, _ := kernel.NewCoordinates(10, 21)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}

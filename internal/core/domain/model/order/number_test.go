package order_test

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"foodorder/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNumber(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("should start with the millisecond timestamp", func(t *testing.T) {
		number := order.NewNumber(now)

		prefix := strconv.FormatInt(now.UnixMilli(), 10)
		assert.True(t, strings.HasPrefix(number, prefix))
	})

	t.Run("should append a four digit suffix", func(t *testing.T) {
		number := order.NewNumber(now)

		prefix := strconv.FormatInt(now.UnixMilli(), 10)
		assert.Len(t, number, len(prefix)+4)
	})

	t.Run("should be numeric", func(t *testing.T) {
		number := order.NewNumber(now)

		_, err := strconv.ParseUint(number, 10, 64)
		require.NoError(t, err)
	})
}

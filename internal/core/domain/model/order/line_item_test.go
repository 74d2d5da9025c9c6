package order_test

import (
	"testing"

	"foodorder/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLineItem(t *testing.T) {
	price := decimal.NewFromFloat(15.50)

	t.Run("should create valid line item", func(t *testing.T) {
		item, err := order.NewLineItem("Kung Pao Chicken", price, 2, "extra spicy")

		require.NoError(t, err)
		require.NoError(t, item.Validate())
		assert.Equal(t, "Kung Pao Chicken", item.Name())
		assert.True(t, item.UnitPrice().Equal(price))
		assert.Equal(t, 2, item.Quantity())
		assert.Equal(t, "extra spicy", item.Flavor())
	})

	t.Run("should allow empty flavor", func(t *testing.T) {
		item, err := order.NewLineItem("Rice", decimal.NewFromInt(2), 1, "")

		require.NoError(t, err)
		assert.Empty(t, item.Flavor())
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		_, err := order.NewLineItem("", price, 1, "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "value is required: name")
	})

	t.Run("should fail with negative unit price", func(t *testing.T) {
		_, err := order.NewLineItem("Rice", decimal.NewFromInt(-1), 1, "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "unitPrice")
	})

	t.Run("should accept zero unit price", func(t *testing.T) {
		item, err := order.NewLineItem("Free Sample", decimal.Zero, 1, "")

		require.NoError(t, err)
		assert.True(t, item.UnitPrice().IsZero())
	})

	t.Run("should fail with zero quantity", func(t *testing.T) {
		_, err := order.NewLineItem("Rice", price, 0, "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "quantity")
	})

	t.Run("should fail with negative quantity", func(t *testing.T) {
		_, err := order.NewLineItem("Rice", price, -2, "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "quantity")
	})

	t.Run("should join multiple validation errors", func(t *testing.T) {
		_, err := order.NewLineItem("", decimal.NewFromInt(-1), 0, "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "name")
		assert.Contains(t, err.Error(), "unitPrice")
		assert.Contains(t, err.Error(), "quantity")
	})
}

func TestLineItem_Subtotal(t *testing.T) {
	t.Run("should multiply unit price by quantity", func(t *testing.T) {
		item, _ := order.NewLineItem("Dumplings", decimal.NewFromFloat(12.30), 3, "")

		assert.True(t, item.Subtotal().Equal(decimal.NewFromFloat(36.90)))
	})

	t.Run("should keep exact decimal arithmetic", func(t *testing.T) {
		item, _ := order.NewLineItem("Tea", decimal.NewFromFloat(0.10), 3, "")

		assert.Equal(t, "0.3", item.Subtotal().String())
	})
}

func TestLineItem_Validate(t *testing.T) {
	t.Run("should fail for zero value line item", func(t *testing.T) {
		var item order.LineItem

		err := item.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrLineItemIsNotConstructed, err)
	})
}

func TestNewShipping(t *testing.T) {
	t.Run("should create valid shipping snapshot", func(t *testing.T) {
		s, err := order.NewShipping("Zhang San", "13800000000", "1 Main St")

		require.NoError(t, err)
		require.NoError(t, s.Validate())
		assert.Equal(t, "Zhang San", s.Consignee())
		assert.Equal(t, "13800000000", s.Phone())
		assert.Equal(t, "1 Main St", s.Address())
	})

	t.Run("should require all fields", func(t *testing.T) {
		_, err := order.NewShipping("", "", "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "consignee")
		assert.Contains(t, err.Error(), "phone")
		assert.Contains(t, err.Error(), "address")
	})

	t.Run("should fail validation for zero value snapshot", func(t *testing.T) {
		var s order.Shipping

		err := s.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrShippingIsNotConstructed, err)
	})
}

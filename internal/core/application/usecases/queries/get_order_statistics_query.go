package queries

import (
	"errors"

	"foodorder/internal/pkg/guard"
)

var ErrGetOrderStatisticsQueryIsNotConstructed = errors.New(
	"GetOrderStatisticsQuery must be created via NewGetOrderStatisticsQuery constructor",
)

// GetOrderStatisticsQuery counts the orders the merchant has to act on,
// grouped by active status. Shown as badges on the operator console.
type GetOrderStatisticsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrderStatisticsQuery creates a query for the operator status badges.
// This is a parameterless query.
func NewGetOrderStatisticsQuery() GetOrderStatisticsQuery {
	return GetOrderStatisticsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOrderStatisticsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatisticsQueryIsNotConstructed)
}

// GetOrderStatisticsQueryResponse holds the per-status order counts the
// operator console displays.
type GetOrderStatisticsQueryResponse struct {
	ToBeConfirmed      int64
	Confirmed          int64
	DeliveryInProgress int64
}

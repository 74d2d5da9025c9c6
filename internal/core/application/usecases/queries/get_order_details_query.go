// Package queries contains read-only operations for order data.
// Implements the Query side of the CQRS architecture: handlers read the
// database directly and return plain response structures, bypassing the
// domain aggregates.
package queries

import (
	"errors"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetOrderDetailsQueryIsNotConstructed = errors.New(
	"GetOrderDetailsQuery must be created via NewGetOrderDetailsQuery constructor",
)

// GetOrderDetailsQuery retrieves a single order with its line items.
//
// Example:
//
//	query, err := NewGetOrderDetailsQuery(orderID)
//	if err != nil {
//	    return err
//	}
//
//	details, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to load order: %w", err)
//	}
//	fmt.Printf("Order %s: %s\n", details.Number, details.Status)
type GetOrderDetailsQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderDetailsQuery creates a query for one order's full view.
func NewGetOrderDetailsQuery(orderID kernel.UUID) (GetOrderDetailsQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderDetailsQuery{}, err
	}

	return GetOrderDetailsQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderDetailsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderDetailsQueryIsNotConstructed)
}

// OrderID returns the order to load.
func (q GetOrderDetailsQuery) OrderID() kernel.UUID {
	return q.orderID
}

// OrderLineItemResponse is one purchased position in a details view.
type OrderLineItemResponse struct {
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int
	Flavor    string
}

// GetOrderDetailsQueryResponse is the full customer-facing view of an order.
type GetOrderDetailsQueryResponse struct {
	ID              string
	Number          string
	UserID          string
	Status          int
	PayStatus       int
	Amount          decimal.Decimal
	OrderTime       time.Time
	CheckoutTime    *time.Time
	CancelTime      *time.Time
	DeliveryTime    *time.Time
	CancelReason    string
	RejectionReason string
	Consignee       string
	Phone           string
	Address         string
	Items           []OrderLineItemResponse
}

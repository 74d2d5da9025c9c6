// Package ports defines the contracts between the application core and
// infrastructure adapters: persistence repositories, the payment gateway,
// the geo provider, and operator notifications. These interfaces establish
// dependency inversion and keep the use cases testable.
package ports

import (
	"context"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// SearchFilter narrows a merchant order search. Zero values mean "any":
// empty strings match everything, order.Unknown matches every status, and a
// nil time bound leaves that side open.
type SearchFilter struct {
	Number string
	Phone  string
	Status order.Status
	From   *time.Time
	To     *time.Time
}

// OrderPage is one page of a paginated order listing together with the total
// number of rows matching the query.
type OrderPage struct {
	Total  int64
	Orders []*order.Order
}

// OrderRepository defines the persistence contract for order aggregates.
//
// Update is a compare-and-set: the write is conditioned on the aggregate's
// PersistedStatus, so two actors racing over the same order cannot both win.
// The loser receives a StaleStateConflict error and must re-read.
type OrderRepository interface {
	// Add persists a new order aggregate together with its line items.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate, conditioned
	// on the status the aggregate was loaded with. Returns a
	// StaleStateConflict error when the row's status no longer matches,
	// meaning a concurrent actor transitioned the order first.
	Update(ctx context.Context, aggregate *order.Order) error

	// GetByID retrieves an order aggregate by its unique identifier.
	// Returns an OrderNotFound error when no such order exists.
	GetByID(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByNumber retrieves an order aggregate by its external order number.
	// Used by payment callbacks, which only carry the number.
	GetByNumber(ctx context.Context, number string) (*order.Order, error)

	// GetByStatusOlderThan retrieves all orders in the given status whose
	// orderTime lies strictly before the cutoff. Used by the timeout sweeps.
	GetByStatusOlderThan(ctx context.Context, status order.Status, cutoff time.Time) ([]*order.Order, error)

	// PageByUser retrieves one page of a customer's order history, newest
	// first. A status of order.Unknown matches every status.
	PageByUser(ctx context.Context, userID kernel.UUID, status order.Status, page, size int) (OrderPage, error)

	// PageBySearch retrieves one page of orders matching the merchant
	// search filter, newest first.
	PageBySearch(ctx context.Context, filter SearchFilter, page, size int) (OrderPage, error)

	// CountByStatus returns the number of orders currently in the given status.
	CountByStatus(ctx context.Context, status order.Status) (int64, error)

	// SumAmountCompletedBetween returns the turnover of completed orders
	// whose orderTime falls in [from, to).
	SumAmountCompletedBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error)

	// CountBetween returns the number of orders whose orderTime falls in
	// [from, to). A status of order.Unknown matches every status.
	CountBetween(ctx context.Context, from, to time.Time, status order.Status) (int64, error)
}

package ports

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// CartItem is a read model of one shopping cart row: the dish or combo the
// customer picked, with the price captured when it was added.
type CartItem struct {
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int
	Flavor    string
}

// CartRepository reads and clears a customer's shopping cart. Submission
// snapshots the cart into order line items and clears it in the same
// transaction; cart maintenance itself lives outside this module.
type CartRepository interface {
	// ListByUser retrieves all cart rows of the given customer.
	// An empty slice means the cart is empty.
	ListByUser(ctx context.Context, userID kernel.UUID) ([]CartItem, error)

	// ClearByUser removes all cart rows of the given customer.
	ClearByUser(ctx context.Context, userID kernel.UUID) error
}

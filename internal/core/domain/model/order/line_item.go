package order

import (
	"errors"

	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrLineItemIsNotConstructed is returned when a LineItem was not created
// through the NewLineItem constructor.
var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")

// LineItem is a single purchased position of an order: a dish or combo name,
// its unit price, the quantity, and an optional flavor/spec string.
//
// Line items are created in bulk at submission from the cart snapshot and are
// never mutated afterwards.
type LineItem struct { //nolint:recvcheck //using for validation
	name      string
	unitPrice decimal.Decimal
	quantity  int
	flavor    string

	guard guard.ConstructorGuard
}

// NewLineItem creates a validated LineItem.
// The name must not be empty, the unit price must not be negative, and the
// quantity must be positive. Flavor may be empty.
func NewLineItem(name string, unitPrice decimal.Decimal, quantity int, flavor string) (LineItem, error) {
	item := LineItem{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setName(name),
		item.setUnitPrice(unitPrice),
		item.setQuantity(quantity),
	); err != nil {
		return LineItem{}, err
	}

	item.flavor = flavor
	return item, nil
}

// Validate ensures the LineItem was created through NewLineItem.
func (i LineItem) Validate() error {
	return i.guard.Validate(ErrLineItemIsNotConstructed)
}

// Name returns the dish or combo name.
func (i LineItem) Name() string {
	return i.name
}

// UnitPrice returns the price of a single unit.
func (i LineItem) UnitPrice() decimal.Decimal {
	return i.unitPrice
}

// Quantity returns the number of units ordered.
func (i LineItem) Quantity() int {
	return i.quantity
}

// Flavor returns the flavor/spec string chosen by the customer. May be empty.
func (i LineItem) Flavor() string {
	return i.flavor
}

// Subtotal returns unit price multiplied by quantity.
func (i LineItem) Subtotal() decimal.Decimal {
	return i.unitPrice.Mul(decimal.NewFromInt(int64(i.quantity)))
}

func (i *LineItem) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	i.name = name
	return nil
}

func (i *LineItem) setUnitPrice(unitPrice decimal.Decimal) error {
	if unitPrice.IsNegative() {
		return errs.NewValueIsInvalidError("unitPrice")
	}
	i.unitPrice = unitPrice
	return nil
}

func (i *LineItem) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidError("quantity")
	}
	i.quantity = quantity
	return nil
}

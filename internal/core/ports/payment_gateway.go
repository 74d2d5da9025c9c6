package ports

import (
	"context"

	"github.com/shopspring/decimal"
)

// PaymentGateway talks to the payment provider. Orders are referenced by
// their external number, never by the internal ID.
type PaymentGateway interface {
	// Charge initiates a payment for the given order number. The provider
	// confirms asynchronously through the payment callback.
	Charge(ctx context.Context, number string, amount decimal.Decimal) error

	// Refund returns money to the customer. The refund reference is
	// recorded with the provider alongside the original order number; the
	// refund amount must not exceed the original amount. Returns a
	// RefundFailed error when the provider declines.
	Refund(ctx context.Context, number, refundRef string, amount, originalAmount decimal.Decimal) error
}

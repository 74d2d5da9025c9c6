// Package payment provides the payment gateway adapter. The simulated
// gateway stands in for a real provider integration: charges always succeed
// and refunds succeed when the refund amount does not exceed the original
// charge. Swapping in a real provider only touches this package.
package payment

import (
	"context"
	"log/slog"

	"foodorder/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// SimulatedGateway implements ports.PaymentGateway without an external
// provider.
type SimulatedGateway struct {
	logger *slog.Logger
}

// NewSimulatedGateway creates a gateway that approves every charge.
func NewSimulatedGateway(logger *slog.Logger) *SimulatedGateway {
	return &SimulatedGateway{logger: logger}
}

// Charge authorizes a payment for the given order.
func (g *SimulatedGateway) Charge(_ context.Context, number string, amount decimal.Decimal) error {
	if number == "" {
		return errs.NewValueIsRequiredError("number")
	}
	if !amount.IsPositive() {
		return errs.NewValueIsInvalidError("amount")
	}

	g.logger.Info("payment charged",
		slog.String("order_number", number),
		slog.String("amount", amount.String()))
	return nil
}

// Refund returns money for a cancelled or rejected order. The refund must not
// exceed the originally charged amount.
func (g *SimulatedGateway) Refund(
	_ context.Context,
	number string,
	refundRef string,
	amount decimal.Decimal,
	originalAmount decimal.Decimal,
) error {
	if number == "" {
		return errs.NewValueIsRequiredError("number")
	}
	if refundRef == "" {
		return errs.NewValueIsRequiredError("refundRef")
	}
	if !amount.IsPositive() {
		return errs.NewRefundFailedError(number, errs.NewValueIsInvalidError("amount"))
	}
	if amount.GreaterThan(originalAmount) {
		return errs.NewRefundFailedError(number, errs.NewValueIsOutOfRangeError(
			"amount", amount.String(), 0, originalAmount.String()))
	}

	g.logger.Info("payment refunded",
		slog.String("order_number", number),
		slog.String("refund_ref", refundRef),
		slog.String("amount", amount.String()))
	return nil
}

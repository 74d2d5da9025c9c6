package commands

import (
	"errors"

	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrPayOrderCommandIsNotConstructed = errors.New(
	"PayOrderCommand must be created via NewPayOrderCommand constructor",
)

// PayOrderCommand represents a successful payment callback from the payment
// provider. The provider identifies the order by its external number.
type PayOrderCommand struct { //nolint:recvcheck //using for validation
	number string

	guard guard.ConstructorGuard
}

// NewPayOrderCommand creates a command to record a confirmed payment.
func NewPayOrderCommand(number string) (PayOrderCommand, error) {
	cmd := PayOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if number == "" {
		return PayOrderCommand{}, errs.NewValueIsRequiredError("number")
	}
	cmd.number = number

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PayOrderCommand) Validate() error {
	return c.guard.Validate(ErrPayOrderCommandIsNotConstructed)
}

// Number returns the external order number reported by the provider.
func (c PayOrderCommand) Number() string {
	return c.number
}

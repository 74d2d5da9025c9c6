package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var ErrCancelOrderByUserCommandIsNotConstructed = errors.New(
	"CancelOrderByUserCommand must be created via NewCancelOrderByUserCommand constructor",
)

// CancelOrderByUserCommand represents a customer withdrawing their own order
// before the merchant accepted it.
type CancelOrderByUserCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCancelOrderByUserCommand creates a command to cancel an order on the
// customer's behalf.
func NewCancelOrderByUserCommand(orderID kernel.UUID) (CancelOrderByUserCommand, error) {
	cmd := CancelOrderByUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := orderID.Validate(); err != nil {
		return CancelOrderByUserCommand{}, err
	}
	cmd.orderID = orderID

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelOrderByUserCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderByUserCommandIsNotConstructed)
}

// OrderID returns the order to cancel.
func (c CancelOrderByUserCommand) OrderID() kernel.UUID {
	return c.orderID
}

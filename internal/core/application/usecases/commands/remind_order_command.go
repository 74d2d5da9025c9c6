package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var ErrRemindOrderCommandIsNotConstructed = errors.New(
	"RemindOrderCommand must be created via NewRemindOrderCommand constructor",
)

// RemindOrderCommand represents a customer nudging the merchant about an
// order they are waiting for.
type RemindOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemindOrderCommand creates a command to send a reminder for an order.
func NewRemindOrderCommand(orderID kernel.UUID) (RemindOrderCommand, error) {
	cmd := RemindOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := orderID.Validate(); err != nil {
		return RemindOrderCommand{}, err
	}
	cmd.orderID = orderID

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemindOrderCommand) Validate() error {
	return c.guard.Validate(ErrRemindOrderCommandIsNotConstructed)
}

// OrderID returns the order the customer is waiting for.
func (c RemindOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrCancelOrderByMerchantCommandIsNotConstructed = errors.New(
	"CancelOrderByMerchantCommand must be created via NewCancelOrderByMerchantCommand constructor",
)

// CancelOrderByMerchantCommand represents a merchant aborting an order at any
// point before completion. A reason is mandatory.
type CancelOrderByMerchantCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	reason  string

	guard guard.ConstructorGuard
}

// NewCancelOrderByMerchantCommand creates a command to cancel an order on the
// merchant's behalf.
func NewCancelOrderByMerchantCommand(orderID kernel.UUID, reason string) (CancelOrderByMerchantCommand, error) {
	cmd := CancelOrderByMerchantCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setReason(reason),
	); err != nil {
		return CancelOrderByMerchantCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelOrderByMerchantCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderByMerchantCommandIsNotConstructed)
}

// OrderID returns the order to cancel.
func (c CancelOrderByMerchantCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Reason returns the cancellation reason shown to the customer.
func (c CancelOrderByMerchantCommand) Reason() string {
	return c.reason
}

func (c *CancelOrderByMerchantCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CancelOrderByMerchantCommand) setReason(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}

	c.reason = reason
	return nil
}

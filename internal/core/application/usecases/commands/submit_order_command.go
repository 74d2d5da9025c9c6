package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var ErrSubmitOrderCommandIsNotConstructed = errors.New(
	"SubmitOrderCommand must be created via NewSubmitOrderCommand constructor",
)

// SubmitOrderCommand represents a customer's checkout request: turn the
// current cart into an order shipped to one of their saved addresses.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewSubmitOrderCommand(orderID, userID, addressID)
//	if err != nil {
//	    return fmt.Errorf("invalid submission: %w", err)
//	}
//
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to submit order: %w", err)
//	}
//	fmt.Printf("Order %s awaiting payment", result.Number)
type SubmitOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	userID    kernel.UUID
	addressID kernel.UUID

	guard guard.ConstructorGuard
}

// NewSubmitOrderCommand creates a command to submit the user's cart as an
// order. All three identifiers must be valid UUIDs.
func NewSubmitOrderCommand(orderID, userID, addressID kernel.UUID) (SubmitOrderCommand, error) {
	cmd := SubmitOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setUserID(userID),
		cmd.setAddressID(addressID),
	); err != nil {
		return SubmitOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitOrderCommand) Validate() error {
	return c.guard.Validate(ErrSubmitOrderCommandIsNotConstructed)
}

// OrderID returns the identifier assigned to the new order.
func (c SubmitOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// UserID returns the submitting customer's identifier.
func (c SubmitOrderCommand) UserID() kernel.UUID {
	return c.userID
}

// AddressID returns the chosen address book entry.
func (c SubmitOrderCommand) AddressID() kernel.UUID {
	return c.addressID
}

func (c *SubmitOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *SubmitOrderCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *SubmitOrderCommand) setAddressID(addressID kernel.UUID) error {
	if err := addressID.Validate(); err != nil {
		return err
	}

	c.addressID = addressID
	return nil
}

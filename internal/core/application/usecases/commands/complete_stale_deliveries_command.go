package commands

import (
	"errors"

	"foodorder/internal/pkg/guard"
)

var ErrCompleteStaleDeliveriesCommandIsNotConstructed = errors.New(
	"CompleteStaleDeliveriesCommand must be created via NewCompleteStaleDeliveriesCommand constructor",
)

// CompleteStaleDeliveriesCommand triggers one sweep over orders stuck in
// DeliveryInProgress past the delivery deadline, force-completing each of
// them so the archive stays consistent.
type CompleteStaleDeliveriesCommand struct {
	guard guard.ConstructorGuard
}

// NewCompleteStaleDeliveriesCommand creates a command to trigger the delivery
// timeout sweep. This is a parameterless batch command.
func NewCompleteStaleDeliveriesCommand() CompleteStaleDeliveriesCommand {
	return CompleteStaleDeliveriesCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *CompleteStaleDeliveriesCommand) Validate() error {
	return c.guard.Validate(ErrCompleteStaleDeliveriesCommandIsNotConstructed)
}

package commands

import (
	"errors"

	"foodorder/internal/pkg/guard"
)

var ErrExpireTimedOutPaymentsCommandIsNotConstructed = errors.New(
	"ExpireTimedOutPaymentsCommand must be created via NewExpireTimedOutPaymentsCommand constructor",
)

// ExpireTimedOutPaymentsCommand triggers one sweep over orders whose payment
// deadline passed, cancelling each of them.
//
// Example:
//
//	cmd := NewExpireTimedOutPaymentsCommand()
//	handler := NewExpireTimedOutPaymentsCommandHandler(uowFactory, 15*time.Minute, logger)
//
//	// Run periodically from the scheduler
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("payment sweep failed: %v", err)
//	}
type ExpireTimedOutPaymentsCommand struct {
	guard guard.ConstructorGuard
}

// NewExpireTimedOutPaymentsCommand creates a command to trigger the payment
// timeout sweep. This is a parameterless batch command.
func NewExpireTimedOutPaymentsCommand() ExpireTimedOutPaymentsCommand {
	return ExpireTimedOutPaymentsCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *ExpireTimedOutPaymentsCommand) Validate() error {
	return c.guard.Validate(ErrExpireTimedOutPaymentsCommandIsNotConstructed)
}

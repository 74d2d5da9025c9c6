// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"foodorder/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// CartRepoFactory provides access to the cart repository within a transaction.
	CartRepoFactory interface {
		CartRepository() ports.CartRepository
	}

	// AddressBookRepoFactory provides access to the address book repository
	// within a transaction.
	AddressBookRepoFactory interface {
		AddressBookRepository() ports.AddressBookRepository
	}

	// OrderUoW manages transactions for order-only operations.
	// Used by the lifecycle transition commands.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// SubmitUoW manages the submission transaction, which spans the order,
	// cart, and address book repositories: the order and its line items are
	// inserted and the cart is cleared atomically.
	//
	// Example:
	//
	//	uow := factory.Create()
	//	err := uow.Begin(ctx)
	//	defer uow.Rollback(ctx)
	//
	//	orderRepo := uow.OrderRepository()
	//	cartRepo := uow.CartRepository()
	//	// ... perform operations
	//
	//	err = uow.Commit(ctx)
	SubmitUoW interface {
		TxManager
		OrderRepoFactory
		CartRepoFactory
		AddressBookRepoFactory
	}

	// SubmitUoWFactory creates new submission unit of work instances.
	SubmitUoWFactory interface {
		Create() SubmitUoW
	}
)

// Package postgres provides the GORM-based implementation of the Unit of Work
// pattern. A unit of work spans one business transaction and hands out
// repositories bound to that transaction, so an order insert and the cart
// wipe, or a status transition and its conditional write, commit or roll back
// together.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	if err := uow.OrderRepository().Add(ctx, order); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Each business operation must use its own instance: a unit of work carries
// transaction state and is not safe for concurrent use.
package postgres

import (
	"context"

	"foodorder/internal/adapters/out/postgres/addressrepo"
	"foodorder/internal/adapters/out/postgres/cartrepo"
	"foodorder/internal/adapters/out/postgres/orderrepo"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
// This is useful for implementing patterns like event sourcing or outbox pattern.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate interface{}
}

// GormUnitOfWorkFactory creates UnitOfWork instances on top of a shared GORM
// connection. Every Create call returns a fresh instance with its own
// transaction state, isolated from other in-flight operations.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork ready for one business transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction and tracks the
// aggregates written inside it. Repositories obtained from the unit of work
// run inside the current transaction when one is active, otherwise against
// the main connection.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin initiates a new database transaction for the unit of work.
// Calling Begin again while a transaction is active is a no-op; nested
// transactions are never created.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes all changes made within the current transaction.
// Returns error if no active transaction exists or if the commit fails.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
// Returns error if no active transaction exists or if the rollback fails.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// OrderRepository returns an order repository bound to the current
// transaction. Added and updated aggregates are tracked for post-transaction
// processing.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return orderrepo.NewGormOrderRepository(db, uow)
}

// CartRepository returns a cart repository bound to the current transaction.
func (uow *GormUnitOfWork) CartRepository() ports.CartRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return cartrepo.NewGormCartRepository(db)
}

// AddressBookRepository returns an address book repository bound to the
// current transaction.
func (uow *GormUnitOfWork) AddressBookRepository() ports.AddressBookRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return addressrepo.NewGormAddressBookRepository(db)
}

// TrackAggregate registers a domain aggregate as modified within this unit of
// work. Called by repository implementations on Add and Update.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

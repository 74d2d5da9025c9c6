package ports

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
)

// Address is a read model of one address book entry. The submission pipeline
// copies it into the order's shipping snapshot and geocodes its full text;
// address book maintenance itself lives outside this module.
type Address struct {
	ID        kernel.UUID
	UserID    kernel.UUID
	Consignee string
	Phone     string
	FullText  string
}

// AddressBookRepository reads customer delivery addresses.
type AddressBookRepository interface {
	// GetByID retrieves a single address book entry.
	// Returns an AddressNotFound error when no such entry exists.
	GetByID(ctx context.Context, id kernel.UUID) (*Address, error)
}

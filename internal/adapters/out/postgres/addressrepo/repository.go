// Package addressrepo provides the GORM-backed address book read model.
// The submission pipeline resolves the chosen entry into the order's shipping
// snapshot; address book maintenance itself happens outside this module.
package addressrepo

import (
	"context"
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/ports"
	"foodorder/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AddressDTO represents one address book entry.
type AddressDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;index"`
	Consignee string
	Phone     string
	FullText  string
}

// TableName specifies the database table name for address book entries.
func (AddressDTO) TableName() string {
	return "address_book"
}

// GormAddressBookRepository implements ports.AddressBookRepository using GORM.
type GormAddressBookRepository struct {
	db *gorm.DB
}

// NewGormAddressBookRepository creates a new GORM address book repository.
func NewGormAddressBookRepository(db *gorm.DB) *GormAddressBookRepository {
	return &GormAddressBookRepository{db: db}
}

// GetByID retrieves a single address book entry.
func (r *GormAddressBookRepository) GetByID(ctx context.Context, id kernel.UUID) (*ports.Address, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto AddressDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewAddressNotFoundError(id.String())
		}
		return nil, err
	}

	addressID, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	return &ports.Address{
		ID:        addressID,
		UserID:    userID,
		Consignee: dto.Consignee,
		Phone:     dto.Phone,
		FullText:  dto.FullText,
	}, nil
}

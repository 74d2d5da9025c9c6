// Package cartrepo provides the GORM-backed shopping cart read model.
// Submission snapshots the cart into order line items and clears it in the
// same transaction; cart maintenance itself happens outside this module.
package cartrepo

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/ports"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CartItemDTO represents one shopping cart row.
type CartItemDTO struct {
	ID        int64           `gorm:"primaryKey;autoIncrement"`
	UserID    uuid.UUID       `gorm:"type:uuid;index"`
	Name      string
	UnitPrice decimal.Decimal `gorm:"type:numeric(12,2)"`
	Quantity  int
	Flavor    string
}

// TableName specifies the database table name for cart rows.
func (CartItemDTO) TableName() string {
	return "cart_items"
}

// GormCartRepository implements ports.CartRepository using GORM.
type GormCartRepository struct {
	db *gorm.DB
}

// NewGormCartRepository creates a new GORM cart repository.
func NewGormCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// ListByUser retrieves all cart rows of the given customer, oldest first.
func (r *GormCartRepository) ListByUser(ctx context.Context, userID kernel.UUID) ([]ports.CartItem, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	var dtos []CartItemDTO
	if err := r.db.WithContext(ctx).
		Order("id").
		Find(&dtos, "user_id = ?", userID.Bytes()).Error; err != nil {
		return nil, err
	}

	items := make([]ports.CartItem, 0, len(dtos))
	for _, dto := range dtos {
		items = append(items, ports.CartItem{
			Name:      dto.Name,
			UnitPrice: dto.UnitPrice,
			Quantity:  dto.Quantity,
			Flavor:    dto.Flavor,
		})
	}

	return items, nil
}

// ClearByUser removes all cart rows of the given customer.
func (r *GormCartRepository) ClearByUser(ctx context.Context, userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Where("user_id = ?", userID.Bytes()).
		Delete(&CartItemDTO{}).Error
}

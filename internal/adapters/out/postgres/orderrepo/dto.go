// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. This package implements the repository pattern for the
// order aggregate, handling the conversion between domain entities and their
// database representation across the orders and order_line_items tables.
package orderrepo

import (
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Indexed for the hot lookups: payment callbacks by number, history by user,
// and the timeout sweeps by status and order time.
type OrderDTO struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Number          string          `gorm:"uniqueIndex"`
	UserID          uuid.UUID       `gorm:"type:uuid;index"`
	Status          int             `gorm:"index:idx_orders_status_order_time"`
	PayStatus       int
	Amount          decimal.Decimal `gorm:"type:numeric(12,2)"`
	OrderTime       time.Time       `gorm:"index:idx_orders_status_order_time"`
	CheckoutTime    *time.Time
	CancelTime      *time.Time
	DeliveryTime    *time.Time
	CancelReason    string
	RejectionReason string
	Consignee       string
	Phone           string          `gorm:"index"`
	Address         string
	Items           []LineItemDTO   `gorm:"foreignKey:OrderID;references:ID"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// LineItemDTO represents one purchased position of an order.
// Line items are written once at submission and never updated.
type LineItemDTO struct {
	ID        int64           `gorm:"primaryKey;autoIncrement"`
	OrderID   uuid.UUID       `gorm:"type:uuid;index"`
	Name      string
	UnitPrice decimal.Decimal `gorm:"type:numeric(12,2)"`
	Quantity  int
	Flavor    string
}

// TableName specifies the database table name for order line items.
func (LineItemDTO) TableName() string {
	return "order_line_items"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := aggregate.LineItems()
	itemDTOs := make([]LineItemDTO, 0, len(items))
	for _, item := range items {
		itemDTOs = append(itemDTOs, LineItemDTO{
			OrderID:   aggregate.ID().Bytes(),
			Name:      item.Name(),
			UnitPrice: item.UnitPrice(),
			Quantity:  item.Quantity(),
			Flavor:    item.Flavor(),
		})
	}

	return OrderDTO{
		ID:              aggregate.ID().Bytes(),
		Number:          aggregate.Number(),
		UserID:          aggregate.UserID().Bytes(),
		Status:          int(aggregate.Status()),
		PayStatus:       int(aggregate.PayStatus()),
		Amount:          aggregate.Amount(),
		OrderTime:       aggregate.OrderTime(),
		CheckoutTime:    aggregate.CheckoutTime(),
		CancelTime:      aggregate.CancelTime(),
		DeliveryTime:    aggregate.DeliveryTime(),
		CancelReason:    aggregate.CancelReason(),
		RejectionReason: aggregate.RejectionReason(),
		Consignee:       aggregate.Shipping().Consignee(),
		Phone:           aggregate.Shipping().Phone(),
		Address:         aggregate.Shipping().Address(),
		Items:           itemDTOs,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate using RestoreOrder, so the restored
// status also becomes the persisted status for conditional updates.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	shipping, err := order.NewShipping(dto.Consignee, dto.Phone, dto.Address)
	if err != nil {
		return nil, err
	}

	items := make([]order.LineItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := order.NewLineItem(itemDTO.Name, itemDTO.UnitPrice, itemDTO.Quantity, itemDTO.Flavor)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		userID,
		dto.Number,
		order.Status(dto.Status),
		order.PayStatus(dto.PayStatus),
		dto.Amount,
		dto.OrderTime,
		dto.CheckoutTime,
		dto.CancelTime,
		dto.DeliveryTime,
		dto.CancelReason,
		dto.RejectionReason,
		shipping,
		items,
	)
}

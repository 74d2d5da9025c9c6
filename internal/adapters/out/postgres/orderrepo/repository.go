package orderrepo

import (
	"context"
	"errors"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/ports"
	"foodorder/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order and its line items to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	aggregate.SyncPersistedStatus()
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order to the database, conditioned on the status
// the aggregate was loaded with. When the row's status no longer matches,
// a concurrent actor transitioned the order first and the write is refused
// with a StaleStateConflict error.
//
// Line items are immutable after submission and are not touched here.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND status = ?", dto.ID, int(aggregate.PersistedStatus())).
		Updates(map[string]any{
			"status":           dto.Status,
			"pay_status":       dto.PayStatus,
			"checkout_time":    dto.CheckoutTime,
			"cancel_time":      dto.CancelTime,
			"delivery_time":    dto.DeliveryTime,
			"cancel_reason":    dto.CancelReason,
			"rejection_reason": dto.RejectionReason,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewStaleStateConflictError(aggregate.ID().String(), aggregate.PersistedStatus().String())
	}

	aggregate.SyncPersistedStatus()
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetByID retrieves an order by ID, including its line items.
func (r *GormOrderRepository) GetByID(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).Preload("Items").First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewOrderNotFoundError(id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByNumber retrieves an order by its external order number.
func (r *GormOrderRepository) GetByNumber(ctx context.Context, number string) (*order.Order, error) {
	if number == "" {
		return nil, errs.NewValueIsRequiredError("number")
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).Preload("Items").First(&dto, "number = ?", number).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewOrderNotFoundError(number)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByStatusOlderThan retrieves all orders in the given status whose order
// time lies strictly before the cutoff. Used by the timeout sweeps.
func (r *GormOrderRepository) GetByStatusOlderThan(
	ctx context.Context,
	status order.Status,
	cutoff time.Time,
) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Find(&dtos, "status = ? AND order_time < ?", int(status), cutoff).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// PageByUser retrieves one page of a customer's order history, newest first.
// A status of order.Unknown matches every status.
func (r *GormOrderRepository) PageByUser(
	ctx context.Context,
	userID kernel.UUID,
	status order.Status,
	page, size int,
) (ports.OrderPage, error) {
	if err := userID.Validate(); err != nil {
		return ports.OrderPage{}, err
	}

	query := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("user_id = ?", userID.Bytes())
	if status != order.Unknown {
		query = query.Where("status = ?", int(status))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return ports.OrderPage{}, err
	}

	var dtos []OrderDTO
	if err := query.
		Preload("Items").
		Order("order_time DESC").
		Limit(size).
		Offset((page - 1) * size).
		Find(&dtos).Error; err != nil {
		return ports.OrderPage{}, err
	}

	orders, err := toDomainSlice(dtos)
	if err != nil {
		return ports.OrderPage{}, err
	}

	return ports.OrderPage{Total: total, Orders: orders}, nil
}

// PageBySearch retrieves one page of orders matching the merchant search
// filter, newest first.
func (r *GormOrderRepository) PageBySearch(
	ctx context.Context,
	filter ports.SearchFilter,
	page, size int,
) (ports.OrderPage, error) {
	query := r.db.WithContext(ctx).Model(&OrderDTO{})
	if filter.Number != "" {
		query = query.Where("number LIKE ?", "%"+filter.Number+"%")
	}
	if filter.Phone != "" {
		query = query.Where("phone LIKE ?", "%"+filter.Phone+"%")
	}
	if filter.Status != order.Unknown {
		query = query.Where("status = ?", int(filter.Status))
	}
	if filter.From != nil {
		query = query.Where("order_time >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("order_time < ?", *filter.To)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return ports.OrderPage{}, err
	}

	var dtos []OrderDTO
	if err := query.
		Preload("Items").
		Order("order_time DESC").
		Limit(size).
		Offset((page - 1) * size).
		Find(&dtos).Error; err != nil {
		return ports.OrderPage{}, err
	}

	orders, err := toDomainSlice(dtos)
	if err != nil {
		return ports.OrderPage{}, err
	}

	return ports.OrderPage{Total: total, Orders: orders}, nil
}

// CountByStatus returns the number of orders currently in the given status.
func (r *GormOrderRepository) CountByStatus(ctx context.Context, status order.Status) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("status = ?", int(status)).
		Count(&count).Error
	return count, err
}

// SumAmountCompletedBetween returns the turnover of completed orders whose
// order time falls in [from, to).
func (r *GormOrderRepository) SumAmountCompletedBetween(
	ctx context.Context,
	from, to time.Time,
) (decimal.Decimal, error) {
	var sum decimal.NullDecimal
	err := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Select("SUM(amount)").
		Where("status = ? AND order_time >= ? AND order_time < ?", int(order.Completed), from, to).
		Scan(&sum).Error
	if err != nil {
		return decimal.Zero, err
	}

	if !sum.Valid {
		return decimal.Zero, nil
	}
	return sum.Decimal, nil
}

// CountBetween returns the number of orders whose order time falls in
// [from, to). A status of order.Unknown matches every status.
func (r *GormOrderRepository) CountBetween(
	ctx context.Context,
	from, to time.Time,
	status order.Status,
) (int64, error) {
	query := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("order_time >= ? AND order_time < ?", from, to)
	if status != order.Unknown {
		query = query.Where("status = ?", int(status))
	}

	var count int64
	err := query.Count(&count).Error
	return count, err
}

func toDomainSlice(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, aggregate)
	}
	return orders, nil
}

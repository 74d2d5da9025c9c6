package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetUserOrdersQueryHandler pages through a customer's order history.
type GetUserOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetUserOrdersQueryHandler creates a handler for order history queries.
func NewGetUserOrdersQueryHandler(db *gorm.DB) GetUserOrdersQueryHandler {
	return GetUserOrdersQueryHandler{db: db}
}

// Handle executes the query, newest orders first.
func (h GetUserOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetUserOrdersQuery,
) (GetUserOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetUserOrdersQueryResponse{}, err
	}

	where := "user_id = ?"
	args := []any{query.UserID().String()}
	if query.Status() != 0 {
		where += " AND status = ?"
		args = append(args, query.Status())
	}

	var total int64
	if err := h.db.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM orders WHERE "+where, args...).
		Scan(&total).Error; err != nil {
		return GetUserOrdersQueryResponse{}, err
	}

	offset := (query.Page() - 1) * query.Size()
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, number, status, pay_status, amount, order_time
		FROM orders
		WHERE `+where+`
		ORDER BY order_time DESC
		LIMIT ? OFFSET ?
	`, append(args, query.Size(), offset)...).Rows()
	if err != nil {
		return GetUserOrdersQueryResponse{}, err
	}
	defer rows.Close()

	orders := make([]UserOrderResponse, 0, query.Size())
	for rows.Next() {
		var o UserOrderResponse
		if err = rows.Scan(&o.ID, &o.Number, &o.Status, &o.PayStatus, &o.Amount, &o.OrderTime); err != nil {
			return GetUserOrdersQueryResponse{}, err
		}
		orders = append(orders, o)
	}

	if err = rows.Err(); err != nil {
		return GetUserOrdersQueryResponse{}, err
	}

	return GetUserOrdersQueryResponse{Total: total, Orders: orders}, nil
}

package queries

import (
	"context"
	"database/sql"
	"errors"

	"foodorder/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderDetailsQueryHandler loads one order row and its line items.
type GetOrderDetailsQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderDetailsQueryHandler creates a handler for order detail queries.
func NewGetOrderDetailsQueryHandler(db *gorm.DB) GetOrderDetailsQueryHandler {
	return GetOrderDetailsQueryHandler{db: db}
}

// Handle executes the query. Returns an OrderNotFound error when no order
// with the given ID exists.
func (h GetOrderDetailsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderDetailsQuery,
) (GetOrderDetailsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderDetailsQueryResponse{}, err
	}

	var resp GetOrderDetailsQueryResponse
	var cancelReason, rejectionReason sql.NullString

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id, number, user_id, status, pay_status, amount,
			order_time, checkout_time, cancel_time, delivery_time,
			cancel_reason, rejection_reason,
			consignee, phone, address
		FROM orders
		WHERE id = ?
	`, query.OrderID().String()).Row()

	err := row.Scan(
		&resp.ID, &resp.Number, &resp.UserID, &resp.Status, &resp.PayStatus, &resp.Amount,
		&resp.OrderTime, &resp.CheckoutTime, &resp.CancelTime, &resp.DeliveryTime,
		&cancelReason, &rejectionReason,
		&resp.Consignee, &resp.Phone, &resp.Address,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetOrderDetailsQueryResponse{}, errs.NewOrderNotFoundError(query.OrderID().String())
		}
		return GetOrderDetailsQueryResponse{}, err
	}
	resp.CancelReason = cancelReason.String
	resp.RejectionReason = rejectionReason.String

	items, err := h.loadItems(ctx, resp.ID)
	if err != nil {
		return GetOrderDetailsQueryResponse{}, err
	}
	resp.Items = items

	return resp, nil
}

func (h GetOrderDetailsQueryHandler) loadItems(
	ctx context.Context, orderID string,
) ([]OrderLineItemResponse, error) {
	items := make([]OrderLineItemResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT name, unit_price, quantity, flavor
		FROM order_line_items
		WHERE order_id = ?
		ORDER BY id
	`, orderID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item OrderLineItemResponse
		var flavor sql.NullString

		if err = rows.Scan(&item.Name, &item.UnitPrice, &item.Quantity, &flavor); err != nil {
			return nil, err
		}
		item.Flavor = flavor.String
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

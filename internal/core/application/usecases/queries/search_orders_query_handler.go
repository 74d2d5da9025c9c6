package queries

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// SearchOrdersQueryHandler runs the merchant condition search and attaches a
// line-item summary to every row.
type SearchOrdersQueryHandler struct {
	db *gorm.DB
}

// NewSearchOrdersQueryHandler creates a handler for merchant order searches.
func NewSearchOrdersQueryHandler(db *gorm.DB) SearchOrdersQueryHandler {
	return SearchOrdersQueryHandler{db: db}
}

// Handle executes the search, newest orders first.
func (h SearchOrdersQueryHandler) Handle(
	ctx context.Context,
	query SearchOrdersQuery,
) (SearchOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return SearchOrdersQueryResponse{}, err
	}

	where, args := buildSearchFilter(query)

	var total int64
	if err := h.db.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM orders WHERE "+where, args...).
		Scan(&total).Error; err != nil {
		return SearchOrdersQueryResponse{}, err
	}

	offset := (query.Page() - 1) * query.Size()
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, number, status, pay_status, amount, order_time,
			consignee, phone, address
		FROM orders
		WHERE `+where+`
		ORDER BY order_time DESC
		LIMIT ? OFFSET ?
	`, append(args, query.Size(), offset)...).Rows()
	if err != nil {
		return SearchOrdersQueryResponse{}, err
	}
	defer rows.Close()

	orders := make([]SearchOrderResponse, 0, query.Size())
	for rows.Next() {
		var o SearchOrderResponse
		if err = rows.Scan(
			&o.ID, &o.Number, &o.Status, &o.PayStatus, &o.Amount, &o.OrderTime,
			&o.Consignee, &o.Phone, &o.Address,
		); err != nil {
			return SearchOrdersQueryResponse{}, err
		}
		orders = append(orders, o)
	}
	if err = rows.Err(); err != nil {
		return SearchOrdersQueryResponse{}, err
	}

	for i := range orders {
		summary, summaryErr := h.loadSummary(ctx, orders[i].ID)
		if summaryErr != nil {
			return SearchOrdersQueryResponse{}, summaryErr
		}
		orders[i].Summary = summary
	}

	return SearchOrdersQueryResponse{Total: total, Orders: orders}, nil
}

// loadSummary concatenates an order's line items as "name*quantity;".
func (h SearchOrdersQueryHandler) loadSummary(ctx context.Context, orderID string) (string, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT name, quantity
		FROM order_line_items
		WHERE order_id = ?
		ORDER BY id
	`, orderID).Rows()
	if err != nil {
		return "", err
	}
	defer rows.Close()

	var b strings.Builder
	for rows.Next() {
		var name string
		var quantity int
		if err = rows.Scan(&name, &quantity); err != nil {
			return "", err
		}
		fmt.Fprintf(&b, "%s*%d;", name, quantity)
	}

	if err = rows.Err(); err != nil {
		return "", err
	}

	return b.String(), nil
}

func buildSearchFilter(query SearchOrdersQuery) (string, []any) {
	conditions := make([]string, 0, 5)
	args := make([]any, 0, 5)

	if query.Number() != "" {
		conditions = append(conditions, "number LIKE ?")
		args = append(args, "%"+query.Number()+"%")
	}
	if query.Phone() != "" {
		conditions = append(conditions, "phone LIKE ?")
		args = append(args, "%"+query.Phone()+"%")
	}
	if query.Status() != 0 {
		conditions = append(conditions, "status = ?")
		args = append(args, query.Status())
	}
	if query.From() != nil {
		conditions = append(conditions, "order_time >= ?")
		args = append(args, *query.From())
	}
	if query.To() != nil {
		conditions = append(conditions, "order_time < ?")
		args = append(args, *query.To())
	}

	if len(conditions) == 0 {
		return "TRUE", args
	}
	return strings.Join(conditions, " AND "), args
}

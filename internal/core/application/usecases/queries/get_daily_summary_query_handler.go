package queries

import (
	"context"

	"foodorder/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetDailySummaryQueryHandler computes the business summary of a window.
type GetDailySummaryQueryHandler struct {
	db *gorm.DB
}

// NewGetDailySummaryQueryHandler creates a handler for business summaries.
func NewGetDailySummaryQueryHandler(db *gorm.DB) GetDailySummaryQueryHandler {
	return GetDailySummaryQueryHandler{db: db}
}

// Handle executes the query. Orders are bucketed by order_time, so an order
// placed inside the window counts here even if it completed after it.
func (h GetDailySummaryQueryHandler) Handle(
	ctx context.Context,
	query GetDailySummaryQuery,
) (GetDailySummaryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDailySummaryQueryResponse{}, err
	}

	var row struct {
		Turnover  decimal.NullDecimal
		Total     int64
		Completed int64
		Cancelled int64
	}
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			SUM(amount) FILTER (WHERE status = ?) AS turnover,
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE status = ?) AS completed,
			COUNT(*) FILTER (WHERE status = ?) AS cancelled
		FROM orders
		WHERE order_time >= ? AND order_time < ?
	`, order.Completed, order.Completed, order.Cancelled,
		query.From(), query.To()).Row().Scan(
		&row.Turnover, &row.Total, &row.Completed, &row.Cancelled,
	)
	if err != nil {
		return GetDailySummaryQueryResponse{}, err
	}

	turnover := decimal.Zero
	if row.Turnover.Valid {
		turnover = row.Turnover.Decimal
	}

	return GetDailySummaryQueryResponse{
		Turnover:        turnover,
		TotalOrders:     row.Total,
		CompletedOrders: row.Completed,
		CancelledOrders: row.Cancelled,
	}, nil
}

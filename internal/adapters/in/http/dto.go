package http

import (
	"time"

	"foodorder/internal/core/application/usecases/queries"
)

// ErrorResponse is the uniform error body for every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// SubmitOrderRequest is the body of POST /api/v1/orders.
type SubmitOrderRequest struct {
	UserID    string `json:"userId"`
	AddressID string `json:"addressId"`
}

// SubmitOrderResponse carries the data the customer needs to proceed to
// payment.
type SubmitOrderResponse struct {
	OrderID   string    `json:"orderId"`
	Number    string    `json:"number"`
	Amount    string    `json:"amount"`
	OrderTime time.Time `json:"orderTime"`
}

// ReasonRequest is the body of the admin reject and cancel routes.
type ReasonRequest struct {
	Reason string `json:"reason"`
}

// PageResponse is one page of a listing with the total match count.
type PageResponse[T any] struct {
	Total   int64 `json:"total"`
	Records []T   `json:"records"`
}

// UserOrderResponse is one row of a customer's order history.
type UserOrderResponse struct {
	ID        string    `json:"id"`
	Number    string    `json:"number"`
	Status    int       `json:"status"`
	PayStatus int       `json:"payStatus"`
	Amount    string    `json:"amount"`
	OrderTime time.Time `json:"orderTime"`
}

// SearchOrderResponse is one row of the merchant search result.
type SearchOrderResponse struct {
	ID        string    `json:"id"`
	Number    string    `json:"number"`
	Status    int       `json:"status"`
	PayStatus int       `json:"payStatus"`
	Amount    string    `json:"amount"`
	OrderTime time.Time `json:"orderTime"`
	Consignee string    `json:"consignee"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	Summary   string    `json:"summary"`
}

// OrderStatisticsResponse holds the operator console badge counts.
type OrderStatisticsResponse struct {
	ToBeConfirmed      int64 `json:"toBeConfirmed"`
	Confirmed          int64 `json:"confirmed"`
	DeliveryInProgress int64 `json:"deliveryInProgress"`
}

// DailySummaryResponse is the business summary of one reporting window.
type DailySummaryResponse struct {
	Turnover        string `json:"turnover"`
	TotalOrders     int64  `json:"totalOrders"`
	CompletedOrders int64  `json:"completedOrders"`
	CancelledOrders int64  `json:"cancelledOrders"`
}

// OrderLineItemResponse is one purchased position in the details view.
type OrderLineItemResponse struct {
	Name      string `json:"name"`
	UnitPrice string `json:"unitPrice"`
	Quantity  int    `json:"quantity"`
	Flavor    string `json:"flavor,omitempty"`
}

// OrderDetailsResponse is the full customer-facing view of one order.
type OrderDetailsResponse struct {
	ID              string                  `json:"id"`
	Number          string                  `json:"number"`
	UserID          string                  `json:"userId"`
	Status          int                     `json:"status"`
	PayStatus       int                     `json:"payStatus"`
	Amount          string                  `json:"amount"`
	OrderTime       time.Time               `json:"orderTime"`
	CheckoutTime    *time.Time              `json:"checkoutTime,omitempty"`
	CancelTime      *time.Time              `json:"cancelTime,omitempty"`
	DeliveryTime    *time.Time              `json:"deliveryTime,omitempty"`
	CancelReason    string                  `json:"cancelReason,omitempty"`
	RejectionReason string                  `json:"rejectionReason,omitempty"`
	Consignee       string                  `json:"consignee"`
	Phone           string                  `json:"phone"`
	Address         string                  `json:"address"`
	Items           []OrderLineItemResponse `json:"items"`
}

// orderDetailsFromQuery maps the query response to the HTTP shape.
func orderDetailsFromQuery(details queries.GetOrderDetailsQueryResponse) OrderDetailsResponse {
	items := make([]OrderLineItemResponse, 0, len(details.Items))
	for _, item := range details.Items {
		items = append(items, OrderLineItemResponse{
			Name:      item.Name,
			UnitPrice: item.UnitPrice.String(),
			Quantity:  item.Quantity,
			Flavor:    item.Flavor,
		})
	}

	return OrderDetailsResponse{
		ID:              details.ID,
		Number:          details.Number,
		UserID:          details.UserID,
		Status:          details.Status,
		PayStatus:       details.PayStatus,
		Amount:          details.Amount.String(),
		OrderTime:       details.OrderTime,
		CheckoutTime:    details.CheckoutTime,
		CancelTime:      details.CancelTime,
		DeliveryTime:    details.DeliveryTime,
		CancelReason:    details.CancelReason,
		RejectionReason: details.RejectionReason,
		Consignee:       details.Consignee,
		Phone:           details.Phone,
		Address:         details.Address,
		Items:           items,
	}
}

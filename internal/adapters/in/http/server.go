// Package http provides the echo-based HTTP adapter. Customer routes cover
// submission, payment, cancellation, reminders, and order history; admin
// routes cover the merchant workflow and reporting.
package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	submitOrderHandler           commands.SubmitOrderCommandHandler
	payOrderHandler              commands.PayOrderCommandHandler
	confirmOrderHandler          commands.ConfirmOrderCommandHandler
	rejectOrderHandler           commands.RejectOrderCommandHandler
	cancelOrderByMerchantHandler commands.CancelOrderByMerchantCommandHandler
	cancelOrderByUserHandler     commands.CancelOrderByUserCommandHandler
	dispatchOrderHandler         commands.DispatchOrderCommandHandler
	completeOrderHandler         commands.CompleteOrderCommandHandler
	remindOrderHandler           commands.RemindOrderCommandHandler

	// Query handlers
	getOrderDetailsHandler    queries.GetOrderDetailsQueryHandler
	getUserOrdersHandler      queries.GetUserOrdersQueryHandler
	searchOrdersHandler       queries.SearchOrdersQueryHandler
	getOrderStatisticsHandler queries.GetOrderStatisticsQueryHandler
	getDailySummaryHandler    queries.GetDailySummaryQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	submitOrderHandler commands.SubmitOrderCommandHandler,
	payOrderHandler commands.PayOrderCommandHandler,
	confirmOrderHandler commands.ConfirmOrderCommandHandler,
	rejectOrderHandler commands.RejectOrderCommandHandler,
	cancelOrderByMerchantHandler commands.CancelOrderByMerchantCommandHandler,
	cancelOrderByUserHandler commands.CancelOrderByUserCommandHandler,
	dispatchOrderHandler commands.DispatchOrderCommandHandler,
	completeOrderHandler commands.CompleteOrderCommandHandler,
	remindOrderHandler commands.RemindOrderCommandHandler,
	getOrderDetailsHandler queries.GetOrderDetailsQueryHandler,
	getUserOrdersHandler queries.GetUserOrdersQueryHandler,
	searchOrdersHandler queries.SearchOrdersQueryHandler,
	getOrderStatisticsHandler queries.GetOrderStatisticsQueryHandler,
	getDailySummaryHandler queries.GetDailySummaryQueryHandler,
) *Server {
	return &Server{
		submitOrderHandler:           submitOrderHandler,
		payOrderHandler:              payOrderHandler,
		confirmOrderHandler:          confirmOrderHandler,
		rejectOrderHandler:           rejectOrderHandler,
		cancelOrderByMerchantHandler: cancelOrderByMerchantHandler,
		cancelOrderByUserHandler:     cancelOrderByUserHandler,
		dispatchOrderHandler:         dispatchOrderHandler,
		completeOrderHandler:         completeOrderHandler,
		remindOrderHandler:           remindOrderHandler,
		getOrderDetailsHandler:       getOrderDetailsHandler,
		getUserOrdersHandler:         getUserOrdersHandler,
		searchOrdersHandler:          searchOrdersHandler,
		getOrderStatisticsHandler:    getOrderStatisticsHandler,
		getDailySummaryHandler:       getDailySummaryHandler,
	}
}

// RegisterRoutes attaches all customer and admin routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.SubmitOrder)
	api.POST("/orders/:number/pay", s.PayOrder)
	api.POST("/orders/:id/cancel", s.CancelOrder)
	api.POST("/orders/:id/reminder", s.RemindOrder)
	api.GET("/orders/:id", s.GetOrderDetails)
	api.GET("/orders", s.GetUserOrders)

	admin := api.Group("/admin")
	admin.GET("/orders", s.SearchOrders)
	admin.GET("/orders/statistics", s.GetOrderStatistics)
	admin.GET("/reports/daily", s.GetDailySummary)
	admin.PUT("/orders/:id/confirm", s.ConfirmOrder)
	admin.PUT("/orders/:id/reject", s.RejectOrder)
	admin.PUT("/orders/:id/cancel", s.CancelOrderByMerchant)
	admin.PUT("/orders/:id/delivery", s.DispatchOrder)
	admin.PUT("/orders/:id/complete", s.CompleteOrder)
}

// SubmitOrder handles POST /api/v1/orders - submits the customer's cart as a
// new order.
func (s *Server) SubmitOrder(ctx echo.Context) error {
	var req SubmitOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	userID, err := kernel.UUIDFromString(req.UserID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid user id: "+err.Error())
	}
	addressID, err := kernel.UUIDFromString(req.AddressID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid address id: "+err.Error())
	}

	cmd, err := commands.NewSubmitOrderCommand(kernel.NewUUID(), userID, addressID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order data: "+err.Error())
	}

	result, err := s.submitOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return commandError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, SubmitOrderResponse{
		OrderID:   result.OrderID.String(),
		Number:    result.Number,
		Amount:    result.Amount.String(),
		OrderTime: result.OrderTime,
	})
}

// PayOrder handles POST /api/v1/orders/:number/pay - the payment callback.
func (s *Server) PayOrder(ctx echo.Context) error {
	cmd, err := commands.NewPayOrderCommand(ctx.Param("number"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order number: "+err.Error())
	}

	if err = s.payOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/:id/cancel - customer cancellation.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewCancelOrderByUserCommand(orderID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order data: "+err.Error())
	}

	if err = s.cancelOrderByUserHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemindOrder handles POST /api/v1/orders/:id/reminder - the customer's
// "hurry up" nudge to the operators.
func (s *Server) RemindOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewRemindOrderCommand(orderID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order data: "+err.Error())
	}

	if err = s.remindOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrderDetails handles GET /api/v1/orders/:id - the full order view.
func (s *Server) GetOrderDetails(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order id: "+err.Error())
	}

	query, err := queries.NewGetOrderDetailsQuery(orderID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid query: "+err.Error())
	}

	details, err := s.getOrderDetailsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return commandError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderDetailsFromQuery(details))
}

// GetUserOrders handles GET /api/v1/orders - paginated customer history.
func (s *Server) GetUserOrders(ctx echo.Context) error {
	userID, err := kernel.UUIDFromString(ctx.QueryParam("userId"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid user id: "+err.Error())
	}

	page := intQueryParam(ctx, "page", 1)
	size := intQueryParam(ctx, "size", 10)
	status := intQueryParam(ctx, "status", 0)

	query, err := queries.NewGetUserOrdersQuery(userID, status, page, size)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid query: "+err.Error())
	}

	result, err := s.getUserOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return commandError(ctx, err)
	}

	orders := make([]UserOrderResponse, 0, len(result.Orders))
	for _, o := range result.Orders {
		orders = append(orders, UserOrderResponse{
			ID:        o.ID,
			Number:    o.Number,
			Status:    o.Status,
			PayStatus: o.PayStatus,
			Amount:    o.Amount.String(),
			OrderTime: o.OrderTime,
		})
	}

	return ctx.JSON(http.StatusOK, PageResponse[UserOrderResponse]{
		Total:   result.Total,
		Records: orders,
	})
}

// SearchOrders handles GET /api/v1/admin/orders - the merchant condition
// search.
func (s *Server) SearchOrders(ctx echo.Context) error {
	from, err := timeQueryParam(ctx, "from")
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid from bound: "+err.Error())
	}
	to, err := timeQueryParam(ctx, "to")
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid to bound: "+err.Error())
	}

	query, err := queries.NewSearchOrdersQuery(
		ctx.QueryParam("number"),
		ctx.QueryParam("phone"),
		intQueryParam(ctx, "status", 0),
		from,
		to,
		intQueryParam(ctx, "page", 1),
		intQueryParam(ctx, "size", 10),
	)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid query: "+err.Error())
	}

	result, err := s.searchOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return commandError(ctx, err)
	}

	orders := make([]SearchOrderResponse, 0, len(result.Orders))
	for _, o := range result.Orders {
		orders = append(orders, SearchOrderResponse{
			ID:        o.ID,
			Number:    o.Number,
			Status:    o.Status,
			PayStatus: o.PayStatus,
			Amount:    o.Amount.String(),
			OrderTime: o.OrderTime,
			Consignee: o.Consignee,
			Phone:     o.Phone,
			Address:   o.Address,
			Summary:   o.Summary,
		})
	}

	return ctx.JSON(http.StatusOK, PageResponse[SearchOrderResponse]{
		Total:   result.Total,
		Records: orders,
	})
}

// GetOrderStatistics handles GET /api/v1/admin/orders/statistics - the
// operator console badges.
func (s *Server) GetOrderStatistics(ctx echo.Context) error {
	result, err := s.getOrderStatisticsHandler.Handle(
		ctx.Request().Context(), queries.NewGetOrderStatisticsQuery())
	if err != nil {
		return commandError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, OrderStatisticsResponse{
		ToBeConfirmed:      result.ToBeConfirmed,
		Confirmed:          result.Confirmed,
		DeliveryInProgress: result.DeliveryInProgress,
	})
}

// GetDailySummary handles GET /api/v1/admin/reports/daily - the business
// summary of one window.
func (s *Server) GetDailySummary(ctx echo.Context) error {
	from, err := timeQueryParam(ctx, "from")
	if err != nil || from == nil {
		return errorJSON(ctx, http.StatusBadRequest, "A valid from bound is required")
	}
	to, err := timeQueryParam(ctx, "to")
	if err != nil || to == nil {
		return errorJSON(ctx, http.StatusBadRequest, "A valid to bound is required")
	}

	query, err := queries.NewGetDailySummaryQuery(*from, *to)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid query: "+err.Error())
	}

	result, err := s.getDailySummaryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return commandError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, DailySummaryResponse{
		Turnover:        result.Turnover.String(),
		TotalOrders:     result.TotalOrders,
		CompletedOrders: result.CompletedOrders,
		CancelledOrders: result.CancelledOrders,
	})
}

// ConfirmOrder handles PUT /api/v1/admin/orders/:id/confirm.
func (s *Server) ConfirmOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewConfirmOrderCommand(orderID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order data: "+err.Error())
	}

	if err = s.confirmOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RejectOrder handles PUT /api/v1/admin/orders/:id/reject.
func (s *Server) RejectOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order id: "+err.Error())
	}

	var req ReasonRequest
	if err = ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewRejectOrderCommand(orderID, req.Reason)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order data: "+err.Error())
	}

	if err = s.rejectOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrderByMerchant handles PUT /api/v1/admin/orders/:id/cancel.
func (s *Server) CancelOrderByMerchant(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order id: "+err.Error())
	}

	var req ReasonRequest
	if err = ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewCancelOrderByMerchantCommand(orderID, req.Reason)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order data: "+err.Error())
	}

	if err = s.cancelOrderByMerchantHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DispatchOrder handles PUT /api/v1/admin/orders/:id/delivery.
func (s *Server) DispatchOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewDispatchOrderCommand(orderID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order data: "+err.Error())
	}

	if err = s.dispatchOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteOrder handles PUT /api/v1/admin/orders/:id/complete.
func (s *Server) CompleteOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewCompleteOrderCommand(orderID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order data: "+err.Error())
	}

	if err = s.completeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// commandError maps application errors onto HTTP statuses.
func commandError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrOrderNotFound),
		errors.Is(err, errs.ErrAddressNotFound),
		errors.Is(err, errs.ErrObjectNotFound):
		return errorJSON(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrStaleStateConflict),
		errors.Is(err, errs.ErrInvalidStateTransition):
		return errorJSON(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrEmptyCart),
		errors.Is(err, errs.ErrOutOfDeliveryRange),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	case errors.Is(err, errs.ErrAddressResolutionFailed),
		errors.Is(err, errs.ErrRefundFailed):
		return errorJSON(ctx, http.StatusBadGateway, err.Error())
	default:
		return errorJSON(ctx, http.StatusInternalServerError, "Internal server error")
	}
}

func errorJSON(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, ErrorResponse{Code: code, Message: message})
}

func intQueryParam(ctx echo.Context, name string, fallback int) int {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}

func timeQueryParam(ctx echo.Context, name string) (*time.Time, error) {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

package commands

import (
	"context"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/ports"
	"foodorder/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// SubmitOrderResult carries the data the customer needs to proceed to
// payment after a successful submission.
type SubmitOrderResult struct {
	OrderID   kernel.UUID
	Number    string
	Amount    decimal.Decimal
	OrderTime time.Time
}

// SubmitOrderCommandHandler handles the checkout pipeline: it validates the
// delivery address against the shop's delivery range, snapshots the cart into
// order line items, and persists the order while clearing the cart in a
// single transaction.
type SubmitOrderCommandHandler struct {
	uowFactory     SubmitUoWFactory
	geoClient      ports.GeoClient
	shopAddress    string
	maxRouteMeters int
}

// NewSubmitOrderCommandHandler creates a handler for order submission.
// shopAddress is the shop's own address used as the route origin;
// maxRouteMeters is the delivery range limit.
func NewSubmitOrderCommandHandler(
	uowFactory SubmitUoWFactory,
	geoClient ports.GeoClient,
	shopAddress string,
	maxRouteMeters int,
) SubmitOrderCommandHandler {
	return SubmitOrderCommandHandler{
		uowFactory:     uowFactory,
		geoClient:      geoClient,
		shopAddress:    shopAddress,
		maxRouteMeters: maxRouteMeters,
	}
}

// Handle processes the submission command.
//
// The pipeline short-circuits on the first failure, in a fixed probe order:
// missing address, out-of-range destination, empty cart. Nothing is persisted
// unless every step passed; the order insert and the cart clear share one
// transaction.
func (h *SubmitOrderCommandHandler) Handle(
	ctx context.Context, cmd SubmitOrderCommand,
) (SubmitOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return SubmitOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return SubmitOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	address, err := uow.AddressBookRepository().GetByID(ctx, cmd.AddressID())
	if err != nil {
		return SubmitOrderResult{}, err
	}

	if err = h.checkDeliveryRange(ctx, address.FullText); err != nil {
		return SubmitOrderResult{}, err
	}

	cartItems, err := uow.CartRepository().ListByUser(ctx, cmd.UserID())
	if err != nil {
		return SubmitOrderResult{}, err
	}
	if len(cartItems) == 0 {
		return SubmitOrderResult{}, errs.ErrEmptyCart
	}

	items := make([]order.LineItem, 0, len(cartItems))
	for _, cartItem := range cartItems {
		item, itemErr := order.NewLineItem(
			cartItem.Name, cartItem.UnitPrice, cartItem.Quantity, cartItem.Flavor,
		)
		if itemErr != nil {
			return SubmitOrderResult{}, itemErr
		}
		items = append(items, item)
	}

	shipping, err := order.NewShipping(address.Consignee, address.Phone, address.FullText)
	if err != nil {
		return SubmitOrderResult{}, err
	}

	now := time.Now()
	aggregate, err := order.NewOrder(
		cmd.OrderID(), cmd.UserID(), order.NewNumber(now), shipping, items, now,
	)
	if err != nil {
		return SubmitOrderResult{}, err
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return SubmitOrderResult{}, err
	}

	if err = uow.CartRepository().ClearByUser(ctx, cmd.UserID()); err != nil {
		return SubmitOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return SubmitOrderResult{}, err
	}

	return SubmitOrderResult{
		OrderID:   aggregate.ID(),
		Number:    aggregate.Number(),
		Amount:    aggregate.Amount(),
		OrderTime: aggregate.OrderTime(),
	}, nil
}

func (h *SubmitOrderCommandHandler) checkDeliveryRange(ctx context.Context, destination string) error {
	shop, err := h.geoClient.ResolveCoordinates(ctx, h.shopAddress)
	if err != nil {
		return err
	}

	target, err := h.geoClient.ResolveCoordinates(ctx, destination)
	if err != nil {
		return err
	}

	distance, err := h.geoClient.RouteDistanceMeters(ctx, shop, target)
	if err != nil {
		return err
	}

	if distance > h.maxRouteMeters {
		return errs.NewOutOfDeliveryRangeError(distance, h.maxRouteMeters)
	}

	return nil
}

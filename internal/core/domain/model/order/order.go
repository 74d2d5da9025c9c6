package order

import (
	"errors"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory methods.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

// Cancellation reasons written by the system rather than an actor.
const (
	// CancelReasonUserCancelled is recorded when the customer cancels.
	CancelReasonUserCancelled = "user cancelled"
	// CancelReasonTimeout is recorded when the payment-timeout sweep
	// cancels an order that was never paid.
	CancelReasonTimeout = "timeout"
)

// Order is the aggregate root of the order lifecycle. It owns the status and
// payment-status state machines and the write-once fields produced by
// transitions (checkout, cancel and delivery timestamps, cancellation
// reasons).
//
// Order follows these invariants:
//   - status only moves forward along the transition graph; no transition
//     revisits an earlier state
//   - payStatus only moves Unpaid -> Paid -> Refunded
//   - exactly one of cancelReason/rejectionReason is set on an
//     actor-initiated cancellation
//   - amount, line items, and the shipping snapshot are write-once at
//     creation
//
// An Order additionally remembers the status it was loaded from persistence
// with (PersistedStatus). The repository uses that value as the expected
// status of its conditional update, which is what makes concurrent actors
// safe against each other without in-process locks.
type Order struct {
	id     kernel.UUID
	userID kernel.UUID
	number string

	status    Status
	payStatus PayStatus

	amount    decimal.Decimal
	orderTime time.Time

	checkoutTime *time.Time
	cancelTime   *time.Time
	deliveryTime *time.Time

	cancelReason    string
	rejectionReason string

	shipping Shipping
	items    []LineItem

	// persistedStatus is the status the row held when this aggregate was
	// loaded; Unknown for a not-yet-persisted order.
	persistedStatus Status

	isConstructed bool
}

// NewOrder creates a new Order in PendingPayment/Unpaid state from a cart
// snapshot. The amount is the sum of the line item subtotals; the shipping
// snapshot is copied from the address book by the caller.
func NewOrder(
	id kernel.UUID,
	userID kernel.UUID,
	number string,
	shipping Shipping,
	items []LineItem,
	orderTime time.Time,
) (*Order, error) {
	o := &Order{
		status:          PendingPayment,
		payStatus:       Unpaid,
		persistedStatus: Unknown,
		isConstructed:   true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setUserID(userID),
		o.setNumber(number),
		o.setShipping(shipping),
		o.setItems(items),
		o.setOrderTime(orderTime),
	); err != nil {
		return nil, err
	}

	total := decimal.Zero
	for _, item := range o.items {
		total = total.Add(item.Subtotal())
	}
	o.amount = total

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence without re-running the
// creation rules. The given status becomes both the current and the persisted
// status, so a subsequent Update is conditioned on it.
func RestoreOrder(
	id kernel.UUID,
	userID kernel.UUID,
	number string,
	status Status,
	payStatus PayStatus,
	amount decimal.Decimal,
	orderTime time.Time,
	checkoutTime *time.Time,
	cancelTime *time.Time,
	deliveryTime *time.Time,
	cancelReason string,
	rejectionReason string,
	shipping Shipping,
	items []LineItem,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		userID.Validate(),
		status.Validate(),
		payStatus.Validate(),
		shipping.Validate(),
	); err != nil {
		return nil, err
	}
	if number == "" {
		return nil, errs.NewValueIsRequiredError("number")
	}

	return &Order{
		id:              id,
		userID:          userID,
		number:          number,
		status:          status,
		payStatus:       payStatus,
		amount:          amount,
		orderTime:       orderTime,
		checkoutTime:    checkoutTime,
		cancelTime:      cancelTime,
		deliveryTime:    deliveryTime,
		cancelReason:    cancelReason,
		rejectionReason: rejectionReason,
		shipping:        shipping,
		items:           items,
		persistedStatus: status,
		isConstructed:   true,
	}, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. Call it when accepting aggregates from outside the package.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the internal order identifier.
func (o *Order) ID() kernel.UUID { return o.id }

// UserID returns the identifier of the customer who placed the order.
func (o *Order) UserID() kernel.UUID { return o.userID }

// Number returns the external-facing order reference.
func (o *Order) Number() string { return o.number }

// Status returns the current lifecycle status.
func (o *Order) Status() Status { return o.status }

// PayStatus returns the current payment state.
func (o *Order) PayStatus() PayStatus { return o.payStatus }

// Amount returns the monetary total of the order.
func (o *Order) Amount() decimal.Decimal { return o.amount }

// OrderTime returns the submission timestamp.
func (o *Order) OrderTime() time.Time { return o.orderTime }

// CheckoutTime returns the payment timestamp, or nil if never paid.
func (o *Order) CheckoutTime() *time.Time { return o.checkoutTime }

// CancelTime returns the cancellation timestamp, or nil if not cancelled.
func (o *Order) CancelTime() *time.Time { return o.cancelTime }

// DeliveryTime returns the completion timestamp, or nil if not completed.
func (o *Order) DeliveryTime() *time.Time { return o.deliveryTime }

// CancelReason returns the cancellation reason, or "" when the order was not
// cancelled through the cancellation path.
func (o *Order) CancelReason() string { return o.cancelReason }

// RejectionReason returns the merchant rejection reason, or "" when the order
// was not rejected.
func (o *Order) RejectionReason() string { return o.rejectionReason }

// Shipping returns the delivery snapshot taken at submission.
func (o *Order) Shipping() Shipping { return o.shipping }

// LineItems returns a copy of the order's line items.
func (o *Order) LineItems() []LineItem {
	items := make([]LineItem, len(o.items))
	copy(items, o.items)
	return items
}

// PersistedStatus returns the status this aggregate was loaded with. The
// repository conditions its update on this value; Unknown means the order has
// not been persisted yet.
func (o *Order) PersistedStatus() Status { return o.persistedStatus }

// SyncPersistedStatus records that the current in-memory state has been
// written to storage. Called by the repository after a successful write.
func (o *Order) SyncPersistedStatus() { o.persistedStatus = o.status }

// RequiresRefund reports whether cancelling this order must return money to
// the customer first.
func (o *Order) RequiresRefund() bool { return o.payStatus == Paid }

// MarkPaid applies a successful payment callback: the order moves to
// ToBeConfirmed, the payment state to Paid, and the checkout time is set.
//
// Callers handle duplicate callbacks before invoking this method; MarkPaid
// itself rejects any state other than PendingPayment/Unpaid.
func (o *Order) MarkPaid(now time.Time) error {
	newStatus, err := o.status.Pay()
	if err != nil {
		return err
	}
	newPayStatus, err := o.payStatus.MarkPaid()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.payStatus = newPayStatus
	o.checkoutTime = &now
	return nil
}

// Confirm applies merchant acceptance: ToBeConfirmed -> Confirmed.
func (o *Order) Confirm() error {
	newStatus, err := o.status.Confirm()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Reject applies a merchant rejection of an order awaiting acceptance.
// A reason is required. If the order was paid, the payment state flips to
// Refunded; the caller must have issued the refund before calling Reject.
func (o *Order) Reject(reason string, now time.Time) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("rejectionReason")
	}

	newStatus, err := o.status.Reject()
	if err != nil {
		return err
	}

	if err = o.refundIfPaid(); err != nil {
		return err
	}

	o.status = newStatus
	o.rejectionReason = reason
	o.cancelTime = &now
	return nil
}

// CancelByMerchant cancels an order on behalf of the merchant, from any
// non-terminal state. A reason is required. If the order was paid, the
// payment state flips to Refunded; the caller must have issued the refund
// before calling CancelByMerchant.
func (o *Order) CancelByMerchant(reason string, now time.Time) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("cancelReason")
	}

	newStatus, err := o.status.CancelByMerchant()
	if err != nil {
		return err
	}

	if err = o.refundIfPaid(); err != nil {
		return err
	}

	o.status = newStatus
	o.cancelReason = reason
	o.cancelTime = &now
	return nil
}

// CancelByUser cancels an order on behalf of the customer. Allowed only from
// PendingPayment and ToBeConfirmed; cancelling from ToBeConfirmed implies the
// order was paid, so the payment state flips to Refunded and the caller must
// have issued the refund first.
func (o *Order) CancelByUser(now time.Time) error {
	newStatus, err := o.status.CancelByUser()
	if err != nil {
		return err
	}

	if err = o.refundIfPaid(); err != nil {
		return err
	}

	o.status = newStatus
	o.cancelReason = CancelReasonUserCancelled
	o.cancelTime = &now
	return nil
}

// Dispatch hands the order to delivery: Confirmed -> DeliveryInProgress.
func (o *Order) Dispatch() error {
	newStatus, err := o.status.Dispatch()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Complete finishes delivery: DeliveryInProgress -> Completed, stamping the
// delivery time.
func (o *Order) Complete(now time.Time) error {
	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.deliveryTime = &now
	return nil
}

// ExpirePayment cancels an order whose payment deadline passed. Only valid
// from PendingPayment; no refund is involved since the order was never paid.
func (o *Order) ExpirePayment(now time.Time) error {
	if o.status != PendingPayment {
		return errs.NewInvalidStateTransitionError("expire payment", o.status.String())
	}

	o.status = Cancelled
	o.cancelReason = CancelReasonTimeout
	o.cancelTime = &now
	return nil
}

// ExpireDelivery force-completes an order stuck in DeliveryInProgress past
// the delivery deadline, keeping archived data consistent.
func (o *Order) ExpireDelivery(now time.Time) error {
	return o.Complete(now)
}

func (o *Order) refundIfPaid() error {
	if o.payStatus != Paid {
		return nil
	}

	newPayStatus, err := o.payStatus.MarkRefunded()
	if err != nil {
		return err
	}
	o.payStatus = newPayStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	o.userID = userID
	return nil
}

func (o *Order) setNumber(number string) error {
	if number == "" {
		return errs.NewValueIsRequiredError("number")
	}
	o.number = number
	return nil
}

func (o *Order) setShipping(shipping Shipping) error {
	if err := shipping.Validate(); err != nil {
		return err
	}
	o.shipping = shipping
	return nil
}

func (o *Order) setItems(items []LineItem) error {
	if len(items) == 0 {
		return errs.ErrEmptyCart
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = make([]LineItem, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setOrderTime(orderTime time.Time) error {
	if orderTime.IsZero() {
		return errs.NewValueIsRequiredError("orderTime")
	}
	o.orderTime = orderTime
	return nil
}

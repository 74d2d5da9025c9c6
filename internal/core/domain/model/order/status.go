package order

import (
	"foodorder/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure orders
// follow the correct business workflow.
//
// State transitions:
//
//	PendingPayment ──> ToBeConfirmed ──> Confirmed ──> DeliveryInProgress ──> Completed
//	      │                  │
//	      └──────────────────┴──> Cancelled
//
// Cancelled is additionally reachable from Confirmed and DeliveryInProgress,
// but only through the merchant cancellation path. Completed and Cancelled
// are terminal: no edge leaves them.
//
// Status is a value object: every transition method validates the edge and
// returns the next state, or an InvalidStateTransition error when the
// transition graph has no such edge.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// PendingPayment is the initial status: the order exists but has not
	// been paid for yet.
	PendingPayment

	// ToBeConfirmed indicates payment succeeded and the order is waiting
	// for the merchant to accept it.
	ToBeConfirmed

	// Confirmed indicates the merchant accepted the order.
	Confirmed

	// DeliveryInProgress indicates the order has been handed to delivery.
	DeliveryInProgress

	// Completed indicates the order was delivered. Terminal.
	Completed

	// Cancelled indicates the order was cancelled or rejected. Terminal.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:            "Unknown",
		PendingPayment:     "PendingPayment",
		ToBeConfirmed:      "ToBeConfirmed",
		Confirmed:          "Confirmed",
		DeliveryInProgress: "DeliveryInProgress",
		Completed:          "Completed",
		Cancelled:          "Cancelled",
	}
}

// Validate checks if the Status value is one of the defined lifecycle states.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if s < PendingPayment || s > Cancelled {
		return errs.NewValueIsInvalidError("status")
	}
	return nil
}

// String returns the human-readable name of the status.
// It implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status allows no further transitions.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// Pay transitions the status to ToBeConfirmed.
//
// Valid transitions:
//   - PendingPayment -> ToBeConfirmed
func (s Status) Pay() (Status, error) {
	if s != PendingPayment {
		return Unknown, errs.NewInvalidStateTransitionError("pay", s.String())
	}
	return ToBeConfirmed, nil
}

// Confirm transitions the status to Confirmed.
//
// Valid transitions:
//   - ToBeConfirmed -> Confirmed
func (s Status) Confirm() (Status, error) {
	if s != ToBeConfirmed {
		return Unknown, errs.NewInvalidStateTransitionError("confirm", s.String())
	}
	return Confirmed, nil
}

// Reject transitions the status to Cancelled via merchant rejection.
//
// Valid transitions:
//   - ToBeConfirmed -> Cancelled
func (s Status) Reject() (Status, error) {
	if s != ToBeConfirmed {
		return Unknown, errs.NewInvalidStateTransitionError("reject", s.String())
	}
	return Cancelled, nil
}

// CancelByUser transitions the status to Cancelled via customer cancellation.
// The customer may only cancel before the merchant accepts; from any later
// state they must reach the merchant out of band.
//
// Valid transitions:
//   - PendingPayment -> Cancelled
//   - ToBeConfirmed  -> Cancelled
func (s Status) CancelByUser() (Status, error) {
	if s != PendingPayment && s != ToBeConfirmed {
		return Unknown, errs.NewInvalidStateTransitionError("cancel", s.String())
	}
	return Cancelled, nil
}

// CancelByMerchant transitions the status to Cancelled from any non-terminal
// state. Merchants may abort an order at any point before completion.
func (s Status) CancelByMerchant() (Status, error) {
	if err := s.Validate(); err != nil {
		return Unknown, err
	}
	if s.IsTerminal() {
		return Unknown, errs.NewInvalidStateTransitionError("cancel", s.String())
	}
	return Cancelled, nil
}

// Dispatch transitions the status to DeliveryInProgress.
//
// Valid transitions:
//   - Confirmed -> DeliveryInProgress
func (s Status) Dispatch() (Status, error) {
	if s != Confirmed {
		return Unknown, errs.NewInvalidStateTransitionError("dispatch", s.String())
	}
	return DeliveryInProgress, nil
}

// Complete transitions the status to Completed.
//
// Valid transitions:
//   - DeliveryInProgress -> Completed
func (s Status) Complete() (Status, error) {
	if s != DeliveryInProgress {
		return Unknown, errs.NewInvalidStateTransitionError("complete", s.String())
	}
	return Completed, nil
}

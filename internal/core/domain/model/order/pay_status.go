package order

import (
	"foodorder/internal/pkg/errs"
)

// PayStatus represents the payment state of an order.
// It moves strictly forward: Unpaid -> Paid -> Refunded. Refunded is reachable
// only from Paid, and only as part of a cancellation or rejection that occurs
// after payment.
type PayStatus int

const (
	// Unpaid is the initial payment state.
	Unpaid PayStatus = iota

	// Paid indicates the payment callback confirmed the charge.
	Paid

	// Refunded indicates the charge was returned to the customer.
	Refunded
)

func getPayStatusStrings() map[PayStatus]string {
	return map[PayStatus]string{
		Unpaid:   "Unpaid",
		Paid:     "Paid",
		Refunded: "Refunded",
	}
}

// Validate checks if the PayStatus value is one of the defined states.
func (p PayStatus) Validate() error {
	if p < Unpaid || p > Refunded {
		return errs.NewValueIsInvalidError("payStatus")
	}
	return nil
}

// String returns the human-readable name of the payment state.
func (p PayStatus) String() string {
	if str, ok := getPayStatusStrings()[p]; ok {
		return str
	}
	return "Unknown"
}

// MarkPaid transitions the payment state to Paid.
//
// Valid transitions:
//   - Unpaid -> Paid
func (p PayStatus) MarkPaid() (PayStatus, error) {
	if p != Unpaid {
		return p, errs.NewInvalidStateTransitionError("mark paid", p.String())
	}
	return Paid, nil
}

// MarkRefunded transitions the payment state to Refunded.
//
// Valid transitions:
//   - Paid -> Refunded
func (p PayStatus) MarkRefunded() (PayStatus, error) {
	if p != Paid {
		return p, errs.NewInvalidStateTransitionError("refund", p.String())
	}
	return Refunded, nil
}

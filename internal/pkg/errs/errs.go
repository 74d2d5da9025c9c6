package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for classification with errors.Is. Each concrete error type
// below unwraps to exactly one of these.
var (
	ErrObjectNotFound    = errors.New("object not found")
	ErrValueIsInvalid    = errors.New("value is invalid")
	ErrValueIsRequired   = errors.New("value is required")
	ErrValueIsOutOfRange = errors.New("value is out of range")

	ErrOrderNotFound          = errors.New("order not found")
	ErrInvalidStateTransition = errors.New("invalid state transition")
	ErrStaleStateConflict     = errors.New("stale state conflict")

	ErrAddressNotFound         = errors.New("address not found")
	ErrEmptyCart               = errors.New("shopping cart is empty")
	ErrOutOfDeliveryRange      = errors.New("out of delivery range")
	ErrAddressResolutionFailed = errors.New("address resolution failed")
	ErrRefundFailed            = errors.New("refund failed")
)

// sanitize collapses newlines so error messages stay single-line in logs.
func sanitize(v any) string {
	return strings.ReplaceAll(fmt.Sprintf("%v", v), "\n", " ")
}

// ObjectNotFoundError reports a missing persistent object.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError without a cause.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping an
// underlying storage error.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError reports a value that fails validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError without a cause.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError with a cause
// describing why the value was rejected.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsRequiredError reports a missing required value.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError without a cause.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError with a cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsOutOfRangeError reports a value outside its allowed bounds.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError without a cause.
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %s is %s, min value is %s, max value is %s",
		ErrValueIsInvalid, sanitize(e.Value), e.ParamName, sanitize(e.Min), sanitize(e.Max))
	if e.Cause != nil {
		msg += fmt.Sprintf(" (cause: %s)", e.Cause)
	}
	return msg
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// OrderNotFoundError reports an order that does not exist, identified either
// by internal ID or by external order number.
type OrderNotFoundError struct {
	Ref   any
	Cause error
}

// NewOrderNotFoundError creates an OrderNotFoundError without a cause.
func NewOrderNotFoundError(ref any) *OrderNotFoundError {
	return &OrderNotFoundError{Ref: ref}
}

// NewOrderNotFoundErrorWithCause creates an OrderNotFoundError wrapping an
// underlying storage error.
func NewOrderNotFoundErrorWithCause(ref any, cause error) *OrderNotFoundError {
	return &OrderNotFoundError{Ref: ref, Cause: cause}
}

func (e *OrderNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrOrderNotFound, sanitize(e.Ref), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrOrderNotFound, sanitize(e.Ref))
}

func (e *OrderNotFoundError) Unwrap() error {
	return ErrOrderNotFound
}

// AddressNotFoundError reports an address book entry that does not exist.
type AddressNotFoundError struct {
	ID    any
	Cause error
}

// NewAddressNotFoundError creates an AddressNotFoundError without a cause.
func NewAddressNotFoundError(id any) *AddressNotFoundError {
	return &AddressNotFoundError{ID: id}
}

// NewAddressNotFoundErrorWithCause creates an AddressNotFoundError wrapping an
// underlying storage error.
func NewAddressNotFoundErrorWithCause(id any, cause error) *AddressNotFoundError {
	return &AddressNotFoundError{ID: id, Cause: cause}
}

func (e *AddressNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrAddressNotFound, sanitize(e.ID), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrAddressNotFound, sanitize(e.ID))
}

func (e *AddressNotFoundError) Unwrap() error {
	return ErrAddressNotFound
}

// InvalidStateTransitionError reports a lifecycle operation attempted from a
// state that does not allow it. The transition graph has no such edge, so the
// operation is rejected before any write is made.
type InvalidStateTransitionError struct {
	Operation string
	From      string
}

// NewInvalidStateTransitionError creates an InvalidStateTransitionError for
// the named operation attempted from the given state.
func NewInvalidStateTransitionError(operation, from string) *InvalidStateTransitionError {
	return &InvalidStateTransitionError{Operation: operation, From: from}
}

func (e *InvalidStateTransitionError) Error() string {
	return fmt.Sprintf("%s: cannot %s an order in status %s", ErrInvalidStateTransition, e.Operation, e.From)
}

func (e *InvalidStateTransitionError) Unwrap() error {
	return ErrInvalidStateTransition
}

// StaleStateConflictError reports a conditional update that matched zero rows:
// the order moved to another state between the advisory read and the write.
// Callers treat the read as stale and either retry or give up; background
// sweeps log and skip.
type StaleStateConflictError struct {
	OrderID  any
	Expected string
}

// NewStaleStateConflictError creates a StaleStateConflictError for the order
// whose status no longer matches the expected value.
func NewStaleStateConflictError(orderID any, expected string) *StaleStateConflictError {
	return &StaleStateConflictError{OrderID: orderID, Expected: expected}
}

func (e *StaleStateConflictError) Error() string {
	return fmt.Sprintf("%s: order %s is no longer in status %s", ErrStaleStateConflict, sanitize(e.OrderID), e.Expected)
}

func (e *StaleStateConflictError) Unwrap() error {
	return ErrStaleStateConflict
}

// OutOfDeliveryRangeError reports a destination beyond the configured
// delivery radius.
type OutOfDeliveryRangeError struct {
	DistanceMeters int
	LimitMeters    int
}

// NewOutOfDeliveryRangeError creates an OutOfDeliveryRangeError with the
// measured route distance and the configured limit.
func NewOutOfDeliveryRangeError(distanceMeters, limitMeters int) *OutOfDeliveryRangeError {
	return &OutOfDeliveryRangeError{DistanceMeters: distanceMeters, LimitMeters: limitMeters}
}

func (e *OutOfDeliveryRangeError) Error() string {
	return fmt.Sprintf("%s: route is %dm, limit is %dm", ErrOutOfDeliveryRange, e.DistanceMeters, e.LimitMeters)
}

func (e *OutOfDeliveryRangeError) Unwrap() error {
	return ErrOutOfDeliveryRange
}

// AddressResolutionFailedError reports a geocoding provider failure. The
// submission is surfaced to the caller without retry.
type AddressResolutionFailedError struct {
	Address string
	Cause   error
}

// NewAddressResolutionFailedError creates an AddressResolutionFailedError
// wrapping the provider error.
func NewAddressResolutionFailedError(address string, cause error) *AddressResolutionFailedError {
	return &AddressResolutionFailedError{Address: address, Cause: cause}
}

func (e *AddressResolutionFailedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrAddressResolutionFailed, sanitize(e.Address), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrAddressResolutionFailed, sanitize(e.Address))
}

func (e *AddressResolutionFailedError) Unwrap() error {
	return ErrAddressResolutionFailed
}

// RefundFailedError reports a payment-provider refund failure. It aborts the
// enclosing cancellation, leaving the order in its prior state.
type RefundFailedError struct {
	OrderNumber string
	Cause       error
}

// NewRefundFailedError creates a RefundFailedError wrapping the provider error.
func NewRefundFailedError(orderNumber string, cause error) *RefundFailedError {
	return &RefundFailedError{OrderNumber: orderNumber, Cause: cause}
}

func (e *RefundFailedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: order %s (cause: %s)", ErrRefundFailed, e.OrderNumber, e.Cause)
	}
	return fmt.Sprintf("%s: order %s", ErrRefundFailed, e.OrderNumber)
}

func (e *RefundFailedError) Unwrap() error {
	return ErrRefundFailed
}

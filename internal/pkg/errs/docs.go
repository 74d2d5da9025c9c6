// Package errs provides standardized error types for the order-lifecycle
// application. It implements a consistent pattern for error creation,
// formatting, and unwrapping that is used throughout the application.
//
// The package defines two groups of errors:
//   - Generic validation errors (ValueIsRequiredError, ValueIsInvalidError,
//     ObjectNotFoundError, ValueIsOutOfRangeError) used by value-object and
//     command constructors.
//   - Order-lifecycle business errors (OrderNotFoundError,
//     InvalidStateTransitionError, StaleStateConflictError,
//     OutOfDeliveryRangeError, AddressResolutionFailedError,
//     RefundFailedError) surfaced by the submission pipeline, the state
//     machine, and the timeout sweeps.
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrStaleStateConflict)
//   - A struct type with fields for error details
//   - Constructor functions, with and without cause where a cause makes sense
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is matches the sentinel
//
// None of these errors imply an automatic retry; the caller decides. The only
// place a business error is deliberately absorbed is inside the timeout
// sweeps, which log StaleStateConflict and move on to the next candidate.
package errs

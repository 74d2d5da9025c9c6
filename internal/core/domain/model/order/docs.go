// Package order provides domain entities and business logic for the order
// lifecycle of the food delivery system. It implements the Order aggregate
// root with its status and payment state machines.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, money, timestamps,
//     and lifecycle transitions
//   - Status: A state machine enforcing the valid order status transitions
//   - PayStatus: A state machine enforcing Unpaid -> Paid -> Refunded
//   - LineItem and Shipping: immutable snapshots taken at submission
//
// Key business rules:
//   - New orders start in PendingPayment/Unpaid
//   - Status moves strictly forward; Completed and Cancelled are terminal
//   - Cancelling or rejecting a paid order flips the payment state to Refunded
//   - The amount, line items, and shipping snapshot never change after
//     submission
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order

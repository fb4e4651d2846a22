// Package order provides domain entities and business logic for order
// fulfillment. It implements the Order aggregate root with per-item
// availability tracking and a status state machine.
//
// The package includes:
//   - Order: The aggregate root that owns status transitions and item state
//   - OrderItem: One product/quantity line, with availability and refund mark
//   - Status: A state machine enforcing valid order status transitions
//   - Availability / RefundMark: closed enumerations for per-item state
//
// Key business rules:
//   - Order status follows the workflow:
//     Collecting -> Completed, Collecting -> Problem,
//     Problem -> Collecting | Waiting | Cancelled, Waiting -> Collecting | Cancelled
//   - Cancelled and Completed are terminal; no transition leaves them
//   - An item whose refund mark is RefundedFinal is never mutated again
//   - All status and availability changes funnel through the aggregate's
//     transition methods; nothing outside this package writes item state
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order

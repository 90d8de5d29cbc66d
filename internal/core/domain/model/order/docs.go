// Package order provides the Order aggregate of the marketplace.
//
// The package includes:
//   - Order: one customer's purchase from one store at a fixed total price
//   - Item: an immutable line of an order
//   - Status: the Pending -> Confirmed | Denied state machine
//
// Key business rules:
//   - An order has at least one item; quantities are positive, unit prices non-negative
//   - The total is computed once, at creation, as the sum of unit price times quantity
//   - Confirm and Deny are mutually exclusive and each can happen at most once
//   - Confirmation requires an estimated delivery time
package order

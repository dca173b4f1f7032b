// Package order provides the Order aggregate and its lifecycle state machine.
//
// The package includes:
//   - Order: the aggregate root linking a product and quantity to one
//     deliverer and one recipient, with its lifecycle timestamps
//   - Status: the explicit lifecycle state, derived once when an order is
//     restored and advanced only through its transition methods
//   - Filter: the nullability predicate over canceled_at/started/ended used
//     by listings and by conditional updates
//
// Lifecycle:
//
//	Pending ──> Started ──> Ended
//	   │
//	   └──────> Canceled
//
// Business rules:
//   - A transport may start only inside the configured delivery window
//   - A canceled order can never start
//   - An order cannot end before it started, nor end twice
//   - An order cannot be canceled once it started
//   - Ended and Canceled are terminal
package order

// Package kernel provides the value objects shared by the fastfeet domain model.
//
// The package includes:
//   - ID: the positive integer identity of persisted records (orders,
//     deliverers, recipients)
//   - UUID: the identity of records created by the application itself
//     (notification outbox entries)
//   - DeliveryWindow: the hours of the day in which a deliverer may start a
//     transport
//   - Clock: the source of "now" handed to lifecycle transitions
//
// Value objects are immutable and guarded: their zero value fails Validate,
// so only constructor output enters the domain.
package kernel

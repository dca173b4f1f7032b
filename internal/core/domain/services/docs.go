// Package services provides domain services that work across more than one
// aggregate of the delivery system.
//
// The package includes:
//   - CancellationNotice: composes the email sent to a deliverer when one of
//     their orders is canceled
package services

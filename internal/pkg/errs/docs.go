// Package errs provides the typed errors shared by the fastfeet application.
//
// Every error type follows the same shape:
//   - a sentinel variable (ErrObjectNotFound, ErrInvalidTransition, ...)
//     usable with errors.Is
//   - a struct carrying the details, usable with errors.As
//   - constructors with and without a cause
//   - Error() for formatting and Unwrap() for classification
//
// Value errors (required, invalid, out of range) describe bad input.
// ObjectNotFound and ReferenceNotFound describe missing records, the second
// one when a record names another record that does not exist.
// InvalidTransition wraps the lifecycle rule that rejected a state change.
// ConcurrentModification reports a conditional update that matched no row.
// NotificationFailed is logged by the notification dispatcher and never
// returned to API callers.
package errs

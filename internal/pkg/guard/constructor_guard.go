// Package guard marks domain values as built by their constructors, so a
// zero value that skipped validation can be told apart from a real one.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes no
// error of its own.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in aggregates, value objects and commands.
// Only NewConstructorGuard sets the flag, so the zero value always fails
// Validate.
//
// Example:
//
//	type Recipient struct {
//	    name  string
//	    guard guard.ConstructorGuard
//	}
//
//	func (r Recipient) Validate() error {
//	    return r.guard.Validate(ErrRecipientIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is
// nil) if the guard was not created by NewConstructorGuard.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}

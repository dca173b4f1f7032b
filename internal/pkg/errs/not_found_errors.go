package errs

import (
	"errors"
	"fmt"
)

var (
	ErrObjectNotFound    = errors.New("object not found")
	ErrReferenceNotFound = errors.New("reference not found")
)

// ObjectNotFoundError reports that the record addressed by a request does
// not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %v (cause: %v)", ErrObjectNotFound, e.ParamName, e.ID, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ReferenceNotFoundError reports that a record named by another one (an
// order's deliverer or recipient) does not exist.
type ReferenceNotFoundError struct {
	Reference string
	ID        any
	Cause     error
}

func NewReferenceNotFoundError(reference string, id any) *ReferenceNotFoundError {
	return &ReferenceNotFoundError{Reference: reference, ID: id}
}

func NewReferenceNotFoundErrorWithCause(reference string, id any, cause error) *ReferenceNotFoundError {
	return &ReferenceNotFoundError{Reference: reference, ID: id, Cause: cause}
}

func (e *ReferenceNotFoundError) Error() string {
	return withCause(fmt.Sprintf("%s: %s %v does not exist", ErrReferenceNotFound, e.Reference, e.ID), e.Cause)
}

func (e *ReferenceNotFoundError) Unwrap() error {
	return ErrReferenceNotFound
}

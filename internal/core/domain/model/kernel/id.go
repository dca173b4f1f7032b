package kernel

import (
	"strconv"

	"fastfeet/internal/pkg/errs"
	"fastfeet/internal/pkg/guard"
)

// ErrIDIsNotConstructed is returned when validating a zero-value ID.
var ErrIDIsNotConstructed = errs.NewValueIsRequiredError("ID must be created via NewID")

// ID identifies a record whose key is assigned by the database sequence.
// Valid IDs are strictly positive.
//
// Example:
//
//	id, err := kernel.NewID(42)
//	if err != nil {
//	    return fmt.Errorf("invalid order id: %w", err)
//	}
type ID struct {
	value int64
	guard guard.ConstructorGuard
}

// NewID wraps a database key. Zero and negative values are rejected.
func NewID(value int64) (ID, error) {
	if value <= 0 {
		return ID{}, errs.NewValueIsInvalidErrorWithCause(
			"id is invalid", errs.NewValueIsOutOfRangeError("id", value, 1, "max int64"))
	}
	return ID{value: value, guard: guard.NewConstructorGuard()}, nil
}

// Validate returns ErrIDIsNotConstructed for the zero value.
func (i ID) Validate() error {
	return i.guard.Validate(ErrIDIsNotConstructed)
}

// Value returns the raw database key.
func (i ID) Value() int64 {
	return i.value
}

// IsZero reports whether the ID has not been assigned yet.
func (i ID) IsZero() bool {
	return i.value == 0
}

func (i ID) IsEqual(other ID) bool {
	return i.value == other.value
}

func (i ID) String() string {
	return strconv.FormatInt(i.value, 10)
}

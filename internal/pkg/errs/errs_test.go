package errs_test

import (
	"errors"
	"testing"

	"fastfeet/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("order", "42")

		assert.Equal(t, "order", err.ParamName)
		assert.Equal(t, "42", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 42", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("order", "42", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: order, ID is: 42 (cause: database connection failed)",
			err.Error())
	})

	t.Run("non string ids keep fmt verb output", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("order", 456)
		assert.Equal(t, "object not found: %!s(int=456)", err.Error())
	})
}

func TestReferenceNotFoundError(t *testing.T) {
	t.Run("names the missing reference", func(t *testing.T) {
		err := errs.NewReferenceNotFoundError("deliverer", int64(7))

		assert.Equal(t, "deliverer", err.Reference)
		assert.Equal(t, "reference not found: deliverer 7 does not exist", err.Error())
		require.ErrorIs(t, err, errs.ErrReferenceNotFound)
		assert.NotErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("with cause", func(t *testing.T) {
		err := errs.NewReferenceNotFoundErrorWithCause("recipient", 3, errors.New("no rows"))

		assert.Equal(t, "reference not found: recipient 3 does not exist (cause: no rows)", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("email")

		assert.Equal(t, "email", err.ParamName)
		assert.Equal(t, "value is invalid: email", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("email", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: email (cause: invalid format)", err.Error())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("start hour", 25, 0, 23)

		assert.Equal(t, 25, err.Value)
		assert.Equal(t, 0, err.Min)
		assert.Equal(t, 23, err.Max)
		assert.Equal(t, "value is invalid: 25 is start hour, min value is 0, max value is 23", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("NewValueIsOutOfRangeErrorWithCause", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeErrorWithCause("quantity", -5, 1, 1000, errors.New("validation failed"))

		assert.Equal(t,
			"value is invalid: -5 is quantity, min value is 1, max value is 1000 (cause: validation failed)",
			err.Error())
	})

	t.Run("newlines in values are flattened", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("product", "box\nlarge", 0, 10)
		assert.Contains(t, err.Error(), "box large")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredError("product")

	assert.Equal(t, "value is required: product", err.Error())
	assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())

	withCause := errs.NewValueIsRequiredErrorWithCause("product", errors.New("empty"))
	assert.Equal(t, "value is required: product (cause: empty)", withCause.Error())
}

func TestInvalidTransitionError(t *testing.T) {
	errRule := errors.New("order has not started")

	t.Run("matches both the category and the rule", func(t *testing.T) {
		err := errs.NewInvalidTransitionError("Pending", "end transport", errRule)

		assert.Equal(t, "invalid transition: cannot end transport from Pending (cause: order has not started)", err.Error())
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		require.ErrorIs(t, err, errRule)
	})

	t.Run("without rule", func(t *testing.T) {
		err := errs.NewInvalidTransitionError("Ended", "cancel", nil)

		assert.Equal(t, "invalid transition: cannot cancel from Ended", err.Error())
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("errors.As recovers the details through wrapping", func(t *testing.T) {
		wrapped := errors.Join(errors.New("context"), errs.NewInvalidTransitionError("Started", "cancel", errRule))

		var transitionErr *errs.InvalidTransitionError
		require.ErrorAs(t, wrapped, &transitionErr)
		assert.Equal(t, "cancel", transitionErr.Action)
	})
}

func TestConcurrentModificationError(t *testing.T) {
	err := errs.NewConcurrentModificationError("order", int64(9))

	assert.Equal(t, "concurrent modification: order 9 was changed by another request", err.Error())
	require.ErrorIs(t, err, errs.ErrConcurrentModification)
}

func TestNotificationFailedError(t *testing.T) {
	cause := errors.New("broker unavailable")
	err := errs.NewNotificationFailedError("ana@fastfeet.com", cause)

	assert.Equal(t, "notification failed: to ana@fastfeet.com (cause: broker unavailable)", err.Error())
	require.ErrorIs(t, err, errs.ErrNotificationFailed)
	require.ErrorIs(t, err, cause)
}

func TestSentinelErrors(t *testing.T) {
	assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
	assert.Equal(t, "reference not found", errs.ErrReferenceNotFound.Error())
	assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
	assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
	assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
	assert.Equal(t, "invalid transition", errs.ErrInvalidTransition.Error())
	assert.Equal(t, "concurrent modification", errs.ErrConcurrentModification.Error())
	assert.Equal(t, "notification failed", errs.ErrNotificationFailed.Error())
}

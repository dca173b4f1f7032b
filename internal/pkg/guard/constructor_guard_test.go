package guard_test

import (
	"errors"
	"testing"

	"fastfeet/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	errNotConstructed := errors.New("deliverer must be created via NewDeliverer")

	t.Run("constructed guard passes with and without custom error", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errNotConstructed))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero value guard returns the custom error", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(errNotConstructed)

		require.Error(t, err)
		assert.Equal(t, errNotConstructed, err)
	})

	t.Run("zero value guard falls back to the default error", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.ErrorIs(t, err, guard.ErrDefaultConstructorGuard)
	})
}

func TestConstructorGuard_EmbeddedInValueObject(t *testing.T) {
	type address struct {
		street string
		guard  guard.ConstructorGuard
	}
	errAddressNotConstructed := errors.New("address must be created via newAddress")

	newAddress := func(street string) (address, error) {
		if street == "" {
			return address{}, errors.New("street is required")
		}
		return address{street: street, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructor output validates", func(t *testing.T) {
		a, err := newAddress("Rua das Flores")

		require.NoError(t, err)
		require.NoError(t, a.guard.Validate(errAddressNotConstructed))
		assert.Equal(t, "Rua das Flores", a.street)
	})

	t.Run("struct literal does not validate", func(t *testing.T) {
		a := address{street: "Rua das Flores"}

		assert.Equal(t, errAddressNotConstructed, a.guard.Validate(errAddressNotConstructed))
	})

	t.Run("constructor rejects bad input before guarding", func(t *testing.T) {
		_, err := newAddress("")

		require.EqualError(t, err, "street is required")
	})
}

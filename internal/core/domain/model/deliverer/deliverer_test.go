package deliverer_test

import (
	"strings"
	"testing"

	"fastfeet/internal/core/domain/model/deliverer"
	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/core/domain/model/kernel/kerneltest"
	"fastfeet/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeliverer(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		d, err := deliverer.NewDeliverer(" Ana ", "Souza", "ana@fastfeet.com")

		require.NoError(t, err)
		require.NoError(t, d.Validate())
		assert.True(t, d.ID().IsZero())
		assert.Equal(t, "Ana", d.FirstName())
		assert.Equal(t, "Souza", d.LastName())
		assert.Equal(t, "ana@fastfeet.com", d.Email())
	})

	t.Run("last name is optional", func(t *testing.T) {
		d, err := deliverer.NewDeliverer("Ana", "", "ana@fastfeet.com")

		require.NoError(t, err)
		assert.Empty(t, d.LastName())
	})

	tests := []struct {
		name      string
		firstName string
		lastName  string
		email     string
		target    error
		contains  string
	}{
		{"missing first name", "", "Souza", "ana@fastfeet.com", errs.ErrValueIsRequired, "first_name"},
		{"missing email", "Ana", "Souza", " ", errs.ErrValueIsRequired, "email"},
		{"malformed email", "Ana", "Souza", "ana.fastfeet.com", errs.ErrValueIsInvalid, "is not an email address"},
		{"display name form", "Ana", "Souza", "Ana <ana@fastfeet.com>", errs.ErrValueIsInvalid, "is not an email address"},
		{"long first name", strings.Repeat("a", 101), "", "ana@fastfeet.com", errs.ErrValueIsInvalid, "101 characters is longer than 100"},
		{"long last name", "Ana", strings.Repeat("b", 101), "ana@fastfeet.com", errs.ErrValueIsInvalid, "last_name"},
		{"long email", "Ana", "", strings.Repeat("c", 142) + "@mail.com", errs.ErrValueIsInvalid, "151 characters is longer than 150"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := deliverer.NewDeliverer(tt.firstName, tt.lastName, tt.email)

			assert.Nil(t, d)
			require.ErrorIs(t, err, tt.target)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestRestoreDeliverer(t *testing.T) {
	d, err := deliverer.RestoreDeliverer(kerneltest.ID(3), "Ana", "Souza", "ana@fastfeet.com")
	require.NoError(t, err)
	assert.Equal(t, int64(3), d.ID().Value())

	require.ErrorIs(t, d.AssignID(kerneltest.ID(4)), deliverer.ErrDelivererAlreadyIdentified)

	_, err = deliverer.RestoreDeliverer(kernel.ID{}, "Ana", "Souza", "ana@fastfeet.com")
	require.ErrorIs(t, err, kernel.ErrIDIsNotConstructed)
}

func TestDeliverer_Validate(t *testing.T) {
	var zero deliverer.Deliverer
	assert.Equal(t, deliverer.ErrDelivererIsNotConstructed, zero.Validate())

	var nilDeliverer *deliverer.Deliverer
	assert.Equal(t, deliverer.ErrDelivererIsNotConstructed, nilDeliverer.Validate())
}

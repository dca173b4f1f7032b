// Package kerneltest builds kernel values for tests.
package kerneltest

import "fastfeet/internal/core/domain/model/kernel"

// ID returns the ID for value and panics when value is not a valid key.
func ID(value int64) kernel.ID {
	id, err := kernel.NewID(value)
	if err != nil {
		panic(err)
	}
	return id
}

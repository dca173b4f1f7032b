package commands_test

import (
	"testing"

	"fastfeet/internal/core/application/usecases/commands"
	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/core/domain/model/kernel/kerneltest"
	"fastfeet/internal/core/domain/model/order"
	"fastfeet/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewCreateOrderCommand("Box A", 3, delivererID, recipientID)

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, "Box A", cmd.Product())
	assert.Equal(t, 3, cmd.Quantity())
	assert.Equal(t, delivererID, cmd.DelivererID())
	assert.Equal(t, recipientID, cmd.RecipientID())
}

func TestNewCreateOrderCommand_InvalidInput(t *testing.T) {
	_, err := commands.NewCreateOrderCommand("", 0, kernel.ID{}, kernel.ID{})

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	assert.Contains(t, err.Error(), "deliverer_id")
	assert.Contains(t, err.Error(), "recipient_id")
}

func TestNewCreateOrderCommand_QuantityAboveColumnRange(t *testing.T) {
	_, err := commands.NewCreateOrderCommand("Box A", 3_000_000_000, delivererID, recipientID)

	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	assert.Contains(t, err.Error(), "quantity")

	cmd, err := commands.NewCreateOrderCommand("Box A", order.MaxQuantity, delivererID, recipientID)
	require.NoError(t, err)
	assert.Equal(t, order.MaxQuantity, cmd.Quantity())
}

func TestCreateOrderCommand_NotConstructed(t *testing.T) {
	assert.Equal(t, commands.ErrCreateOrderCommandIsNotConstructed, commands.CreateOrderCommand{}.Validate())
}

func TestTransitionCommands(t *testing.T) {
	start, err := commands.NewStartTransportCommand(orderID)
	require.NoError(t, err)
	assert.Equal(t, orderID, start.OrderID())

	end, err := commands.NewEndTransportCommand(orderID)
	require.NoError(t, err)
	assert.Equal(t, orderID, end.OrderID())

	cancel, err := commands.NewCancelOrderCommand(orderID)
	require.NoError(t, err)
	assert.Equal(t, orderID, cancel.OrderID())

	_, err = commands.NewStartTransportCommand(kernel.ID{})
	require.ErrorIs(t, err, kernel.ErrIDIsNotConstructed)
	_, err = commands.NewEndTransportCommand(kernel.ID{})
	require.ErrorIs(t, err, kernel.ErrIDIsNotConstructed)
	_, err = commands.NewCancelOrderCommand(kernel.ID{})
	require.ErrorIs(t, err, kernel.ErrIDIsNotConstructed)

	assert.Equal(t, commands.ErrCancelOrderCommandIsNotConstructed, commands.CancelOrderCommand{}.Validate())
}

func TestNewUpdateOrderCommand(t *testing.T) {
	product := "Box B"
	signature := kerneltest.ID(7)

	cmd, err := commands.NewUpdateOrderCommand(orderID, &product, &signature)
	require.NoError(t, err)

	product = "changed after construction"
	got, ok := cmd.Product()
	assert.True(t, ok)
	assert.Equal(t, "Box B", got)
	sig, ok := cmd.SignatureID()
	assert.True(t, ok)
	assert.Equal(t, signature, sig)
	assert.False(t, cmd.IsEmpty())

	empty, err := commands.NewUpdateOrderCommand(orderID, nil, nil)
	require.NoError(t, err)
	assert.True(t, empty.IsEmpty())
	_, ok = empty.Product()
	assert.False(t, ok)

	_, err = commands.NewUpdateOrderCommand(orderID, nil, &kernel.ID{})
	require.ErrorIs(t, err, kernel.ErrIDIsNotConstructed)
}

func TestNewRetryNotificationsCommand(t *testing.T) {
	cmd, err := commands.NewRetryNotificationsCommand(10)
	require.NoError(t, err)
	assert.Equal(t, 10, cmd.BatchSize())

	_, err = commands.NewRetryNotificationsCommand(0)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

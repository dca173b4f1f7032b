package http_test

import (
	"context"

	"fastfeet/internal/core/application/usecases/commands"
	"fastfeet/internal/core/application/usecases/queries"
	"fastfeet/internal/core/domain/model/deliverer"
	"fastfeet/internal/core/domain/model/order"
	"fastfeet/internal/core/domain/model/recipient"

	"github.com/stretchr/testify/mock"
)

type MockCreateOrderHandler struct{ mock.Mock }

func (m *MockCreateOrderHandler) Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	return orderResult(args)
}

type MockStartTransportHandler struct{ mock.Mock }

func (m *MockStartTransportHandler) Handle(ctx context.Context, cmd commands.StartTransportCommand) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	return orderResult(args)
}

type MockEndTransportHandler struct{ mock.Mock }

func (m *MockEndTransportHandler) Handle(ctx context.Context, cmd commands.EndTransportCommand) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	return orderResult(args)
}

type MockUpdateOrderHandler struct{ mock.Mock }

func (m *MockUpdateOrderHandler) Handle(ctx context.Context, cmd commands.UpdateOrderCommand) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	return orderResult(args)
}

type MockCancelOrderHandler struct{ mock.Mock }

func (m *MockCancelOrderHandler) Handle(ctx context.Context, cmd commands.CancelOrderCommand) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	return orderResult(args)
}

type MockCreateRecipientHandler struct{ mock.Mock }

func (m *MockCreateRecipientHandler) Handle(
	ctx context.Context,
	cmd commands.CreateRecipientCommand,
) (*recipient.Recipient, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*recipient.Recipient), args.Error(1)
}

type MockCreateDelivererHandler struct{ mock.Mock }

func (m *MockCreateDelivererHandler) Handle(
	ctx context.Context,
	cmd commands.CreateDelivererCommand,
) (*deliverer.Deliverer, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*deliverer.Deliverer), args.Error(1)
}

type MockListOrdersHandler struct{ mock.Mock }

func (m *MockListOrdersHandler) Handle(
	ctx context.Context,
	query queries.ListOrdersQuery,
) (queries.ListOrdersQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.ListOrdersQueryResponse), args.Error(1)
}

type MockGetOrderHandler struct{ mock.Mock }

func (m *MockGetOrderHandler) Handle(
	ctx context.Context,
	query queries.GetOrderQuery,
) (queries.GetOrderQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.GetOrderQueryResponse), args.Error(1)
}

func orderResult(args mock.Arguments) (*order.Order, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

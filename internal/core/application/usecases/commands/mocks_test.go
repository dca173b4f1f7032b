package commands_test

import (
	"context"
	"time"

	"fastfeet/internal/core/application/usecases/commands"
	"fastfeet/internal/core/domain/model/deliverer"
	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/core/domain/model/kernel/kerneltest"
	"fastfeet/internal/core/domain/model/notification"
	"fastfeet/internal/core/domain/model/order"
	"fastfeet/internal/core/domain/model/recipient"
	"fastfeet/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.ID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockDelivererRepository struct{ mock.Mock }

func (m *MockDelivererRepository) Add(ctx context.Context, d *deliverer.Deliverer) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDelivererRepository) Get(ctx context.Context, id kernel.ID) (*deliverer.Deliverer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*deliverer.Deliverer), args.Error(1)
}

type MockRecipientRepository struct{ mock.Mock }

func (m *MockRecipientRepository) Add(ctx context.Context, r *recipient.Recipient) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRecipientRepository) Get(ctx context.Context, id kernel.ID) (*recipient.Recipient, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*recipient.Recipient), args.Error(1)
}

type MockNotificationRepository struct{ mock.Mock }

func (m *MockNotificationRepository) Add(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNotificationRepository) Update(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNotificationRepository) GetForUpdate(
	ctx context.Context,
	id kernel.UUID,
) (*notification.Notification, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*notification.Notification), args.Error(1)
}

func (m *MockNotificationRepository) GetPending(ctx context.Context, limit int) ([]*notification.Notification, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*notification.Notification), args.Error(1)
}

// MockUoW satisfies every unit of work interface of the package.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) DelivererRepository() ports.DelivererRepository {
	args := m.Called()
	return args.Get(0).(ports.DelivererRepository)
}

func (m *MockUoW) RecipientRepository() ports.RecipientRepository {
	args := m.Called()
	return args.Get(0).(ports.RecipientRepository)
}

func (m *MockUoW) NotificationRepository() ports.NotificationRepository {
	args := m.Called()
	return args.Get(0).(ports.NotificationRepository)
}

// uowFactory hands out the same unit of work on every Create call and
// counts the calls.
type uowFactory struct {
	uow     *MockUoW
	created int
}

func (f *uowFactory) next() *MockUoW {
	f.created++
	return f.uow
}

type (
	UoWFactory             struct{ *uowFactory }
	OrderUoWFactory        struct{ *uowFactory }
	DelivererUoWFactory    struct{ *uowFactory }
	RecipientUoWFactory    struct{ *uowFactory }
	NotificationUoWFactory struct{ *uowFactory }
)

func (f UoWFactory) Create() commands.UoW                         { return f.next() }
func (f OrderUoWFactory) Create() commands.OrderUoW               { return f.next() }
func (f DelivererUoWFactory) Create() commands.DelivererUoW       { return f.next() }
func (f RecipientUoWFactory) Create() commands.RecipientUoW       { return f.next() }
func (f NotificationUoWFactory) Create() commands.NotificationUoW { return f.next() }

type MockMailer struct{ mock.Mock }

func (m *MockMailer) Send(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

type MockNotificationDeliverer struct{ mock.Mock }

func (m *MockNotificationDeliverer) Handle(ctx context.Context, cmd commands.DeliverNotificationCommand) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}

var (
	delivererID = kerneltest.ID(1)
	recipientID = kerneltest.ID(2)
	orderID     = kerneltest.ID(42)
)

func at(hour int) kernel.FixedClock {
	return kernel.FixedClock(time.Date(2026, time.March, 2, hour, 0, 0, 0, time.UTC))
}

func pendingOrder() *order.Order {
	o, err := order.RestoreOrder(order.Snapshot{
		ID:          orderID,
		Product:     "Box A",
		Quantity:    3,
		DelivererID: delivererID,
		RecipientID: recipientID,
		CreatedAt:   time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC),
	})
	if err != nil {
		panic(err)
	}
	return o
}

func startedOrder() *order.Order {
	o := pendingOrder()
	if err := o.StartTransport(time.Time(at(10)), kernel.DefaultDeliveryWindow()); err != nil {
		panic(err)
	}
	o.MarkPersisted()
	return o
}

func storedDeliverer() *deliverer.Deliverer {
	d, err := deliverer.RestoreDeliverer(delivererID, "Ana", "Souza", "ana@fastfeet.com")
	if err != nil {
		panic(err)
	}
	return d
}

func storedRecipient() *recipient.Recipient {
	r, err := recipient.RestoreRecipient(recipientID, "Maria Silva", recipient.Address{City: "Recife"})
	if err != nil {
		panic(err)
	}
	return r
}

package order_test

import (
	"strings"
	"testing"
	"time"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/core/domain/model/kernel/kerneltest"
	"fastfeet/internal/core/domain/model/order"
	"fastfeet/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	delivererID = kerneltest.ID(1)
	recipientID = kerneltest.ID(2)
	window      = kernel.DefaultDeliveryWindow()
)

func day(hour int) time.Time {
	return time.Date(2026, time.March, 2, hour, 0, 0, 0, time.UTC)
}

func newPendingOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder("Box A", 3, delivererID, recipientID, day(6))
	require.NoError(t, err)
	return o
}

func newStartedOrder(t *testing.T) *order.Order {
	t.Helper()
	o := newPendingOrder(t)
	require.NoError(t, o.StartTransport(day(10), window))
	return o
}

func ptr[T any](v T) *T {
	return &v
}

func TestNewOrder(t *testing.T) {
	t.Run("should create pending order", func(t *testing.T) {
		o, err := order.NewOrder("Box A", 3, delivererID, recipientID, day(6))

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsZero())
		assert.Equal(t, "Box A", o.Product())
		assert.Equal(t, 3, o.Quantity())
		assert.True(t, o.DelivererID().IsEqual(delivererID))
		assert.True(t, o.RecipientID().IsEqual(recipientID))
		assert.Equal(t, day(6), o.CreatedAt())
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, order.Pending, o.PersistedStatus())
		assert.Nil(t, o.StartDate())
		assert.Nil(t, o.EndDate())
		assert.Nil(t, o.CanceledAt())
		assert.Nil(t, o.SignatureID())
		assert.False(t, o.Started())
		assert.False(t, o.Ended())
	})

	t.Run("should reject invalid fields all at once", func(t *testing.T) {
		o, err := order.NewOrder("", 0, kernel.ID{}, kernel.ID{}, day(6))

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "value is required: product")
		assert.Contains(t, err.Error(), "quantity is invalid")
		assert.Contains(t, err.Error(), "value is required: deliverer")
		assert.Contains(t, err.Error(), "value is required: recipient")
	})

	t.Run("should reject product longer than 150 characters", func(t *testing.T) {
		_, err := order.NewOrder(strings.Repeat("x", order.MaxProductLength+1), 1, delivererID, recipientID, day(6))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "151 characters is longer than 150")
	})

	t.Run("should count characters, not bytes", func(t *testing.T) {
		_, err := order.NewOrder(strings.Repeat("ç", order.MaxProductLength), 1, delivererID, recipientID, day(6))

		require.NoError(t, err)
	})

	t.Run("should reject negative quantity", func(t *testing.T) {
		_, err := order.NewOrder("Box", -2, delivererID, recipientID, day(6))

		assert.Contains(t, err.Error(), "-2 is not greater than 0")
	})

	t.Run("should reject quantity the orders table cannot store", func(t *testing.T) {
		_, err := order.NewOrder("Box", order.MaxQuantity+1, delivererID, recipientID, day(6))

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestOrder_Validate(t *testing.T) {
	var nilOrder *order.Order
	assert.Equal(t, order.ErrOrderIsNotConstructed, nilOrder.Validate())

	var zero order.Order
	assert.Equal(t, order.ErrOrderIsNotConstructed, zero.Validate())
}

func TestOrder_AssignID(t *testing.T) {
	o := newPendingOrder(t)

	require.NoError(t, o.AssignID(kerneltest.ID(10)))
	assert.Equal(t, int64(10), o.ID().Value())

	err := o.AssignID(kerneltest.ID(11))
	require.ErrorIs(t, err, order.ErrOrderAlreadyIdentified)
	assert.Equal(t, int64(10), o.ID().Value())

	other := newPendingOrder(t)
	assert.False(t, o.IsEqual(other))
	require.NoError(t, other.AssignID(kerneltest.ID(10)))
	assert.True(t, o.IsEqual(other))
	assert.False(t, o.IsEqual(nil))
}

func TestOrder_StartTransport(t *testing.T) {
	t.Run("should fail outside the window and succeed inside it", func(t *testing.T) {
		o := newPendingOrder(t)

		err := o.StartTransport(day(7), window)
		require.ErrorIs(t, err, order.ErrOutOfWindow)
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, order.Pending, o.Status())
		assert.Nil(t, o.StartDate())

		require.NoError(t, o.StartTransport(day(10), window))
		assert.Equal(t, order.Started, o.Status())
		assert.Equal(t, day(10), *o.StartDate())
		assert.True(t, o.Started())
		assert.Equal(t, order.Pending, o.PersistedStatus())
	})

	t.Run("should accept the last hour of the window", func(t *testing.T) {
		o := newPendingOrder(t)

		require.NoError(t, o.StartTransport(day(18).Add(59*time.Minute), window))
	})

	t.Run("should refuse to start twice", func(t *testing.T) {
		o := newStartedOrder(t)

		err := o.StartTransport(day(11), window)

		require.ErrorIs(t, err, order.ErrAlreadyStarted)
		assert.Equal(t, day(10), *o.StartDate())
	})

	t.Run("should refuse to start a canceled order", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Cancel(day(9)))

		err := o.StartTransport(day(10), window)

		require.ErrorIs(t, err, order.ErrAlreadyCanceled)
		assert.Nil(t, o.StartDate())
		assert.Equal(t, order.Canceled, o.Status())
	})

	t.Run("should check the state before the window", func(t *testing.T) {
		o := newStartedOrder(t)

		err := o.StartTransport(day(22), window)

		require.ErrorIs(t, err, order.ErrAlreadyStarted)
	})

	t.Run("should honour a custom window", func(t *testing.T) {
		wide, err := kernel.NewDeliveryWindow(8, 22)
		require.NoError(t, err)
		o := newPendingOrder(t)

		require.NoError(t, o.StartTransport(day(21), wide))
	})

	t.Run("should reject an unconstructed window", func(t *testing.T) {
		o := newPendingOrder(t)

		err := o.StartTransport(day(10), kernel.DeliveryWindow{})

		assert.Equal(t, kernel.ErrDeliveryWindowIsNotConstructed, err)
		assert.Equal(t, order.Pending, o.Status())
	})
}

func TestOrder_EndTransport(t *testing.T) {
	t.Run("should fail when not started", func(t *testing.T) {
		o := newPendingOrder(t)

		err := o.EndTransport(day(20))

		require.ErrorIs(t, err, order.ErrNotStarted)
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Nil(t, o.EndDate())
	})

	t.Run("should end at any hour, then refuse a second end", func(t *testing.T) {
		o := newStartedOrder(t)

		require.NoError(t, o.EndTransport(day(20)))
		assert.Equal(t, order.Ended, o.Status())
		assert.Equal(t, day(20), *o.EndDate())
		assert.True(t, o.Ended())
		assert.True(t, o.Started())

		err := o.EndTransport(day(21))
		require.ErrorIs(t, err, order.ErrAlreadyEnded)
		assert.Equal(t, day(20), *o.EndDate())
	})

	t.Run("should fail for a canceled order", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Cancel(day(9)))

		require.ErrorIs(t, o.EndTransport(day(20)), order.ErrNotStarted)
	})
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("should cancel a pending order", func(t *testing.T) {
		o := newPendingOrder(t)

		require.NoError(t, o.Cancel(day(9)))

		assert.Equal(t, order.Canceled, o.Status())
		assert.Equal(t, day(9), *o.CanceledAt())
		assert.False(t, o.Started())
	})

	t.Run("should refuse once started", func(t *testing.T) {
		o := newStartedOrder(t)

		err := o.Cancel(day(12))

		require.ErrorIs(t, err, order.ErrAlreadyStarted)
		assert.Nil(t, o.CanceledAt())
	})

	t.Run("should refuse once ended", func(t *testing.T) {
		o := newStartedOrder(t)
		require.NoError(t, o.EndTransport(day(12)))

		require.ErrorIs(t, o.Cancel(day(13)), order.ErrAlreadyStarted)
	})

	t.Run("should refuse a second cancel", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Cancel(day(9)))

		require.ErrorIs(t, o.Cancel(day(10)), order.ErrAlreadyCanceled)
		assert.Equal(t, day(9), *o.CanceledAt())
	})
}

func TestOrder_NeverCanceledAndStarted(t *testing.T) {
	actions := map[string]func(o *order.Order) error{
		"start":  func(o *order.Order) error { return o.StartTransport(day(10), window) },
		"end":    func(o *order.Order) error { return o.EndTransport(day(11)) },
		"cancel": func(o *order.Order) error { return o.Cancel(day(12)) },
	}
	sequences := [][]string{
		{"start", "cancel", "end"},
		{"cancel", "start", "end"},
		{"end", "start", "cancel", "end"},
		{"start", "end", "cancel", "start"},
	}

	for _, seq := range sequences {
		o := newPendingOrder(t)
		for _, name := range seq {
			_ = actions[name](o)

			assert.False(t, o.CanceledAt() != nil && o.Started(), "sequence %v", seq)
			assert.False(t, o.Ended() && o.StartDate() == nil, "sequence %v", seq)
		}
	}
}

func TestOrder_UpdateFields(t *testing.T) {
	t.Run("should change product and attach signature", func(t *testing.T) {
		o := newStartedOrder(t)

		require.NoError(t, o.ChangeProduct("Box B"))
		require.NoError(t, o.AttachSignature(kerneltest.ID(5)))

		assert.Equal(t, "Box B", o.Product())
		assert.Equal(t, int64(5), o.SignatureID().Value())
	})

	t.Run("should reject too long product", func(t *testing.T) {
		o := newPendingOrder(t)

		require.Error(t, o.ChangeProduct(strings.Repeat("a", 151)))
		assert.Equal(t, "Box A", o.Product())
	})

	t.Run("should freeze canceled orders", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Cancel(day(9)))

		require.ErrorIs(t, o.ChangeProduct("Box B"), order.ErrAlreadyCanceled)
		require.ErrorIs(t, o.AttachSignature(kerneltest.ID(5)), errs.ErrInvalidTransition)
	})
}

func TestOrder_DerivedFlags(t *testing.T) {
	o := newStartedOrder(t)
	assert.False(t, o.IsPast(day(23)))
	assert.False(t, o.IsCancelable(day(7)))

	end := time.Date(2026, time.March, 5, 12, 0, 0, 0, time.UTC)
	require.NoError(t, o.EndTransport(end))

	assert.True(t, o.IsPast(end.Add(time.Second)))
	assert.False(t, o.IsPast(end))
	assert.False(t, o.IsPast(end.Add(-time.Hour)))

	assert.True(t, o.IsCancelable(end.Add(-25*time.Hour)))
	assert.False(t, o.IsCancelable(end.Add(-24*time.Hour)))
	assert.False(t, o.IsCancelable(end.Add(-time.Hour)))
}

func TestRestoreOrder(t *testing.T) {
	base := order.Snapshot{
		ID:          kerneltest.ID(7),
		Product:     "Box A",
		Quantity:    3,
		DelivererID: delivererID,
		RecipientID: recipientID,
		CreatedAt:   day(6),
	}

	tests := []struct {
		name    string
		mutate  func(s *order.Snapshot)
		want    order.Status
		wantErr string
	}{
		{name: "pending", mutate: func(*order.Snapshot) {}, want: order.Pending},
		{
			name:   "started",
			mutate: func(s *order.Snapshot) { s.StartDate, s.Started = ptr(day(10)), ptr(true) },
			want:   order.Started,
		},
		{
			name: "ended",
			mutate: func(s *order.Snapshot) {
				s.StartDate, s.Started = ptr(day(10)), ptr(true)
				s.EndDate, s.Ended = ptr(day(12)), ptr(true)
			},
			want: order.Ended,
		},
		{
			name:   "canceled",
			mutate: func(s *order.Snapshot) { s.CanceledAt = ptr(day(9)) },
			want:   order.Canceled,
		},
		{
			name:    "flag without date",
			mutate:  func(s *order.Snapshot) { s.Started = ptr(true) },
			wantErr: "started flag does not match start date",
		},
		{
			name:    "date without flag",
			mutate:  func(s *order.Snapshot) { s.StartDate = ptr(day(10)) },
			wantErr: "started flag does not match start date",
		},
		{
			name:    "ended without start",
			mutate:  func(s *order.Snapshot) { s.EndDate, s.Ended = ptr(day(12)), ptr(true) },
			wantErr: "ended without a start date",
		},
		{
			name: "canceled and started",
			mutate: func(s *order.Snapshot) {
				s.StartDate, s.Started = ptr(day(10)), ptr(true)
				s.CanceledAt = ptr(day(9))
			},
			wantErr: "canceled after start",
		},
		{
			name:    "missing id",
			mutate:  func(s *order.Snapshot) { s.ID = kernel.ID{} },
			wantErr: "ID must be created",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snapshot := base
			tt.mutate(&snapshot)

			o, err := order.RestoreOrder(snapshot)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, o.Status())
			assert.Equal(t, tt.want, o.PersistedStatus())
			assert.Equal(t, int64(7), o.ID().Value())
		})
	}

	t.Run("MarkPersisted follows the current status", func(t *testing.T) {
		o, err := order.RestoreOrder(base)
		require.NoError(t, err)
		require.NoError(t, o.StartTransport(day(10), window))

		assert.Equal(t, order.Pending, o.PersistedStatus())
		o.MarkPersisted()
		assert.Equal(t, order.Started, o.PersistedStatus())
	})

	t.Run("signature is restored", func(t *testing.T) {
		snapshot := base
		snapshot.SignatureID = ptr(kerneltest.ID(4))

		o, err := order.RestoreOrder(snapshot)

		require.NoError(t, err)
		assert.Equal(t, int64(4), o.SignatureID().Value())
	})
}

func TestOrder_ReturnedTimesAreCopies(t *testing.T) {
	o := newStartedOrder(t)

	start := o.StartDate()
	*start = day(23)

	assert.Equal(t, day(10), *o.StartDate())
}

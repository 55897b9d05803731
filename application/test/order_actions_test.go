package test

import (
	"context"
	"testing"

	"checkout-gateway/domain/entities"
	errorsMap "checkout-gateway/errors"
	"checkout-gateway/infrastructure/service/gateway"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const capturedTransactionBody = `{"transaction_id":"tr_1","status":"captured"}`

func TestGatewayApplication_CaptureOrder(t *testing.T) {
	ctx := context.TODO()

	tests := []struct {
		name       string
		status     entities.EntityStatus
		wantError  string
		wantStatus entities.EntityStatus
		fd         func(th *MockService, order *entities.OrderEntity)
	}{
		{
			name:       "captures a successful order",
			status:     entities.OrderSuccess,
			wantStatus: entities.OrderCaptured,
			fd: func(th *MockService, order *entities.OrderEntity) {
				th.OrderRepository.On("FindByOrderID", mock.Anything, int64(15)).Return(order, nil)
				th.GatewayRepository.On("CaptureTransaction", mock.Anything, "tr_1", int64(1000)).
					Return(makeResponse(200, capturedTransactionBody, gateway.KindCapture))
				th.OrderRepository.On("ReplaceByID", mock.Anything, order).Return(order, nil)
				th.Events.On("Publish", "order_events", "15", mock.Anything).Return(nil)
			},
		},
		{
			name:      "refuses to capture a pending order",
			status:    entities.OrderPending,
			wantError: "Only a successful order can be captured.",
			fd: func(th *MockService, order *entities.OrderEntity) {
				th.OrderRepository.On("FindByOrderID", mock.Anything, int64(15)).Return(order, nil)
			},
		},
		{
			name:       "capturing twice is a no-op",
			status:     entities.OrderCaptured,
			wantStatus: entities.OrderCaptured,
			fd: func(th *MockService, order *entities.OrderEntity) {
				th.OrderRepository.On("FindByOrderID", mock.Anything, int64(15)).Return(order, nil)
			},
		},
		{
			name:      "remote failure surfaces the processor message",
			status:    entities.OrderSuccess,
			wantError: "Amount exceeds authorization.\namount - too large",
			fd: func(th *MockService, order *entities.OrderEntity) {
				th.OrderRepository.On("FindByOrderID", mock.Anything, int64(15)).Return(order, nil)
				th.GatewayRepository.On("CaptureTransaction", mock.Anything, "tr_1", int64(1000)).
					Return(makeResponse(422, `{"title":"Amount exceeds authorization.","invalid_parameters":[{"field":"amount","reason":"too large"}]}`, gateway.KindCapture))
				th.Notifier.On("Notify", mock.Anything, int64(-101)).Return()
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th := NewTestGatewayApplication()
			order := &entities.OrderEntity{
				OrderID:       15,
				OrderKey:      "key_abc",
				TransactionID: "tr_1",
				Amount:        1000,
				Status:        tt.status,
			}
			tt.fd(th, order)

			res, err := th.GatewayApplication.CaptureOrder(ctx, 15)

			if tt.wantError != "" {
				assert.EqualError(t, err, tt.wantError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantStatus, res.Status)
		})
	}
}

func TestGatewayApplication_CaptureOrderNotFound(t *testing.T) {
	ctx := context.TODO()
	th := NewTestGatewayApplication()
	th.OrderRepository.On("FindByOrderID", mock.Anything, int64(99)).Return(nil, errorsMap.ErrOrderNotFound)

	_, err := th.GatewayApplication.CaptureOrder(ctx, 99)

	assert.EqualError(t, err, errorsMap.ErrOrderNotFound.Error())
}

func TestGatewayApplication_CaptureOrderFailureNotifiesOperators(t *testing.T) {
	ctx := context.TODO()
	th := NewTestGatewayApplication()
	order := &entities.OrderEntity{
		OrderID:       15,
		OrderKey:      "key_abc",
		TransactionID: "tr_1",
		Amount:        1000,
		Status:        entities.OrderSuccess,
	}
	th.OrderRepository.On("FindByOrderID", mock.Anything, int64(15)).Return(order, nil)
	th.GatewayRepository.On("CaptureTransaction", mock.Anything, "tr_1", int64(1000)).
		Return(makeResponse(422, `{"title":"Capture declined."}`, gateway.KindCapture))
	th.Notifier.On("Notify", mock.Anything, int64(-101)).Return()

	_, err := th.GatewayApplication.CaptureOrder(ctx, 15)

	assert.Error(t, err)
	th.Notifier.AssertCalled(t, "Notify", mock.Anything, int64(-101))
}

func TestGatewayApplication_RefundOrder(t *testing.T) {
	ctx := context.TODO()

	tests := []struct {
		name       string
		amount     int64
		wantStatus entities.EntityStatus
		wantRemote int64
		fd         func(th *MockService, order *entities.OrderEntity)
	}{
		{
			name:       "zero amount refunds in full",
			amount:     0,
			wantRemote: 1000,
			wantStatus: entities.OrderRefunded,
			fd: func(th *MockService, order *entities.OrderEntity) {
				th.OrderRepository.On("FindByOrderID", mock.Anything, int64(15)).Return(order, nil)
				th.GatewayRepository.On("RefundTransaction", mock.Anything, "tr_1", int64(1000)).
					Return(makeResponse(200, capturedTransactionBody, gateway.KindRefund))
				th.OrderRepository.On("ReplaceByID", mock.Anything, order).Return(order, nil)
				th.Events.On("Publish", "order_events", "15", mock.Anything).Return(nil)
			},
		},
		{
			name:       "partial refund keeps the order captured",
			amount:     400,
			wantRemote: 400,
			wantStatus: entities.OrderCaptured,
			fd: func(th *MockService, order *entities.OrderEntity) {
				th.OrderRepository.On("FindByOrderID", mock.Anything, int64(15)).Return(order, nil)
				th.GatewayRepository.On("RefundTransaction", mock.Anything, "tr_1", int64(400)).
					Return(makeResponse(200, capturedTransactionBody, gateway.KindRefund))
				th.Events.On("Publish", "order_events", "15", mock.Anything).Return(nil)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th := NewTestGatewayApplication()
			order := &entities.OrderEntity{
				OrderID:       15,
				OrderKey:      "key_abc",
				TransactionID: "tr_1",
				Amount:        1000,
				Status:        entities.OrderCaptured,
			}
			tt.fd(th, order)

			res, err := th.GatewayApplication.RefundOrder(ctx, 15, tt.amount)

			assert.NoError(t, err)
			assert.Equal(t, tt.wantStatus, res.Status)
			th.GatewayRepository.AssertCalled(t, "RefundTransaction", mock.Anything, "tr_1", tt.wantRemote)
		})
	}
}

func TestGatewayApplication_CancelOrder(t *testing.T) {
	ctx := context.TODO()

	tests := []struct {
		name       string
		status     entities.EntityStatus
		wantError  string
		wantStatus entities.EntityStatus
		fd         func(th *MockService, order *entities.OrderEntity)
	}{
		{
			name:       "cancels an uncaptured order",
			status:     entities.OrderSuccess,
			wantStatus: entities.OrderCancelled,
			fd: func(th *MockService, order *entities.OrderEntity) {
				th.OrderRepository.On("FindByOrderID", mock.Anything, int64(15)).Return(order, nil)
				th.GatewayRepository.On("CancelTransaction", mock.Anything, "tr_1").
					Return(makeResponse(200, capturedTransactionBody, gateway.KindCancel))
				th.OrderRepository.On("ReplaceByID", mock.Anything, order).Return(order, nil)
				th.Events.On("Publish", "order_events", "15", mock.Anything).Return(nil)
			},
		},
		{
			name:      "refuses to cancel a captured order",
			status:    entities.OrderCaptured,
			wantError: "A captured order must be refunded, not cancelled.",
			fd: func(th *MockService, order *entities.OrderEntity) {
				th.OrderRepository.On("FindByOrderID", mock.Anything, int64(15)).Return(order, nil)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th := NewTestGatewayApplication()
			order := &entities.OrderEntity{
				OrderID:       15,
				OrderKey:      "key_abc",
				TransactionID: "tr_1",
				Amount:        1000,
				Status:        tt.status,
			}
			tt.fd(th, order)

			res, err := th.GatewayApplication.CancelOrder(ctx, 15)

			if tt.wantError != "" {
				assert.EqualError(t, err, tt.wantError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantStatus, res.Status)
		})
	}
}

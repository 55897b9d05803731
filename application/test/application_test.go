package test

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"testing"

	"checkout-gateway/domain/constants"
	"checkout-gateway/domain/entities"
	errorsMap "checkout-gateway/errors"
	"checkout-gateway/infrastructure/service/gateway"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func webhookHash(body []byte) string {
	mac := hmac.New(sha256.New, []byte(testAppKey))
	for _, b := range body {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		default:
			mac.Write([]byte{b})
		}
	}
	return hex.EncodeToString(mac.Sum(nil))
}

func statusUpdateBody(orderID, status string) []byte {
	return []byte(fmt.Sprintf(`{"webhook_type":"status_update","webhook_id":"w1","timestamp":1700000000,"webhook_body":{"transaction_id":"tr_1","status":"%s","order_id":"%s"}}`, status, orderID))
}

func TestGatewayApplication_HandleWebhook_StatusUpdate(t *testing.T) {
	ctx := context.TODO()

	tests := []struct {
		name       string
		body       []byte
		wantError  string
		wantStatus entities.EntityStatus
		fd         func(th *MockService, order *entities.OrderEntity)
	}{
		{
			name:       "success transitions the order",
			body:       statusUpdateBody("15-key_abc", "success"),
			wantStatus: entities.OrderSuccess,
			fd: func(th *MockService, order *entities.OrderEntity) {
				th.OrderRepository.On("FindByOrderID", mock.Anything, int64(15)).Return(order, nil)
				th.GatewayRepository.On("GetTransaction", mock.Anything, "tr_1", mock.Anything).
					Return(makeResponse(200, `{"transaction_id":"tr_1","status":"captured"}`, gateway.KindTransaction))
				th.OrderRepository.On("ReplaceByID", mock.Anything, order).Return(order, nil)
				th.Events.On("Publish", "order_events", "15", mock.Anything).Return(nil)
			},
		},
		{
			name:       "declined fails the order",
			body:       statusUpdateBody("15-key_abc", "declined"),
			wantStatus: entities.OrderFailed,
			fd: func(th *MockService, order *entities.OrderEntity) {
				th.OrderRepository.On("FindByOrderID", mock.Anything, int64(15)).Return(order, nil)
				th.OrderRepository.On("ReplaceByID", mock.Anything, order).Return(order, nil)
				th.Events.On("Publish", "order_events", "15", mock.Anything).Return(nil)
			},
		},
		{
			name:       "pending moves the order to processing",
			body:       statusUpdateBody("15-key_abc", "pending"),
			wantStatus: entities.OrderProcessing,
			fd: func(th *MockService, order *entities.OrderEntity) {
				th.OrderRepository.On("FindByOrderID", mock.Anything, int64(15)).Return(order, nil)
				th.OrderRepository.On("ReplaceByID", mock.Anything, order).Return(order, nil)
			},
		},
		{
			name:      "key mismatch is rejected",
			body:      statusUpdateBody("15-wrong_key", "success"),
			wantError: errorsMap.ErrOrderKeyInvalid.Error(),
			fd: func(th *MockService, order *entities.OrderEntity) {
				th.OrderRepository.On("FindByOrderID", mock.Anything, int64(15)).Return(order, nil)
			},
		},
		{
			name:      "invalid order id is rejected",
			body:      statusUpdateBody("garbage", "success"),
			wantError: errorsMap.ErrOrderIdInvalid.Error(),
			fd:        func(th *MockService, order *entities.OrderEntity) {},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th := NewTestGatewayApplication()
			order := &entities.OrderEntity{
				OrderID:  15,
				OrderKey: "key_abc",
				Amount:   1000,
				Status:   entities.OrderPending,
			}
			tt.fd(th, order)

			err := th.GatewayApplication.HandleWebhook(ctx, tt.body, webhookHash(tt.body))

			if tt.wantError != "" {
				assert.EqualError(t, err, tt.wantError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantStatus, order.Status)
		})
	}
}

func TestGatewayApplication_HandleWebhook_StatusUpdateReplayIsIdempotent(t *testing.T) {
	ctx := context.TODO()
	th := NewTestGatewayApplication()
	order := &entities.OrderEntity{
		OrderID:  15,
		OrderKey: "key_abc",
		Status:   entities.OrderSuccess,
	}
	th.OrderRepository.On("FindByOrderID", mock.Anything, int64(15)).Return(order, nil)

	body := statusUpdateBody("15-key_abc", "success")
	err := th.GatewayApplication.HandleWebhook(ctx, body, webhookHash(body))

	assert.NoError(t, err)
	th.OrderRepository.AssertNotCalled(t, "ReplaceByID", mock.Anything, mock.Anything)
	th.Events.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
}

func TestGatewayApplication_HandleWebhook_StatusUpdateDefersUnknownOrder(t *testing.T) {
	ctx := context.TODO()
	th := NewTestGatewayApplication()
	th.OrderRepository.On("FindByOrderID", mock.Anything, int64(15)).Return(nil, fmt.Errorf("mongo: no documents in result"))
	th.Queue.On("PublishDeferred", mock.Anything, constants.TopicDeferredWebhook).Return(nil)

	body := statusUpdateBody("15-key_abc", "success")
	err := th.GatewayApplication.HandleWebhook(ctx, body, webhookHash(body))

	assert.NoError(t, err)
	th.Queue.AssertCalled(t, "PublishDeferred", mock.Anything, constants.TopicDeferredWebhook)
}

func TestGatewayApplication_HandleWebhook_RejectsBadHash(t *testing.T) {
	ctx := context.TODO()
	th := NewTestGatewayApplication()

	body := statusUpdateBody("15-key_abc", "success")
	err := th.GatewayApplication.HandleWebhook(ctx, body, "deadbeef")

	assert.EqualError(t, err, "Webhook hash is invalid.")
	th.OrderRepository.AssertNotCalled(t, "FindByOrderID", mock.Anything, mock.Anything)
}

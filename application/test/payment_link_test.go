package test

import (
	"context"
	"strings"
	"testing"

	"checkout-gateway/domain/constants"
	"checkout-gateway/domain/entities"
	"checkout-gateway/infrastructure/service/gateway"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const paymentLinkBody = `{"link_id":"pl_1","url":"https://pay.gateway.test/pl_1"}`

func TestGatewayApplication_CreateCheckoutLink(t *testing.T) {
	ctx := context.TODO()
	th := NewTestGatewayApplication()
	order := &entities.OrderEntity{
		OrderID:  15,
		OrderKey: "key_abc",
		Amount:   1000,
		Currency: "EUR",
		Status:   entities.OrderPending,
	}
	th.GatewayRepository.On("CreatePaymentLink", mock.Anything, mock.MatchedBy(func(body map[string]interface{}) bool {
		return body["order_id"] == "15-key_abc" && body["capture"] == true
	})).Return(makeResponse(200, paymentLinkBody, gateway.KindPaymentLink))
	th.OrderRepository.On("ReplaceByID", mock.Anything, order).Return(order, nil)

	paymentURL, err := th.GatewayApplication.CreateCheckoutLink(ctx, order)

	assert.NoError(t, err)
	assert.Equal(t, "https://pay.gateway.test/pl_1", paymentURL)
	assert.Equal(t, "pl_1", order.PaymentLinkID)
}

func TestGatewayApplication_CreateCheckoutLinkRemoteFailure(t *testing.T) {
	ctx := context.TODO()
	th := NewTestGatewayApplication()
	order := &entities.OrderEntity{OrderID: 15, OrderKey: "key_abc", Amount: 1000, Currency: "EUR"}
	th.GatewayRepository.On("CreatePaymentLink", mock.Anything, mock.Anything).
		Return(makeResponse(401, `{"title":"Unauthorized."}`, gateway.KindPaymentLink))

	_, err := th.GatewayApplication.CreateCheckoutLink(ctx, order)

	assert.EqualError(t, err, "Unauthorized.")
	th.OrderRepository.AssertNotCalled(t, "ReplaceByID", mock.Anything, mock.Anything)
}

func TestGatewayApplication_CreatePaymentMethodLink(t *testing.T) {
	ctx := context.TODO()
	th := NewTestGatewayApplication()
	th.GatewayRepository.On("CreatePaymentLink", mock.Anything, mock.MatchedBy(func(body map[string]interface{}) bool {
		orderID, _ := body["order_id"].(string)
		return body["amount"] == 0 &&
			body["capture"] == false &&
			body["tokenization"] == true &&
			strings.HasPrefix(orderID, "456-"+constants.PaymentMethodKeyPrefix)
	})).Return(makeResponse(200, paymentLinkBody, gateway.KindPaymentLink))

	paymentURL, err := th.GatewayApplication.CreatePaymentMethodLink(ctx, 456, "cus_9")

	assert.NoError(t, err)
	assert.Equal(t, "https://pay.gateway.test/pl_1", paymentURL)
}

func TestGatewayApplication_CreatePaymentMethodLinkCreatesMissingCustomer(t *testing.T) {
	ctx := context.TODO()
	th := NewTestGatewayApplication()
	th.GatewayRepository.On("CreateCustomer", mock.Anything, mock.MatchedBy(func(body map[string]interface{}) bool {
		return body["reference"] == "456"
	})).Return(makeResponse(200, `{"customer_id":"cus_new"}`, gateway.KindCustomerCreate))
	th.GatewayRepository.On("CreatePaymentLink", mock.Anything, mock.MatchedBy(func(body map[string]interface{}) bool {
		return body["customer_id"] == "cus_new"
	})).Return(makeResponse(200, paymentLinkBody, gateway.KindPaymentLink))

	paymentURL, err := th.GatewayApplication.CreatePaymentMethodLink(ctx, 456, "")

	assert.NoError(t, err)
	assert.Equal(t, "https://pay.gateway.test/pl_1", paymentURL)
}

func TestGatewayApplication_ValidateCredentials(t *testing.T) {
	ctx := context.TODO()
	th := NewTestGatewayApplication()
	th.GatewayRepository.On("ValidateCredentials", mock.Anything).Return(true)

	assert.True(t, th.GatewayApplication.ValidateCredentials(ctx))
}

package application

import (
	"context"
	"errors"
	"fmt"

	"checkout-gateway/domain/constants"
	"checkout-gateway/domain/entities"
	errorsMap "checkout-gateway/errors"
	"checkout-gateway/utils/helpers"
)

// CreateCheckoutLink creates a hosted-checkout link for an order and
// records the link id on the order row.
func (us *GatewayApplication) CreateCheckoutLink(ctx context.Context, order_dto *entities.OrderEntity) (paymentURL string, err error) {
	reference := us.Config.Gateway.PaymentReference
	if reference != "" && !helpers.IsValidPaymentReference(reference) {
		return "", errors.New("Payment reference is invalid.")
	}

	body := map[string]interface{}{
		"amount":   order_dto.Amount,
		"currency": order_dto.Currency,
		"order_id": fmt.Sprintf("%d-%s", order_dto.OrderID, order_dto.OrderKey),
		"capture":  true,
	}
	if reference != "" {
		body["payment_reference"] = reference
	}
	if us.Config.Gateway.Challenge3DS {
		body["challenge_preference"] = "challenge_requested"
	}
	if us.Config.Gateway.Tokenization {
		body["tokenization"] = true
	}
	if order_dto.CustomerID != "" {
		body["customer_id"] = order_dto.CustomerID
	}

	result := us.GatewayRepository.CreatePaymentLink(ctx, body)
	if !result.IsSuccess() {
		us.Logger.With(result.LogFields()...).Error("payment link creation failed")
		return "", errors.New(result.ErrorMessageFormatted(true))
	}

	order_dto.PaymentLinkID = result.LinkID()
	if _, err = us.OrderRepository.ReplaceByID(ctx, order_dto); err != nil {
		return "", err
	}
	return result.PaymentURL(), nil
}

func (us *GatewayApplication) CreateCheckoutLinkByID(ctx context.Context, orderID int64) (paymentURL string, err error) {
	order_dto, err := us.OrderRepository.FindByOrderID(ctx, orderID)
	if err != nil {
		return "", errorsMap.ErrOrderNotFound
	}
	return us.CreateCheckoutLink(ctx, order_dto)
}

// CreatePaymentMethodLink creates a zero-amount tokenization link so a
// customer can save a card without paying. The generated key marks the
// card_new webhook as belonging to the save-card flow. A customer without
// a processor-side record gets one created first, so the tokenized card
// has an owner to attach to.
func (us *GatewayApplication) CreatePaymentMethodLink(ctx context.Context, customerRef int64, customerID string) (paymentURL string, err error) {
	if customerID == "" {
		result := us.GatewayRepository.CreateCustomer(ctx, map[string]interface{}{
			"reference": fmt.Sprintf("%d", customerRef),
		})
		if !result.IsSuccess() {
			us.Logger.With(result.LogFields()...).Error("customer creation failed")
			return "", errors.New(result.ErrorMessageFormatted(true))
		}
		customerID = result.CustomerID()
	}

	key := fmt.Sprintf("%s_%s", constants.PaymentMethodKeyPrefix, helpers.GetUUId())

	body := map[string]interface{}{
		"amount":       0,
		"capture":      false,
		"tokenization": true,
		"order_id":     fmt.Sprintf("%d-%s", customerRef, key),
	}
	if customerID != "" {
		body["customer_id"] = customerID
	}

	result := us.GatewayRepository.CreatePaymentLink(ctx, body)
	if !result.IsSuccess() {
		us.Logger.With(result.LogFields()...).Error("payment method link creation failed")
		return "", errors.New(result.ErrorMessageFormatted(true))
	}
	return result.PaymentURL(), nil
}

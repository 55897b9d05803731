package application

import (
	"context"
	"fmt"
	"net/url"

	"checkout-gateway/domain/constants"
	"checkout-gateway/domain/entities"

	"go.uber.org/zap"
)

// HandleOrderRedirect drives the browser return from the hosted payment
// page. It only ever picks a destination; the authoritative order
// transition stays webhook driven, so every outcome is a redirect and
// never an error page.
func (us *GatewayApplication) HandleOrderRedirect(ctx context.Context, query url.Values) (redirectURL string) {
	data, err := us.Verifier.RedirectData(query)
	if err != nil {
		us.Logger.Warn(err.Error())
		return us.checkoutURL("failed")
	}

	link, ok := entities.ParseOrderLink(data.OrderID())
	if !ok || !link.IsForOrder() {
		us.Logger.With(zap.String("order_id", data.OrderID())).Warn("redirect carries an unusable order id")
		return us.checkoutURL("failed")
	}

	order_dto, err := us.OrderRepository.FindByOrderID(ctx, link.ID)
	if err != nil {
		us.Logger.With(zap.Int64("order_id", link.ID)).Warn("redirect for unknown order")
		return us.checkoutURL("failed")
	}
	if order_dto.OrderKey != link.Key {
		us.Logger.With(zap.Int64("order_id", link.ID)).Warn("redirect order key mismatch")
		return us.checkoutURL("failed")
	}

	if data.TransactionStatus() == constants.TransactionStatusDeclined {
		// A settled order stays settled; the webhook path owns the
		// authoritative transition and a late declined redirect only
		// picks the destination.
		if !order_dto.Status.IsTerminal() {
			order_dto.TransactionID = data.TransactionID()
			order_dto.FailReason = "Transaction declined by the processor."
			if _, err = us.FailedOrder(ctx, order_dto); err != nil {
				us.Logger.With(zap.Int64("order_id", link.ID)).Error(err.Error())
			}
		}
		return us.checkoutURL("declined")
	}

	if !order_dto.Status.IsTerminal() {
		order_dto.TransactionID = data.TransactionID()
		if _, err = us.ProcessingOrder(ctx, order_dto); err != nil {
			us.Logger.With(zap.Int64("order_id", link.ID)).Error(err.Error())
		}
	}

	return us.confirmationURL(order_dto)
}

// HandlePaymentMethodRedirect closes the save-card tokenization flow.
// The card itself arrives over the card_new webhook.
func (us *GatewayApplication) HandlePaymentMethodRedirect(ctx context.Context, query url.Values) (redirectURL string) {
	data, err := us.Verifier.RedirectData(query)
	if err != nil {
		us.Logger.Warn(err.Error())
		return us.paymentMethodsURL("failed")
	}

	if data.TransactionStatus() != constants.TransactionStatusSuccess {
		return us.paymentMethodsURL("failed")
	}
	return us.paymentMethodsURL("success")
}

func (us *GatewayApplication) checkoutURL(status string) string {
	return fmt.Sprintf("%s?payment_status=%s", us.Config.Store.CheckoutURL, status)
}

func (us *GatewayApplication) confirmationURL(order_dto *entities.OrderEntity) string {
	return fmt.Sprintf("%s?order_id=%d&key=%s", us.Config.Store.OrderConfirmationURL, order_dto.OrderID, order_dto.OrderKey)
}

func (us *GatewayApplication) paymentMethodsURL(status string) string {
	return fmt.Sprintf("%s?status=%s", us.Config.Store.PaymentMethodsURL, status)
}

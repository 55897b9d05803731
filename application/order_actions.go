package application

import (
	"context"
	"errors"

	"checkout-gateway/domain/entities"
	errorsMap "checkout-gateway/errors"
	"checkout-gateway/infrastructure/service/gateway"
	"checkout-gateway/utils/telegram"
)

// CaptureOrder settles a previously authorized payment for the full
// order amount.
func (us *GatewayApplication) CaptureOrder(ctx context.Context, orderID int64) (res *entities.OrderEntity, err error) {
	order_dto, err := us.OrderRepository.FindByOrderID(ctx, orderID)
	if err != nil {
		return nil, errorsMap.ErrOrderNotFound
	}
	if order_dto.Status.IsCaptured() {
		return order_dto, nil
	}
	if !order_dto.Status.IsSuccess() {
		return nil, errors.New("Only a successful order can be captured.")
	}

	result := us.GatewayRepository.CaptureTransaction(ctx, order_dto.TransactionID, order_dto.Amount)
	if !result.IsSuccess() {
		us.Logger.With(result.LogFields()...).Error("capture failed")
		us.notifyActionFailure("CAPTURE", order_dto, result, us.Config.TelegramChannelId.Capture)
		return nil, errors.New(result.ErrorMessageFormatted(true))
	}

	return us.CapturedOrder(ctx, order_dto)
}

// RefundOrder returns money on a captured payment. A zero amount means
// the full order amount.
func (us *GatewayApplication) RefundOrder(ctx context.Context, orderID int64, amount int64) (res *entities.OrderEntity, err error) {
	order_dto, err := us.OrderRepository.FindByOrderID(ctx, orderID)
	if err != nil {
		return nil, errorsMap.ErrOrderNotFound
	}
	if order_dto.Status.IsRefunded() {
		return order_dto, nil
	}
	if amount <= 0 || amount > order_dto.Amount {
		amount = order_dto.Amount
	}

	result := us.GatewayRepository.RefundTransaction(ctx, order_dto.TransactionID, amount)
	if !result.IsSuccess() {
		us.Logger.With(result.LogFields()...).Error("refund failed")
		us.notifyActionFailure("REFUND", order_dto, result, us.Config.TelegramChannelId.Refund)
		return nil, errors.New(result.ErrorMessageFormatted(true))
	}

	if amount < order_dto.Amount {
		// Partial refunds leave the order as is; only the event fires.
		us.publishOrderEvent("order.payment.partially_refunded", order_dto)
		return order_dto, nil
	}
	return us.RefundedOrder(ctx, order_dto)
}

// CancelOrder voids an authorization that has not been captured yet.
func (us *GatewayApplication) CancelOrder(ctx context.Context, orderID int64) (res *entities.OrderEntity, err error) {
	order_dto, err := us.OrderRepository.FindByOrderID(ctx, orderID)
	if err != nil {
		return nil, errorsMap.ErrOrderNotFound
	}
	if order_dto.Status.IsCancelled() {
		return order_dto, nil
	}
	if order_dto.Status.IsCaptured() {
		return nil, errors.New("A captured order must be refunded, not cancelled.")
	}

	result := us.GatewayRepository.CancelTransaction(ctx, order_dto.TransactionID)
	if !result.IsSuccess() {
		us.Logger.With(result.LogFields()...).Error("cancel failed")
		us.notifyActionFailure("CANCEL", order_dto, result, us.Config.TelegramChannelId.Cancel)
		return nil, errors.New(result.ErrorMessageFormatted(true))
	}

	return us.CancelledOrder(ctx, order_dto)
}

func (us *GatewayApplication) notifyActionFailure(action string, order_dto *entities.OrderEntity, result *gateway.Response, channelId int64) {
	if us.Notifier == nil || channelId == 0 {
		return
	}
	message := telegram.SendOrderActionInfo(action, *order_dto, result.ErrorMessageFormatted(true))
	us.IPool.Submit(func() {
		us.Notifier.Notify(message, channelId)
	})
}

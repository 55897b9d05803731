package application

import (
	"context"

	"checkout-gateway/domain/constants"
	"checkout-gateway/domain/entities"
	"checkout-gateway/utils/helpers"
)

// ProcessingOrder moves a pending order into processing. Replays are a
// no-op so the same status_update can arrive from both the redirect and
// the webhook path.
func (us *GatewayApplication) ProcessingOrder(ctx context.Context, order_dto *entities.OrderEntity) (res *entities.OrderEntity, err error) {
	if order_dto.Status.IsProcessing() || order_dto.Status.IsTerminal() {
		return order_dto, nil
	}
	order_dto.Status.Set(entities.OrderProcessing)
	order_dto.UpdatedAt = helpers.GetCurrentTime()
	return us.OrderRepository.ReplaceByID(ctx, order_dto)
}

func (us *GatewayApplication) SuccessOrder(ctx context.Context, order_dto *entities.OrderEntity) (res *entities.OrderEntity, err error) {
	if order_dto.Status.IsSuccess() {
		return order_dto, nil
	}
	order_dto.Status.Set(entities.OrderSuccess)
	order_dto.UpdatedAt = helpers.GetCurrentTime()
	order_dto.SucceedAt = order_dto.UpdatedAt
	res, err = us.OrderRepository.ReplaceByID(ctx, order_dto)
	if err != nil {
		return nil, err
	}
	us.publishOrderEvent(constants.EventOrderPaid, res)
	return res, nil
}

func (us *GatewayApplication) FailedOrder(ctx context.Context, order_dto *entities.OrderEntity) (res *entities.OrderEntity, err error) {
	if order_dto.Status.IsFailed() {
		return order_dto, nil
	}
	order_dto.Status.Set(entities.OrderFailed)
	order_dto.UpdatedAt = helpers.GetCurrentTime()
	res, err = us.OrderRepository.ReplaceByID(ctx, order_dto)
	if err != nil {
		return nil, err
	}
	us.publishOrderEvent(constants.EventOrderFailed, res)
	return res, nil
}

func (us *GatewayApplication) CapturedOrder(ctx context.Context, order_dto *entities.OrderEntity) (res *entities.OrderEntity, err error) {
	if order_dto.Status.IsCaptured() {
		return order_dto, nil
	}
	order_dto.Status.Set(entities.OrderCaptured)
	order_dto.UpdatedAt = helpers.GetCurrentTime()
	res, err = us.OrderRepository.ReplaceByID(ctx, order_dto)
	if err != nil {
		return nil, err
	}
	us.publishOrderEvent(constants.EventOrderCaptured, res)
	return res, nil
}

func (us *GatewayApplication) CancelledOrder(ctx context.Context, order_dto *entities.OrderEntity) (res *entities.OrderEntity, err error) {
	if order_dto.Status.IsCancelled() {
		return order_dto, nil
	}
	order_dto.Status.Set(entities.OrderCancelled)
	order_dto.UpdatedAt = helpers.GetCurrentTime()
	res, err = us.OrderRepository.ReplaceByID(ctx, order_dto)
	if err != nil {
		return nil, err
	}
	us.publishOrderEvent(constants.EventOrderCancelled, res)
	return res, nil
}

func (us *GatewayApplication) RefundedOrder(ctx context.Context, order_dto *entities.OrderEntity) (res *entities.OrderEntity, err error) {
	if order_dto.Status.IsRefunded() {
		return order_dto, nil
	}
	order_dto.Status.Set(entities.OrderRefunded)
	order_dto.UpdatedAt = helpers.GetCurrentTime()
	res, err = us.OrderRepository.ReplaceByID(ctx, order_dto)
	if err != nil {
		return nil, err
	}
	us.publishOrderEvent(constants.EventOrderRefunded, res)
	return res, nil
}

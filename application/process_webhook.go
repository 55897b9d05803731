package application

import (
	"context"
	"errors"

	"checkout-gateway/domain/constants"
	"checkout-gateway/domain/entities"
	"checkout-gateway/domain/incoming"
	errorsMap "checkout-gateway/errors"
	"checkout-gateway/infrastructure/rabbitmq"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// HandleWebhook authenticates one webhook delivery and applies it. A
// returned error maps to a 400 at the edge, which makes the processor
// redeliver later.
func (us *GatewayApplication) HandleWebhook(ctx context.Context, body []byte, suppliedHash string) error {
	data, err := us.Verifier.WebhookData(body, suppliedHash)
	if err != nil {
		return err
	}
	return us.processWebhook(ctx, data, body, suppliedHash, false)
}

func (us *GatewayApplication) processWebhook(ctx context.Context, data *incoming.WebhookData, body []byte, suppliedHash string, deferred bool) error {
	switch data.WebhookType() {
	case constants.WebhookTypeStatusUpdate:
		return us.processStatusUpdate(ctx, data, body, suppliedHash, deferred)
	case constants.WebhookTypeCardNew:
		return us.processCardNew(ctx, data, body, suppliedHash, deferred)
	case constants.WebhookTypeCardUpdate:
		return us.processCardUpdate(ctx, data)
	}
	return nil
}

// scheduleWebhook parks the raw delivery for the queue consumer. The
// hash travels with the body so the consumer re-verifies from scratch.
func (us *GatewayApplication) scheduleWebhook(body []byte, suppliedHash string, attempt int) error {
	return us.Queue.PublishDeferred(rabbitmq.DeferredWebhook{
		Body:    body,
		Hash:    suppliedHash,
		Attempt: attempt + 1,
	}, constants.TopicDeferredWebhook)
}

func (us *GatewayApplication) processStatusUpdate(ctx context.Context, data *incoming.WebhookData, body []byte, suppliedHash string, deferred bool) error {
	link, ok := entities.ParseOrderLink(data.OrderID())
	if !ok || !link.IsForOrder() {
		return errorsMap.ErrOrderIdInvalid
	}

	order_dto, err := us.OrderRepository.FindByOrderID(ctx, link.ID)
	if err != nil {
		// The webhook can outrun checkout completion, so the row may
		// not exist yet. Give it one pass through the queue.
		if !deferred {
			us.Logger.With(
				zap.Int64("order_id", link.ID),
				zap.String("webhook_id", data.WebhookID()),
			).Info("status_update deferred, order not found")
			return us.scheduleWebhook(body, suppliedHash, 0)
		}
		return errorsMap.ErrOrderNotFound
	}
	if order_dto.OrderKey != link.Key {
		return errorsMap.ErrOrderKeyInvalid
	}

	switch data.TransactionStatus() {
	case constants.TransactionStatusSuccess:
		// A replay, or a late webhook after an operator action, changes
		// nothing.
		if order_dto.Status.IsTerminal() {
			return nil
		}
		res := us.GatewayRepository.GetTransaction(ctx, data.TransactionID(), "id", "status")
		if !res.IsSuccess() {
			us.Logger.With(res.LogFields()...).Error("transaction confirmation failed")
			return errors.New(res.ErrorMessageFormatted(false))
		}
		order_dto.TransactionID = data.TransactionID()
		_, err = us.SuccessOrder(ctx, order_dto)
		return err
	case constants.TransactionStatusDeclined:
		if order_dto.Status.IsTerminal() {
			return nil
		}
		order_dto.TransactionID = data.TransactionID()
		order_dto.FailReason = "Transaction declined by the processor."
		_, err = us.FailedOrder(ctx, order_dto)
		return err
	case constants.TransactionStatusPending:
		order_dto.TransactionID = data.TransactionID()
		_, err = us.ProcessingOrder(ctx, order_dto)
		return err
	default:
		us.Logger.With(
			zap.String("transaction_status", data.TransactionStatus()),
			zap.String("webhook_id", data.WebhookID()),
		).Warn("unrecognized transaction status, ignored")
		return nil
	}
}

func (us *GatewayApplication) processCardNew(ctx context.Context, data *incoming.WebhookData, body []byte, suppliedHash string, deferred bool) error {
	link, ok := entities.ParseOrderLink(data.OrderID())
	if !ok {
		return errorsMap.ErrOrderIdInvalid
	}

	if link.IsForPaymentMethod() {
		// Save-card flows race the tokenization redirect; the queue
		// gives the customer record time to land before we attach.
		if !deferred {
			return us.scheduleWebhook(body, suppliedHash, 0)
		}
		return us.saveCard(ctx, data.CardID(), "")
	}

	order_dto, err := us.OrderRepository.FindByOrderID(ctx, link.ID)
	if err != nil {
		if !deferred {
			return us.scheduleWebhook(body, suppliedHash, 0)
		}
		return errorsMap.ErrOrderNotFound
	}
	if order_dto.OrderKey != link.Key {
		return errorsMap.ErrOrderKeyInvalid
	}

	if err = us.saveCard(ctx, data.CardID(), order_dto.CustomerID); err != nil {
		return err
	}
	order_dto.CardID = data.CardID()
	_, err = us.OrderRepository.ReplaceByID(ctx, order_dto)
	return err
}

// saveCard pulls the authoritative card record from the processor and
// upserts it. The webhook body is only trusted for the card id.
func (us *GatewayApplication) saveCard(ctx context.Context, cardID string, customerID string) error {
	res := us.GatewayRepository.GetCard(ctx, cardID)
	if !res.IsSuccess() {
		us.Logger.With(res.LogFields()...).Error("card fetch failed")
		return errors.New(res.ErrorMessageFormatted(false))
	}

	detail, ok := res.Card()
	if !ok {
		return errorsMap.ErrGeneral
	}
	if customerID == "" {
		customerID = res.CustomerID()
	}

	_, err := us.CardRepository.Save(ctx, &entities.CardEntity{
		CardID:       cardID,
		CustomerID:   customerID,
		HolderName:   detail.HolderName,
		Scheme:       detail.Scheme,
		MaskedNumber: detail.Number,
		ExpiryMonth:  detail.ExpiryMonth,
		ExpiryYear:   detail.ExpiryYear,
	})
	return err
}

func (us *GatewayApplication) processCardUpdate(ctx context.Context, data *incoming.WebhookData) error {
	webhookBody, _ := data.RawPayload()["webhook_body"].(map[string]interface{})
	card, _ := webhookBody["card"].(map[string]interface{})
	if card == nil {
		return errorsMap.ErrGeneral
	}

	fields := bson.M{}
	for key, column := range map[string]string{
		"holder_name":  "holder_name",
		"scheme":       "scheme",
		"number":       "number",
		"expiry_month": "expiry_month",
		"expiry_year":  "expiry_year",
	} {
		if value, ok := card[key].(string); ok && value != "" {
			fields[column] = value
		}
	}

	_, err := us.CardRepository.UpdateMetadata(ctx, data.CardID(), fields)
	return err
}

package telegram

import (
	"fmt"

	"checkout-gateway/domain/entities"
)

// SendOrderActionInfo builds the ops-channel message for an operator action
// (capture/refund/cancel) against an order.
func SendOrderActionInfo(action string, order entities.OrderEntity, detail string) string {
	msg := fmt.Sprintf("[%s]\norder_id: %d\ntransaction_id: %s\nstatus: %s",
		action, order.OrderID, order.TransactionID, order.Status)
	if detail != "" {
		msg += "\ndetail: " + detail
	}
	return msg
}

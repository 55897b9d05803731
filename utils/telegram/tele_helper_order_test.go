package telegram

import (
	"testing"

	"checkout-gateway/domain/entities"

	"github.com/stretchr/testify/assert"
)

func TestSendOrderActionInfo(t *testing.T) {
	order := entities.OrderEntity{
		OrderID:       15,
		TransactionID: "tr_1",
		Status:        entities.OrderSuccess,
	}

	msg := SendOrderActionInfo("CAPTURE", order, "Amount exceeds authorization.")

	assert.Equal(t, "[CAPTURE]\norder_id: 15\ntransaction_id: tr_1\nstatus: ORDER_SUCCESS\ndetail: Amount exceeds authorization.", msg)

	msg = SendOrderActionInfo("CANCEL", order, "")
	assert.Equal(t, "[CANCEL]\norder_id: 15\ntransaction_id: tr_1\nstatus: ORDER_SUCCESS", msg)
}

package entities

import (
	"time"
)

// OrderEntity mirrors the host store's order record: the numeric order id
// plus the secret order key the composite link id is verified against.
type OrderEntity struct {
	OrderID          int64        `json:"order_id" bson:"order_id"`
	OrderKey         string       `json:"order_key" bson:"order_key"`
	CustomerID       string       `json:"customer_id" bson:"customer_id,omitempty"`
	TransactionID    string       `json:"transaction_id" bson:"transaction_id,omitempty"`
	PaymentLinkID    string       `json:"payment_link_id" bson:"payment_link_id,omitempty"`
	PaymentReference string       `json:"payment_reference" bson:"payment_reference,omitempty"`
	Amount           int64        `json:"amount" bson:"amount,omitempty"`
	Currency         string       `json:"currency" bson:"currency,omitempty"`
	Status           EntityStatus `json:"status" bson:"status,omitempty"`
	CardID           string       `json:"card_id" bson:"card_id,omitempty"`
	FailReason       string       `json:"fail_reason" bson:"fail_reason,omitempty"`
	InternalErr      string       `json:"internal_err" bson:"internal_err,omitempty"`
	CreatedAt        time.Time    `json:"created_at" bson:"created_at"`
	UpdatedAt        time.Time    `json:"updated_at" bson:"updated_at,omitempty"`
	SucceedAt        time.Time    `json:"succeed_at" bson:"succeed_at,omitempty"`
}

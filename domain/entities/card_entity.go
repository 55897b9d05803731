package entities

import "time"

// CardEntity is a stored payment method: the processor-side card token plus
// the display metadata webhooks keep current.
type CardEntity struct {
	CardID       string    `json:"card_id" bson:"card_id"`
	CustomerID   string    `json:"customer_id" bson:"customer_id"`
	HolderName   string    `json:"holder_name" bson:"holder_name,omitempty"`
	Scheme       string    `json:"scheme" bson:"scheme,omitempty"`
	MaskedNumber string    `json:"number" bson:"number,omitempty"`
	ExpiryMonth  string    `json:"expiry_month" bson:"expiry_month,omitempty"`
	ExpiryYear   string    `json:"expiry_year" bson:"expiry_year,omitempty"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at,omitempty"`
}

package constants

// Webhook types delivered by the processor.
const (
	WebhookTypeStatusUpdate = "status_update"
	WebhookTypeCardNew      = "card_new"
	WebhookTypeCardUpdate   = "card_update"
)

// Transaction statuses carried by webhooks and redirect callbacks.
const (
	TransactionStatusSuccess  = "success"
	TransactionStatusDeclined = "declined"
	TransactionStatusPending  = "pending"
)

// Order-key prefix marking a save-card flow rather than a checkout order.
const PaymentMethodKeyPrefix = "add_payment_method"

const (
	EnvironmentStaging    = "staging"
	EnvironmentProduction = "production"
)

package constants

// Queue topic carrying deferred webhook payloads. The consumer re-verifies
// the payload hash before acting on it.
const TopicDeferredWebhook = "webhook_deferred"

// Kafka event names published on terminal order transitions.
const (
	EventOrderPaid      = "order.payment.succeeded"
	EventOrderFailed    = "order.payment.failed"
	EventOrderCaptured  = "order.payment.captured"
	EventOrderCancelled = "order.payment.cancelled"
	EventOrderRefunded  = "order.payment.refunded"
)

package entities

type EntityStatus string

const (
	OrderPending    EntityStatus = "ORDER_PENDING"
	OrderProcessing EntityStatus = "ORDER_PROCESSING"
	OrderSuccess    EntityStatus = "ORDER_SUCCESS"
	OrderFailed     EntityStatus = "ORDER_FAILED"
	OrderCancelled  EntityStatus = "ORDER_CANCELLED"
	OrderCaptured   EntityStatus = "ORDER_CAPTURED"
	OrderRefunded   EntityStatus = "ORDER_REFUNDED"
)

func (o *EntityStatus) Set(status EntityStatus) EntityStatus {
	*o = status
	return *o
}

func (o EntityStatus) StatusString() string {
	return string(o)
}

func (o EntityStatus) IsPending() bool {
	return o == OrderPending
}

func (o EntityStatus) IsProcessing() bool {
	return o == OrderProcessing
}

func (o EntityStatus) IsSuccess() bool {
	return o == OrderSuccess
}

func (o EntityStatus) IsFailed() bool {
	return o == OrderFailed
}

func (o EntityStatus) IsCancelled() bool {
	return o == OrderCancelled
}

func (o EntityStatus) IsCaptured() bool {
	return o == OrderCaptured
}

func (o EntityStatus) IsRefunded() bool {
	return o == OrderRefunded
}

// IsTerminal reports whether no further webhook-driven transition applies.
func (o EntityStatus) IsTerminal() bool {
	return o.IsSuccess() || o.IsFailed() || o.IsCancelled() || o.IsCaptured() || o.IsRefunded()
}

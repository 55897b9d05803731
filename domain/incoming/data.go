package incoming

// Type distinguishes the two inbound shapes the processor delivers.
type Type string

const (
	TypeRedirect Type = "redirect"
	TypeWebhook  Type = "webhook"
)

// VerificationError covers hash mismatches, missing required fields,
// malformed JSON and unrecognized webhook types. Its message is the exact
// text logged and returned to the caller.
type VerificationError struct {
	msg string
}

func (e *VerificationError) Error() string {
	return e.msg
}

// Data is the verified payload both variants share. All fields except the
// card id are populated only after authentication succeeded; an
// unauthenticated payload never becomes a Data value.
type Data struct {
	dataType          Type
	transactionID     string
	transactionStatus string
	orderID           string
	timestamp         int64
	cardID            string
	raw               map[string]interface{}
}

func (d Data) Type() Type                { return d.dataType }
func (d Data) TransactionID() string     { return d.transactionID }
func (d Data) TransactionStatus() string { return d.transactionStatus }
func (d Data) OrderID() string           { return d.orderID }
func (d Data) Timestamp() int64          { return d.timestamp }
func (d Data) CardID() string            { return d.cardID }

// RawPayload returns the decoded original structure, retained for logging.
func (d Data) RawPayload() map[string]interface{} { return d.raw }

// RedirectData is the verified browser return-trip payload.
type RedirectData struct {
	Data
}

// WebhookData is the verified server-to-server notification payload.
type WebhookData struct {
	Data
	webhookType string
	webhookID   string
}

func (d WebhookData) WebhookType() string { return d.webhookType }
func (d WebhookData) WebhookID() string   { return d.webhookID }

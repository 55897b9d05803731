package incoming

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"checkout-gateway/domain/constants"
	"checkout-gateway/utils/helpers"

	"github.com/spf13/cast"
	"go.uber.org/zap"
)

var (
	redirectRequiredFields = []string{"status", "transaction_id", "order_id", "timestamp", "hash"}
	webhookRequiredFields  = []string{"webhook_type", "webhook_id", "timestamp", "webhook_body"}

	webhookBodyRequiredFields = map[string][]string{
		constants.WebhookTypeStatusUpdate: {"transaction_id", "status", "order_id"},
		constants.WebhookTypeCardNew:      {"transaction_id", "status", "order_id", "card_id"},
		constants.WebhookTypeCardUpdate:   {"card_id", "update_type", "update_detail", "card"},
	}

	cardRequiredFields = []string{"holder_name", "scheme", "number", "expiry_month", "expiry_year"}
)

// Verifier authenticates and parses the two inbound shapes before any
// business logic sees them. Hashes are checked over the original bytes;
// sanitization only runs after a payload authenticated.
type Verifier struct {
	secret string
	logger *zap.Logger
}

func NewVerifier(secret string, logger *zap.Logger) *Verifier {
	return &Verifier{
		secret: secret,
		logger: logger,
	}
}

// RedirectData validates the browser return-trip query data and returns the
// verified payload.
func (v *Verifier) RedirectData(query url.Values) (res *RedirectData, err error) {
	data := map[string]string{}
	for key := range query {
		data[key] = sanitizeString(query.Get(key))
	}

	var missing []string
	for _, field := range redirectRequiredFields {
		if data[field] == "" {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return nil, v.fail(fmt.Sprintf(`Missing required fields in redirect_data: "%s".`, helpers.JoinFields(missing)), data)
	}

	if !v.redirectHashValid(data) {
		return nil, v.fail("Redirect data hash is invalid.", data)
	}

	raw := map[string]interface{}{}
	for key, value := range data {
		raw[key] = value
	}

	res = &RedirectData{Data: Data{
		dataType:          TypeRedirect,
		transactionID:     data["transaction_id"],
		transactionStatus: data["status"],
		orderID:           data["order_id"],
		timestamp:         cast.ToInt64(data["timestamp"]),
		raw:               raw,
	}}

	v.logger.Debug("redirect data verified", zap.Any("redirect_data", raw))

	return res, nil
}

// WebhookData authenticates the raw webhook body against the supplied hash
// header and returns the verified payload.
//
// The card id of a card_new webhook is always read from the top-level
// webhook_body.card_id field; a nested card.card_id is never consulted.
func (v *Verifier) WebhookData(raw []byte, suppliedHash string) (res *WebhookData, err error) {
	if !v.webhookHashValid(raw, suppliedHash) {
		return nil, v.fail("Webhook hash is invalid.", string(raw))
	}

	payload := map[string]interface{}{}
	if err := json.Unmarshal(raw, &payload); err != nil || len(payload) == 0 {
		return nil, v.fail("Webhook data is invalid.", string(raw))
	}

	payload = sanitizeMap(payload)

	var missing []string
	for _, field := range webhookRequiredFields {
		if !hasField(payload, field) {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return nil, v.fail(fmt.Sprintf(`Missing required fields in webhook: "%s".`, helpers.JoinFields(missing)), payload)
	}

	webhookType := cast.ToString(payload["webhook_type"])
	webhookID := cast.ToString(payload["webhook_id"])

	bodyRequired, known := webhookBodyRequiredFields[webhookType]
	if !known {
		return nil, v.fail(fmt.Sprintf(`Wrong webhook type sent. Webhook type "%s". Webhook ID: %s.`, webhookType, webhookID), payload)
	}

	body, _ := payload["webhook_body"].(map[string]interface{})

	missing = nil
	for _, field := range bodyRequired {
		if !hasField(body, field) {
			missing = append(missing, field)
		}
	}
	if webhookType == constants.WebhookTypeCardUpdate && hasField(body, "card") {
		card, _ := body["card"].(map[string]interface{})
		for _, field := range cardRequiredFields {
			if !hasField(card, field) {
				missing = append(missing, field)
			}
		}
	}
	if len(missing) > 0 {
		return nil, v.fail(fmt.Sprintf(`Missing required fields in webhook_body: "%s".`, helpers.JoinFields(missing)), payload)
	}

	res = &WebhookData{
		Data: Data{
			dataType:  TypeWebhook,
			timestamp: cast.ToInt64(payload["timestamp"]),
			raw:       payload,
		},
		webhookType: webhookType,
		webhookID:   webhookID,
	}

	switch webhookType {
	case constants.WebhookTypeStatusUpdate:
		res.transactionID = cast.ToString(body["transaction_id"])
		res.transactionStatus = cast.ToString(body["status"])
		res.orderID = cast.ToString(body["order_id"])
	case constants.WebhookTypeCardNew:
		res.transactionID = cast.ToString(body["transaction_id"])
		res.transactionStatus = cast.ToString(body["status"])
		res.orderID = cast.ToString(body["order_id"])
		res.cardID = cast.ToString(body["card_id"])
	case constants.WebhookTypeCardUpdate:
		res.cardID = cast.ToString(body["card_id"])
	}

	v.logger.Debug("webhook data verified", zap.Any("webhook", payload))

	return res, nil
}

// fail logs the verification failure with the offending payload and returns
// the same message as the error.
func (v *Verifier) fail(message string, payload interface{}) error {
	v.logger.Error(message, zap.Any("payload", payload))
	return &VerificationError{msg: message}
}

func (v *Verifier) redirectHashValid(data map[string]string) bool {
	if v.secret == "" {
		return false
	}

	first := sha256Hex(data["status"] + data["transaction_id"] + data["order_id"] + data["timestamp"])
	expected := sha256Hex(first + v.secret)

	return subtle.ConstantTimeCompare([]byte(expected), []byte(strings.ToLower(data["hash"]))) == 1
}

func (v *Verifier) webhookHashValid(raw []byte, suppliedHash string) bool {
	if v.secret == "" || suppliedHash == "" {
		return false
	}

	// Whitespace is stripped before hashing so that formatting changes
	// introduced by intermediaries do not break verification.
	mac := hmac.New(sha256.New, []byte(v.secret))
	mac.Write(stripWhitespace(raw))
	expected := hex.EncodeToString(mac.Sum(nil))

	return subtle.ConstantTimeCompare([]byte(expected), []byte(strings.ToLower(suppliedHash))) == 1
}

func sha256Hex(input string) string {
	sum := sha256.Sum256([]byte(input))
	return hex.EncodeToString(sum[:])
}

// stripWhitespace removes ASCII whitespace only. Treating each byte as a
// rune would also strip 0x85 and 0xA0, which are continuation bytes of
// multi-byte UTF-8 sequences, and corrupt non-ASCII payloads before
// hashing.
func stripWhitespace(raw []byte) []byte {
	stripped := make([]byte, 0, len(raw))
	for _, b := range raw {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		}
		stripped = append(stripped, b)
	}
	return stripped
}

// hasField reports field presence, treating an empty string value as absent.
func hasField(payload map[string]interface{}, field string) bool {
	value, ok := payload[field]
	if !ok || value == nil {
		return false
	}
	if s, isString := value.(string); isString && s == "" {
		return false
	}
	return true
}

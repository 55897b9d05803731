package gateway

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"

	"github.com/spf13/cast"
	"go.uber.org/zap"
)

type Status string

const (
	StatusSuccess      Status = "success"
	StatusError        Status = "error"
	StatusErrorUnknown Status = "error_unknown"
)

// Kind selects the per-endpoint required-field validator and accessor set.
type Kind string

const (
	KindGeneric        Kind = ""
	KindToken          Kind = "token"
	KindTransaction    Kind = "transaction"
	KindCapture        Kind = "capture"
	KindRefund         Kind = "refund"
	KindCancel         Kind = "cancel"
	KindCustomer       Kind = "customer"
	KindCustomerCreate Kind = "customer_create"
	KindCard           Kind = "card"
	KindPaymentLink    Kind = "payment_link"
)

const msgInvalidBody = "Invalid body received."

type InvalidParameter struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// CardDetail is the nested card object of card responses.
type CardDetail struct {
	HolderName  string
	Scheme      string
	Number      string
	ExpiryMonth string
	ExpiryYear  string
}

// CallResult is one outbound call outcome: a response, a response carried by
// a failed exchange, or a bare transport error with no response at all.
type CallResult struct {
	HTTPResponse *http.Response
	Err          error
}

// Response is the uniform result of an outbound call. It is fully determined
// at construction time and never mutates afterward.
type Response struct {
	kind              Kind
	status            Status
	statusCode        int
	reasonPhrase      string
	errorMessage      string
	invalidParameters []InvalidParameter
	requestBody       map[string]interface{}
	responseBody      map[string]interface{}
}

// kindValidators maps a response kind to the check its payload must pass
// before the response counts as success. Unlisted kinds only get generic
// status extraction.
var kindValidators = map[Kind]func(body map[string]interface{}) string{
	KindToken:          validateToken,
	KindTransaction:    validateTransaction,
	KindCapture:        validateTransaction,
	KindRefund:         validateTransaction,
	KindCancel:         validateTransaction,
	KindCustomerCreate: validateCustomerCreate,
	KindCard:           validateCard,
	KindPaymentLink:    validatePaymentLink,
}

// Make wraps a call outcome into a Response. It never fails: transport and
// stream errors become error results.
func Make(result CallResult, requestBody map[string]interface{}, kind Kind) *Response {
	r := &Response{
		kind:        kind,
		requestBody: requestBody,
	}

	if result.HTTPResponse == nil {
		r.status = StatusErrorUnknown
		r.statusCode = 0
		r.reasonPhrase = ""
		if result.Err != nil {
			r.errorMessage = result.Err.Error()
		} else {
			r.errorMessage = "No response received."
		}
		return r
	}

	resp := result.HTTPResponse
	r.statusCode = resp.StatusCode
	r.reasonPhrase = http.StatusText(resp.StatusCode)

	defer resp.Body.Close()
	raw, readErr := ioutil.ReadAll(resp.Body)
	if readErr != nil {
		r.status = StatusErrorUnknown
		r.errorMessage = readErr.Error()
		return r
	}

	body := map[string]interface{}{}
	decodeErr := json.Unmarshal(raw, &body)
	decoded := decodeErr == nil && len(body) > 0
	if decoded {
		r.responseBody = body
	}

	if result.Err != nil || resp.StatusCode < 200 || resp.StatusCode >= 300 {
		r.status = StatusError
		r.errorMessage = r.reasonPhrase
		if decoded {
			if title := cast.ToString(body["title"]); title != "" {
				r.errorMessage = title
			} else if description := cast.ToString(body["description"]); description != "" {
				r.errorMessage = description
			}
			r.invalidParameters = extractInvalidParameters(body)
		}
		return r
	}

	if !decoded {
		r.status = StatusError
		r.errorMessage = msgInvalidBody
		return r
	}

	if validate, ok := kindValidators[kind]; ok {
		if msg := validate(body); msg != "" {
			r.status = StatusError
			r.errorMessage = msg
			return r
		}
	}

	r.status = StatusSuccess
	return r
}

func validateToken(body map[string]interface{}) string {
	if cast.ToString(body["token_type"]) == "" || cast.ToString(body["access_token"]) == "" {
		return "Access token creation failed."
	}
	return ""
}

func validateTransaction(body map[string]interface{}) string {
	if cast.ToString(body["transaction_id"]) == "" || cast.ToString(body["status"]) == "" {
		return "Required transaction data not found."
	}
	return ""
}

func validateCustomerCreate(body map[string]interface{}) string {
	if cast.ToString(body["customer_id"]) == "" {
		return "Required customer data not found."
	}
	return ""
}

func validateCard(body map[string]interface{}) string {
	if cast.ToString(body["card_id"]) == "" || cast.ToString(body["customer_id"]) == "" {
		return "Required card data not found."
	}
	card, ok := body["card"].(map[string]interface{})
	if !ok {
		return "Required card data not found."
	}
	for _, field := range []string{"holder_name", "scheme", "number", "expiry_month", "expiry_year"} {
		if cast.ToString(card[field]) == "" {
			return fmt.Sprintf(`Required card field "%s" not found.`, field)
		}
	}
	return ""
}

func validatePaymentLink(body map[string]interface{}) string {
	if cast.ToString(body["link_id"]) == "" {
		return "Payment link ID not found in response."
	}
	return ""
}

func extractInvalidParameters(body map[string]interface{}) (params []InvalidParameter) {
	items, ok := body["invalid_parameters"].([]interface{})
	if !ok {
		return nil
	}
	for _, item := range items {
		entry, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		params = append(params, InvalidParameter{
			Field:  cast.ToString(entry["field"]),
			Reason: cast.ToString(entry["reason"]),
		})
	}
	return params
}

func (r *Response) Status() Status                        { return r.status }
func (r *Response) StatusCode() int                       { return r.statusCode }
func (r *Response) ReasonPhrase() string                  { return r.reasonPhrase }
func (r *Response) ErrorMessage() string                  { return r.errorMessage }
func (r *Response) InvalidParameters() []InvalidParameter { return r.invalidParameters }

func (r *Response) IsSuccess() bool {
	return r.status == StatusSuccess
}

// ErrorMessageFormatted builds the human-readable error block, optionally
// appending one "field - reason" line per invalid parameter. Empty on
// success.
func (r *Response) ErrorMessageFormatted(includeInvalidParameters bool) string {
	if r.IsSuccess() {
		return ""
	}

	message := r.errorMessage
	if includeInvalidParameters {
		for _, param := range r.invalidParameters {
			message += "\n" + param.Field + " - " + param.Reason
		}
	}
	return message
}

// LogFields renders the response for structured logging. Token responses
// expose only status, code and reason: their bodies carry credentials.
func (r *Response) LogFields() []zap.Field {
	fields := []zap.Field{
		zap.String("status", string(r.status)),
		zap.Int("response_code", r.statusCode),
		zap.String("reason_phrase", r.reasonPhrase),
	}
	if r.kind != KindToken {
		fields = append(fields,
			zap.Any("request_body", r.requestBody),
			zap.Any("response_body", r.responseBody),
		)
	}
	if r.status != StatusSuccess {
		fields = append(fields, zap.String("error_message", r.errorMessage))
	}
	return fields
}

func (r *Response) bodyString(field string) string {
	if !r.IsSuccess() || r.responseBody == nil {
		return ""
	}
	return cast.ToString(r.responseBody[field])
}

// AuthorizationToken formats the bearer token as "<type> <token>". Empty
// unless the call succeeded.
func (r *Response) AuthorizationToken() string {
	if r.bodyString("access_token") == "" {
		return ""
	}
	return r.bodyString("token_type") + " " + r.bodyString("access_token")
}

func (r *Response) TransactionID() string {
	return r.bodyString("transaction_id")
}

func (r *Response) TransactionStatus() string {
	return r.bodyString("status")
}

func (r *Response) IsCaptured() bool {
	return r.bodyString("status") == "captured"
}

func (r *Response) CustomerID() string {
	return r.bodyString("customer_id")
}

func (r *Response) CardID() string {
	return r.bodyString("card_id")
}

func (r *Response) Card() (detail CardDetail, ok bool) {
	if !r.IsSuccess() || r.responseBody == nil {
		return detail, false
	}
	card, isMap := r.responseBody["card"].(map[string]interface{})
	if !isMap {
		return detail, false
	}
	return CardDetail{
		HolderName:  cast.ToString(card["holder_name"]),
		Scheme:      cast.ToString(card["scheme"]),
		Number:      cast.ToString(card["number"]),
		ExpiryMonth: cast.ToString(card["expiry_month"]),
		ExpiryYear:  cast.ToString(card["expiry_year"]),
	}, true
}

func (r *Response) LinkID() string {
	return r.bodyString("link_id")
}

func (r *Response) PaymentURL() string {
	return r.bodyString("url")
}

package gateway

import (
	"errors"
	"io/ioutil"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func httpOutcome(statusCode int, body string) CallResult {
	return CallResult{
		HTTPResponse: &http.Response{
			StatusCode: statusCode,
			Body:       ioutil.NopCloser(strings.NewReader(body)),
		},
	}
}

func TestMake_StatusMapping(t *testing.T) {
	tests := []struct {
		name        string
		result      CallResult
		kind        Kind
		wantStatus  Status
		wantCode    int
		wantMessage string
	}{
		{
			name:       "well formed 200",
			result:     httpOutcome(200, `{"transaction_id":"tr_1","status":"captured"}`),
			kind:       KindTransaction,
			wantStatus: StatusSuccess,
			wantCode:   200,
		},
		{
			name:        "4xx with error body",
			result:      httpOutcome(422, `{"title":"Validation failed."}`),
			kind:        KindTransaction,
			wantStatus:  StatusError,
			wantCode:    422,
			wantMessage: "Validation failed.",
		},
		{
			name:        "4xx falls back to description",
			result:      httpOutcome(401, `{"description":"Invalid token."}`),
			kind:        KindTransaction,
			wantStatus:  StatusError,
			wantCode:    401,
			wantMessage: "Invalid token.",
		},
		{
			name:        "4xx without a decodable body uses the reason phrase",
			result:      httpOutcome(403, `nonsense`),
			kind:        KindTransaction,
			wantStatus:  StatusError,
			wantCode:    403,
			wantMessage: "Forbidden",
		},
		{
			name:        "transport failure with no response",
			result:      CallResult{Err: errors.New("dial tcp: connection refused")},
			kind:        KindTransaction,
			wantStatus:  StatusErrorUnknown,
			wantCode:    0,
			wantMessage: "dial tcp: connection refused",
		},
		{
			name:        "nil response without error",
			result:      CallResult{},
			kind:        KindTransaction,
			wantStatus:  StatusErrorUnknown,
			wantCode:    0,
			wantMessage: "No response received.",
		},
		{
			name:        "undecodable 2xx body",
			result:      httpOutcome(200, `not json`),
			kind:        KindTransaction,
			wantStatus:  StatusError,
			wantCode:    200,
			wantMessage: "Invalid body received.",
		},
		{
			name:        "2xx missing transaction fields",
			result:      httpOutcome(200, `{"unrelated":true}`),
			kind:        KindTransaction,
			wantStatus:  StatusError,
			wantCode:    200,
			wantMessage: "Required transaction data not found.",
		},
		{
			name:        "2xx missing token fields",
			result:      httpOutcome(200, `{"access_token":"abc"}`),
			kind:        KindToken,
			wantStatus:  StatusError,
			wantCode:    200,
			wantMessage: "Access token creation failed.",
		},
		{
			name:        "2xx missing link id",
			result:      httpOutcome(200, `{"url":"https://pay.test/x"}`),
			kind:        KindPaymentLink,
			wantStatus:  StatusError,
			wantCode:    200,
			wantMessage: "Payment link ID not found in response.",
		},
		{
			name:        "2xx missing customer id",
			result:      httpOutcome(200, `{"unrelated":true}`),
			kind:        KindCustomerCreate,
			wantStatus:  StatusError,
			wantCode:    200,
			wantMessage: "Required customer data not found.",
		},
		{
			name:        "2xx card with incomplete nested card",
			result:      httpOutcome(200, `{"card_id":"c1","customer_id":"cus_1","card":{"holder_name":"A","scheme":"visa","number":"****1","expiry_month":"01"}}`),
			kind:        KindCard,
			wantStatus:  StatusError,
			wantCode:    200,
			wantMessage: `Required card field "expiry_year" not found.`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Make(tt.result, nil, tt.kind)

			assert.Equal(t, tt.wantStatus, res.Status())
			assert.Equal(t, tt.wantCode, res.StatusCode())
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, res.ErrorMessage())
			}
		})
	}
}

func TestResponse_Accessors(t *testing.T) {
	res := Make(httpOutcome(200, `{"transaction_id":"tr_1","status":"captured"}`), nil, KindTransaction)

	assert.True(t, res.IsSuccess())
	assert.Equal(t, "tr_1", res.TransactionID())
	assert.Equal(t, "captured", res.TransactionStatus())
	assert.True(t, res.IsCaptured())
	assert.Equal(t, "", res.ErrorMessageFormatted(true))
}

func TestResponse_AccessorsEmptyOnError(t *testing.T) {
	res := Make(httpOutcome(422, `{"title":"nope"}`), nil, KindTransaction)

	assert.Equal(t, "", res.TransactionID())
	assert.False(t, res.IsCaptured())
}

func TestResponse_AuthorizationToken(t *testing.T) {
	res := Make(httpOutcome(200, `{"token_type":"Bearer","access_token":"tok_123"}`), nil, KindToken)

	assert.Equal(t, "Bearer tok_123", res.AuthorizationToken())
}

func TestResponse_Card(t *testing.T) {
	res := Make(httpOutcome(200, `{"card_id":"c1","customer_id":"cus_1","card":{"holder_name":"A Holder","scheme":"visa","number":"****4242","expiry_month":"09","expiry_year":"2030"}}`), nil, KindCard)

	assert.Equal(t, "c1", res.CardID())
	assert.Equal(t, "cus_1", res.CustomerID())
	card, ok := res.Card()
	assert.True(t, ok)
	assert.Equal(t, "A Holder", card.HolderName)
	assert.Equal(t, "****4242", card.Number)
}

func TestResponse_ErrorMessageFormatted(t *testing.T) {
	res := Make(httpOutcome(422, `{"title":"Validation failed.","invalid_parameters":[{"field":"amount","reason":"must be positive"},{"field":"currency","reason":"unsupported"}]}`), nil, KindPaymentLink)

	assert.Equal(t, "Validation failed.", res.ErrorMessageFormatted(false))
	assert.Equal(t, "Validation failed.\namount - must be positive\ncurrency - unsupported", res.ErrorMessageFormatted(true))
}

func TestResponse_LogFieldsTokenSuppressesBodies(t *testing.T) {
	tokenRes := Make(httpOutcome(200, `{"token_type":"Bearer","access_token":"tok_123"}`), map[string]interface{}{"secret": true}, KindToken)
	plainRes := Make(httpOutcome(200, `{"transaction_id":"tr_1","status":"captured"}`), map[string]interface{}{"amount": 1}, KindTransaction)

	tokenKeys := map[string]bool{}
	for _, field := range tokenRes.LogFields() {
		tokenKeys[field.Key] = true
	}
	plainKeys := map[string]bool{}
	for _, field := range plainRes.LogFields() {
		plainKeys[field.Key] = true
	}

	assert.False(t, tokenKeys["request_body"])
	assert.False(t, tokenKeys["response_body"])
	assert.True(t, tokenKeys["status"])
	assert.True(t, plainKeys["request_body"])
	assert.True(t, plainKeys["response_body"])
	assert.False(t, plainKeys["error_message"])
}

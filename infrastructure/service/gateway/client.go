package gateway

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"checkout-gateway/errors"
	"checkout-gateway/utils/configs"
	"checkout-gateway/utils/helpers"

	"go.uber.org/zap"
)

const timeout = time.Second * 30

// tokenTTL keeps cached tokens comfortably inside the processor's one-hour
// expiry window.
const tokenTTL = time.Minute * 50

// TokenStore caches bearer tokens between calls. A nil store means every
// authorized call performs its own login.
type TokenStore interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, token string, ttl time.Duration) error
}

type repoImpl struct {
	conf   configs.Gateway
	tokens TokenStore
	client *http.Client
	logger *zap.Logger
}

func NewRepoImpl(conf configs.Gateway, tokens TokenStore, logger *zap.Logger) *repoImpl {
	return &repoImpl{
		conf:   conf,
		tokens: tokens,
		client: &http.Client{Timeout: timeout},
		logger: logger,
	}
}

// GetAccessToken returns the formatted "<type> <token>" authorization value,
// or "" when no token can be obtained. Failures are logged, never raised.
func (r *repoImpl) GetAccessToken(ctx context.Context) string {
	if r.tokens != nil {
		if token, err := r.tokens.Get(ctx); err == nil && token != "" {
			return token
		}
	}

	res := r.call(requestParams{
		Ctx:      ctx,
		Method:   http.MethodPost,
		Segments: []string{"login"},
		Headers:  map[string]string{"Authorization": basicAuth(r.conf.AppId, r.conf.AppKey)},
		Kind:     KindToken,
	})
	if !res.IsSuccess() {
		r.logger.With(res.LogFields()...).Error("access_token_request_failed")
		return ""
	}

	token := res.AuthorizationToken()
	if r.tokens != nil {
		if err := r.tokens.Set(ctx, token, tokenTTL); err != nil {
			r.logger.Warn("access_token_cache_write_failed", zap.Error(err))
		}
	}

	return token
}

// GetAuthorizationHeaders is the only client step callers handle an error
// from; every endpoint operation converts failures into error Responses.
func (r *repoImpl) GetAuthorizationHeaders(ctx context.Context, addCompanyId bool) (headers map[string]string, err error) {
	token := r.GetAccessToken(ctx)
	if token == "" {
		return nil, errors.ErrAuthorization
	}

	headers = map[string]string{"Authorization": token}
	if addCompanyId && r.conf.CompanyId != "" {
		headers["Company-Id"] = r.conf.CompanyId
	}

	return headers, nil
}

func (r *repoImpl) GetPaymentLink(ctx context.Context, linkId string, fields ...string) *Response {
	return r.authorized(ctx, requestParams{
		Method:   http.MethodGet,
		Segments: []string{"payment-links", linkId},
		Filter:   fields,
		Kind:     KindPaymentLink,
	})
}

func (r *repoImpl) CreatePaymentLink(ctx context.Context, body map[string]interface{}) *Response {
	return r.authorized(ctx, requestParams{
		Method:   http.MethodPost,
		Segments: []string{"payment-links"},
		Body:     body,
		Kind:     KindPaymentLink,
	})
}

func (r *repoImpl) GetTransaction(ctx context.Context, transactionId string, fields ...string) *Response {
	return r.authorized(ctx, requestParams{
		Method:   http.MethodGet,
		Segments: []string{"transactions", transactionId},
		Filter:   fields,
		Kind:     KindTransaction,
	})
}

func (r *repoImpl) CaptureTransaction(ctx context.Context, transactionId string, amount int64) *Response {
	return r.authorized(ctx, requestParams{
		Method:   http.MethodPost,
		Segments: []string{"transactions", transactionId, "capture"},
		Body:     map[string]interface{}{"amount": amount},
		Kind:     KindCapture,
	})
}

// RefundTransaction posts to the reversal endpoint with a refund-shaped
// body; CancelTransaction hits the same path and is distinguished only by
// body and response kind.
func (r *repoImpl) RefundTransaction(ctx context.Context, transactionId string, amount int64) *Response {
	return r.authorized(ctx, requestParams{
		Method:   http.MethodPost,
		Segments: []string{"transactions", transactionId, "reversal"},
		Body:     map[string]interface{}{"amount": amount},
		Kind:     KindRefund,
	})
}

func (r *repoImpl) CancelTransaction(ctx context.Context, transactionId string) *Response {
	return r.authorized(ctx, requestParams{
		Method:   http.MethodPost,
		Segments: []string{"transactions", transactionId, "reversal"},
		Body:     map[string]interface{}{},
		Kind:     KindCancel,
	})
}

func (r *repoImpl) GetCustomer(ctx context.Context, customerId string, fields ...string) *Response {
	return r.authorized(ctx, requestParams{
		Method:   http.MethodGet,
		Segments: []string{"customers", customerId},
		Filter:   fields,
		Kind:     KindCustomer,
	})
}

func (r *repoImpl) CreateCustomer(ctx context.Context, body map[string]interface{}) *Response {
	return r.authorized(ctx, requestParams{
		Method:   http.MethodPost,
		Segments: []string{"customers"},
		Body:     body,
		Kind:     KindCustomerCreate,
	})
}

func (r *repoImpl) UpdateCustomer(ctx context.Context, customerId string, body map[string]interface{}) *Response {
	return r.authorized(ctx, requestParams{
		Method:   http.MethodPut,
		Segments: []string{"customers", customerId},
		Body:     body,
		Kind:     KindCustomer,
	})
}

func (r *repoImpl) GetCard(ctx context.Context, cardId string, fields ...string) *Response {
	return r.authorized(ctx, requestParams{
		Method:   http.MethodGet,
		Segments: []string{"cards", cardId},
		Filter:   fields,
		Kind:     KindCard,
	})
}

func (r *repoImpl) UpdateCard(ctx context.Context, cardId string, body map[string]interface{}) *Response {
	return r.authorized(ctx, requestParams{
		Method:   http.MethodPut,
		Segments: []string{"cards", cardId},
		Body:     body,
		Kind:     KindCard,
	})
}

// ValidateCredentials probes connectivity. A scoped company account is
// checked with a zero-amount, non-capturing payment link; a bare API key
// only gets a token request, since payment links need the company scope.
func (r *repoImpl) ValidateCredentials(ctx context.Context) bool {
	if r.conf.CompanyId != "" {
		if !helpers.IsValidCompanyId(r.conf.CompanyId) {
			r.logger.Error("company id is not a UUID v4", zap.String("company_id", r.conf.CompanyId))
			return false
		}
		res := r.CreatePaymentLink(ctx, map[string]interface{}{
			"amount":  0,
			"capture": false,
		})
		return res.IsSuccess()
	}

	return r.GetAccessToken(ctx) != ""
}

type requestParams struct {
	Ctx      context.Context
	Method   string
	Segments []string
	Filter   []string
	Headers  map[string]string
	Body     map[string]interface{}
	Kind     Kind
}

// authorized attaches the bearer token and company id, converting an
// authorization failure into an error Response.
func (r *repoImpl) authorized(ctx context.Context, request requestParams) *Response {
	headers, err := r.GetAuthorizationHeaders(ctx, true)
	if err != nil {
		res := Make(CallResult{Err: err}, request.Body, request.Kind)
		r.logger.With(res.LogFields()...).Error("gateway_request_unauthorized")
		return res
	}

	request.Ctx = ctx
	request.Headers = headers
	return r.call(request)
}

func (r *repoImpl) call(request requestParams) *Response {
	uri := strings.TrimRight(r.conf.BaseURL, "/")
	for _, segment := range request.Segments {
		uri += "/" + segment
	}
	if len(request.Filter) > 0 {
		query := url.Values{"filter": {strings.Join(request.Filter, ",")}}
		uri += "?" + query.Encode()
	}

	var bodyReader *bytes.Reader
	if request.Body != nil {
		jsonrequest, err := json.Marshal(request.Body)
		if err != nil {
			return Make(CallResult{Err: err}, request.Body, request.Kind)
		}
		bodyReader = bytes.NewReader(jsonrequest)
	} else {
		bodyReader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(request.Ctx, request.Method, uri, bodyReader)
	if err != nil {
		return Make(CallResult{Err: err}, request.Body, request.Kind)
	}

	req.Header.Add("Content-Type", `application/json`)
	for key, value := range request.Headers {
		req.Header.Add(key, value)
	}

	resp, err := r.client.Do(req)

	res := Make(CallResult{HTTPResponse: resp, Err: err}, request.Body, request.Kind)

	r.logger.With(append([]zap.Field{
		zap.String("uri", fmt.Sprintf("%v %v", request.Method, uri)),
	}, res.LogFields()...)...).Info("gateway_request")

	return res
}

func basicAuth(appId, appKey string) string {
	auth := appId + ":" + appKey
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(auth))
}

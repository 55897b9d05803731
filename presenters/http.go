package presenters

import (
	"context"
	"encoding/json"
	"io/ioutil"
	"net/http"
	"net/url"

	"checkout-gateway/domain/entities"

	"github.com/go-chi/chi/v5"
	"github.com/spf13/cast"
)

// App is the application surface the HTTP layer needs.
type App interface {
	HandleWebhook(ctx context.Context, body []byte, suppliedHash string) error
	HandleOrderRedirect(ctx context.Context, query url.Values) string
	HandlePaymentMethodRedirect(ctx context.Context, query url.Values) string
	CaptureOrder(ctx context.Context, orderID int64) (*entities.OrderEntity, error)
	RefundOrder(ctx context.Context, orderID int64, amount int64) (*entities.OrderEntity, error)
	CancelOrder(ctx context.Context, orderID int64) (*entities.OrderEntity, error)
	CreateCheckoutLinkByID(ctx context.Context, orderID int64) (string, error)
	CreatePaymentMethodLink(ctx context.Context, customerRef int64, customerID string) (string, error)
	ValidateCredentials(ctx context.Context) bool
}

type API struct {
	App App
}

func NewAPI(app App) *API {
	return &API{App: app}
}

func (a *API) AppendRoutes(r chi.Router) {
	r.Post("/webhook", a.webhook)
	r.Post("/redirect/order", a.orderRedirect)
	r.Post("/redirect/payment-method", a.paymentMethodRedirect)

	r.Route("/orders/{orderID}", func(r chi.Router) {
		r.Post("/capture", a.capture)
		r.Post("/refund", a.refund)
		r.Post("/cancel", a.cancel)
		r.Post("/payment-link", a.paymentLink)
	})

	r.Post("/payment-methods/link", a.paymentMethodLink)
	r.Get("/credentials/validate", a.validateCredentials)
}

type webhookResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (a *API) webhook(w http.ResponseWriter, r *http.Request) {
	body, err := ioutil.ReadAll(r.Body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, webhookResponse{Success: false, Message: err.Error()})
		return
	}

	if err = a.App.HandleWebhook(r.Context(), body, r.Header.Get("Hash")); err != nil {
		writeJSON(w, http.StatusBadRequest, webhookResponse{Success: false, Message: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, webhookResponse{Success: true, Message: "Webhook processed successfully."})
}

// orderRedirect never errors toward the browser; the worst outcome is
// a redirect back to checkout.
func (a *API) orderRedirect(w http.ResponseWriter, r *http.Request) {
	_ = r.ParseForm()
	http.Redirect(w, r, a.App.HandleOrderRedirect(r.Context(), r.Form), http.StatusSeeOther)
}

func (a *API) paymentMethodRedirect(w http.ResponseWriter, r *http.Request) {
	_ = r.ParseForm()
	http.Redirect(w, r, a.App.HandlePaymentMethodRedirect(r.Context(), r.Form), http.StatusSeeOther)
}

func (a *API) capture(w http.ResponseWriter, r *http.Request) {
	order, err := a.App.CaptureOrder(r.Context(), cast.ToInt64(chi.URLParam(r, "orderID")))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (a *API) refund(w http.ResponseWriter, r *http.Request) {
	request := struct {
		Amount int64 `json:"amount"`
	}{}
	// Body is optional; an empty body means a full refund.
	_ = json.NewDecoder(r.Body).Decode(&request)

	order, err := a.App.RefundOrder(r.Context(), cast.ToInt64(chi.URLParam(r, "orderID")), request.Amount)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (a *API) cancel(w http.ResponseWriter, r *http.Request) {
	order, err := a.App.CancelOrder(r.Context(), cast.ToInt64(chi.URLParam(r, "orderID")))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (a *API) paymentLink(w http.ResponseWriter, r *http.Request) {
	paymentURL, err := a.App.CreateCheckoutLinkByID(r.Context(), cast.ToInt64(chi.URLParam(r, "orderID")))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"payment_url": paymentURL})
}

func (a *API) paymentMethodLink(w http.ResponseWriter, r *http.Request) {
	request := struct {
		CustomerRef int64  `json:"customer_ref"`
		CustomerID  string `json:"customer_id"`
	}{}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	paymentURL, err := a.App.CreatePaymentMethodLink(r.Context(), request.CustomerRef, request.CustomerID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"payment_url": paymentURL})
}

func (a *API) validateCredentials(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{"valid": a.App.ValidateCredentials(r.Context())})
}

func writeJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(payload)
}

package entities

import (
	"strconv"
	"strings"

	"checkout-gateway/domain/constants"
)

// OrderLink is the composite id a payment link is created with:
// "<numeric_id>-<verification_key>". For checkout flows the key is the host
// order's secret key, for save-card flows it is a generated token prefixed
// "add_payment_method_".
type OrderLink struct {
	ID  int64
	Key string
}

// ParseOrderLink splits on the first hyphen only, so verification keys that
// themselves contain hyphens stay intact. An id without a hyphen, with a
// non-numeric first segment or with an empty key is invalid.
func ParseOrderLink(raw string) (*OrderLink, bool) {
	parts := strings.SplitN(raw, "-", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return nil, false
	}

	id, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return nil, false
	}

	return &OrderLink{ID: id, Key: parts[1]}, true
}

func (l OrderLink) IsForPaymentMethod() bool {
	return strings.HasPrefix(l.Key, constants.PaymentMethodKeyPrefix)
}

func (l OrderLink) IsForOrder() bool {
	return !l.IsForPaymentMethod()
}

package errors

import (
	"errors"
)

var (
	// ErrOrderIdInvalid will throw if the composite order id does not parse
	ErrOrderIdInvalid  = errors.New("Order ID in incoming data is invalid.")
	ErrOrderKeyInvalid = errors.New("Order key in incoming data is invalid.")
	ErrOrderNotFound   = errors.New("Order not found.")
	ErrAuthorization   = errors.New("Unable to retrieve the access token.")
	ErrGeneral         = errors.New("Something went wrong. Please try again later.")
)

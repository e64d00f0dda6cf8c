package paypal

import "errors"

var (
	// ErrUnsupportedCurrency is returned when a currency code is not on
	// PayPal's supported list.
	ErrUnsupportedCurrency = errors.New("currency is not supported by paypal")

	// ErrInvalidProvider is returned when no usable transport is supplied.
	ErrInvalidProvider = errors.New("invalid api credentials provided")

	// ErrConfiguration is returned when credentials are missing the
	// sub-map for the selected mode.
	ErrConfiguration = errors.New("invalid paypal configuration")
)

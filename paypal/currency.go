package paypal

import "fmt"

// supportedCurrencies is the fixed set of ISO 4217 codes PayPal accepts
// for NVP payments. Matching is exact and case-sensitive.
var supportedCurrencies = map[string]struct{}{
	"AUD": {}, "BRL": {}, "CAD": {}, "CZK": {}, "DKK": {},
	"EUR": {}, "HKD": {}, "HUF": {}, "ILS": {}, "INR": {},
	"JPY": {}, "MYR": {}, "MXN": {}, "NOK": {}, "NZD": {},
	"PHP": {}, "PLN": {}, "GBP": {}, "RUB": {}, "SGD": {},
	"SEK": {}, "CHF": {}, "TWD": {}, "THB": {}, "USD": {},
}

func validateCurrency(code string) error {
	if _, ok := supportedCurrencies[code]; !ok {
		return fmt.Errorf("%q: %w", code, ErrUnsupportedCurrency)
	}
	return nil
}

package paypal

// Mode selects the PayPal environment.
const (
	ModeSandbox = "sandbox"
	ModeLive    = "live"
)

// Credentials is the raw credential/options structure supplied by the
// caller at setup time. Exactly one environment sub-map is activated per
// SetAPICredentials call, chosen by Mode.
type Credentials struct {
	// Mode is "sandbox" or "live". Anything else, including empty,
	// falls back to "live".
	Mode string

	// Sandbox and Live hold the per-environment API fields (username,
	// password, signature, app_id, ...). Every entry of the selected
	// sub-map is copied verbatim into the client configuration.
	Sandbox map[string]string
	Live    map[string]string

	// Currency must be on the supported list; empty means USD.
	Currency string

	// PaymentAction, Locale and ValidateSSL are stored as given, without
	// validation, for compatibility with existing integrations.
	PaymentAction string
	Locale        string
	ValidateSSL   bool
}

// Config is the flat configuration the client operates on. It is rebuilt
// from scratch on every SetAPICredentials call.
type Config map[string]string

// Well-known configuration keys.
const (
	ConfigMode          = "mode"
	ConfigCurrency      = "currency"
	ConfigPaymentAction = "payment_action"
	ConfigLocale        = "locale"
	ConfigValidateSSL   = "validate_ssl"
	ConfigAPIURL        = "api_url"
	ConfigGatewayURL    = "gateway_url"
	ConfigIPNEndpoint   = "ipn_endpoint"
)

// endpointsFor returns the NVP API, checkout gateway and IPN verification
// URLs for the given mode.
func endpointsFor(mode string) map[string]string {
	if mode == ModeSandbox {
		return map[string]string{
			ConfigAPIURL:      "https://api-3t.sandbox.paypal.com/nvp",
			ConfigGatewayURL:  "https://www.sandbox.paypal.com/cgi-bin/webscr",
			ConfigIPNEndpoint: "https://ipnpb.sandbox.paypal.com/cgi-bin/webscr",
		}
	}
	return map[string]string{
		ConfigAPIURL:      "https://api-3t.paypal.com/nvp",
		ConfigGatewayURL:  "https://www.paypal.com/cgi-bin/webscr",
		ConfigIPNEndpoint: "https://ipnpb.paypal.com/cgi-bin/webscr",
	}
}

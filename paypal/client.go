package paypal

import (
	"context"
	"fmt"
	"strconv"

	"github.com/alovak/paypal-gateway/internal/nvp"
)

// methodVerifyIPN is the request kind that passes responses through
// unparsed: PayPal answers IPN verification with a bare verdict string,
// not NVP text.
const methodVerifyIPN = "verifyipn"

// Client validates PayPal credentials, selects the sandbox or live
// environment, and stages outbound request payloads before handing them
// to its Transport.
//
// A Client is not safe for concurrent use; configuration, options and
// the staged payload are mutated without locking.
type Client struct {
	transport Transport
	config    Config
	currency  string
	options   map[string]string
	payload   *RequestPayload
}

// NewClient returns a client sending requests through the given
// transport. A nil transport is allowed for configuration-only use;
// SetAPIProvider installs one later.
func NewClient(transport Transport) *Client {
	return &Client{
		transport: transport,
	}
}

// SetAPICredentials validates creds and rebuilds the client
// configuration from scratch, fully replacing any prior state. It
// selects the environment (unknown or empty mode means live), copies the
// selected sub-map, stores the permissive top-level fields, validates
// the currency and pushes the resulting defaults to the transport.
func (c *Client) SetAPICredentials(creds Credentials) error {
	mode := creds.Mode
	if mode != ModeSandbox && mode != ModeLive {
		mode = ModeLive
	}

	env := creds.Live
	if mode == ModeSandbox {
		env = creds.Sandbox
	}
	if env == nil {
		return fmt.Errorf("missing %s credentials: %w", mode, ErrConfiguration)
	}

	cfg := Config{}
	for k, v := range env {
		cfg[k] = v
	}
	cfg[ConfigMode] = mode
	cfg[ConfigPaymentAction] = creds.PaymentAction
	cfg[ConfigLocale] = creds.Locale
	cfg[ConfigValidateSSL] = strconv.FormatBool(creds.ValidateSSL)
	for k, v := range endpointsFor(mode) {
		cfg[k] = v
	}
	c.config = cfg

	currency := creds.Currency
	if currency == "" {
		currency = "USD"
	}
	if _, err := c.SetCurrency(currency); err != nil {
		return err
	}

	if c.transport != nil {
		if err := c.transport.SetOptions(c.config); err != nil {
			return fmt.Errorf("configuring transport: %w", err)
		}
	}

	return nil
}

// SetCurrency validates code against the supported list and stores it.
func (c *Client) SetCurrency(code string) (*Client, error) {
	if err := validateCurrency(code); err != nil {
		return c, err
	}
	c.currency = code
	if c.config != nil {
		c.config[ConfigCurrency] = code
	}
	return c, nil
}

// Currency returns the currently configured currency code.
func (c *Client) Currency() string {
	return c.currency
}

// Config returns the active configuration. The map is the client's own;
// callers must treat it as read-only.
func (c *Client) Config() Config {
	return c.config
}

// AddOptions stores opts verbatim, wholesale replacing any previous
// options. No validation is performed.
func (c *Client) AddOptions(opts map[string]string) *Client {
	c.options = opts
	return c
}

// Options returns the options set by the last AddOptions call.
func (c *Client) Options() map[string]string {
	return c.options
}

// SetRequestData discards any staged payload and stages a fresh one
// built from data. Repeated calls never merge.
func (c *Client) SetRequestData(data map[string]string) *RequestPayload {
	c.payload = newRequestPayload(data)
	return c.payload
}

// SetAPIProvider installs the transport used for outbound requests. The
// Transport interface bound makes any non-nil provider valid by
// construction; only a nil interface is rejected.
func (c *Client) SetAPIProvider(t Transport) error {
	if t == nil {
		return ErrInvalidProvider
	}
	c.transport = t
	if c.config != nil {
		if err := t.SetOptions(c.config); err != nil {
			return fmt.Errorf("configuring transport: %w", err)
		}
	}
	return nil
}

// RetrieveData interprets a raw API response for the given method.
// IPN verification responses pass through unchanged as a string; every
// other method parses as NVP text into a map with last-value-wins on
// duplicate keys.
func (c *Client) RetrieveData(method string, response []byte) (any, error) {
	if method == methodVerifyIPN {
		return string(response), nil
	}
	return nvp.Parse(string(response))
}

// DoRequest encodes the staged payload, sends it to the endpoint for
// method and parses the response. The staged payload is consumed whether
// or not the call succeeds.
func (c *Client) DoRequest(ctx context.Context, method string) (any, error) {
	if c.transport == nil {
		return nil, ErrInvalidProvider
	}

	payload := c.payload
	if payload == nil {
		payload = newRequestPayload(nil)
	}
	c.payload = nil

	endpoint := c.config[ConfigAPIURL]
	if method == methodVerifyIPN {
		endpoint = c.config[ConfigIPNEndpoint]
	}

	raw, err := c.transport.SendRequest(ctx, endpoint, []byte(payload.Encode()), formHeaders())
	if err != nil {
		return nil, err
	}

	return c.RetrieveData(method, raw)
}

// VerifyIPN echoes a received IPN message back to PayPal for
// verification and returns the verdict, "VERIFIED" or "INVALID". The
// message bytes are forwarded exactly as received, prefixed with the
// notify-validate command; transport failures propagate unchanged.
func (c *Client) VerifyIPN(ctx context.Context, post string) (string, error) {
	if c.transport == nil {
		return "", ErrInvalidProvider
	}

	// Any previously staged payload is superseded by the IPN echo.
	c.payload = nil

	body := "cmd=_notify-validate&" + post
	raw, err := c.transport.SendRequest(ctx, c.config[ConfigIPNEndpoint], []byte(body), formHeaders())
	if err != nil {
		return "", err
	}

	verdict, err := c.RetrieveData(methodVerifyIPN, raw)
	if err != nil {
		return "", err
	}

	return verdict.(string), nil
}

func formHeaders() map[string]string {
	return map[string]string{
		"Content-Type": "application/x-www-form-urlencoded",
	}
}

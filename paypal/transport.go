package paypal

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Transport sends staged payloads to PayPal. SetOptions receives the
// active configuration after every successful SetAPICredentials call so
// implementations can apply per-environment defaults.
type Transport interface {
	SetOptions(cfg Config) error
	SendRequest(ctx context.Context, endpoint string, body []byte, headers map[string]string) ([]byte, error)
}

// HTTPTransport is the default Transport on top of net/http.
type HTTPTransport struct {
	HTTP *http.Client
}

func NewHTTPTransport(hc *http.Client) *HTTPTransport {
	if hc == nil {
		hc = &http.Client{Timeout: 30 * time.Second}
	}
	return &HTTPTransport{HTTP: hc}
}

// SetOptions applies per-environment HTTP defaults. SSL verification is
// disabled only when the configuration explicitly says so, which is
// meant for sandbox hosts behind interception proxies.
func (t *HTTPTransport) SetOptions(cfg Config) error {
	if cfg[ConfigValidateSSL] == "false" {
		t.HTTP.Transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		}
		return nil
	}
	t.HTTP.Transport = nil
	return nil
}

func (t *HTTPTransport) SendRequest(ctx context.Context, endpoint string, body []byte, headers map[string]string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	req.Header.Set("PayPal-Request-Id", uuid.New().String())

	resp, err := t.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("paypal status=%d body=%s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	return raw, nil
}

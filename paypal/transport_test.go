package paypal_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alovak/paypal-gateway/paypal"
	"github.com/stretchr/testify/require"
)

func TestHTTPTransport_SendRequest(t *testing.T) {
	var gotBody string
	var gotContentType string
	var gotRequestID string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		gotContentType = r.Header.Get("Content-Type")
		gotRequestID = r.Header.Get("PayPal-Request-Id")
		w.Write([]byte("VERIFIED"))
	}))
	defer srv.Close()

	transport := paypal.NewHTTPTransport(nil)
	raw, err := transport.SendRequest(context.Background(), srv.URL, []byte("cmd=_notify-validate&txn_id=1"), map[string]string{
		"Content-Type": "application/x-www-form-urlencoded",
	})
	require.NoError(t, err)
	require.Equal(t, "VERIFIED", string(raw))
	require.Equal(t, "cmd=_notify-validate&txn_id=1", gotBody)
	require.Equal(t, "application/x-www-form-urlencoded", gotContentType)
	require.NotEmpty(t, gotRequestID)
}

func TestHTTPTransport_SendRequest_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal failure", http.StatusInternalServerError)
	}))
	defer srv.Close()

	transport := paypal.NewHTTPTransport(nil)
	_, err := transport.SendRequest(context.Background(), srv.URL, nil, nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "status=500")
	require.Contains(t, err.Error(), "internal failure")
}

func TestHTTPTransport_SetOptions_SSLValidation(t *testing.T) {
	transport := paypal.NewHTTPTransport(nil)

	require.NoError(t, transport.SetOptions(paypal.Config{paypal.ConfigValidateSSL: "false"}))
	rt, ok := transport.HTTP.Transport.(*http.Transport)
	require.True(t, ok)
	require.True(t, rt.TLSClientConfig.InsecureSkipVerify)

	require.NoError(t, transport.SetOptions(paypal.Config{paypal.ConfigValidateSSL: "true"}))
	require.Nil(t, transport.HTTP.Transport)
}

func TestVerifyIPN_EndToEnd(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		if string(b) == "cmd=_notify-validate&txn_id=9XW123" {
			w.Write([]byte("VERIFIED"))
			return
		}
		w.Write([]byte("INVALID"))
	}))
	defer srv.Close()

	client := paypal.NewClient(paypal.NewHTTPTransport(nil))
	require.NoError(t, client.SetAPICredentials(paypal.Credentials{
		Mode:    paypal.ModeSandbox,
		Sandbox: map[string]string{"username": "u", "password": "p", "signature": "s"},
	}))
	// point IPN verification at the fake PayPal
	client.Config()[paypal.ConfigIPNEndpoint] = srv.URL

	verdict, err := client.VerifyIPN(context.Background(), "txn_id=9XW123")
	require.NoError(t, err)
	require.Equal(t, "VERIFIED", verdict)

	verdict, err = client.VerifyIPN(context.Background(), "txn_id=other")
	require.NoError(t, err)
	require.Equal(t, "INVALID", verdict)
}

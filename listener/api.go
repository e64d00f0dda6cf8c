package listener

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"
)

// Verifier echoes a raw IPN message back to PayPal and returns the
// verdict. Satisfied by *paypal.Client.
type Verifier interface {
	VerifyIPN(ctx context.Context, post string) (string, error)
}

// API is the HTTP API for the IPN listener.
type API struct {
	verifier Verifier
	logger   *slog.Logger
	metrics  *Metrics
}

func NewAPI(verifier Verifier, logger *slog.Logger, metrics *Metrics) *API {
	return &API{
		verifier: verifier,
		logger:   logger,
		metrics:  metrics,
	}
}

func (a *API) AppendRoutes(r chi.Router) {
	r.Post("/ipn", a.handleIPN)
}

// handleIPN forwards the exact bytes PayPal posted back for
// verification. PayPal keeps redelivering on non-2xx responses, so an
// INVALID verdict still answers 200; only a verification transport
// failure returns 5xx to request redelivery.
func (a *API) handleIPN(w http.ResponseWriter, r *http.Request) {
	a.metrics.ReceivedTotal.Inc()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	post := string(body)
	if strings.TrimSpace(post) == "" {
		http.Error(w, "empty ipn body", http.StatusBadRequest)
		return
	}

	start := time.Now()
	verdict, err := a.verifier.VerifyIPN(r.Context(), post)
	a.metrics.VerificationDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		a.metrics.VerificationsTotal.WithLabelValues("error").Inc()
		a.logger.Error("verifying ipn", "err", err)
		http.Error(w, "verification failed", http.StatusBadGateway)
		return
	}

	switch verdict {
	case "VERIFIED":
		a.metrics.VerificationsTotal.WithLabelValues("verified").Inc()
		a.logger.Info("ipn verified", slog.Int("bytes", len(body)))
	default:
		a.metrics.VerificationsTotal.WithLabelValues("invalid").Inc()
		a.logger.Warn("ipn rejected by paypal", slog.String("verdict", verdict))
	}

	w.WriteHeader(http.StatusOK)
}

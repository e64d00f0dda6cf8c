package listener

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the IPN processing metrics.
type Metrics struct {
	ReceivedTotal        prometheus.Counter
	VerificationsTotal   *prometheus.CounterVec
	VerificationDuration prometheus.Histogram
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		ReceivedTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "ipn_received_total",
			Help: "Total IPN messages received from PayPal",
		}),
		VerificationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "ipn_verifications_total",
			Help: "IPN verification results by outcome",
		}, []string{"outcome"}),
		VerificationDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "ipn_verification_duration_seconds",
			Help:    "Time spent verifying an IPN message with PayPal",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

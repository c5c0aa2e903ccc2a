package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests by route, method and status code",
		},
		[]string{"route", "method", "status"},
	)

	httpDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)

	registrations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "registrations_total",
			Help: "Total finalized registrations by discount type",
		},
		[]string{"discount_type"},
	)

	paymentFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payment_failures_total",
			Help: "Total payment flow failures by stage",
		},
		[]string{"stage"},
	)

	orphanedPayments = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "orphaned_payments_total",
			Help: "Payments verified with Stripe whose registration could not be persisted",
		},
	)
)

// TrackHTTPRequest records one completed HTTP request.
func TrackHTTPRequest(route, method string, status int, duration time.Duration) {
	httpRequests.WithLabelValues(route, method, statusLabel(status)).Inc()
	httpDuration.WithLabelValues(route, method).Observe(duration.Seconds())
}

// TrackRegistration records one finalized registration.
func TrackRegistration(discountType string) {
	registrations.WithLabelValues(discountType).Inc()
}

// TrackPaymentFailure records a payment flow failure at the given stage
// (intent_create, verification, persistence).
func TrackPaymentFailure(stage string) {
	paymentFailures.WithLabelValues(stage).Inc()
}

// TrackOrphanedPayment records a verified payment with no persisted registration.
func TrackOrphanedPayment() {
	orphanedPayments.Inc()
}

func statusLabel(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}

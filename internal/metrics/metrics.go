package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	bookingsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "rentora",
			Name:      "bookings_created_total",
			Help:      "Reservations created through checkout.",
		},
	)

	bookingsConfirmed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "rentora",
			Name:      "bookings_confirmed_total",
			Help:      "Reservations confirmed by payment webhook or landlord action.",
		},
	)

	totalMismatches = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "rentora",
			Name:      "booking_total_mismatch_total",
			Help:      "Confirmations whose recomputed total diverged from the stored total.",
		},
	)

	webhookFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "rentora",
			Name:      "webhook_processing_failures_total",
			Help:      "Webhook deliveries acknowledged but not fully processed.",
		},
	)

	webhookIgnored = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "rentora",
			Name:      "webhook_events_ignored_total",
			Help:      "Webhook events acknowledged without state change, by event type.",
		},
		[]string{"type"},
	)
)

// Register registers Prometheus metrics. Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(
			bookingsCreated,
			bookingsConfirmed,
			totalMismatches,
			webhookFailures,
			webhookIgnored,
		)
	})
}

func IncBookingCreated()   { bookingsCreated.Inc() }
func IncBookingConfirmed() { bookingsConfirmed.Inc() }
func IncTotalMismatch()    { totalMismatches.Inc() }
func IncWebhookFailure()   { webhookFailures.Inc() }

// BookingsCreated and BookingsConfirmed expose the counters so wiring tests
// can read them with testutil.
func BookingsCreated() prometheus.Counter   { return bookingsCreated }
func BookingsConfirmed() prometheus.Counter { return bookingsConfirmed }

func IncWebhookIgnored(eventType string) {
	webhookIgnored.WithLabelValues(eventType).Inc()
}

package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "travelease"

var (
	once sync.Once

	bookingCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "booking_created_total",
			Help:      "Count of bookings created by payment method.",
		},
		[]string{"payment_method"},
	)

	bookingFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "booking_failed_total",
			Help:      "Count of booking submissions that failed to store.",
		},
	)

	authEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "auth_events_total",
			Help:      "Count of auth state changes by type.",
		},
		[]string{"type"},
	)

	catalogFilters = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "catalog_filter_applied_total",
			Help:      "Count of catalog filter applications by mechanism.",
		},
		[]string{"mechanism"},
	)

	sessionCache = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "session_cache_lookups_total",
			Help:      "Count of session holder lookups by result.",
		},
		[]string{"result"},
	)
)

// Register registers metrics with the default registry (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(bookingCreated, bookingFailed, authEvents, catalogFilters, sessionCache)
	})
}

func IncBookingCreated(method string) {
	bookingCreated.WithLabelValues(method).Inc()
}

func IncBookingFailed() {
	bookingFailed.Inc()
}

func IncAuthEvent(eventType string) {
	authEvents.WithLabelValues(eventType).Inc()
}

func IncCatalogFilter(mechanism string) {
	catalogFilters.WithLabelValues(mechanism).Inc()
}

func IncSessionCache(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	sessionCache.WithLabelValues(result).Inc()
}

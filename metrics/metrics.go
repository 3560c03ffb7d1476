package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	availabilitySearches = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "hotel_reservation",
			Name:      "availability_searches_total",
			Help:      "Availability search queries served.",
		},
	)

	bookingsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "hotel_reservation",
			Name:      "bookings_created_total",
			Help:      "Bookings committed with status CONFIRMED.",
		},
	)

	bookingConflicts = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "hotel_reservation",
			Name:      "booking_conflicts_total",
			Help:      "Booking attempts rejected because a concurrent booking won the room.",
		},
	)

	statusTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "hotel_reservation",
			Name:      "booking_status_transitions_total",
			Help:      "Booking status transitions by target status.",
		},
		[]string{"status"},
	)
)

// Register registers the Prometheus metrics. Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(
			availabilitySearches,
			bookingsCreated,
			bookingConflicts,
			statusTransitions,
		)
	})
}

func IncAvailabilitySearch() { availabilitySearches.Inc() }

func IncBookingCreated() { bookingsCreated.Inc() }

func IncBookingConflict() { bookingConflicts.Inc() }

func IncStatusTransition(status string) {
	statusTransitions.WithLabelValues(status).Inc()
}

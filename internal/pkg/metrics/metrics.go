package metrics

import (
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	gestures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "salon_calendar",
			Name:      "gestures_total",
			Help:      "Count of grid gestures received by kind.",
		},
		[]string{"kind"},
	)

	appointmentsMoved = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "salon_calendar",
			Name:      "appointments_moved_total",
			Help:      "Count of appointments rescheduled by drag and drop.",
		},
	)

	appointmentsCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "salon_calendar",
			Name:      "appointments_created_total",
			Help:      "Count of appointments created from the grid by status.",
		},
		[]string{"status"},
	)

	dropsIgnored = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "salon_calendar",
			Name:      "drops_ignored_total",
			Help:      "Count of drops that produced no store mutation by reason.",
		},
		[]string{"reason"},
	)

	apiErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "salon_calendar",
			Name:      "api_errors_total",
			Help:      "Count of error responses by status and route.",
		},
		[]string{"status", "route"},
	)

	panicsRecovered = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "salon_calendar",
			Name:      "panics_recovered_total",
			Help:      "Count of handler panics turned into 500 responses.",
		},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(gestures, appointmentsMoved, appointmentsCreated, dropsIgnored, apiErrors, panicsRecovered)
	})
}

func IncGesture(kind string) {
	gestures.WithLabelValues(kind).Inc()
}

func IncAppointmentMoved() {
	appointmentsMoved.Inc()
}

func IncAppointmentCreated(status string) {
	appointmentsCreated.WithLabelValues(status).Inc()
}

func IncDropIgnored(reason string) {
	dropsIgnored.WithLabelValues(reason).Inc()
}

func IncAPIError(status int, route string) {
	apiErrors.WithLabelValues(strconv.Itoa(status), route).Inc()
}

func IncPanicRecovered() {
	panicsRecovered.Inc()
}

// Package metrics contadores Prometheus de los casos de uso. Se registran en el
// registro por defecto y se exponen en /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "storefront"

var (
	// AuthLogins resultado: admin, success, invalid, disabled, demo.
	AuthLogins = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "auth_logins_total",
			Help:      "Total login attempts by result.",
		},
		[]string{"result"},
	)

	AuthRegistrations = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "auth_registrations_total",
			Help:      "Total accounts registered.",
		},
	)

	// AdminActions acción de auditoría: USER_BANNED, USER_UNBANNED, USER_DELETED, SYSTEM_UPDATE.
	AdminActions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "admin_actions_total",
			Help:      "Total administrative actions recorded.",
		},
		[]string{"action"},
	)

	// CheckoutProofs veredicto: valid, invalid, fallback.
	CheckoutProofs = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "checkout_proofs_total",
			Help:      "Total payment proofs submitted by verdict.",
		},
		[]string{"verdict"},
	)

	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_published_total",
			Help:      "Total events published by subject and result.",
		},
		[]string{"subject", "result"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)
)

// Package metrics declares the Prometheus collectors exposed on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "appointme"

// BackendRequestsTotal counts calls to the REST backend.
// Labels:
//   - method: HTTP method
//   - route: path template, e.g. "/public/businesses/{id}"
//   - outcome: "ok", "auth_expired", "network" or "server"
var BackendRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "backend_requests_total",
		Help:      "Total number of backend REST calls, by outcome.",
	},
	[]string{"method", "route", "outcome"},
)

var BackendRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "backend_request_duration_seconds",
		Help:      "Latency of backend REST calls.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method", "route"},
)

// SessionRestoresTotal counts session restores.
// Label:
//   - result: "anonymous", "authenticated" or "invalidated"
var SessionRestoresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_restores_total",
		Help:      "Total number of session restores, by result.",
	},
	[]string{"result"},
)

var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by role and result.",
	},
	[]string{"role", "result"},
)

var BookingsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bookings_total",
		Help:      "Total number of booking attempts, by result.",
	},
	[]string{"result"},
)

var UploadsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "image_uploads_total",
		Help:      "Total number of business image uploads, by kind and result.",
	},
	[]string{"kind", "result"},
)

var AuditDroppedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_events_dropped_total",
		Help:      "Activity events dropped because the dispatcher queue was full.",
	},
)

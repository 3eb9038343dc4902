// Package metrics defines and registers all custom Prometheus metrics for the
// dating API. It is the single source of truth for metric names, labels, and
// help strings. Metrics register with the default registry at package init;
// the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "dating"

// LikesRecordedTotal counts likes persisted by the match engine.
// Label:
//   - result: "mutual" or "pending"
var LikesRecordedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "likes_recorded_total",
		Help:      "Total number of likes recorded, by match result.",
	},
	[]string{"result"},
)

// LikesRateLimitedTotal counts like attempts rejected by the daily quota gate.
var LikesRateLimitedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "likes_rate_limited_total",
		Help:      "Total number of like attempts rejected by the rate gate.",
	},
)

// ClientsRegisteredTotal counts successful registrations.
var ClientsRegisteredTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "clients_registered_total",
		Help:      "Total number of clients registered.",
	},
)

// NotificationsTotal counts match notification delivery attempts.
// Label:
//   - result: "sent" or "error"
var NotificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_total",
		Help:      "Total number of match notification deliveries, by result.",
	},
	[]string{"result"},
)

// HTTPRateLimitedTotal counts requests rejected by the per-IP transport limiter.
var HTTPRateLimitedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_rate_limited_total",
		Help:      "Total number of requests rejected by the per-IP limiter.",
	},
)

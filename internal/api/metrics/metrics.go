// Package metrics defines and registers all custom Prometheus metrics for the
// marketplace API. It is the single source of truth for metric names, labels,
// and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "marketplace"

// ── Account metrics ───────────────────────────────────────────────────────────

// SignupsTotal counts successful registrations.
// Label:
//   - principal_type: "company" or "customer"
var SignupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of successful signups, by principal type.",
	},
	[]string{"principal_type"},
)

// LoginsTotal counts login attempts.
// Labels:
//   - principal_type: "company" or "customer"
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by principal type and result.",
	},
	[]string{"principal_type", "result"},
)

// PasswordResetsTotal counts reset-protocol transitions.
// Labels:
//   - principal_type: "company" or "customer"
//   - stage: "requested" (ticket issued) or "redeemed" (password changed)
var PasswordResetsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "password_resets_total",
		Help:      "Total number of password reset issuances and redemptions.",
	},
	[]string{"principal_type", "stage"},
)

// AuthFailuresTotal counts requests rejected by the auth guard.
// Labels:
//   - principal_type: guard variant that rejected the request
//   - reason: "missing_token", "invalid_token" or "unknown_principal"
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of requests rejected by the auth guard.",
	},
	[]string{"principal_type", "reason"},
)

// ── Catalog metrics ───────────────────────────────────────────────────────────

// ProductsCreatedTotal counts catalog writes.
// Label:
//   - result: "created" (new product) or "merged" (quantity added to existing)
var ProductsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "products_created_total",
		Help:      "Total number of product create operations, by outcome.",
	},
	[]string{"result"},
)

// InquiriesCreatedTotal counts inquiries sent by customers.
var InquiriesCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "inquiries_created_total",
		Help:      "Total number of inquiries sent.",
	},
)

// ── Notification metrics ──────────────────────────────────────────────────────

// NotificationsTotal counts asynchronous notification deliveries.
// Label:
//   - result: "sent", "failed" or "dropped" (queue full)
var NotificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_total",
		Help:      "Total number of notification emails, by delivery result.",
	},
	[]string{"result"},
)

// NotificationQueueDepth tracks pending messages per dispatcher worker.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var NotificationQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "notification_queue_depth",
		Help:      "Current number of messages pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// Package metrics defines and registers all custom Prometheus metrics for
// the MindReboot API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics use promauto and register against the default registry at init;
// the router exposes them on /metrics via echoprometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "mindreboot"

// ── Account metrics ───────────────────────────────────────────────────────────

// RegistrationsTotal counts successful account registrations.
// Label:
//   - role: the role the account was created with ("user", "admin", "therapist")
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of successful account registrations, by role.",
	},
	[]string{"role"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "ok" or "failed"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ── Catalog metrics ───────────────────────────────────────────────────────────

// PlaysTotal counts recorded plays.
var PlaysTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "plays_total",
		Help:      "Total number of recorded audio plays.",
	},
)

// LikesTotal counts recorded likes.
var LikesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "likes_total",
		Help:      "Total number of recorded audio likes.",
	},
)

// ── Intake metrics ────────────────────────────────────────────────────────────

// IntakeSubmissionsTotal counts accepted personalized-audio requests.
// Label:
//   - urgency: pricing tier ("standard", "priority", "rush")
var IntakeSubmissionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "intake_submissions_total",
		Help:      "Total number of accepted personalized audio requests, by urgency tier.",
	},
	[]string{"urgency"},
)

// IntakeStatusChangesTotal counts fulfillment status transitions.
// Label:
//   - status: the new status applied
var IntakeStatusChangesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "intake_status_changes_total",
		Help:      "Total number of personalized request status transitions, by new status.",
	},
	[]string{"status"},
)

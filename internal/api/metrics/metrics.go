// Package metrics defines and registers all custom Prometheus metrics for
// the rentwise property API. It is the single source of truth for metric
// names, labels, and help strings.
//
// Metrics register themselves with the default Prometheus registry via
// promauto at package init; the /metrics endpoint exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "rentwise"

// ── Auth metrics ─────────────────────────────────────────────────────────────

// RegistrationsTotal counts successful account registrations.
// Label:
//   - role: the role assigned at registration (e.g. "tenant", "landlord")
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accounts registered, by role.",
	},
	[]string{"role"},
)

// LoginsTotal counts login attempts.
// Label:
//   - outcome: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by outcome.",
	},
	[]string{"outcome"},
)

// TokenRefreshesTotal counts refresh-token redemptions.
// Label:
//   - outcome: "success" or "failure"
var TokenRefreshesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_refreshes_total",
		Help:      "Total number of refresh token redemptions, by outcome.",
	},
	[]string{"outcome"},
)

// ── Assignment metrics ────────────────────────────────────────────────────────

// AssignmentsTotal counts assignment-manager operations.
// Labels:
//   - operation: "assign_manager", "assign_caretaker", "assign_unit",
//     "vacate_unit", "unassign_caretaker", "unassign_manager"
//   - outcome: "success" or "failure"
var AssignmentsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "assignments_total",
		Help:      "Total number of assignment operations, by operation and outcome.",
	},
	[]string{"operation", "outcome"},
)

// ── Record metrics ───────────────────────────────────────────────────────────

// RecordsCreatedTotal counts newly created domain records.
// Label:
//   - kind: "property", "unit", "payment", "maintenance_request"
var RecordsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "records_created_total",
		Help:      "Total number of domain records created, by kind.",
	},
	[]string{"kind"},
)

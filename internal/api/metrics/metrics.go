// Package metrics defines and registers all custom Prometheus metrics for
// the Viken timetracker API. It is the single source of truth for metric
// names, labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "timetracker"

// LoginsTotal counts login attempts.
// Labels:
//   - result: "success" or "invalid"
//   - role: the authenticated role on success, "" otherwise
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result and role.",
	},
	[]string{"result", "role"},
)

// RegistrationsTotal counts new employee registrations.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of employee registrations.",
	},
)

// GuardDecisionsTotal counts route guard outcomes.
// Labels:
//   - guard: "authenticated" or "admin"
//   - decision: "admit", "redirect", or "loading"
var GuardDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "guard_decisions_total",
		Help:      "Total number of route guard decisions, by guard and outcome.",
	},
	[]string{"guard", "decision"},
)

// TimeEntriesLoggedTotal counts recorded check-in/check-out intervals.
var TimeEntriesLoggedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "time_entries_logged_total",
		Help:      "Total number of time entries logged.",
	},
)

// ApprovalsTotal counts admin decisions on pending employees.
// Label:
//   - action: "approved" or "rejected"
var ApprovalsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "employee_approvals_total",
		Help:      "Total number of admin approval decisions on pending employees.",
	},
	[]string{"action"},
)

// Package metrics defines and registers the custom Prometheus metrics of the
// website. It is the single source of truth for metric names, labels, and
// help strings. HTTP request metrics come from the echoprometheus middleware.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "integra"

// Login results used as the "result" label of AdminLoginsTotal.
const (
	LoginSuccess  = "success"
	LoginRejected = "rejected"
	LoginDisabled = "disabled"
)

// ── Contact metrics ───────────────────────────────────────────────────────────

// ContactsSubmittedTotal counts contact form submissions that were stored.
var ContactsSubmittedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "contacts_submitted_total",
		Help:      "Total number of contact form submissions persisted.",
	},
)

// ContactsFailedTotal counts submissions or deletions that could not be written.
// Label:
//   - op: "submit" or "delete"
var ContactsFailedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "contacts_failed_total",
		Help:      "Total number of contact writes that failed.",
	},
	[]string{"op"},
)

// ContactsDeletedTotal counts contacts removed from the admin panel.
var ContactsDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "contacts_deleted_total",
		Help:      "Total number of contacts deleted by an admin.",
	},
)

// ── Admin metrics ─────────────────────────────────────────────────────────────

// AdminLoginsTotal counts admin login attempts.
// Label:
//   - result: "success", "rejected" or "disabled"
var AdminLoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "admin_logins_total",
		Help:      "Total number of admin login attempts, by result.",
	},
	[]string{"result"},
)

// ── Catalog metrics ───────────────────────────────────────────────────────────

// CatalogReloadsTotal counts cache invalidations triggered by catalog file changes.
var CatalogReloadsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "catalog_reloads_total",
		Help:      "Total number of service catalog reloads after file changes.",
	},
)

// Package metrics defines all custom Prometheus metrics for the badge
// catalog API. It is the single source of truth for metric names, labels,
// and help strings; metrics register with the default registry at import
// time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "catalog"

// ── Listing metrics ───────────────────────────────────────────────────────────

// BadgesListedTotal counts list requests that completed successfully.
// Label:
//   - scope: "admin" (all statuses visible) or "public" (active only)
var BadgesListedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "badges_listed_total",
		Help:      "Total number of badge list queries served, by visibility scope.",
	},
	[]string{"scope"},
)

// ListDuration measures how long a list query takes end-to-end, cache
// misses included.
var ListDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "list_duration_seconds",
		Help:      "Duration of badge list queries from validation to response assembly.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
)

// ListCacheTotal counts list cache lookups.
// Label:
//   - result: "hit" (served from cache) or "miss" (store queried)
var ListCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "list_cache_total",
		Help:      "Total number of list cache lookups, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// ── Write metrics ─────────────────────────────────────────────────────────────

// BadgesCreatedTotal counts newly created badges.
// Label:
//   - category: "technical", "organizational", or "soft-skilled"
var BadgesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "badges_created_total",
		Help:      "Total number of badges created, by category.",
	},
	[]string{"category"},
)

// UsersCreatedTotal counts newly provisioned directory users.
var UsersCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_created_total",
		Help:      "Total number of directory users created.",
	},
)

// AuditEntriesTotal counts audit trail writes.
// Label:
//   - result: "ok" or "error"
var AuditEntriesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_entries_total",
		Help:      "Total number of audit trail writes, labelled by result.",
	},
	[]string{"result"},
)

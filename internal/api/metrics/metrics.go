// Package metrics defines the custom Prometheus metrics for the stock API.
// It is the single source of truth for metric names, labels, and help strings.
//
// HTTP-level request metrics come from the echoprometheus middleware; the
// metrics here cover domain events the middleware cannot see.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "stockapi"

// AuthAttemptsTotal counts registration and login attempts.
// Labels:
//   - operation: "register" or "login"
//   - result: "success" or "failure"
var AuthAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Total number of registration and login attempts, by result.",
	},
	[]string{"operation", "result"},
)

// ResourceWritesTotal counts successful create/update/delete operations.
// Labels:
//   - resource: "category", "product", or "user"
//   - operation: "create", "update", or "delete"
var ResourceWritesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "resource_writes_total",
		Help:      "Total number of successful resource write operations.",
	},
	[]string{"resource", "operation"},
)

// CacheRequestsTotal counts list-cache lookups.
// Label:
//   - result: "hit" or "miss"
var CacheRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cache_requests_total",
		Help:      "Total number of list-cache lookups, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

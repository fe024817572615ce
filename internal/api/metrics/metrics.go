// Package metrics defines and registers the custom Prometheus metrics for
// the Hop4Deals API. It is the single source of truth for metric names,
// labels, and help strings. Metrics register with the default registry at
// package load; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "hop4deals"

// LoginsTotal counts login attempts by outcome.
// Labels:
//   - result: "success", "invalid", or "throttled"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// AuthRejectionsTotal counts rejected authenticated requests.
// Labels:
//   - reason: "missing_header", "bad_header", "malformed", "bad_signature",
//     "expired", "account_gone", "role", "privilege", or "error"
var AuthRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_rejections_total",
		Help:      "Total number of requests rejected by the auth pipeline, by reason.",
	},
	[]string{"reason"},
)

// AuthEventQueueDepth tracks pending auth events per recorder worker.
// Labels:
//   - worker_id: numeric worker index (e.g. "0", "1", ...)
var AuthEventQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "auth_event_queue_depth",
		Help:      "Current number of auth events pending in each recorder worker channel.",
	},
	[]string{"worker_id"},
)

// README: Prometheus metrics shared across modules.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ValidationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "siteplan_validations_total",
		Help: "Constraint evaluations run.",
	})

	ViolationsEmitted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "siteplan_violations_emitted_total",
		Help: "Violations produced by constraint evaluations.",
	})

	DragCommitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "siteplan_drag_commits_total",
		Help: "Committed asset drag gestures.",
	})

	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "siteplan_http_request_duration_seconds",
		Help:    "HTTP request latency by route and status.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route", "status"})
)

// Package metrics defines and registers all custom Prometheus metrics for the
// arcade API. It is the single source of truth for metric names, labels, and
// help strings. Metrics are registered with the default registry at init via
// promauto; the /metrics endpoint exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "arcade"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// RegistrationsTotal counts account registration attempts.
// Label:
//   - result: "ok", "conflict", "invalid", or "error"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by result.",
	},
	[]string{"result"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "ok" or "rejected"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ── Score metrics ─────────────────────────────────────────────────────────────

// ScoreSubmissionsTotal counts score submissions that reached the ledger.
// Label:
//   - outcome: "created" (first record), "improved" (beat stored score), or
//     "ignored" (non-improving no-op)
var ScoreSubmissionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "score_submissions_total",
		Help:      "Total number of score submissions, by upsert outcome.",
	},
	[]string{"outcome"},
)

// ScoreSubmissionDuration measures the ledger upsert end-to-end.
// Label:
//   - outcome: upsert outcome, or "error" on failure
var ScoreSubmissionDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "score_submission_duration_seconds",
		Help:      "Duration of the best-score upsert from call to persistence.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"outcome"},
)

// ── Activity trail metrics ────────────────────────────────────────────────────

// ActivityDedupTotal counts deduplication decisions on the activity trail.
// Label:
//   - result: "hit" (duplicate, skipped) or "miss" (recorded)
var ActivityDedupTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "activity_dedup_total",
		Help:      "Total number of activity deduplication checks, by result (hit/miss).",
	},
	[]string{"result"},
)

// ActivityQueueDepth tracks the number of events waiting in each worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var ActivityQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "activity_queue_depth",
		Help:      "Current number of activity events pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// Package metrics defines and registers the custom Prometheus metrics of the
// portfolio API. It is the single source of truth for metric names, labels,
// and help strings.
//
// All metrics are registered with the default registry through promauto, so
// they are exposed by the /metrics handler without further setup.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "portfolio"

// ── Analytics metrics ─────────────────────────────────────────────────────────

// AnalyticsEventsTotal counts analytics events by outcome.
// Labels:
//   - event_type: "visit", "download" or "contact"
//   - result: "recorded", "failed" or "dropped"
var AnalyticsEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "analytics_events_total",
		Help:      "Total number of analytics events, by type and outcome.",
	},
	[]string{"event_type", "result"},
)

// AnalyticsQueueDepth tracks the number of events waiting in each recorder worker.
var AnalyticsQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "analytics_queue_depth",
		Help:      "Current number of analytics events pending in each recorder worker channel.",
	},
	[]string{"worker_id"},
)

// AnalyticsWriteDuration measures how long persisting a single event takes.
var AnalyticsWriteDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "analytics_write_duration_seconds",
		Help:      "Duration of analytics event persistence from dequeue to insert.",
		Buckets:   prometheus.DefBuckets,
	},
)

// ── Contact metrics ───────────────────────────────────────────────────────────

// ContactSubmissionsTotal counts contact form submissions.
// Label:
//   - result: "accepted", "rate_limited", "invalid" or "error"
var ContactSubmissionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "contact_submissions_total",
		Help:      "Total number of contact form submissions, by result.",
	},
	[]string{"result"},
)

// ── Resume metrics ────────────────────────────────────────────────────────────

// ResumeUploadBytes observes the size of uploaded resume files.
var ResumeUploadBytes = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "resume_upload_bytes",
		Help:      "Size in bytes of accepted resume uploads.",
		Buckets:   prometheus.ExponentialBuckets(16*1024, 2, 10),
	},
)

// Package metrics defines the custom Prometheus metrics of the back-office
// API. Metrics register with the default registry on package init through
// promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "backoffice"

// ── Authorization ─────────────────────────────────────────────────────────────

// AuthorizationDecisionsTotal counts gate outcomes.
// Label:
//   - outcome: "allowed", a rejection reason (e.g. "not_allowed"), or "error"
var AuthorizationDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "authorization_decisions_total",
		Help:      "Total number of authorization gate decisions, by outcome.",
	},
	[]string{"outcome"},
)

// CredentialVerificationDuration measures bearer credential verification.
// Label:
//   - result: "ok", "expired", "revoked" or "error"
var CredentialVerificationDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "credential_verification_duration_seconds",
		Help:      "Duration of bearer credential verification.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"result"},
)

// ── Validation ────────────────────────────────────────────────────────────────

// ValidationRejectionsTotal counts requests stopped by the validation gate.
// Label:
//   - route: the matched route path (e.g. "/v1/banks")
var ValidationRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "validation_rejections_total",
		Help:      "Total number of requests rejected by field validation, by route.",
	},
	[]string{"route"},
)

// ── Error translation ─────────────────────────────────────────────────────────

// UnhandledErrorsTotal counts failures answered with a 500.
var UnhandledErrorsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "unhandled_errors_total",
		Help:      "Total number of unhandled errors translated into a 500 response.",
	},
)

// ErrorRecordsFailedTotal counts audit records that could not be persisted.
var ErrorRecordsFailedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "error_records_failed_total",
		Help:      "Total number of error records whose persistence failed.",
	},
)
